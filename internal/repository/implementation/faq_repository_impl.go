package implementation

import (
	"context"
	"errors"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/mapper"
	"crafty-marketplace-be/internal/model"
	"crafty-marketplace-be/internal/repository/contract"
	"crafty-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqMapper(),
	}
}

func (r *FaqRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *entity.FaqEntry) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Update(ctx context.Context, faq *entity.FaqEntry) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Faq{}, id).Error
}

func (r *FaqRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error) {
	var m model.Faq
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FaqRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error) {
	var models []*model.Faq
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
