package implementation

import (
	"context"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/mapper"
	"crafty-marketplace-be/internal/model"
	"crafty-marketplace-be/internal/repository/contract"
	"crafty-marketplace-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UnansweredQueryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewUnansweredQueryRepository(db *gorm.DB) contract.UnansweredQueryRepository {
	return &UnansweredQueryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *UnansweredQueryRepositoryImpl) Create(ctx context.Context, query *entity.UnansweredQuery) error {
	m := r.mapper.UnansweredQueryToModel(query)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*query = *r.mapper.UnansweredQueryToEntity(m)
	return nil
}

func (r *UnansweredQueryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UnansweredQuery, error) {
	var models []*model.UnansweredQuery
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UnansweredQuery, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UnansweredQueryToEntity(m)
	}
	return entities, nil
}
