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

type ArtistRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewArtistRepository(db *gorm.DB) contract.ArtistRepository {
	return &ArtistRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *ArtistRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ArtistRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Artist, error) {
	var m model.Artist
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ArtistToEntity(&m), nil
}

func (r *ArtistRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Artist, error) {
	var models []*model.Artist
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ArtistsToEntities(models), nil
}

func (r *ArtistRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Artist, error) {
	var m model.Artist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ArtistToEntity(&m), nil
}
