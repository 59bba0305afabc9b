package mapper

import (
	"time"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ProductToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Product{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		CraftCategory: p.CraftCategory,
		Stock:         p.Stock,
		Available:     p.Available,
		Featured:      p.Featured,
		ArtistId:      p.ArtistId,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
	if p.Artist != nil {
		e.ArtistName = p.Artist.Name
	}
	return e
}

func (m *CatalogMapper) ProductsToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(models))
	for i, p := range models {
		entities[i] = m.ProductToEntity(p)
	}
	return entities
}

func (m *CatalogMapper) ArtistToEntity(a *model.Artist) *entity.Artist {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Artist{
		Id:           a.Id,
		UserId:       a.UserId,
		Name:         a.Name,
		Bio:          a.Bio,
		Availability: a.Availability,
		Featured:     a.Featured,
		Website:      a.Website,
		Phone:        a.Phone,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *CatalogMapper) ArtistsToEntities(models []*model.Artist) []*entity.Artist {
	entities := make([]*entity.Artist, len(models))
	for i, a := range models {
		entities[i] = m.ArtistToEntity(a)
	}
	return entities
}

func (m *CatalogMapper) UserToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:        u.Id,
		Username:  u.Username,
		FirstName: u.FirstName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
