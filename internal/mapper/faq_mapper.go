package mapper

import (
	"time"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/model"
)

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) ToEntity(f *model.Faq) *entity.FaqEntry {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.FaqEntry{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		Keywords:  f.Keywords,
		Category:  f.Category,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *FaqMapper) ToModel(f *entity.FaqEntry) *model.Faq {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.Faq{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		Keywords:  f.Keywords,
		Category:  f.Category,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *FaqMapper) ToEntities(models []*model.Faq) []*entity.FaqEntry {
	entities := make([]*entity.FaqEntry, len(models))
	for i, f := range models {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
