package contract

import (
	"context"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.FaqEntry) error
	Update(ctx context.Context, faq *entity.FaqEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error)
}
