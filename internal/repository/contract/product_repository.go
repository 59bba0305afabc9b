package contract

import (
	"context"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/repository/specification"
)

// ProductRepository is read-only: the chatbot never mutates the catalog.
type ProductRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
}
