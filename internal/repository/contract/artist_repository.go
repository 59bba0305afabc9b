package contract

import (
	"context"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ArtistRepository is read-only: the chatbot never mutates the catalog.
type ArtistRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Artist, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Artist, error)
	// FindByUserId resolves a user's artist profile, nil when the user
	// has no storefront.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Artist, error)
}
