package contract

import (
	"context"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/repository/specification"
)

type UnansweredQueryRepository interface {
	Create(ctx context.Context, query *entity.UnansweredQuery) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UnansweredQuery, error)
}
