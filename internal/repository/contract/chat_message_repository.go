package contract

import (
	"context"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	// DeleteByChatSessionId removes every transcript entry of a session.
	// The session row itself is untouched.
	DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
