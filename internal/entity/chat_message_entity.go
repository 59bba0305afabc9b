package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one transcript entry. Type is one of the
// constant.ChatMessageType* values (user, bot, system).
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Type          string
	Content       string
	IsRead        bool
	CreatedAt     time.Time
}
