package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one conversation between a visitor and the bot.
// UserId is nil for anonymous sessions.
type ChatSession struct {
	Id        uuid.UUID
	UserId    *uuid.UUID
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
