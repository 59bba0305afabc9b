package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type ByMessageType struct {
	Type string
}

func (s ByMessageType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
