package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UnansweredQuery struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Utterance     string         `gorm:"type:text;not null"`
	Context       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
}

func (UnansweredQuery) TableName() string {
	return "unanswered_queries"
}
