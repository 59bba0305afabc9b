package model

import (
	"time"

	"github.com/google/uuid"
)

type Faq struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string    `gorm:"type:varchar(500);not null"`
	Answer    string    `gorm:"type:text;not null"`
	Keywords  string    `gorm:"type:text;not null"` // comma-delimited, normalized by the matcher
	Category  string    `gorm:"type:varchar(100)"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Faq) TableName() string {
	return "faqs"
}
