package model

import (
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Bio          string    `gorm:"type:text"`
	Availability bool      `gorm:"not null;default:true"` // open for commissions
	Featured     bool      `gorm:"not null;default:false;index"`
	Website      string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Artist) TableName() string {
	return "artists"
}
