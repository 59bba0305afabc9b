package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Slug          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string    `gorm:"type:text;not null"`
	Price         float64   `gorm:"type:numeric(10,2);not null"`
	DiscountPrice *float64  `gorm:"type:numeric(10,2)"`
	CraftCategory string    `gorm:"type:varchar(20);index"` // code from the static craft taxonomy
	Stock         int       `gorm:"not null;default:1"`
	Available     bool      `gorm:"not null;default:true;index"`
	Featured      bool      `gorm:"not null;default:false"`
	ArtistId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Artist        *Artist   `gorm:"foreignKey:ArtistId"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
