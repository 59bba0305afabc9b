package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFaqRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required"`
	Keywords string `json:"keywords" validate:"required"` // comma-delimited
	Category string `json:"category" validate:"max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateFaqRequest struct {
	Id       uuid.UUID `json:"-"`
	Question string    `json:"question" validate:"required,max=500"`
	Answer   string    `json:"answer" validate:"required"`
	Keywords string    `json:"keywords" validate:"required"`
	Category string    `json:"category" validate:"max=100"`
	IsActive bool      `json:"is_active"`
}

type FaqResponse struct {
	Id        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Keywords  string     `json:"keywords"`
	Category  string     `json:"category"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
