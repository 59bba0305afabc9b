package entity

import (
	"time"

	"github.com/google/uuid"
)

// FaqEntry is an administered question/answer record. Keywords holds
// the raw comma-delimited string as stored; normalization happens in
// the matcher (faq.KeywordList).
type FaqEntry struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	Keywords  string
	Category  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
