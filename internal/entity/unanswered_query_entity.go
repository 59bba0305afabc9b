package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnansweredQuery records an utterance that fell through every rule and
// every FAQ entry. Curators mine these to grow the FAQ catalog.
type UnansweredQuery struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Utterance     string
	Context       map[string]interface{}
	CreatedAt     time.Time
}
