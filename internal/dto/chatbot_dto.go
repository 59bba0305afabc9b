package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"` // opaque; absent or unknown means a fresh session
}

type SendMessageResponse struct {
	Response  string    `json:"response"`
	SessionId string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryMessageResponse struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type GetHistoryResponse struct {
	Messages  []HistoryMessageResponse `json:"messages"`
	SessionId string                   `json:"session_id"`
}

type ClearHistoryRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

// PublishUnansweredMessage is the payload on the unanswered-utterance
// topic, consumed into the curation table.
type PublishUnansweredMessage struct {
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	Utterance     string    `json:"utterance"`
	OccurredAt    time.Time `json:"occurred_at"`
}
