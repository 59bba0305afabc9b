package mapper

import (
	"encoding/json"
	"time"

	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: s.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Type:          msg.Type,
		Content:       msg.Content,
		IsRead:        msg.IsRead,
		CreatedAt:     msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Type:          msg.Type,
		Content:       msg.Content,
		IsRead:        msg.IsRead,
		CreatedAt:     msg.CreatedAt,
	}
}

// Unanswered Query Mappers

func (m *ChatMapper) UnansweredQueryToEntity(q *model.UnansweredQuery) *entity.UnansweredQuery {
	if q == nil {
		return nil
	}

	var context map[string]interface{}
	if len(q.Context) > 0 {
		// Best effort: a malformed blob yields a nil context, not an error
		_ = json.Unmarshal(q.Context, &context)
	}

	return &entity.UnansweredQuery{
		Id:            q.Id,
		ChatSessionId: q.ChatSessionId,
		Utterance:     q.Utterance,
		Context:       context,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *ChatMapper) UnansweredQueryToModel(q *entity.UnansweredQuery) *model.UnansweredQuery {
	if q == nil {
		return nil
	}

	var context datatypes.JSON
	if q.Context != nil {
		if raw, err := json.Marshal(q.Context); err == nil {
			context = raw
		}
	}

	return &model.UnansweredQuery{
		Id:            q.Id,
		ChatSessionId: q.ChatSessionId,
		Utterance:     q.Utterance,
		Context:       context,
		CreatedAt:     q.CreatedAt,
	}
}
