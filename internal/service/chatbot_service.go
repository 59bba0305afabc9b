package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"crafty-marketplace-be/internal/constant"
	"crafty-marketplace-be/internal/dto"
	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/pkg/logger"
	"crafty-marketplace-be/internal/pkg/serverutils"
	"crafty-marketplace-be/internal/repository/specification"
	"crafty-marketplace-be/internal/repository/unitofwork"
	"crafty-marketplace-be/pkg/bot"

	"github.com/google/uuid"
)

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	SendMessage(ctx context.Context, userId *uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context, sessionId string) (*dto.GetHistoryResponse, error)
	ClearHistory(ctx context.Context, request *dto.ClearHistoryRequest) error
}

type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
	router     *bot.Router
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	router *bot.Router,
	publisher IPublisherService,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory: uowFactory,
		router:     router,
		publisher:  publisher,
		logger:     log,
	}
}

// SendMessage routes one utterance and persists both transcript turns.
// A missing or unresolvable session id starts a fresh session rather
// than failing, so stale browser state never blocks the visitor.
func (cs *chatbotService) SendMessage(ctx context.Context, userId *uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	utterance := strings.TrimSpace(request.Message)
	if utterance == "" {
		return nil, serverutils.NewValidationError("Message is required")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := cs.resolveSession(ctx, uow, request.SessionId)
	if err != nil {
		return nil, err
	}

	principal, err := cs.resolvePrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()

	if session == nil {
		session = &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    userId,
			IsActive:  true,
			CreatedAt: now,
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
	}

	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Type:          constant.ChatMessageTypeUser,
		Content:       utterance,
		IsRead:        true,
		CreatedAt:     now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	result, err := cs.router.Route(ctx, utterance, principal)
	if err != nil {
		return nil, err
	}

	// The reply must order strictly after the user turn.
	replyAt := time.Now()
	if !replyAt.After(now) {
		replyAt = now.Add(time.Nanosecond)
	}

	botMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Type:          constant.ChatMessageTypeBot,
		Content:       result.Reply,
		IsRead:        false,
		CreatedAt:     replyAt,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &botMessage); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if result.Intent == bot.IntentDefault {
		cs.publishUnanswered(ctx, session.Id, utterance, botMessage.CreatedAt)
	}

	return &dto.SendMessageResponse{
		Response:  result.Reply,
		SessionId: session.Id.String(),
		Timestamp: botMessage.CreatedAt,
	}, nil
}

// GetHistory returns up to the last 50 transcript entries, most recent
// first.
func (cs *chatbotService) GetHistory(ctx context.Context, sessionId string) (*dto.GetHistoryResponse, error) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, serverutils.NewNotFoundError("Chat session not found")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Chat session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: constant.ChatHistoryLimit},
	)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryMessageResponse, 0, len(messages))
	for _, m := range messages {
		history = append(history, dto.HistoryMessageResponse{
			Type:      m.Type,
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		})
	}

	return &dto.GetHistoryResponse{
		Messages:  history,
		SessionId: session.Id.String(),
	}, nil
}

// ClearHistory empties a session's transcript. The session row survives
// so the same session id keeps working afterwards.
func (cs *chatbotService) ClearHistory(ctx context.Context, request *dto.ClearHistoryRequest) error {
	id, err := uuid.Parse(request.SessionId)
	if err != nil {
		return serverutils.NewNotFoundError("Chat session not found")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if session == nil {
		return serverutils.NewNotFoundError("Chat session not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// resolveSession looks up the caller-supplied session id. Malformed or
// unknown ids resolve to nil, which SendMessage treats as "start fresh".
func (cs *chatbotService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId string) (*entity.ChatSession, error) {
	if sessionId == "" {
		return nil, nil
	}

	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, nil
	}

	return uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: id})
}

// resolvePrincipal builds the routing principal for an authenticated
// caller, nil for anonymous chat.
func (cs *chatbotService) resolvePrincipal(ctx context.Context, uow unitofwork.UnitOfWork, userId *uuid.UUID) (*bot.Principal, error) {
	if userId == nil {
		return nil, nil
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	artist, err := uow.ArtistRepository().FindByUserId(ctx, *userId)
	if err != nil {
		return nil, err
	}

	return &bot.Principal{
		UserId:      user.Id,
		DisplayName: user.DisplayName(),
		IsArtist:    artist != nil,
	}, nil
}

// publishUnanswered emits the fell-through utterance for FAQ curation.
// Best effort: a broken event bus must not fail the chat turn that was
// already committed.
func (cs *chatbotService) publishUnanswered(ctx context.Context, sessionId uuid.UUID, utterance string, occurredAt time.Time) {
	payload, err := json.Marshal(dto.PublishUnansweredMessage{
		ChatSessionId: sessionId,
		Utterance:     utterance,
		OccurredAt:    occurredAt,
	})
	if err != nil {
		cs.logger.Error("ChatbotService", "Failed to marshal unanswered event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := cs.publisher.Publish(ctx, payload); err != nil {
		cs.logger.Error("ChatbotService", "Failed to publish unanswered event", map[string]interface{}{"error": err.Error()})
	}
}
