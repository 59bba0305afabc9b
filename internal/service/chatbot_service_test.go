package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"crafty-marketplace-be/internal/constant"
	"crafty-marketplace-be/internal/dto"
	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/pkg/serverutils"
	"crafty-marketplace-be/internal/repository/contract"
	"crafty-marketplace-be/internal/repository/specification"
	"crafty-marketplace-be/internal/repository/unitofwork"
	"crafty-marketplace-be/pkg/bot"
	"crafty-marketplace-be/pkg/bot/faq"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory unit of work. The repos interpret the specification structs
// the service actually uses (ByID, ByChatSessionID, OrderBy, Limit).

type fakeStore struct {
	sessions   map[uuid.UUID]*entity.ChatSession
	messages   []*entity.ChatMessage
	users      map[uuid.UUID]*entity.User
	artists    map[uuid.UUID]*entity.Artist // keyed by user id
	unanswered []*entity.UnansweredQuery
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[uuid.UUID]*entity.ChatSession),
		users:    make(map[uuid.UUID]*entity.User),
		artists:  make(map[uuid.UUID]*entity.Artist),
	}
}

type fakeUowFactory struct{ store *fakeStore }

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct{ store *fakeStore }

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}
func (u *fakeUow) FaqRepository() contract.FaqRepository { return nil }
func (u *fakeUow) ProductRepository() contract.ProductRepository {
	return nil
}
func (u *fakeUow) ArtistRepository() contract.ArtistRepository {
	return &fakeArtistRepo{store: u.store}
}
func (u *fakeUow) UnansweredQueryRepository() contract.UnansweredQueryRepository {
	return &fakeUnansweredRepo{store: u.store}
}

type fakeSessionRepo struct{ store *fakeStore }

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.ChatSession) error {
	cp := *s
	r.store.sessions[s.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *entity.ChatSession) error {
	cp := *s
	r.store.sessions[s.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, sp := range specs {
		if byID, ok := sp.(specification.ByID); ok {
			if s, found := r.store.sessions[byID.ID]; found {
				cp := *s
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatSession, error) {
	out := make([]*entity.ChatSession, 0, len(r.store.sessions))
	for _, s := range r.store.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.store.sessions)), nil
}

type fakeMessageRepo struct{ store *fakeStore }

func (r *fakeMessageRepo) Create(_ context.Context, m *entity.ChatMessage) error {
	cp := *m
	r.store.messages = append(r.store.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var sessionFilter *uuid.UUID
	desc := false
	limit := 0

	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByChatSessionID:
			id := s.ChatSessionID
			sessionFilter = &id
		case specification.OrderBy:
			desc = s.Desc
		case specification.Limit:
			limit = s.Count
		}
	}

	var out []*entity.ChatMessage
	for _, m := range r.store.messages {
		if sessionFilter != nil && m.ChatSessionId != *sessionFilter {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMessageRepo) DeleteByChatSessionId(_ context.Context, sessionId uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *fakeMessageRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.store.messages)), nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, sp := range specs {
		if byID, ok := sp.(specification.ByID); ok {
			if u, found := r.store.users[byID.ID]; found {
				cp := *u
				return &cp, nil
			}
		}
	}
	return nil, nil
}

type fakeArtistRepo struct{ store *fakeStore }

func (r *fakeArtistRepo) FindOne(context.Context, ...specification.Specification) (*entity.Artist, error) {
	return nil, nil
}

func (r *fakeArtistRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Artist, error) {
	return nil, nil
}

func (r *fakeArtistRepo) FindByUserId(_ context.Context, userId uuid.UUID) (*entity.Artist, error) {
	if a, found := r.store.artists[userId]; found {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

type fakeUnansweredRepo struct{ store *fakeStore }

func (r *fakeUnansweredRepo) Create(_ context.Context, q *entity.UnansweredQuery) error {
	cp := *q
	r.store.unanswered = append(r.store.unanswered, &cp)
	return nil
}

func (r *fakeUnansweredRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.UnansweredQuery, error) {
	return r.store.unanswered, nil
}

// Bot collaborators.

type stubCatalog struct{}

func (stubCatalog) SearchProducts(context.Context, string, int) ([]bot.ProductHit, error) {
	return nil, nil
}

func (stubCatalog) SearchArtists(context.Context, string, int) ([]bot.ArtistHit, error) {
	return nil, nil
}

type stubFAQSource struct{ entries []faq.Entry }

func (s stubFAQSource) ActiveEntries(context.Context) ([]faq.Entry, error) {
	return s.entries, nil
}

type firstSelector struct{}

func (firstSelector) Pick(int) int { return 0 }

type capturePublisher struct{ payloads [][]byte }

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestService(store *fakeStore) (IChatbotService, *capturePublisher) {
	router := bot.NewRouter(stubCatalog{}, stubFAQSource{}, firstSelector{})
	publisher := &capturePublisher{}
	svc := NewChatbotService(&fakeUowFactory{store: store}, router, publisher, nopLogger{})
	return svc, publisher
}

func TestSendMessageCreatesSessionAndTranscript(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	res, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	require.NotNil(t, res)

	sessionId, err := uuid.Parse(res.SessionId)
	require.NoError(t, err)
	require.Contains(t, store.sessions, sessionId)
	assert.True(t, store.sessions[sessionId].IsActive)
	assert.Nil(t, store.sessions[sessionId].UserId)

	require.Len(t, store.messages, 2)
	userMsg, botMsg := store.messages[0], store.messages[1]
	assert.Equal(t, constant.ChatMessageTypeUser, userMsg.Type)
	assert.Equal(t, "hello", userMsg.Content)
	assert.Equal(t, constant.ChatMessageTypeBot, botMsg.Type)
	assert.Equal(t, res.Response, botMsg.Content)
	assert.True(t, botMsg.CreatedAt.After(userMsg.CreatedAt), "bot turn must order after user turn")
	assert.True(t, userMsg.CreatedAt.Compare(store.sessions[sessionId].CreatedAt) >= 0)
}

func TestSendMessageRejectsBlankMessage(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	for _, msg := range []string{"", "   ", "\t\n"} {
		_, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: msg})
		var appErr *serverutils.AppError
		require.True(t, errors.As(err, &appErr), "message %q should fail validation", msg)
		assert.Equal(t, 400, appErr.Code)
	}
}

func TestSendMessageReusesExistingSession(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	first, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)

	second, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{
		Message:   "what can you do",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)

	assert.Equal(t, first.SessionId, second.SessionId)
	assert.Len(t, store.sessions, 1)
	assert.Len(t, store.messages, 4)
}

func TestSendMessageStartsFreshOnUnknownSession(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	tests := []string{uuid.NewString(), "not-a-uuid"}
	for _, stale := range tests {
		res, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{
			Message:   "hello",
			SessionId: stale,
		})
		require.NoError(t, err)
		assert.NotEqual(t, stale, res.SessionId)
	}
	assert.Len(t, store.sessions, 2)
}

func TestSendMessageTimestampsStayOrderedAcrossSends(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	first, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{
		Message:   "hello",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)

	// Back-to-back sends on one session: every transcript entry must
	// order strictly after the previous one, so the second user turn
	// never lands before the first bot reply.
	require.Len(t, store.messages, 4)
	for i := 1; i < len(store.messages); i++ {
		assert.True(t, store.messages[i].CreatedAt.After(store.messages[i-1].CreatedAt),
			"message %d not strictly after message %d", i, i-1)
	}
}

func TestSendMessagePersonalizesForAuthenticatedArtist(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	store.users[userId] = &entity.User{Id: userId, Username: "amina01", FirstName: "Amina"}
	store.artists[userId] = &entity.Artist{Id: uuid.New(), UserId: userId, Name: "Amina"}

	svc, _ := newTestService(store)

	res, err := svc.SendMessage(context.Background(), &userId, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Contains(t, res.Response, "Hello Amina!")
	assert.Contains(t, res.Response, "As an artist")

	sessionId, err := uuid.Parse(res.SessionId)
	require.NoError(t, err)
	require.NotNil(t, store.sessions[sessionId].UserId)
	assert.Equal(t, userId, *store.sessions[sessionId].UserId)
}

func TestSendMessagePublishesUnansweredUtterance(t *testing.T) {
	store := newFakeStore()
	svc, publisher := newTestService(store)

	res, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "xyzzy plugh"})
	require.NoError(t, err)

	require.Len(t, publisher.payloads, 1)
	var event dto.PublishUnansweredMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
	assert.Equal(t, res.SessionId, event.ChatSessionId.String())
	assert.Equal(t, "xyzzy plugh", event.Utterance)

	// Routed turns must not publish.
	_, err = svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Len(t, publisher.payloads, 1)
}

func TestGetHistoryUnknownSession(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	for _, id := range []string{uuid.NewString(), "garbage"} {
		_, err := svc.GetHistory(context.Background(), id)
		var appErr *serverutils.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	}
}

func TestGetHistoryMostRecentFirstAndIdempotent(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	res, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{
		Message:   "what can you do",
		SessionId: res.SessionId,
	})
	require.NoError(t, err)

	first, err := svc.GetHistory(context.Background(), res.SessionId)
	require.NoError(t, err)
	require.Len(t, first.Messages, 4)

	for i := 1; i < len(first.Messages); i++ {
		assert.False(t, first.Messages[i-1].Timestamp.Before(first.Messages[i].Timestamp),
			"history must be most-recent-first")
	}
	assert.Equal(t, constant.ChatMessageTypeBot, first.Messages[0].Type)
	assert.Equal(t, "hello", first.Messages[len(first.Messages)-1].Content)

	second, err := svc.GetHistory(context.Background(), res.SessionId)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClearHistoryKeepsSessionAlive(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	res, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)
	sessionId, _ := uuid.Parse(res.SessionId)

	require.NoError(t, svc.ClearHistory(context.Background(), &dto.ClearHistoryRequest{SessionId: res.SessionId}))

	history, err := svc.GetHistory(context.Background(), res.SessionId)
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
	assert.Contains(t, store.sessions, sessionId)

	// The cleared session still accepts new turns.
	again, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{
		Message:   "hello",
		SessionId: res.SessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, res.SessionId, again.SessionId)
}

func TestClearHistoryUnknownSession(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	err := svc.ClearHistory(context.Background(), &dto.ClearHistoryRequest{SessionId: uuid.NewString()})
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}
