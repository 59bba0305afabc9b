package service

import (
	"context"
	"encoding/json"
	"time"

	"crafty-marketplace-be/internal/dto"
	"crafty-marketplace-be/internal/entity"
	"crafty-marketplace-be/internal/pkg/logger"
	"crafty-marketplace-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService drains the unanswered-utterance topic into the
// curation table, where admins mine new FAQ entries from.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishUnansweredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal unanswered event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads never become valid, do not retry
		return
	}

	query := entity.UnansweredQuery{
		Id:            uuid.New(),
		ChatSessionId: payload.ChatSessionId,
		Utterance:     payload.Utterance,
		Context: map[string]interface{}{
			"occurred_at": payload.OccurredAt.Format(time.RFC3339),
			"source":      "chatbot",
		},
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("ConsumerService", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.UnansweredQueryRepository().Create(ctx, &query); err != nil {
		cs.logger.Error("ConsumerService", "Failed to store unanswered query", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("ConsumerService", "Failed to commit transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Unanswered query recorded", map[string]interface{}{
		"chat_session_id": payload.ChatSessionId.String(),
	})
	msg.Ack()
}
