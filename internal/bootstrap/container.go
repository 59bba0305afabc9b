package bootstrap

import (
	"time"

	"crafty-marketplace-be/internal/config"
	"crafty-marketplace-be/internal/controller"
	"crafty-marketplace-be/internal/pkg/logger"
	"crafty-marketplace-be/internal/repository/memory"
	"crafty-marketplace-be/internal/repository/unitofwork"
	"crafty-marketplace-be/internal/service"
	"crafty-marketplace-be/pkg/bot"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	FaqController     controller.IFaqController

	// Background services, run by main.go
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus for unanswered-utterance curation
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(pubSub, cfg.Chatbot.UnansweredTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chatbot.UnansweredTopic,
		uowFactory,
		sysLogger,
	)

	// Bot core
	faqCache := memory.NewFaqCache(uowFactory, time.Duration(cfg.Chatbot.FaqCacheTTLMinutes)*time.Minute)
	catalogService := service.NewCatalogService(uowFactory)
	router := bot.NewRouter(catalogService, faqCache, newReplySelector(cfg))

	chatbotService := service.NewChatbotService(uowFactory, router, publisherService, sysLogger)
	faqService := service.NewFaqService(uowFactory, faqCache)

	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		FaqController:     controller.NewFaqController(faqService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}

// newReplySelector picks the default-reply strategy. Rotation exists for
// demo environments where a deterministic cycle reads better than chance
// repeats.
func newReplySelector(cfg *config.Config) bot.ReplySelector {
	if cfg.Chatbot.ReplySelector == "rotate" {
		return &bot.RotatingSelector{}
	}
	return bot.RandomSelector{}
}
