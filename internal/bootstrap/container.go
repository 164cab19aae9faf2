package bootstrap

import (
	"context"
	"fmt"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/controller"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/internal/repository/memory"
	"study-assistant-be/internal/repository/redisstore"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/internal/service"
	"study-assistant-be/internal/websocket"
	"study-assistant-be/pkg/events"
	"study-assistant-be/pkg/llm/factory"
	pktNats "study-assistant-be/pkg/nats"
	"study-assistant-be/pkg/tutor"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	StudyController   controller.IStudyController
	ThemeController   controller.IThemeController
	ProfileController controller.IProfileController

	// Background Services (run by main.go)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub     *websocket.Hub
	WebSocketHandler *websocket.Handler

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("BOOTSTRAP", "Redis unreachable, continuing without it", map[string]interface{}{"error": err.Error()})
			_ = rdb.Close()
			rdb = nil
		} else {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	var preferences contract.VisitorPreferenceRepository
	if cfg.App.VisitorStore == "redis" && rdb != nil {
		preferences = redisstore.NewVisitorPreferenceRepository(rdb, memory.VisitorPreferenceTTL)
	} else {
		preferences = memory.NewVisitorPreferenceRepository()
	}

	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)
	c.WebSocketHandler = websocket.NewHandler(c.WebSocketHub, cfg.App.JwtSecret)

	// 3. Event Bus
	var publisherService service.IPublisherService
	if cfg.Events.Enabled {
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
		c.closers = append(c.closers, func() { _ = pubSub.Close() })

		var forwarder events.Publisher
		if cfg.Events.NatsURL != "" {
			natsPub, err := pktNats.NewPublisher(ctx, cfg.Events.NatsURL)
			if err != nil {
				sysLogger.Warn("BOOTSTRAP", "NATS unavailable, chat events stay in process", map[string]interface{}{"error": err.Error()})
			} else {
				forwarder = natsPub
				c.closers = append(c.closers, natsPub.Close)
			}
		}

		publisherService = service.NewPublisherService(cfg.Events.Topic, pubSub)
		c.ConsumerService = service.NewConsumerService(pubSub, cfg.Events.Topic, forwarder, c.WebSocketHub, sysLogger)
	}

	// 4. Tutor
	engine, err := newEngine(cfg.Tutor, sysLogger)
	if err != nil {
		c.Close()
		return nil, err
	}

	// 5. Services
	themeService := service.NewThemeService(preferences)
	chatbotService := service.NewChatbotService(uowFactory, engine, publisherService, sysLogger)
	studyService := service.NewStudyService(uowFactory, themeService)
	profileService := service.NewProfileService(uowFactory)

	// 6. Controllers
	c.ChatbotController = controller.NewChatbotController(chatbotService, cfg.App.JwtSecret, cfg.App.SidebarLimit)
	c.StudyController = controller.NewStudyController(studyService, cfg.App.JwtSecret)
	c.ThemeController = controller.NewThemeController(themeService)
	c.ProfileController = controller.NewProfileController(profileService, cfg.App.JwtSecret)

	return c, nil
}

func newEngine(cfg config.TutorConfig, sysLogger logger.ILogger) (*tutor.Engine, error) {
	if cfg.Provider == "" || cfg.Provider == "keyword" {
		sysLogger.Info("BOOTSTRAP", "Using keyword tutor", nil)
		return tutor.NewKeywordEngine(sysLogger), nil
	}

	provider, err := factory.NewLLMProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize tutor provider: %w", err)
	}
	sysLogger.Info("BOOTSTRAP", "Using LLM tutor", map[string]interface{}{"provider": cfg.Provider, "model": cfg.Model})
	return tutor.NewEngine(tutor.NewLLMResponder(provider), sysLogger), nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
