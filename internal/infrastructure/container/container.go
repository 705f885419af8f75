package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/tishinatyt/meetus/internal/config"
	delivery "github.com/tishinatyt/meetus/internal/delivery/http"
	"github.com/tishinatyt/meetus/internal/delivery/http/handler"
	"github.com/tishinatyt/meetus/internal/gateway"
	"github.com/tishinatyt/meetus/internal/infrastructure/database"
	"github.com/tishinatyt/meetus/internal/infrastructure/gemini"
	"github.com/tishinatyt/meetus/internal/infrastructure/server"
	"github.com/tishinatyt/meetus/internal/repository"
	"github.com/tishinatyt/meetus/internal/repository/memory"
	"github.com/tishinatyt/meetus/internal/repository/postgres"
	"github.com/tishinatyt/meetus/internal/repository/redisstore"
	"github.com/tishinatyt/meetus/internal/usecase/coordinator"
	"github.com/tishinatyt/meetus/internal/usecase/explore"
	"github.com/tishinatyt/meetus/internal/usecase/meeting"
	"github.com/tishinatyt/meetus/internal/usecase/onboarding"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// Venue catalog: static mock list by default, Postgres when configured
	var venueCatalog repository.VenueCatalog
	if cfg.Storage.VenueSource == "postgres" {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		venueCatalog = postgres.NewVenueRepository(db)
	} else {
		venueCatalog = memory.NewVenueCatalog()
	}

	// Session store: in-process by default, Redis when configured
	var sessionRepo repository.SessionRepository
	if cfg.Storage.SessionStore == "redis" {
		redisClient, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		sessionRepo = redisstore.NewSessionRepository(redisClient)
	} else {
		sessionRepo = memory.NewSessionRepository()
	}

	// Gemini gateway
	geminiClient, err := gemini.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}
	c.Gemini = geminiClient
	var textGen gateway.TextGenerator = geminiClient

	// Initialize use cases
	onboardingUseCase := onboarding.NewOnboardingUseCase(sessionRepo, textGen)
	meetingUseCase := meeting.NewMeetingUseCase(sessionRepo, venueCatalog)
	coordinatorUseCase := coordinator.NewCoordinatorUseCase(
		sessionRepo,
		textGen,
		coordinator.NewTimerScheduler(),
	)
	exploreUseCase := explore.NewExploreUseCase(venueCatalog)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(onboardingUseCase)
	onboardingHandler := handler.NewOnboardingHandler(onboardingUseCase, meetingUseCase)
	chatHandler := handler.NewChatHandler(coordinatorUseCase, onboardingUseCase, meetingUseCase)
	venueHandler := handler.NewVenueHandler(exploreUseCase)

	// Initialize router
	router := delivery.NewRouter(
		sessionHandler,
		onboardingHandler,
		chatHandler,
		venueHandler,
	)

	ginRouter := router.Setup()

	// Initialize server
	c.Server = server.NewServer(&cfg.Server, ginRouter)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
