package server

import (
	"invest-service/configs"
	"invest-service/internal/server/handlers"
	"invest-service/internal/server/middleware"
	"invest-service/internal/server/repository"
	"invest-service/internal/server/service"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	router *gin.Engine
	config *configs.Config
	log    *zap.Logger
}

// NewApp wires repositories, services and handlers. The database, redis
// and kafka handles are owned by the caller; the app never opens
// connections on its own.
func NewApp(cfg *configs.Config, db *gorm.DB, redisClient *redis.Client, producer sarama.SyncProducer, log *zap.Logger) *App {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)
	assistanceRepo := repository.NewAssistanceRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpire)
	communityService := service.NewCommunityService(communityRepo)
	publisher := service.NewVotePublisher(producer, cfg.KafkaTopic, log)
	votingService := service.NewVotingService(userRepo, voteRepo, proposalRepo, suggestionRepo, assistanceRepo, publisher)
	proposalService := service.NewProposalService(proposalRepo)
	suggestionService := service.NewSuggestionService(suggestionRepo)
	assistanceService := service.NewAssistanceService(assistanceRepo)
	eventService := service.NewEventService(eventRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	communityHandler := handlers.NewCommunityHandler(communityService)
	proposalHandler := handlers.NewProposalHandler(proposalService, votingService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, votingService)
	assistanceHandler := handlers.NewAssistanceHandler(assistanceService, votingService)
	eventHandler := handlers.NewEventHandler(eventService)

	rateLimit := middleware.NewRateLimitMiddleware(redisClient)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		gin.Recovery(),
		middleware.CORS(),
	)

	SetupRoutes(router, cfg.JWTSecret, rateLimit,
		authHandler, communityHandler,
		proposalHandler, suggestionHandler, assistanceHandler,
		eventHandler,
	)

	return &App{
		router: router,
		config: cfg,
		log:    log,
	}
}

func (a *App) Run() error {
	a.log.Info("starting server", zap.String("port", a.config.Port))
	return a.router.Run(":" + a.config.Port)
}
