package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invest-service/internal/server/handlers"
	"invest-service/internal/server/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	rateLimit *middleware.RateLimitMiddleware,
	authHandler *handlers.AuthHandler,
	communityHandler *handlers.CommunityHandler,
	proposalHandler *handlers.ProposalHandler,
	suggestionHandler *handlers.SuggestionHandler,
	assistanceHandler *handlers.AssistanceHandler,
	eventHandler *handlers.EventHandler,
) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		auth := public.Group("/auth")
		auth.Use(rateLimit.RateLimitIP(20, time.Minute))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		public.GET("/communities", communityHandler.ListCommunities)

		public.GET("/proposals", proposalHandler.ListProposals)
		public.GET("/proposals/votes", proposalHandler.Votes)

		public.GET("/suggestions", suggestionHandler.ListSuggestions)

		public.GET("/assistance", assistanceHandler.ListRequests)
		public.GET("/assistance/votes", assistanceHandler.Votes)

		public.GET("/events", eventHandler.ListEvents)
	}

	// Protected routes (require JWT authentication)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		protected.POST("/communities", communityHandler.CreateCommunity)

		protected.POST("/proposals", proposalHandler.CreateProposal)
		protected.POST("/proposals/:id/vote", proposalHandler.CastVote)
		protected.PUT("/proposals/:id/status", proposalHandler.UpdateStatus)

		protected.POST("/suggestions", suggestionHandler.CreateSuggestion)
		protected.POST("/suggestions/:id/vote", suggestionHandler.CastVote)
		protected.PUT("/suggestions/:id/status", suggestionHandler.UpdateStatus)

		protected.POST("/assistance", assistanceHandler.CreateRequest)
		protected.POST("/assistance/:id/vote", assistanceHandler.CastVote)
		protected.PUT("/assistance/:id/status", assistanceHandler.UpdateStatus)

		protected.POST("/events", eventHandler.CreateEvent)
		protected.POST("/events/:id/rsvp", eventHandler.Rsvp)
	}
}
