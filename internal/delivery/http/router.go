package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tishinatyt/meetus/internal/delivery/http/handler"
)

type Router struct {
	sessionHandler    *handler.SessionHandler
	onboardingHandler *handler.OnboardingHandler
	chatHandler       *handler.ChatHandler
	venueHandler      *handler.VenueHandler
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	onboardingHandler *handler.OnboardingHandler,
	chatHandler *handler.ChatHandler,
	venueHandler *handler.VenueHandler,
) *Router {
	return &Router{
		sessionHandler:    sessionHandler,
		onboardingHandler: onboardingHandler,
		chatHandler:       chatHandler,
		venueHandler:      venueHandler,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	registerValidators()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", r.sessionHandler.CreateSession)
			sessions.GET("/:session_id/profile", r.sessionHandler.GetProfile)
			sessions.GET("/:session_id/meeting", r.chatHandler.GetMeeting)

			onboarding := sessions.Group("/:session_id/onboarding")
			{
				onboarding.POST("/start", r.onboardingHandler.Start)
				onboarding.POST("/answer", r.onboardingHandler.Answer)
			}

			chat := sessions.Group("/:session_id/chat")
			{
				chat.POST("/join", r.chatHandler.Join)
				chat.POST("/messages", r.chatHandler.SendMessage)
				chat.GET("/messages", r.chatHandler.ListMessages)
				chat.POST("/payment", r.chatHandler.ConfirmPayment)
			}
		}

		// Venue explorer (public, no session needed)
		v1.GET("/venues", r.venueHandler.ListVenues)
	}

	return router
}

// registerValidators adds the "lang" rule used by session creation.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "ua", "en":
				return true
			}
			return false
		})
	}
}
