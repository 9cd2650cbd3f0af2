// Package routes defines the HTTP routes for the reference backend.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/intentbot/chat-client/internal/api/handlers"
	"github.com/intentbot/chat-client/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	ChatHandler   *handlers.ChatHandler
	HealthHandler *handlers.HealthHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", cfg.HealthHandler.Health)

		v1.POST("/session", cfg.ChatHandler.CreateSession)
		v1.POST("/chat", cfg.ChatHandler.Chat)

		v1.GET("/history/:sessionId", cfg.ChatHandler.GetHistory)
		v1.DELETE("/history/:sessionId", cfg.ChatHandler.ClearHistory)

		v1.GET("/analytics/:sessionId", cfg.ChatHandler.GetAnalytics)

		v1.GET("/intents", cfg.ChatHandler.GetIntents)
		v1.POST("/reload-rules", cfg.ChatHandler.ReloadRules)
	}

	r.NoRoute(middleware.NotFound())
}

// SetupWithMiddleware sets up routes with the common middleware stack.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, corsCfg middleware.CORSConfig) {
	r.Use(middleware.NewCORSMiddleware(corsCfg))
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())

	Setup(r, cfg)
}
