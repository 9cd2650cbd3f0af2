// Package main is the entry point for the intentbot reference backend.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/intentbot/chat-client/internal/api/handlers"
	"github.com/intentbot/chat-client/internal/api/middleware"
	"github.com/intentbot/chat-client/internal/api/routes"
	"github.com/intentbot/chat-client/internal/config"
	"github.com/intentbot/chat-client/internal/core/store"
	memorystore "github.com/intentbot/chat-client/internal/infrastructure/store/memory"
	redisstore "github.com/intentbot/chat-client/internal/infrastructure/store/redis"
	"github.com/intentbot/chat-client/internal/services/rules"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg.Log)

	// Initialize history store using factory pattern
	historyStore, err := createStore(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize history store")
	}
	defer historyStore.Close()

	// Initialize rule engine
	engine := rules.NewEngine(cfg.Rules.Path)
	log.Info().
		Str("rules_file", cfg.Rules.Path).
		Int("intents", engine.RulesLoaded()).
		Msg("rule engine ready")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(historyStore, engine)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// setupLogging configures the global zerolog logger.
func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// createStore creates a history store based on the configuration.
func createStore(cfg config.StoreConfig) (store.Store, error) {
	storeType := store.Type(cfg.Type)

	switch storeType {
	case store.TypeRedis:
		return redisstore.NewStore(redisstore.Config{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Password: cfg.Password,
			DB:       cfg.DB,
			TTL:      cfg.TTL,
		})
	case store.TypeMemory:
		return memorystore.NewStore(), nil
	default:
		log.Fatal().Str("type", cfg.Type).Msg("unsupported store type")
		return nil, nil
	}
}

// setupRouter creates and configures the Gin router.
func setupRouter(historyStore store.Store, engine *rules.Engine) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()

	// Create handlers
	chatHandler := handlers.NewChatHandler(historyStore, engine)
	healthHandler := handlers.NewHealthHandler(historyStore, engine)

	// Setup routes
	routesCfg := &routes.Config{
		ChatHandler:   chatHandler,
		HealthHandler: healthHandler,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, middleware.DefaultCORSConfig())

	return router
}
