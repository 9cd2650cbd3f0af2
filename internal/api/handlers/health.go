package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intentbot/chat-client/internal/api/dto"
	"github.com/intentbot/chat-client/internal/core/store"
	"github.com/intentbot/chat-client/internal/services/rules"
)

// Version is the reference backend version reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	store     store.Store
	engine    *rules.Engine
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store, engine *rules.Engine) *HealthHandler {
	return &HealthHandler{
		store:     s,
		engine:    engine,
		startTime: time.Now(),
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	storeStatus := "connected"
	code := http.StatusOK

	if err := h.store.Ping(c.Request.Context()); err != nil {
		status = "unhealthy"
		storeStatus = "unavailable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, dto.HealthResponse{
		Status:      status,
		Version:     Version,
		Uptime:      time.Since(h.startTime).Seconds(),
		Store:       storeStatus,
		RulesLoaded: h.engine.RulesLoaded(),
	})
}
