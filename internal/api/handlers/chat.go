// Package handlers provides HTTP handlers for the reference backend API.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intentbot/chat-client/internal/api/dto"
	"github.com/intentbot/chat-client/internal/api/middleware"
	"github.com/intentbot/chat-client/internal/core/store"
	"github.com/intentbot/chat-client/internal/domain/errors"
	"github.com/intentbot/chat-client/internal/services/rules"
)

// defaultHistoryLimit caps history responses when no limit is given.
const defaultHistoryLimit = 50

// ChatHandler handles the conversation endpoints.
type ChatHandler struct {
	store  store.Store
	engine *rules.Engine
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(s store.Store, engine *rules.Engine) *ChatHandler {
	return &ChatHandler{
		store:  s,
		engine: engine,
	}
}

// CreateSession handles POST /session.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.store.CreateSession(ctx)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to create session", err))
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	})
}

// Chat handles POST /chat: stores the user message, runs it through the rule
// engine, stores the reply, and records an analytics sample.
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("Invalid chat request", err.Error()))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		id, err := h.store.CreateSession(ctx)
		if err != nil {
			middleware.HandleError(c, errors.NewInternalError("Failed to create session", err))
			return
		}
		sessionID = id
	} else {
		exists, err := h.store.SessionExists(ctx, sessionID)
		if err != nil {
			middleware.HandleError(c, errors.NewInternalError("Failed to look up session", err))
			return
		}
		if !exists {
			middleware.HandleError(c, errors.NewNotFoundError("session", sessionID))
			return
		}
	}

	if _, err := h.store.AppendMessage(ctx, sessionID, store.Record{
		Message:   req.Message,
		IsUser:    true,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to store message", err))
		return
	}

	result := h.engine.Process(req.Message)

	replyTime := time.Now().UTC()
	if _, err := h.store.AppendMessage(ctx, sessionID, store.Record{
		Message:   result.Response,
		IsUser:    false,
		Intent:    result.Intent,
		Sentiment: result.Sentiment,
		Timestamp: replyTime,
	}); err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to store message", err))
		return
	}

	if err := h.store.RecordInteraction(ctx, sessionID, store.Interaction{
		Intent:         result.Intent,
		MatchedPattern: result.MatchedPattern,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}); err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to record analytics", err))
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{
		Response:   result.Response,
		SessionID:  sessionID,
		Intent:     result.Intent,
		Sentiment:  result.Sentiment,
		Confidence: result.Confidence,
		Timestamp:  replyTime,
	})
}

// GetHistory handles GET /history/:sessionId.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sessionId")

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.HandleError(c, errors.NewValidationError("Invalid limit parameter", raw))
			return
		}
		limit = parsed
	}

	records, err := h.store.History(ctx, sessionID, limit)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to retrieve conversation history", err))
		return
	}

	messages := make([]dto.MessageRecord, 0, len(records))
	for _, rec := range records {
		messages = append(messages, dto.MessageRecord{
			ID:        rec.ID,
			Message:   rec.Message,
			IsUser:    rec.IsUser,
			Intent:    rec.Intent,
			Sentiment: rec.Sentiment,
			Timestamp: rec.Timestamp,
		})
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		SessionID:     sessionID,
		Messages:      messages,
		TotalMessages: len(messages),
	})
}

// ClearHistory handles DELETE /history/:sessionId. Clearing an empty or
// unknown session succeeds, making the operation idempotent.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sessionId")

	if err := h.store.ClearHistory(ctx, sessionID); err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to clear conversation history", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAnalytics handles GET /analytics/:sessionId.
func (h *ChatHandler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sessionId")

	interactions, err := h.store.Interactions(ctx, sessionID)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to retrieve analytics", err))
		return
	}

	resp := dto.AnalyticsResponse{
		SessionID:          sessionID,
		IntentDistribution: make(map[string]int),
	}

	if len(interactions) > 0 {
		var totalMs int64
		for _, in := range interactions {
			totalMs += in.ResponseTimeMs

			intent := in.Intent
			if intent == "" {
				intent = "unknown"
			}
			resp.IntentDistribution[intent]++
		}
		resp.TotalInteractions = len(interactions)
		resp.AvgResponseTimeMs = float64(totalMs) / float64(len(interactions))
	}

	c.JSON(http.StatusOK, resp)
}

// GetIntents handles GET /intents.
func (h *ChatHandler) GetIntents(c *gin.Context) {
	intents := h.engine.Intents()

	c.JSON(http.StatusOK, dto.IntentsResponse{
		Intents: intents,
		Total:   len(intents),
	})
}

// ReloadRules handles POST /reload-rules.
func (h *ChatHandler) ReloadRules(c *gin.Context) {
	if err := h.engine.Reload(); err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to reload rules", err))
		return
	}

	c.JSON(http.StatusOK, dto.ReloadRulesResponse{
		Message:   "Rules reloaded successfully",
		Timestamp: time.Now().UTC(),
	})
}
