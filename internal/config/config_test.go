package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentbot/chat-client/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Chat.TypingDelay)
	assert.Equal(t, 50, cfg.Chat.HistoryLimit)
	assert.Equal(t, 1000, cfg.Chat.MaxMessageLength)
	assert.Equal(t, "memory", cfg.Store.Type)
	assert.Equal(t, "rules/chatbot_rules.yaml", cfg.Rules.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Prefs.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	// Arrange
	t.Setenv("CHATBOT_API_URL", "http://backend:9000")
	t.Setenv("CHAT_TYPING_DELAY_MS", "250")
	t.Setenv("STORE_TYPE", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERVER_PORT", "8080")

	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.Backend.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.Chat.TypingDelay)
	assert.Equal(t, "redis", cfg.Store.Type)
	assert.Equal(t, "cache", cfg.Store.Host)
	assert.Equal(t, 3, cfg.Store.DB)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	// Arrange
	t.Setenv("CHAT_TYPING_DELAY_MS", "not-a-number")

	// Act
	cfg, err := config.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Chat.TypingDelay)
}

func TestServerConfig_Address(t *testing.T) {
	// Arrange
	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 8000}

	// Act & Assert
	assert.Equal(t, "127.0.0.1:8000", cfg.Address())
}
