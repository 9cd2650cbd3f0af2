// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Backend BackendConfig
	Chat    ChatConfig
	Server  ServerConfig
	Store   StoreConfig
	Rules   RulesConfig
	Prefs   PrefsConfig
	Log     LogConfig
}

// BackendConfig holds the chat backend connection settings used by the
// gateway client.
type BackendConfig struct {
	// URL is the base URL of the chat backend, without the API prefix.
	URL string
	// Timeout bounds each request. Zero disables the client-side timeout.
	Timeout time.Duration
}

// ChatConfig holds client-side conversation settings.
type ChatConfig struct {
	// TypingDelay is the minimum visible typing-indicator duration applied
	// after each backend reply resolves.
	TypingDelay time.Duration
	// HistoryLimit is the maximum number of messages fetched per history request.
	HistoryLimit int
	// MaxMessageLength is the soft cap on user input length.
	MaxMessageLength int
}

// ServerConfig holds settings for the reference backend server.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig holds history store configuration for the reference backend.
type StoreConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// RulesConfig holds the rule engine configuration.
type RulesConfig struct {
	Path string
}

// PrefsConfig holds the local preferences file location.
type PrefsConfig struct {
	Path string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Backend: BackendConfig{
			URL:     getEnv("CHATBOT_API_URL", "http://localhost:8000"),
			Timeout: time.Duration(getEnvAsInt("CHATBOT_API_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Chat: ChatConfig{
			TypingDelay:      time.Duration(getEnvAsInt("CHAT_TYPING_DELAY_MS", 500)) * time.Millisecond,
			HistoryLimit:     getEnvAsInt("CHAT_HISTORY_LIMIT", 50),
			MaxMessageLength: getEnvAsInt("CHAT_MAX_MESSAGE_LENGTH", 1000),
		},
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8000),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Store: StoreConfig{
			Type:     getEnv("STORE_TYPE", "memory"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("STORE_TTL_SECONDS", 0)) * time.Second,
		},
		Rules: RulesConfig{
			Path: getEnv("RULES_FILE", "rules/chatbot_rules.yaml"),
		},
		Prefs: PrefsConfig{
			Path: getEnv("PREFS_FILE", defaultPrefsPath()),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	return cfg, nil
}

// defaultPrefsPath places the preferences file under the user config dir,
// falling back to the working directory when it cannot be resolved.
func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".chatctl-prefs.json"
	}
	return dir + "/chatctl/prefs.json"
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
