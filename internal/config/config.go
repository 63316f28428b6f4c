// ABOUTME: Centralized configuration for the chatbot core
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the chatbot pipeline.
type Config struct {
	// Model settings
	Provider    string // "gemini" or "openai"
	GoogleKey   string
	OpenAIKey   string
	Model       string
	Temperature float64
	Timeout     time.Duration

	// Context settings
	HistoryWindow int // most-recent exchanges included per request

	// Data overrides (empty = use built-in defaults)
	CacheFile string
	InfoFile  string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Provider:      getEnv("CHATBOT_PROVIDER", "gemini"),
		GoogleKey:     os.Getenv("GOOGLE_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		Model:         os.Getenv("CHATBOT_MODEL"),
		Temperature:   getEnvFloat("CHATBOT_TEMPERATURE", 0.5),
		Timeout:       getEnvDuration("CHATBOT_TIMEOUT", 60*time.Second),
		HistoryWindow: getEnvInt("CHATBOT_HISTORY_WINDOW", 6),
		CacheFile:     os.Getenv("CHATBOT_CACHE_FILE"),
		InfoFile:      os.Getenv("CHATBOT_INFO_FILE"),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration values are within their allowed ranges.
func (c *Config) Validate() error {
	if c.Provider != "gemini" && c.Provider != "openai" {
		return fmt.Errorf("CHATBOT_PROVIDER must be gemini or openai, got %q", c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("CHATBOT_TEMPERATURE must be 0-1, got %f", c.Temperature)
	}
	if c.HistoryWindow < 1 {
		return fmt.Errorf("CHATBOT_HISTORY_WINDOW must be positive, got %d", c.HistoryWindow)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("CHATBOT_TIMEOUT must be positive, got %v", c.Timeout)
	}
	return nil
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIKey
	}
	return c.GoogleKey
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
