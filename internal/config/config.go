// ABOUTME: Centralized configuration for the diary pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the diary pipeline
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Ollama settings (local fallback provider)
	OllamaHost  string
	OllamaModel string

	// Pipeline settings
	VectorDimension  int
	CarryInThreshold float64
	RecentWindow     int
	MaxReplyLength   int

	// Grading bands (seconds / dollars)
	LatencyGoodSecs      float64
	LatencyPoorSecs      float64
	CostExcellentDollars float64
	CostFairDollars      float64

	// Storage
	DBPath string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("DIARY_OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("DIARY_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),

		OllamaHost:  getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel: getEnv("OLLAMA_MODEL", "phi"),

		VectorDimension:  getEnvInt("VECTOR_DIMENSION", 384),
		CarryInThreshold: getEnvFloat("CARRY_IN_THRESHOLD", 0.86),
		RecentWindow:     5,
		MaxReplyLength:   120,

		LatencyGoodSecs:      3.0,
		LatencyPoorSecs:      5.0,
		CostExcellentDollars: 0.002,
		CostFairDollars:      0.005,

		DBPath: getEnv("DIARY_DB", ""),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.CarryInThreshold < 0 || c.CarryInThreshold > 1 {
		return fmt.Errorf("CARRY_IN_THRESHOLD must be 0-1, got %f", c.CarryInThreshold)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.VectorDimension <= 0 {
		return fmt.Errorf("VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	return nil
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
