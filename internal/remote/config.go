package remote

import (
	"fmt"
	"os"
	"time"
)

// Config holds remote-service configuration.
type Config struct {
	// BaseURL is the service root, e.g. "https://api.example.com/v1".
	BaseURL string

	// APIKey authenticates requests. Sent as a bearer token when set.
	APIKey string

	// UserID identifies the learner for enrollment records.
	UserID string

	// Timeout bounds each individual network attempt. The retry layer adds
	// no deadline of its own beyond the attempt cap and backoff schedule.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures the retry decorator.
type RetryConfig struct {
	// MaxAttempts is the total number of tries, the first one included.
	MaxAttempts int

	// BaseDelay is the wait before the second attempt; it doubles for each
	// attempt after that.
	BaseDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults: 3 attempts with
// 1s/2s backoff and a 15s per-attempt timeout.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   1 * time.Second,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("COURSEPLAY_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if k := os.Getenv("COURSEPLAY_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if id := os.Getenv("COURSEPLAY_USER_ID"); id != "" {
		cfg.UserID = id
	}
	if t := os.Getenv("COURSEPLAY_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks that the service endpoint is configured.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("COURSEPLAY_API_URL is required")
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1")
	}
	return nil
}
