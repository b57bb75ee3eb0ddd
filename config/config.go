// ABOUTME: Runtime configuration for the calldeck client
// ABOUTME: Resolves the backend base URL from environment or .env file
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL points at a local development backend.
	DefaultBaseURL = "http://localhost:8000/api/v1"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 30 * time.Second

	// DefaultPollInterval is how often import status is checked.
	DefaultPollInterval = 2 * time.Second
)

// Config holds client-wide settings. The base URL is resolved once at
// startup and injected everywhere; no call site carries its own origin.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	PollInterval time.Duration
}

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      DefaultBaseURL,
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
	}

	if base := os.Getenv("CALLDECK_API_BASE"); base != "" {
		cfg.BaseURL = strings.TrimRight(base, "/")
	}
	if timeout := os.Getenv("CALLDECK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if interval := os.Getenv("CALLDECK_POLL_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}

	return cfg
}
