// ABOUTME: Tests for environment-driven configuration
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CALLDECK_API_BASE", "")
	t.Setenv("CALLDECK_TIMEOUT", "")
	t.Setenv("CALLDECK_POLL_INTERVAL", "")

	cfg := Load()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CALLDECK_API_BASE", "https://api.example.com/v1/")
	t.Setenv("CALLDECK_TIMEOUT", "5s")
	t.Setenv("CALLDECK_POLL_INTERVAL", "500ms")

	cfg := Load()
	assert.Equal(t, "https://api.example.com/v1", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
}

func TestLoad_IgnoresInvalidDurations(t *testing.T) {
	t.Setenv("CALLDECK_API_BASE", "")
	t.Setenv("CALLDECK_TIMEOUT", "soon")
	t.Setenv("CALLDECK_POLL_INTERVAL", "-2s")

	cfg := Load()
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
}
