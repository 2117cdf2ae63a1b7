package api

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the sync-server gateway.
type Config struct {
	BaseURL string
	// TimeoutMs bounds each request.
	TimeoutMs int
	// SyncSettleMs is how long consumers wait after a sync trigger is
	// accepted before re-fetching collections. The server exposes no
	// completion signal; this delay is a heuristic, not a guarantee.
	SyncSettleMs int
}

// DefaultConfig returns a Config with sensible defaults for a local
// sync server.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "http://localhost:8000",
		TimeoutMs:    10000,
		SyncSettleMs: 2000,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STUDYDECK_API_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("STUDYDECK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STUDYDECK_SYNC_SETTLE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SyncSettleMs = n
		}
	}

	return cfg
}
