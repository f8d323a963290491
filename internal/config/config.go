package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr string

	// Auth; empty disables API authentication.
	APIKey string

	// Content locations
	SourceDir string
	DataDir   string

	// Policy rule table override; empty uses the built-in table.
	PolicyPath string

	// Extraction
	WorkerCount int

	// Live regeneration
	Watch         bool
	WatchDebounce time.Duration
}

func Load() Config {
	cfg := Config{
		Addr: envOr("SECTIOND_ADDR", ":8090"),

		APIKey: os.Getenv("SECTIOND_API_KEY"),

		SourceDir: envOr("SECTIOND_SOURCE_DIR", "."),
		DataDir:   envOr("SECTIOND_DATA_DIR", "data/sections"),

		PolicyPath: os.Getenv("SECTIOND_POLICY_FILE"),

		WorkerCount: envInt("SECTIOND_WORKERS", 4),

		Watch:         envBool("SECTIOND_WATCH", true),
		WatchDebounce: envDuration("SECTIOND_WATCH_DEBOUNCE", 200*time.Millisecond),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 200 * time.Millisecond
	}

	return cfg
}

func (c Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
