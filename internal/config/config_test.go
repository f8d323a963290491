package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8090" {
		t.Errorf("Addr = %q, want :8090", cfg.Addr)
	}
	if cfg.SourceDir != "." {
		t.Errorf("SourceDir = %q, want .", cfg.SourceDir)
	}
	if cfg.DataDir != "data/sections" {
		t.Errorf("DataDir = %q, want data/sections", cfg.DataDir)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if !cfg.Watch {
		t.Error("Watch = false, want true by default")
	}
	if cfg.WatchDebounce != 200*time.Millisecond {
		t.Errorf("WatchDebounce = %v, want 200ms", cfg.WatchDebounce)
	}
	if cfg.APIKey != "" || cfg.PolicyPath != "" {
		t.Errorf("APIKey/PolicyPath should default empty, got %q, %q", cfg.APIKey, cfg.PolicyPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SECTIOND_ADDR", ":9999")
	t.Setenv("SECTIOND_API_KEY", "hunter2")
	t.Setenv("SECTIOND_SOURCE_DIR", "/srv/src")
	t.Setenv("SECTIOND_DATA_DIR", "/srv/data")
	t.Setenv("SECTIOND_POLICY_FILE", "/etc/sectiond/policy.yaml")
	t.Setenv("SECTIOND_WORKERS", "8")
	t.Setenv("SECTIOND_WATCH", "false")
	t.Setenv("SECTIOND_WATCH_DEBOUNCE", "1s")

	cfg := Load()

	if cfg.Addr != ":9999" || cfg.APIKey != "hunter2" {
		t.Errorf("Addr/APIKey = %q, %q", cfg.Addr, cfg.APIKey)
	}
	if cfg.SourceDir != "/srv/src" || cfg.DataDir != "/srv/data" {
		t.Errorf("dirs = %q, %q", cfg.SourceDir, cfg.DataDir)
	}
	if cfg.PolicyPath != "/etc/sectiond/policy.yaml" {
		t.Errorf("PolicyPath = %q", cfg.PolicyPath)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.Watch {
		t.Error("Watch = true, want false")
	}
	if cfg.WatchDebounce != time.Second {
		t.Errorf("WatchDebounce = %v, want 1s", cfg.WatchDebounce)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	t.Setenv("SECTIOND_WORKERS", "-3")
	t.Setenv("SECTIOND_WATCH_DEBOUNCE", "-5ms")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want clamp to 4", cfg.WorkerCount)
	}
	if cfg.WatchDebounce != 200*time.Millisecond {
		t.Errorf("WatchDebounce = %v, want clamp to 200ms", cfg.WatchDebounce)
	}

	t.Setenv("SECTIOND_WORKERS", "not-a-number")
	if got := Load().WorkerCount; got != 4 {
		t.Errorf("WorkerCount = %d, want fallback 4", got)
	}
}

func TestValidate(t *testing.T) {
	good := Config{SourceDir: "src", DataDir: "data"}
	if err := good.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if err := (Config{DataDir: "data"}).Validate(); err == nil {
		t.Error("missing source dir accepted")
	}
	if err := (Config{SourceDir: "src"}).Validate(); err == nil {
		t.Error("missing data dir accepted")
	}
}
