package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr=%q want :8080", cfg.HTTPAddr)
	}
	if cfg.JWTSecret == "" {
		t.Error("JWTSecret is empty")
	}
	if cfg.SyncDelay != time.Minute {
		t.Errorf("SyncDelay=%v want 1m", cfg.SyncDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SYNC_DELAY", "250ms")
	t.Setenv("JWT_SECRET", "other")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" || cfg.JWTSecret != "other" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.SyncDelay != 250*time.Millisecond {
		t.Errorf("SyncDelay=%v want 250ms", cfg.SyncDelay)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SYNC_DELAY", "soon")
	if got := Load().SyncDelay; got != time.Minute {
		t.Errorf("SyncDelay=%v want 1m", got)
	}
}
