package app

import (
	"testing"
	"time"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected MetricsAddr :9090, got %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != StorageDriverFile {
		t.Errorf("expected StorageDriver %s, got %s", StorageDriverFile, cfg.StorageDriver)
	}
	if cfg.StateFilePath == "" {
		t.Error("expected non-empty StateFilePath")
	}
	if cfg.ContactSendDelay != 1500*time.Millisecond {
		t.Errorf("expected 1.5s contact delay, got %s", cfg.ContactSendDelay)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("UNECLAIRE_METRICS_ADDR", ":9191")
	t.Setenv("UNECLAIRE_STORAGE", "memory")
	t.Setenv("UNECLAIRE_STATE_FILE", "/tmp/cart.json")
	t.Setenv("UNECLAIRE_POSTGRES_DSN", "postgres://localhost/uneclaire")
	t.Setenv("UNECLAIRE_CONTACT_DELAY", "20ms")

	cfg := ConfigFromEnv()

	if cfg.MetricsAddr != ":9191" {
		t.Errorf("expected MetricsAddr :9191, got %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Errorf("expected memory driver, got %s", cfg.StorageDriver)
	}
	if cfg.StateFilePath != "/tmp/cart.json" {
		t.Errorf("expected /tmp/cart.json, got %s", cfg.StateFilePath)
	}
	if cfg.PostgresDSN != "postgres://localhost/uneclaire" {
		t.Errorf("unexpected DSN %s", cfg.PostgresDSN)
	}
	if cfg.ContactSendDelay != 20*time.Millisecond {
		t.Errorf("expected 20ms delay, got %s", cfg.ContactSendDelay)
	}
}

func TestConfigFromEnv_BadDelayIgnored(t *testing.T) {
	t.Setenv("UNECLAIRE_CONTACT_DELAY", "soon")

	cfg := ConfigFromEnv()
	if cfg.ContactSendDelay != 1500*time.Millisecond {
		t.Errorf("bad delay must keep the default, got %s", cfg.ContactSendDelay)
	}
}
