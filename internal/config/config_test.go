package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port=%q", cfg.Port)
	}
	if cfg.StoreReadLatency != 100*time.Millisecond || cfg.StoreWriteLatency != 200*time.Millisecond {
		t.Fatalf("latency=%v/%v", cfg.StoreReadLatency, cfg.StoreWriteLatency)
	}
	if cfg.AnalyticsBuffer != 1000 {
		t.Fatalf("analytics buffer=%d", cfg.AnalyticsBuffer)
	}
	if cfg.UsesDatabase() || cfg.UsesRedis() {
		t.Fatalf("defaults must run fully in memory")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=file::memory:\nDATABASE_DRIVER=SQLite\nSTORE_READ_LATENCY=0s\nCHAT_TTL=5m\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	for _, k := range []string{"DATABASE_URL", "DATABASE_DRIVER", "STORE_READ_LATENCY", "CHAT_TTL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UsesDatabase() || cfg.DatabaseDriver != DriverSQLite {
		t.Fatalf("database config not applied: %+v", cfg)
	}
	if cfg.StoreReadLatency != 0 || cfg.ChatTTL != 5*time.Minute {
		t.Fatalf("durations not parsed: %v %v", cfg.StoreReadLatency, cfg.ChatTTL)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
