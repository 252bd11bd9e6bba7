package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iho/chching/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEDGER_STORAGE", "")
	t.Setenv("LEDGER_CURRENCY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Storage != config.StorageFile {
		t.Fatalf("expected default storage file, got %s", cfg.Storage)
	}

	if cfg.LedgerFile != "chching.yaml" {
		t.Fatalf("expected default ledger file, got %s", cfg.LedgerFile)
	}

	if cfg.Currency != "SGD" {
		t.Fatalf("expected default currency SGD, got %s", cfg.Currency)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEDGER_STORAGE", "redis")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("REDIS_KEY_PREFIX", "test:")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Storage != config.StorageRedis {
		t.Fatalf("expected redis storage, got %s", cfg.Storage)
	}

	if cfg.RedisURL != "redis://example" || cfg.RedisKeyPrefix != "test:" {
		t.Fatalf("expected custom redis settings, got %s %s", cfg.RedisURL, cfg.RedisKeyPrefix)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit override, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadUnknownStorage(t *testing.T) {
	t.Setenv("LEDGER_STORAGE", "floppy")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LEDGER_CURRENCY=USD\nLEDGER_FILE=from-dotenv.yaml\n"), 0o600); err != nil {
		t.Fatalf("failed to write dotenv: %v", err)
	}

	// Set both so t.Setenv restores them; the explicit value must win.
	t.Setenv("LEDGER_FILE", "explicit.yaml")
	t.Setenv("LEDGER_CURRENCY", "")
	os.Unsetenv("LEDGER_CURRENCY")

	cfg, err := config.Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Currency != "USD" {
		t.Fatalf("expected currency from dotenv, got %s", cfg.Currency)
	}

	if cfg.LedgerFile != "explicit.yaml" {
		t.Fatalf("expected environment to win over dotenv, got %s", cfg.LedgerFile)
	}
}
