package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("NEWSPULSE_TELEGRAM_TOKEN", "test-token")
	t.Setenv("NEWSPULSE_SOURCES_NEWSAPI_API_KEY", "test-key")
}

func TestLoad_DefaultsFromEnvOnly(t *testing.T) {
	setCredentials(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sources.NewsAPI.BaseURL != "https://newsapi.org/v2/everything" {
		t.Fatalf("unexpected base url: %q", cfg.Sources.NewsAPI.BaseURL)
	}
	if cfg.Sources.NewsAPI.Language != "en" {
		t.Fatalf("expected language en, got %q", cfg.Sources.NewsAPI.Language)
	}
	if cfg.Sources.NewsAPI.SortBy != "publishedAt" {
		t.Fatalf("expected sort publishedAt, got %q", cfg.Sources.NewsAPI.SortBy)
	}
	if cfg.Sources.NewsAPI.PageSize != 5 {
		t.Fatalf("expected page size 5, got %d", cfg.Sources.NewsAPI.PageSize)
	}
	if cfg.General.DefaultTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.General.DefaultTimeout)
	}
	if cfg.Server.Address != ":10001" {
		t.Fatalf("unexpected server address: %q", cfg.Server.Address)
	}
}

func TestLoad_MissingTokenFailsFast(t *testing.T) {
	t.Setenv("NEWSPULSE_SOURCES_NEWSAPI_API_KEY", "test-key")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for missing telegram token")
	}
}

func TestLoad_MissingAPIKeyFailsFast(t *testing.T) {
	t.Setenv("NEWSPULSE_TELEGRAM_TOKEN", "test-token")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for missing newsapi key")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	setCredentials(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"general":{"default_timeout":"3s"},"sources":{"newsapi":{"page_size":10}}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.DefaultTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.General.DefaultTimeout)
	}
	if cfg.Sources.NewsAPI.PageSize != 10 {
		t.Fatalf("expected page size 10, got %d", cfg.Sources.NewsAPI.PageSize)
	}
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	setCredentials(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}
