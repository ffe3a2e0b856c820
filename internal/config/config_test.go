package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Data.BaseURL == "" {
		t.Error("default data base URL must be set")
	}
	if cfg.HTTP.MaxRetries != 3 || cfg.HTTP.TimeoutMs != 30000 {
		t.Errorf("unexpected HTTP defaults: %+v", cfg.HTTP)
	}
	if cfg.Analytics.TopFieldLimit != 15 || cfg.Analytics.StaleAfterDays != 90 {
		t.Errorf("unexpected analytics defaults: %+v", cfg.Analytics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Data.BaseURL != DefaultConfig().Data.BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.Data.BaseURL)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Data.BaseURL = "https://example.com/tables"
	cfg.Analytics.StaleAfterDays = 30
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Data.BaseURL != "https://example.com/tables" {
		t.Errorf("BaseURL = %q", loaded.Data.BaseURL)
	}
	if loaded.Analytics.StaleAfterDays != 30 {
		t.Errorf("StaleAfterDays = %d, want 30", loaded.Analytics.StaleAfterDays)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".govlens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := `{"data":{"baseUrl":"https://example.com/only-url"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Data.BaseURL != "https://example.com/only-url" {
		t.Errorf("BaseURL = %q", cfg.Data.BaseURL)
	}
	if cfg.HTTP.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, defaults must backfill missing keys", cfg.HTTP.MaxRetries)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 2
	if err := cfg.Validate(); err == nil {
		t.Error("unsupported version must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Data.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing base URL must fail validation")
	}
}
