package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL == "" {
		t.Error("expected non-empty default base URL")
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.API.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
	if cfg.UI.PageSize < 1 {
		t.Errorf("expected positive page size, got %d", cfg.UI.PageSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"zero page size", func(c *Config) { c.UI.PageSize = 0 }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"text log format", func(c *Config) { c.Log.Format = "text" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api:\n  base_url: https://api.travel.test/v1\nui:\n  page_size: 25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "https://api.travel.test/v1" {
		t.Errorf("expected file base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.UI.PageSize != 25 {
		t.Errorf("expected page size 25, got %d", cfg.UI.PageSize)
	}
	// Unset values fall back to defaults
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Log.Level)
	}
}

func TestGenerateConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := GenerateConfig()
	if err != nil {
		t.Fatalf("GenerateConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("generated config missing: %v", err)
	}

	// Second call refuses to overwrite
	if _, err := GenerateConfig(); err == nil {
		t.Error("expected error when config already exists")
	}
}
