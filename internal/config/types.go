package config

import (
	"time"
)

// LogConfig holds logging configuration for the tripdesk CLI
type LogConfig struct {
	Level        string `mapstructure:"level" yaml:"level"`        // debug, info, warn, error
	Format       string `mapstructure:"format" yaml:"format"`       // text, json, pretty
	Output       string `mapstructure:"output" yaml:"output"`       // stdout, stderr, or file path
	FilePath     string `mapstructure:"file_path" yaml:"file_path"`    // path to log file (in addition to output)
	MaxSizeMB    int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`  // max size in MB before rotation
	MaxBackups   int    `mapstructure:"max_backups" yaml:"max_backups"`  // max number of old log files to keep
	MaxAgeDays   int    `mapstructure:"max_age_days" yaml:"max_age_days"` // max days to retain old log files
	EnableCaller bool   `mapstructure:"enable_caller" yaml:"enable_caller"`
	NoColor      bool   `mapstructure:"no_color" yaml:"no_color"` // disable colored output (pretty format only)
}

// APIConfig holds the remote travel-booking API connection settings
type APIConfig struct {
	// BaseURL is the root of the REST API, e.g. https://api.example.com/api/v1
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout applies to every request
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// RateLimit is the maximum number of requests per second (0 = unlimited)
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"`

	// RateBurst is the burst size for the rate limiter
	RateBurst int `mapstructure:"rate_burst" yaml:"rate_burst"`

	// TokenPath overrides the default bearer token file location
	TokenPath string `mapstructure:"token_path" yaml:"token_path"`
}

// UIConfig holds TUI presentation settings
type UIConfig struct {
	Theme    string `mapstructure:"theme" yaml:"theme"`     // dark, light
	PageSize int    `mapstructure:"page_size" yaml:"page_size"` // rows requested per page
}

// Config is the full tripdesk configuration
type Config struct {
	API APIConfig `mapstructure:"api" yaml:"api"`
	Log LogConfig `mapstructure:"log" yaml:"log"`
	UI  UIConfig  `mapstructure:"ui" yaml:"ui"`
}

// Default returns the configuration defaults
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8000/api",
			Timeout:   30 * time.Second,
			RateLimit: 10,
			RateBurst: 5,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "pretty",
			Output:     "stderr",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
		UI: UIConfig{
			Theme:    "dark",
			PageSize: 15,
		},
	}
}
