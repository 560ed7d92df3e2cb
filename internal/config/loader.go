package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AppName is the application name used for config paths and env prefixes
const AppName = "tripdesk"

// configSearchPaths returns the paths to search for config files in order of precedence
// (later paths have higher priority in Viper)
func configSearchPaths() []string {
	paths := []string{}

	// System-wide (lowest priority)
	paths = append(paths, filepath.Join("/etc", AppName))

	// User-specific
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", AppName))
	}

	// Current directory (highest priority for files)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}

	return paths
}

// UserConfigDir returns the user-specific config directory
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// newViper creates and configures a new Viper instance
func newViper() *viper.Viper {
	v := viper.New()

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml") // default, but will auto-detect

	// Add search paths
	for _, path := range configSearchPaths() {
		v.AddConfigPath(path)
	}

	// Environment variable settings
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads the tripdesk configuration. An empty cfgFile uses the
// standard search paths; a missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := newViper()

	// Set defaults
	setViperDefaults(v, Default())

	// Load config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values the client cannot work with
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.UI.PageSize < 1 {
		return fmt.Errorf("ui.page_size must be at least 1")
	}
	switch c.Log.Format {
	case "", "text", "json", "pretty":
	default:
		return fmt.Errorf("log.format must be one of text, json, pretty (got %q)", c.Log.Format)
	}
	return nil
}

// setViperDefaults sets default values in Viper from a config struct
func setViperDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("api.base_url", c.API.BaseURL)
	v.SetDefault("api.timeout", c.API.Timeout)
	v.SetDefault("api.rate_limit", c.API.RateLimit)
	v.SetDefault("api.rate_burst", c.API.RateBurst)
	v.SetDefault("api.token_path", c.API.TokenPath)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.output", c.Log.Output)
	v.SetDefault("log.file_path", c.Log.FilePath)
	v.SetDefault("log.max_size_mb", c.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", c.Log.MaxBackups)
	v.SetDefault("log.max_age_days", c.Log.MaxAgeDays)
	v.SetDefault("ui.theme", c.UI.Theme)
	v.SetDefault("ui.page_size", c.UI.PageSize)
}

// ConfigFileUsed returns the config file path that was loaded, if any
func ConfigFileUsed() string {
	v := newViper()
	_ = v.ReadInConfig()
	return v.ConfigFileUsed()
}
