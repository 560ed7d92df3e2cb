package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GenerateConfig writes a default configuration file into the user
// config directory and returns its path. It refuses to overwrite an
// existing file.
func GenerateConfig() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return configPath, fmt.Errorf("config file already exists: %s", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// GenerateConfigIfNotExists writes the default config on first run.
// It returns the written path, or an empty path when a config file was
// already in place.
func GenerateConfigIfNotExists() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return "", nil
	}
	return GenerateConfig()
}
