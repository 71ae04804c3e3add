// Package config loads user settings from $XDG_CONFIG_HOME/lanes/config.yaml
package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/storage"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	Storage     StorageConfig `yaml:"storage"`
	Drag        DragConfig    `yaml:"drag"`
}

// StorageConfig selects where the board is persisted
type StorageConfig struct {
	// Backend is one of "sqlite", "file" or "memory"
	Backend string `yaml:"backend"`
	// Path overrides the default location under ~/.lanes
	Path string `yaml:"path"`
}

// DragConfig tunes drop-target resolution
type DragConfig struct {
	// DistanceOffset shifts each slot's decision boundary this many rows down
	DistanceOffset int `yaml:"distance_offset"`
}

// Default returns the built-in configuration
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from LANES_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LANES_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv applies environment overrides
func loadEnv(config *Config) {
	if backend := os.Getenv("LANES_STORAGE"); backend != "" {
		config.Storage.Backend = backend
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		loadEnv(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		loadEnv(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	loadEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lanes", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lanes", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Storage.Backend == "" {
		c.Storage.Backend = storage.BackendSQLite
	}
	if c.Drag.DistanceOffset <= 0 {
		c.Drag.DistanceOffset = dragdrop.DefaultDistanceOffset
	}
}
