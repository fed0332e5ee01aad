// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for Praxis commands.
//
// Configuration is loaded from a single YAML file specified by:
//   - PRAXIS_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. The config file is the
// single source of truth; environment variables do not override values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the synchronization layer.
type Config struct {
	// Backend is the backend root URL (e.g. "https://backend.example.org").
	// Ignored in offline mode.
	Backend string `yaml:"backend"`

	// Offline serves fixture data instead of calling the backend.
	Offline bool `yaml:"offline"`

	// Fixtures is the path to a JSONC fixture file for offline mode.
	// Empty means the built-in development fixtures.
	Fixtures string `yaml:"fixtures"`

	// Snapshot is the path of the local state snapshot file.
	Snapshot string `yaml:"snapshot"`

	// RequestTimeout bounds each HTTP request, as a Go duration string.
	// Default: 30s.
	RequestTimeout string `yaml:"request_timeout"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration. These defaults ensure all
// fields have sensible zero-values; the config file itself is still
// required when loading through Load or LoadFile.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Snapshot:       filepath.Join(homeDir, ".cache", "praxis", "state.snapshot"),
		RequestTimeout: "30s",
		LogLevel:       "info",
	}
}

// Load loads configuration from the PRAXIS_CONFIG environment variable.
func Load() (*Config, error) {
	configPath := os.Getenv("PRAXIS_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("PRAXIS_CONFIG environment variable not set; " +
			"set it to the path of your praxis.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging over
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if !c.Offline && c.Backend == "" {
		return fmt.Errorf("backend URL is required unless offline is set")
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Timeout parses the request timeout.
func (c *Config) Timeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid request_timeout %q: %w", c.RequestTimeout, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	return timeout, nil
}
