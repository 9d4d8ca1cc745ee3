// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// empath-tui.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.empath/config.toml
//   - ~/.empath/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/empathapp/empath-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete empath-tui configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Endpoint configuration
	Endpoint EndpointConfig `toml:"endpoint" json:"endpoint"`

	// User identity sent with every message
	User UserConfig `toml:"user" json:"user"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// EndpointConfig contains the chat backend configuration.
type EndpointConfig struct {
	// BaseURL is the Empath backend base URL
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs is the per-send timeout in seconds; a send past this
	// bound is treated as failed
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// UserConfig contains the placeholder identity carried on every send.
type UserConfig struct {
	// ID is the opaque user identifier
	ID string `toml:"id" json:"id"`
	// CountryCode selects the helpline the backend offers
	CountryCode string `toml:"country_code" json:"country_code"`
}

// StorageConfig contains transcript storage configuration.
type StorageConfig struct {
	// DataDir holds the transcript and log files (empty = ~/.empath)
	DataDir string `toml:"data_dir" json:"data_dir"`
}

// UIConfig contains TUI configuration.
type UIConfig struct {
	// RotateIntervalMs is the landing rotator period in milliseconds
	RotateIntervalMs int `toml:"rotate_interval_ms" json:"rotate_interval_ms"`
	// AutoSaveSecs is how often the session re-tries a failed transcript
	// save, in seconds
	AutoSaveSecs int `toml:"auto_save_secs" json:"auto_save_secs"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	defaultBaseURL     = "http://127.0.0.1:5000"
	defaultTimeoutSecs = 30
	defaultUserID      = "anonymous"
	defaultCountry     = "IN"
	defaultRotateMs    = 4200
	defaultAutoSave    = 30
)

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Endpoint: EndpointConfig{
			BaseURL:     defaultBaseURL,
			TimeoutSecs: defaultTimeoutSecs,
		},
		User: UserConfig{
			ID:          defaultUserID,
			CountryCode: defaultCountry,
		},
		Storage: StorageConfig{
			DataDir: "",
		},
		UI: UIConfig{
			RotateIntervalMs: defaultRotateMs,
			AutoSaveSecs:     defaultAutoSave,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the empath configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".empath"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DataDir resolves the transcript directory: the configured one, or
// ~/.empath when unset.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	return ConfigDir()
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last, then validation clamps the
// result into a usable range.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from an explicit file path, deciding
// the format by extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	var err error
	if strings.HasSuffix(path, ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the TOML config file.
func (c *Config) Save() error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - EMPATH_ENDPOINT: overrides endpoint.base_url
//   - EMPATH_USER_ID: overrides user.id
//   - EMPATH_COUNTRY: overrides user.country_code
//   - EMPATH_DATA_DIR: overrides storage.data_dir
func (c *Config) ApplyEnvOverrides() {
	if endpoint := os.Getenv("EMPATH_ENDPOINT"); endpoint != "" {
		c.Endpoint.BaseURL = endpoint
	}
	if userID := os.Getenv("EMPATH_USER_ID"); userID != "" {
		c.User.ID = userID
	}
	if country := os.Getenv("EMPATH_COUNTRY"); country != "" {
		c.User.CountryCode = country
	}
	if dataDir := os.Getenv("EMPATH_DATA_DIR"); dataDir != "" {
		c.Storage.DataDir = dataDir
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate clamps out-of-range values and repairs unusable fields rather
// than failing: a bad config file must never keep the companion from
// starting.
func (c *Config) Validate() {
	if c.Endpoint.BaseURL == "" {
		c.Endpoint.BaseURL = defaultBaseURL
	} else if _, err := url.ParseRequestURI(c.Endpoint.BaseURL); err != nil {
		c.Endpoint.BaseURL = defaultBaseURL
	}

	if c.Endpoint.TimeoutSecs < 1 || c.Endpoint.TimeoutSecs > 300 {
		c.Endpoint.TimeoutSecs = defaultTimeoutSecs
	}

	if c.User.ID == "" {
		c.User.ID = defaultUserID
	}
	if c.User.CountryCode == "" {
		c.User.CountryCode = defaultCountry
	}
	c.User.CountryCode = strings.ToUpper(c.User.CountryCode)

	// Rotator faster than 1s would be distracting; slower than 1min is as
	// good as off.
	if c.UI.RotateIntervalMs < 1000 || c.UI.RotateIntervalMs > 60000 {
		c.UI.RotateIntervalMs = defaultRotateMs
	}
	if c.UI.AutoSaveSecs < 5 || c.UI.AutoSaveSecs > 600 {
		c.UI.AutoSaveSecs = defaultAutoSave
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobal stores the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// Global returns the process-wide configuration, or nil before SetGlobal.
func Global() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalCfg
}
