// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for lediff.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.lediff/config.toml
//   - ~/.lediff/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/lediff/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// View mode names accepted by ui.view_mode.
const (
	ViewModeSideBySide = "side-by-side"
	ViewModeInline     = "inline"
)

// Config represents the complete lediff configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Repository configuration
	Repo RepoConfig `toml:"repo" json:"repo"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// File watching configuration
	Watch WatchConfig `toml:"watch" json:"watch"`

	// Logging configuration
	Log LogConfig `toml:"log" json:"log"`
}

// RepoConfig contains repository discovery and revision settings.
type RepoConfig struct {
	// Path is the repository root. Empty means discover from the working
	// directory by walking up to the nearest .jj directory.
	Path string `toml:"path" json:"path"`
	// Revision is the revision old file contents are read from.
	Revision string `toml:"revision" json:"revision"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// ViewMode is the initial diff layout: "side-by-side" or "inline"
	ViewMode string `toml:"view_mode" json:"view_mode"`
	// Theme is the syntax highlighting style name (a Chroma style)
	Theme string `toml:"theme" json:"theme"`
	// ShowLineNumbers displays gutter line numbers in the diff panes
	ShowLineNumbers bool `toml:"show_line_numbers" json:"show_line_numbers"`
	// TabWidth is the number of spaces a tab expands to
	TabWidth int `toml:"tab_width" json:"tab_width"`
	// SidebarWidth is the changed-files sidebar width in columns
	SidebarWidth int `toml:"sidebar_width" json:"sidebar_width"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Enabled turns automatic refresh on repository changes on or off
	Enabled bool `toml:"enabled" json:"enabled"`
	// DebounceMs is how long to wait after the last event before refreshing
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
	// PollIntervalSecs is the polling interval used when fsnotify is unavailable
	PollIntervalSecs int `toml:"poll_interval_secs" json:"poll_interval_secs"`
	// MaxRefreshPerSec caps how many refreshes a noisy repository can trigger
	MaxRefreshPerSec float64 `toml:"max_refresh_per_sec" json:"max_refresh_per_sec"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// File is the log file path. Empty disables logging entirely.
	File string `toml:"file" json:"file"`
	// Level is the minimum level: "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep
	MaxBackups int `toml:"max_backups" json:"max_backups"`
	// MaxAgeDays is the age in days after which rotated files are removed
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Repo: RepoConfig{
			Path:     "",
			Revision: "@-",
		},

		UI: UIConfig{
			ViewMode:        ViewModeSideBySide,
			Theme:           "catppuccin-mocha",
			ShowLineNumbers: true,
			TabWidth:        4,
			SidebarWidth:    32,
		},

		Watch: WatchConfig{
			Enabled:          true,
			DebounceMs:       200,
			PollIntervalSecs: 2,
			MaxRefreshPerSec: 4,
		},

		Log: LogConfig{
			File:       "",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the lediff configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lediff"), nil
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

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finalize(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finalize(cfg)
			}
		}
	}

	// Fall back to defaults (with any load error for informational purposes)
	cfg, err = finalize(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// finalize applies environment overrides, defaults, and validation.
func finalize(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finalize(cfg)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file. The write is atomic so
// an interrupted save cannot corrupt an existing config.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer

	// Write header comment
	fmt.Fprintln(&buf, "# lediff configuration file")
	fmt.Fprintln(&buf, "# Generated by lediff - edit with care")
	fmt.Fprintln(&buf, "")

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Validate revision
	if strings.TrimSpace(c.Repo.Revision) == "" {
		errs = append(errs, ValidationError{
			Field:   "repo.revision",
			Message: "revision must not be empty",
		})
	}

	// Validate view mode
	validModes := map[string]bool{ViewModeSideBySide: true, ViewModeInline: true}
	if !validModes[strings.ToLower(c.UI.ViewMode)] {
		errs = append(errs, ValidationError{
			Field:   "ui.view_mode",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: %s, %s", c.UI.ViewMode, ViewModeSideBySide, ViewModeInline),
		})
	}

	// Validate tab width
	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		errs = append(errs, ValidationError{
			Field:   "ui.tab_width",
			Message: fmt.Sprintf("tab_width must be 1-16, got %d", c.UI.TabWidth),
		})
	}

	// Validate sidebar width
	if c.UI.SidebarWidth < 10 || c.UI.SidebarWidth > 80 {
		errs = append(errs, ValidationError{
			Field:   "ui.sidebar_width",
			Message: fmt.Sprintf("sidebar_width must be 10-80, got %d", c.UI.SidebarWidth),
		})
	}

	// Validate watch settings
	if c.Watch.DebounceMs < 0 || c.Watch.DebounceMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Message: fmt.Sprintf("debounce_ms must be 0-10000, got %d", c.Watch.DebounceMs),
		})
	}
	if c.Watch.PollIntervalSecs < 1 || c.Watch.PollIntervalSecs > 3600 {
		errs = append(errs, ValidationError{
			Field:   "watch.poll_interval_secs",
			Message: fmt.Sprintf("poll_interval_secs must be 1-3600, got %d", c.Watch.PollIntervalSecs),
		})
	}
	if c.Watch.MaxRefreshPerSec <= 0 || c.Watch.MaxRefreshPerSec > 60 {
		errs = append(errs, ValidationError{
			Field:   "watch.max_refresh_per_sec",
			Message: fmt.Sprintf("max_refresh_per_sec must be in (0, 60], got %g", c.Watch.MaxRefreshPerSec),
		})
	}

	// Validate log settings
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}
	if c.Log.MaxSizeMB < 1 {
		errs = append(errs, ValidationError{
			Field:   "log.max_size_mb",
			Message: fmt.Sprintf("max_size_mb must be positive, got %d", c.Log.MaxSizeMB),
		})
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "log.max_backups",
			Message: "max_backups cannot be negative",
		})
	}
	if c.Log.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "log.max_age_days",
			Message: "max_age_days cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	// Repo defaults
	if c.Repo.Revision == "" {
		c.Repo.Revision = defaults.Repo.Revision
	}

	// UI defaults
	if c.UI.ViewMode == "" {
		c.UI.ViewMode = defaults.UI.ViewMode
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.TabWidth == 0 {
		c.UI.TabWidth = defaults.UI.TabWidth
	}
	if c.UI.SidebarWidth == 0 {
		c.UI.SidebarWidth = defaults.UI.SidebarWidth
	}

	// Watch defaults
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = defaults.Watch.DebounceMs
	}
	if c.Watch.PollIntervalSecs == 0 {
		c.Watch.PollIntervalSecs = defaults.Watch.PollIntervalSecs
	}
	if c.Watch.MaxRefreshPerSec == 0 {
		c.Watch.MaxRefreshPerSec = defaults.Watch.MaxRefreshPerSec
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = defaults.Log.MaxBackups
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = defaults.Log.MaxAgeDays
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - LEDIFF_REPO: overrides repo.path
//   - LEDIFF_REVISION: overrides repo.revision
//   - LEDIFF_VIEW_MODE: overrides ui.view_mode
//   - LEDIFF_THEME: overrides ui.theme
//   - LEDIFF_NO_WATCH: set to "1" or "true" to disable file watching
//   - LEDIFF_LOG_FILE: overrides log.file
//   - LEDIFF_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if repo := os.Getenv("LEDIFF_REPO"); repo != "" {
		c.Repo.Path = repo
	}

	if rev := os.Getenv("LEDIFF_REVISION"); rev != "" {
		c.Repo.Revision = rev
	}

	if mode := os.Getenv("LEDIFF_VIEW_MODE"); mode != "" {
		c.UI.ViewMode = mode
	}

	if theme := os.Getenv("LEDIFF_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if noWatch := os.Getenv("LEDIFF_NO_WATCH"); noWatch != "" {
		if noWatch == "1" || strings.ToLower(noWatch) == "true" {
			c.Watch.Enabled = false
		}
	}

	if file := os.Getenv("LEDIFF_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if level := os.Getenv("LEDIFF_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.view_mode").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		// If this is the last part, return the value
		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		// Otherwise, navigate into the struct
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "ui.view_mode").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		// If this is the last part, set the value
		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		// Otherwise, navigate into the struct
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"repo.path",
		"repo.revision",
		"ui.view_mode",
		"ui.theme",
		"ui.show_line_numbers",
		"ui.tab_width",
		"ui.sidebar_width",
		"watch.enabled",
		"watch.debounce_ms",
		"watch.poll_interval_secs",
		"watch.max_refresh_per_sec",
		"log.file",
		"log.level",
		"log.max_size_mb",
		"log.max_backups",
		"log.max_age_days",
	}
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
