// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for lediff.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - RepoConfig: Repository discovery and revision settings
//   - UIConfig: View mode, theme, and layout settings
//   - WatchConfig: File watching behavior
//   - LogConfig: Log file, level, and rotation settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LEDIFF_*)
//   - ~/.lediff/config.toml
//   - ~/.lediff/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	mode := cfg.UI.ViewMode
//	revision := cfg.Repo.Revision
package config
