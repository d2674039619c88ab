// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation for lediff.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Print one configuration value
//   set <key> <value>   Set a configuration value
//   keys                List all configuration keys
//   path                Show configuration file path
//   reset               Reset to default configuration
//
// Examples:
//   lediff config                         Show current config (default)
//   lediff config get ui.theme
//   lediff config set ui.theme dracula
//   lediff config set repo.revision @
//   lediff config set watch.enabled false
//   lediff config keys
//   lediff config path
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/lediff/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)

	case "get":
		return handleConfigGet(args)

	case "set":
		return handleConfigSet(args.ConfigKey, args.ConfigVal)

	case "keys", "list":
		return handleConfigKeys()

	case "path":
		return handleConfigPath()

	case "reset":
		return handleConfigReset()

	default:
		return &ValidationError{
			Field:   "subcommand",
			Value:   args.Subcommand,
			Reason:  "unknown config subcommand",
			Example: "lediff config [show|get|set|keys|path|reset]",
		}
	}
}

// handleConfigShow displays the current configuration.
func handleConfigShow(args Args) error {
	cfg, err := LoadArgsConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s (using defaults)\n", err)
		cfg = config.Default()
	}

	if args.JSON {
		return NewJSONResponse("config show", cfg).Print()
	}

	fmt.Println()
	fmt.Println(TitleStyle.Render("lediff Configuration"))
	fmt.Println(RenderSeparator(41))
	fmt.Println()

	fmt.Println(ValueStyle.Bold(true).Render("[repo]"))
	printEntry("path:", cfg.Repo.Path)
	printEntry("revision:", cfg.Repo.Revision)
	fmt.Println()

	fmt.Println(ValueStyle.Bold(true).Render("[ui]"))
	printEntry("view_mode:", cfg.UI.ViewMode)
	printEntry("theme:", cfg.UI.Theme)
	printEntry("show_line_numbers:", fmt.Sprintf("%t", cfg.UI.ShowLineNumbers))
	printEntry("tab_width:", fmt.Sprintf("%d", cfg.UI.TabWidth))
	printEntry("sidebar_width:", fmt.Sprintf("%d", cfg.UI.SidebarWidth))
	fmt.Println()

	fmt.Println(ValueStyle.Bold(true).Render("[watch]"))
	printEntry("enabled:", fmt.Sprintf("%t", cfg.Watch.Enabled))
	printEntry("debounce_ms:", fmt.Sprintf("%d", cfg.Watch.DebounceMs))
	printEntry("poll_interval_secs:", fmt.Sprintf("%d", cfg.Watch.PollIntervalSecs))
	printEntry("max_refresh_per_sec:", fmt.Sprintf("%g", cfg.Watch.MaxRefreshPerSec))
	fmt.Println()

	fmt.Println(ValueStyle.Bold(true).Render("[log]"))
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(disabled)"
	}
	printEntry("file:", logFile)
	printEntry("level:", cfg.Log.Level)
	fmt.Println()

	if path, err := config.ConfigPathTOML(); err == nil {
		fmt.Println(SeparatorStyle.Render("-----------------------------------------"))
		fmt.Printf("Config file: %s\n", DimStyle.Render(path))
		fmt.Println()
	}

	return nil
}

// printEntry prints one aligned key/value line.
func printEntry(key, value string) {
	fmt.Printf("  %s%s\n", LabelStyle.Render(key), ValueStyle.Render(value))
}

// handleConfigGet prints a single configuration value.
func handleConfigGet(args Args) error {
	if args.ConfigKey == "" {
		return ErrMissingArgument("key", "lediff config get ui.theme")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	value, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return &NotFoundError{Resource: "config key", ID: args.ConfigKey}
	}

	fmt.Printf("%v\n", value)
	return nil
}

// handleConfigSet sets a configuration value and saves the file.
func handleConfigSet(key, value string) error {
	if key == "" {
		return ErrMissingArgument("key", "lediff config set ui.theme dracula")
	}
	if value == "" {
		return ErrMissingArgument("value", fmt.Sprintf("lediff config set %s <value>", key))
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s (using defaults)\n", err)
		cfg = config.Default()
	}

	if err := cfg.Set(key, value); err != nil {
		return &ValidationError{
			Field:   "key",
			Value:   key,
			Reason:  err.Error(),
			Example: "lediff config keys",
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration value: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s %s = %s\n", SuccessStyle.Render("[OK]"), key, value)
	return nil
}

// handleConfigKeys lists every settable key.
func handleConfigKeys() error {
	for _, key := range config.GetAllKeys() {
		fmt.Println(key)
	}
	return nil
}

// handleConfigPath shows the config file path.
func handleConfigPath() error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return err
	}
	fmt.Println(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "%s (file does not exist - will be created on first use)\n",
			DimStyle.Render("Note"))
	}

	return nil
}

// handleConfigReset resets configuration to defaults.
func handleConfigReset() error {
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s Configuration reset to defaults\n", SuccessStyle.Render("[OK]"))
	if path, err := config.ConfigPathTOML(); err == nil {
		fmt.Printf("Config file: %s\n", DimStyle.Render(path))
	}

	return nil
}
