// lediff - A terminal diff viewer for jj working copies.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lediff/internal/cli"
	"github.com/jeranaias/lediff/internal/content"
	"github.com/jeranaias/lediff/internal/highlight"
	"github.com/jeranaias/lediff/internal/logging"
	"github.com/jeranaias/lediff/internal/ui"
	"github.com/jeranaias/lediff/internal/ui/styles"
	"github.com/jeranaias/lediff/internal/viewer"
	"github.com/jeranaias/lediff/internal/watcher"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async refresh notifications
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args := cli.Parse(os.Args[1:])

	// Route to appropriate handler
	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdStatus:
		if err := cli.HandleStatus(args); err != nil {
			cli.DisplayError(err)
			os.Exit(cli.GetExitCode(err))
		}
	case cli.CmdDiff:
		if err := cli.HandleDiff(args); err != nil {
			cli.DisplayError(err)
			os.Exit(cli.GetExitCode(err))
		}
	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			cli.DisplayError(err)
			os.Exit(cli.GetExitCode(err))
		}
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI(args) // Default to TUI
	}
}

// sendToProgram delivers a message to the running Bubble Tea program.
// Safe to call from watcher goroutines; drops the message when the
// program has not started yet.
func sendToProgram(msg tea.Msg) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// runTUI starts the interactive diff viewer.
func runTUI(args cli.Args) {
	// Load configuration with CLI overrides applied
	cfg, err := cli.LoadArgsConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}

	logging.Setup(cfg.Log, args.Debug)
	defer logging.RecoverPanic("tui", nil)

	// The alternate screen needs a real terminal on both ends
	if !cli.IsTTY() || !cli.IsStdoutTTY() {
		fmt.Fprintf(os.Stderr, "Error: lediff requires a terminal; use 'lediff diff' for plain output\n")
		os.Exit(1)
	}

	repo, err := cli.OpenRepo(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Start the file watcher before building the model so a startup
	// failure can switch the status bar indicator off
	if cfg.Watch.Enabled {
		w, err := watcher.Start(repo.Root(), cfg.Watch, func() {
			sendToProgram(ui.RepoChangedMsg{})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file watching unavailable: %v\n", err)
			cfg.Watch.Enabled = false
		} else {
			defer w.Close()
		}
	}

	// Wire the diff pipeline: jj status/file contents -> line diff ->
	// syntax highlighting -> rendered panes
	resolver := content.NewResolver(repo.Root(), repo)
	renderer := highlight.NewRenderer(cfg.UI.Theme)
	builder := viewer.NewBuilder(resolver, renderer)

	// Initialize the theme
	theme := styles.NewTheme()

	m := ui.New(repo, builder, cfg, theme)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Store program reference for watcher notifications
	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running lediff: %v\n", err)
		os.Exit(1)
	}
}
