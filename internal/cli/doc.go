// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for
// lediff.
//
// The default command launches the TUI; the rest exist for scripting and
// quick checks without entering it:
//
//   - status: list changed files, optionally as JSON
//   - diff: print unified diffs to stdout, colored only on a terminal
//   - config: view and modify the TOML configuration
//   - version, help
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed global and command-specific arguments
//   - ArgParser: flag and positional parsing for subcommands
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	switch cmd {
//	case cli.CmdStatus:
//	    err = cli.HandleStatus(args)
//	case cli.CmdDiff:
//	    err = cli.HandleDiff(args)
//	// ... other commands
//	}
//
// Output honors NO_COLOR and disables styling when stdout is not a
// terminal, so piped output stays clean.
package cli
