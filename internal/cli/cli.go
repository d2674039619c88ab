// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for lediff.
package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdStatus
	CmdDiff
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	RepoPath   string // Repository root (--repo), defaults to the working directory
	Revision   string // Diff base revision (--revision), defaults to config
	ConfigPath string // Alternate config file (--config)
	Theme      string // Syntax theme override (--theme)
	LogFile    string // Log file override (--log-file)
	NoWatch    bool   // Disable live refresh (--no-watch)
	Debug      bool   // Debug logging (--debug)
	Plain      bool   // Disable colored output (--plain)
	JSON       bool   // Output in JSON format (--json)
	Inline     bool   // Start in inline diff mode (--inline)

	// Command-specific
	Path       string // File path argument for diff
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `lediff - working copy diff viewer for jj repositories

Lediff shows what changed in the working copy of a Jujutsu (jj)
repository, side by side with syntax highlighting, refreshing live
as files change.

Usage:
  lediff                     Start the TUI (default)
  lediff status, s           List changed files
  lediff diff [path]         Print unified diffs to stdout
  lediff config [subcommand] Configuration
  lediff version             Show version information
  lediff help                Show this help

Status Command:
  lediff status              List changed files with their status
    --json                   Output in JSON format

Diff Command:
  lediff diff                Print unified diffs for all changed files
  lediff diff src/main.rs    Print the unified diff for one file
    --plain                  Disable colors even on a terminal

Config Commands:
  lediff config show         Display current configuration (default)
  lediff config get <key>    Print one configuration value
  lediff config set <key> <value>
                             Set a configuration value
  lediff config keys         List all configuration keys
  lediff config path         Show configuration file location
  lediff config reset        Reset to default configuration

  Keys use dot notation, for example:
    repo.revision            Diff base revision (default: @-)
    ui.view_mode             side-by-side or inline
    ui.theme                 Syntax highlighting theme
    ui.tab_width             Tab expansion width
    watch.enabled            Live refresh on repository changes
    log.file                 Log file path (empty disables logging)

Global Flags:
  -R, --repo PATH     Repository root (default: walk up from cwd)
  -r, --revision REV  Base revision to diff against (default: @-)
  --config PATH       Use an alternate config file
  --theme NAME        Override the syntax highlighting theme
  --inline            Start in inline diff mode
  --no-watch          Disable live refresh
  --plain             Disable colored output
  --json              Output in JSON format (status, version)
  --log-file PATH     Write logs to PATH for this run
  --debug             Verbose logging

Examples:
  lediff                              View working copy changes
  lediff -r @ --inline                Diff against @ in inline mode
  lediff status                       List changed files
  lediff status --json               Changed files for scripting
  lediff diff > changes.patch         Export all diffs
  lediff diff src/main.rs             One file's diff
  lediff config set ui.theme dracula  Switch syntax theme
  lediff config set watch.enabled false

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("lediff version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
	fmt.Printf("  Go version: %s\n", runtime.Version())
}

// VersionData is the version payload for JSON output.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Print()
		return
	}
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "diff", "d":
		parseDiffArgs(&parsedArgs, remaining)
		return CmdDiff, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command, keep it in the raw args and start the TUI
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdTUI, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-R", "--repo":
			if i+1 < len(args) {
				i++
				parsedArgs.RepoPath = args[i]
			}
		case "-r", "--revision":
			if i+1 < len(args) {
				i++
				parsedArgs.Revision = args[i]
			}
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		case "--theme":
			if i+1 < len(args) {
				i++
				parsedArgs.Theme = args[i]
			}
		case "--log-file":
			if i+1 < len(args) {
				i++
				parsedArgs.LogFile = args[i]
			}
		case "--inline":
			parsedArgs.Inline = true
		case "--no-watch":
			parsedArgs.NoWatch = true
		case "--plain":
			parsedArgs.Plain = true
		case "--json":
			parsedArgs.JSON = true
		case "--debug":
			parsedArgs.Debug = true
		default:
			switch {
			case strings.HasPrefix(arg, "--repo="):
				parsedArgs.RepoPath = strings.TrimPrefix(arg, "--repo=")
			case strings.HasPrefix(arg, "--revision="):
				parsedArgs.Revision = strings.TrimPrefix(arg, "--revision=")
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--theme="):
				parsedArgs.Theme = strings.TrimPrefix(arg, "--theme=")
			case strings.HasPrefix(arg, "--log-file="):
				parsedArgs.LogFile = strings.TrimPrefix(arg, "--log-file=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseDiffArgs parses diff command specific arguments.
func parseDiffArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Path = parser.Positional(0)
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Subcommand = parser.Subcommand()
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = parser.Positional(2)
}
