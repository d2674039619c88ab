// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution.
//
// This test file covers argument parsing, command dispatch, and the
// pure helpers behind the status and diff commands.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jeranaias/lediff/internal/vcs"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"get"},
			wantSub: "get",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"set", "--file", "x.toml"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("file") != "x.toml" {
					t.Errorf("Flag(file) = %q, want %q", p.Flag("file"), "x.toml")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"get", "--format=json"},
			wantSub: "get",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("format") != "json" {
					t.Errorf("Flag(format) = %q, want %q", p.Flag("format"), "json")
				}
			},
		},
		{
			name:    "boolean flag",
			args:    []string{"show", "--json"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be true")
				}
			},
		},
		{
			name:    "explicit boolean value",
			args:    []string{"show", "--json=false"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be false")
				}
				if !p.HasFlag("json") {
					t.Error("HasFlag(json) should be true")
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"set", "ui.theme", "dracula"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 3 {
					t.Errorf("PositionalCount() = %d, want 3", p.PositionalCount())
				}
				if p.Positional(1) != "ui.theme" {
					t.Errorf("Positional(1) = %q, want %q", p.Positional(1), "ui.theme")
				}
				if p.Positional(2) != "dracula" {
					t.Errorf("Positional(2) = %q, want %q", p.Positional(2), "dracula")
				}
			},
		},
		{
			name:    "positional out of bounds",
			args:    []string{"get"},
			wantSub: "get",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Positional(5) != "" {
					t.Error("Out of bounds positional should be empty")
				}
				if len(p.PositionalFrom(3)) != 0 {
					t.Error("Out of bounds PositionalFrom should be empty")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args)
			if parser.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", parser.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, parser)
			}
		})
	}
}

// =============================================================================
// COMMAND PARSING TESTS (cli.go)
// =============================================================================

func TestParse_DefaultsToTUI(t *testing.T) {
	cmd, args := Parse(nil)
	if cmd != CmdTUI {
		t.Errorf("Expected CmdTUI, got %v", cmd)
	}
	if args.Revision != "" || args.RepoPath != "" {
		t.Error("Expected empty args with no flags")
	}
}

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		arg  string
		want Command
	}{
		{"tui", CmdTUI},
		{"status", CmdStatus},
		{"s", CmdStatus},
		{"diff", CmdDiff},
		{"d", CmdDiff},
		{"config", CmdConfig},
		{"version", CmdVersion},
		{"-v", CmdVersion},
		{"--version", CmdVersion},
		{"help", CmdHelp},
		{"-h", CmdHelp},
		{"--help", CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			cmd, _ := Parse([]string{tt.arg})
			if cmd != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.arg, cmd, tt.want)
			}
		})
	}
}

func TestParse_UnknownFallsBackToTUI(t *testing.T) {
	cmd, args := Parse([]string{"bogus", "extra"})
	if cmd != CmdTUI {
		t.Errorf("Expected CmdTUI for unknown command, got %v", cmd)
	}
	if len(args.Raw) != 2 || args.Raw[0] != "bogus" {
		t.Errorf("Expected raw args preserved, got %v", args.Raw)
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{
		"-r", "@",
		"--repo", "/work/repo",
		"--theme", "dracula",
		"--log-file", "/tmp/lediff.log",
		"--inline",
		"--no-watch",
		"--plain",
		"--debug",
	})

	if cmd != CmdTUI {
		t.Errorf("Expected CmdTUI, got %v", cmd)
	}
	if args.Revision != "@" {
		t.Errorf("Expected revision @, got %q", args.Revision)
	}
	if args.RepoPath != "/work/repo" {
		t.Errorf("Expected repo path /work/repo, got %q", args.RepoPath)
	}
	if args.Theme != "dracula" {
		t.Errorf("Expected theme dracula, got %q", args.Theme)
	}
	if args.LogFile != "/tmp/lediff.log" {
		t.Errorf("Expected log file /tmp/lediff.log, got %q", args.LogFile)
	}
	if !args.Inline || !args.NoWatch || !args.Plain || !args.Debug {
		t.Error("Expected all boolean flags set")
	}
}

func TestParse_GlobalFlagsEqualsForm(t *testing.T) {
	_, args := Parse([]string{"--revision=@", "--repo=/work", "--theme=nord", "status"})

	if args.Revision != "@" {
		t.Errorf("Expected revision @, got %q", args.Revision)
	}
	if args.RepoPath != "/work" {
		t.Errorf("Expected repo /work, got %q", args.RepoPath)
	}
	if args.Theme != "nord" {
		t.Errorf("Expected theme nord, got %q", args.Theme)
	}
}

func TestParse_GlobalFlagsBeforeAndAfterCommand(t *testing.T) {
	cmd, args := Parse([]string{"status", "--json", "-r", "@"})

	if cmd != CmdStatus {
		t.Errorf("Expected CmdStatus, got %v", cmd)
	}
	if !args.JSON {
		t.Error("Expected --json recognized after the command")
	}
	if args.Revision != "@" {
		t.Errorf("Expected revision @, got %q", args.Revision)
	}
}

func TestParse_DiffPath(t *testing.T) {
	cmd, args := Parse([]string{"diff", "src/main.rs"})
	if cmd != CmdDiff {
		t.Errorf("Expected CmdDiff, got %v", cmd)
	}
	if args.Path != "src/main.rs" {
		t.Errorf("Expected path src/main.rs, got %q", args.Path)
	}

	_, args = Parse([]string{"diff"})
	if args.Path != "" {
		t.Errorf("Expected empty path, got %q", args.Path)
	}
}

func TestParse_ConfigSubcommands(t *testing.T) {
	_, args := Parse([]string{"config", "set", "ui.theme", "dracula"})
	if args.Subcommand != "set" {
		t.Errorf("Expected subcommand set, got %q", args.Subcommand)
	}
	if args.ConfigKey != "ui.theme" {
		t.Errorf("Expected key ui.theme, got %q", args.ConfigKey)
	}
	if args.ConfigVal != "dracula" {
		t.Errorf("Expected value dracula, got %q", args.ConfigVal)
	}

	_, args = Parse([]string{"config", "get", "repo.revision"})
	if args.Subcommand != "get" || args.ConfigKey != "repo.revision" {
		t.Errorf("Expected get repo.revision, got %q %q", args.Subcommand, args.ConfigKey)
	}

	_, args = Parse([]string{"config"})
	if args.Subcommand != "" {
		t.Errorf("Expected empty subcommand, got %q", args.Subcommand)
	}
}

// =============================================================================
// ERROR HANDLING TESTS (errors.go)
// =============================================================================

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"validation error", &ValidationError{Field: "key", Reason: "bad"}, ExitUsageError},
		{"not found error", &NotFoundError{Resource: "file", ID: "x"}, ExitNotFoundError},
		{"wrapped not found", fmt.Errorf("diff: %w", &NotFoundError{Resource: "file", ID: "x"}), ExitNotFoundError},
		{"config error by message", errors.New("failed to save config"), ExitConfigError},
		{"generic error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := &ValidationError{
		Field:   "key",
		Value:   "bogus.key",
		Reason:  "unknown config key",
		Example: "lediff config keys",
	}

	msg := err.Error()
	if !strings.Contains(msg, "invalid key") {
		t.Error("Expected the field in the message")
	}
	if !strings.Contains(msg, "bogus.key") {
		t.Error("Expected the value in the message")
	}
	if !strings.Contains(msg, "Example: lediff config keys") {
		t.Error("Expected the example in the message")
	}
}

func TestErrMissingArgument(t *testing.T) {
	err := ErrMissingArgument("key", "lediff config get ui.theme")
	if !strings.Contains(err.Error(), "required argument missing") {
		t.Errorf("Expected the missing argument reason, got %q", err.Error())
	}
	if GetExitCode(err) != ExitUsageError {
		t.Error("Expected a usage error exit code")
	}
}

// =============================================================================
// STATUS AND DIFF HELPERS
// =============================================================================

func TestStatusMarker(t *testing.T) {
	tests := []struct {
		status vcs.Classification
		want   string
	}{
		{vcs.Added, "A"},
		{vcs.Modified, "M"},
		{vcs.Deleted, "D"},
		{vcs.Renamed, "R"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			marker, _ := statusMarker(tt.status)
			if marker != tt.want {
				t.Errorf("Expected marker %q for %v, got %q", tt.want, tt.status, marker)
			}
		})
	}
}

func TestFilterByPath(t *testing.T) {
	files := []vcs.ChangedFile{
		{Path: "src/main.rs", Status: vcs.Modified},
		{Path: "src/new.rs", OldPath: "src/old.rs", Status: vcs.Renamed},
		{Path: "README.md", Status: vcs.Deleted},
	}

	if got := filterByPath(files, "src/main.rs"); len(got) != 1 || got[0].Path != "src/main.rs" {
		t.Errorf("Expected one match by new path, got %v", got)
	}
	if got := filterByPath(files, "src/old.rs"); len(got) != 1 || got[0].Path != "src/new.rs" {
		t.Errorf("Expected the rename matched by old path, got %v", got)
	}
	if got := filterByPath(files, "missing.go"); len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestColorizeUnifiedKeepsContent(t *testing.T) {
	in := "--- a/x.go\n+++ b/x.go\n@@ -1,1 +1,1 @@\n-old\n+new\n"
	out := colorizeUnified(in)

	for _, line := range []string{"--- a/x.go", "+++ b/x.go", "@@ -1,1 +1,1 @@", "-old", "+new"} {
		if !strings.Contains(out, line) {
			t.Errorf("Expected %q preserved in colored output", line)
		}
	}
	if strings.Count(out, "\n") != 5 {
		t.Errorf("Expected 5 lines, got %d", strings.Count(out, "\n"))
	}
}
