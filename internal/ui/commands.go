// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lediff/internal/vcs"
	"github.com/jeranaias/lediff/internal/viewer"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// LoadStatusCmd creates a command that reads the working-copy change list.
func LoadStatusCmd(repo *vcs.Repo) tea.Cmd {
	return func() tea.Msg {
		files, err := repo.Status(context.Background())
		return StatusLoadedMsg{Files: files, Err: err}
	}
}

// BuildDiffCmd creates a command that computes the full diff for one file.
// The build runs off the update loop; resolution failures surface as empty
// content rather than errors, so the command always delivers a result.
func BuildDiffCmd(builder *viewer.Builder, file vcs.ChangedFile) tea.Cmd {
	return func() tea.Msg {
		return DiffBuiltMsg{Result: builder.Build(context.Background(), file)}
	}
}
