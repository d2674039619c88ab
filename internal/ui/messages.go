// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
//
// This file defines all Bubble Tea message types used by the viewer.
// Messages are organized into the following categories:
//   - Status: working-copy change list delivery
//   - Diff: finished diff computations
//   - Watch: repository change notifications from the file watcher
//
// All message types follow Bubble Tea conventions and are immutable.
package ui

import (
	"github.com/jeranaias/lediff/internal/vcs"
	"github.com/jeranaias/lediff/internal/viewer"
)

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// StatusLoadedMsg delivers the working-copy change list. Err is set when the
// status command itself failed; an empty Files with a nil Err means the
// working copy is clean.
type StatusLoadedMsg struct {
	Files []vcs.ChangedFile
	Err   error
}

// =============================================================================
// DIFF MESSAGES
// =============================================================================

// DiffBuiltMsg delivers a finished diff computation. The result is offered
// to the cache, which rejects it if the selection has moved on since the
// computation was dispatched.
type DiffBuiltMsg struct {
	Result viewer.Result
}

// =============================================================================
// WATCH MESSAGES
// =============================================================================

// RepoChangedMsg signals that the file watcher saw the repository change.
// The update loop reloads status and invalidates the cached diff in response,
// unless watching has been toggled off.
type RepoChangedMsg struct{}
