// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the interactive diff viewer as a Bubble Tea model.
//
// The screen is a header bar, a sidebar listing the working-copy changes, a
// scrollable diff column, and a status bar. Selection moves through the
// sidebar with vim-like keys; each selection change asks the single-slot
// cache whether a diff build is needed and dispatches one as a Bubble Tea
// command when it is. Builds run off the update loop and deliver DiffBuiltMsg
// values; the cache rejects results whose path no longer matches the
// selection in flight, so a fast j/j/j run settles on the last file without
// flicker from the abandoned builds.
//
// # Layout
//
// Three responsive layouts keyed on terminal width: narrow terminals hide
// the sidebar, medium terminals compress the status bar, wide terminals show
// everything including right-aligned shortcut hints.
//
// # Rendering
//
// Diff rows are plain strings handed to a bubbles viewport. Every row is
// built to the exact column budget: line-number gutters are fixed width,
// highlighted spans are truncated at rune boundaries, and changed rows are
// padded so their background tint reaches the pane edge.
package ui
