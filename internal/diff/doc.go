// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-level diffs and pane layouts for file changes.
//
// This package produces the full tagged line sequence between two versions
// of a file (equal runs included), splits it into aligned side-by-side
// panes, and formats it as a standard unified diff.
//
// # Key Types
//
//   - Kind: Tag of a diff line (equal, inserted, deleted)
//   - Line: Single tagged line with per-side 1-based line numbers
//   - SplitLine: One pane cell, real line or blank placeholder
//   - Hunk: Group of lines with context for unified output
//   - Stats: Insertion and deletion counts
//
// # Usage
//
// Compute a diff between two strings:
//
//	lines := diff.Compute(oldText, newText)
//	stats := diff.Tally(lines)
//
// Split into side-by-side panes of equal length:
//
//	oldPane, newPane := diff.Split(lines)
//
// Render as a unified diff:
//
//	fmt.Print(diff.FormatUnified("main.go", lines))
package diff
