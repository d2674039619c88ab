// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
//
// This file defines keyboard bindings and shortcuts for the viewer.
// File selection uses vim-like j/k movement while paging keys scroll
// the diff body, so both hands stay on the home row.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the diff viewer.
// Each binding supports multiple keys and includes help text for documentation.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	HalfUp     key.Binding
	HalfDown   key.Binding
	ToggleView key.Binding
	Refresh    key.Binding
	Watch      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings for the diff viewer.
// These bindings support both standard terminal navigation and vim-like shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous file"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next file"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "first file"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "last file"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll diff up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll diff down"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle side-by-side/inline"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Watch: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle watch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns a slice of key bindings to show in the short help view.
// These are the most commonly used shortcuts.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleView, k.Help, k.Quit}
}

// FullHelp returns a slice of key bindings to show in the full help view.
// This is organized into groups for better readability.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// File selection
		{k.Up, k.Down, k.Top, k.Bottom},
		// Diff scrolling
		{k.PageUp, k.PageDown, k.HalfUp, k.HalfDown},
		// Actions
		{k.ToggleView, k.Refresh, k.Watch},
		// Meta
		{k.Help, k.Quit},
	}
}

// =============================================================================
// HELP TEXT DATA
// =============================================================================

// HelpSection groups related help entries under a display heading.
type HelpSection struct {
	Title string
	Items []HelpItem
}

// HelpItem is a single help entry with the key label and its description.
type HelpItem struct {
	Key  string
	Desc string
}

// HelpSections returns the entries for the help overlay, grouped the way
// they are displayed.
func HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Files",
			Items: []HelpItem{
				{"up/k", "Previous file"},
				{"down/j", "Next file"},
				{"Home/g", "First file"},
				{"End/G", "Last file"},
			},
		},
		{
			Title: "Diff",
			Items: []HelpItem{
				{"PgUp/PgDn", "Scroll one page"},
				{"C-u/C-d", "Scroll half a page"},
				{"s", "Toggle side-by-side / inline"},
			},
		},
		{
			Title: "Actions",
			Items: []HelpItem{
				{"r", "Refresh working-copy status"},
				{"w", "Toggle file watching"},
				{"?", "Toggle this help"},
				{"q", "Quit"},
			},
		},
	}
}
