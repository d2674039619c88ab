// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lediff TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Rust - Primary accent, header brand, active highlights
var Rust = lipgloss.AdaptiveColor{Light: "#A03C0A", Dark: "#BE5014"}

// RustBright - Hover/emphasis variant of the accent
var RustBright = lipgloss.AdaptiveColor{Light: "#BE5014", Dark: "#D25F1E"}

// RustDeep - Darker rust for pressed states and borders
var RustDeep = lipgloss.AdaptiveColor{Light: "#7C2D06", Dark: "#A03C0A"}

// =============================================================================
// WORKING-COPY STATUS COLORS
// =============================================================================

// StatusAdded - Files added in the working copy
var StatusAdded = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#50C878"}

// StatusModified - Files modified in the working copy
var StatusModified = lipgloss.AdaptiveColor{Light: "#4D7C0F", Dark: "#8CC88C"}

// StatusDeleted - Files deleted from the working copy
var StatusDeleted = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#DC5050"}

// StatusRenamed - Files renamed in the working copy
var StatusRenamed = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#DCB450"}

// =============================================================================
// DIFF COLORS
// =============================================================================

// DiffInsertedBg - Row background tint for inserted lines
var DiffInsertedBg = lipgloss.AdaptiveColor{Light: "#DCFCE7", Dark: "#223930"}

// DiffDeletedBg - Row background tint for deleted lines
var DiffDeletedBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#392427"}

// LineNumber - Gutter line numbers and equal-line prefixes
var LineNumber = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#64646E"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main content background (the diff panes)
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E2024"}

// SurfaceDim - Deepest background behind panels
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1A1C20"}

// SurfaceBright - Sidebar and raised panels
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#24262B"}

// TitleBarBg - Header strip background
var TitleBarBg = lipgloss.AdaptiveColor{Light: "#EFEFEF", Dark: "#222428"}

// Overlay - Borders, separators, pane dividers
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#3C4146"}

// OverlayDim - Dimmer overlay for inactive widget fills
var OverlayDim = lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#2A2D32"}

// SelectionBg - Selected sidebar row background
var SelectionBg = lipgloss.AdaptiveColor{Light: "#BFDBFE", Dark: "#373C46"}

// HoverBg - Hovered/focused row background, one step below selection
var HoverBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#2D3036"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#DCDCD7"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6A6A0"}

// TextMuted - Hints, placeholders, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#64646E"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E2024"}

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors for colorblind users
// =============================================================================

// StatusSymbolSet contains the per-status glyphs shown in the sidebar and
// the CLI status listing. Shapes give a visual cue beyond color.
type StatusSymbolSet struct {
	Added    string // New file in the working copy
	Modified string // Changed file
	Deleted  string // Removed file
	Renamed  string // Moved file
}

// StatusSymbols is the default glyph set.
var StatusSymbols = StatusSymbolSet{
	Added:    "+",
	Modified: "●",
	Deleted:  "✕",
	Renamed:  "→",
}

// ASCIIStatusSymbols is the fallback set for terminals without Unicode.
var ASCIIStatusSymbols = StatusSymbolSet{
	Added:    "+",
	Modified: "*",
	Deleted:  "x",
	Renamed:  ">",
}

// =============================================================================
// ACCESSIBILITY: High-contrast pairs for status text on any background
// =============================================================================

// ErrorHighContrast - Bright red with bold, distinct from green even for colorblind
var ErrorHighContrast = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

// WarningHighContrast - Bright amber/orange, deuteranopia-friendly
var WarningHighContrast = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

// =============================================================================
// ACCESSIBILITY: Helper functions for rendering accessible status messages
// =============================================================================

// RenderError renders an error message with an X indicator and high contrast red.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderError(message string) string {
	style := lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)
	return style.Render("[X] " + message)
}

// RenderWarning renders a warning message with a bang indicator and high contrast amber.
// ACCESSIBILITY: Includes shape indicator for colorblind users.
func RenderWarning(message string) string {
	style := lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)
	return style.Render("[!] " + message)
}
