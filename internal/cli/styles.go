// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for lediff CLI output.
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(20)

	// ValueStyle is used for regular values
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// SuccessStyle is used for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for warnings
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Yellow/Orange

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray
)

// =============================================================================
// DIFF OUTPUT STYLES
// =============================================================================

var (
	// DiffHeaderStyle marks the ---/+++ file header lines
	DiffHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	// DiffHunkStyle marks @@ hunk range lines
	DiffHunkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("38")) // Cyan

	// DiffAddStyle marks inserted lines
	DiffAddStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	// DiffDelStyle marks deleted lines
	DiffDelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red
)

// =============================================================================
// FILE STATUS STYLES
// =============================================================================

var (
	// StatusAddedStyle colors added file markers
	StatusAddedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")) // Green

	// StatusModifiedStyle colors modified file markers
	StatusModifiedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // Yellow

	// StatusDeletedStyle colors deleted file markers
	StatusDeletedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")) // Red

	// StatusRenamedStyle colors renamed file markers
	StatusRenamedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("75")) // Blue
)

// =============================================================================
// HELPERS
// =============================================================================

// RenderSeparator renders a horizontal separator line of the specified width.
// Default width is 70 characters if not specified.
func RenderSeparator(width ...int) string {
	w := 70
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("=", w))
}

// RenderConditional renders text with style if colors are enabled,
// otherwise returns the text unmodified.
func RenderConditional(style lipgloss.Style, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return style.Render(text)
}
