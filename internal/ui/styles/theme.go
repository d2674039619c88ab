// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lediff TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	HeaderPath  lipgloss.Style
	HeaderMeta  lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar             lipgloss.Style
	SidebarTitle        lipgloss.Style
	SidebarItem         lipgloss.Style
	SidebarItemSelected lipgloss.Style
	SidebarEmpty        lipgloss.Style

	// Per-status symbol styles used in the sidebar and header
	FileAdded    lipgloss.Style
	FileModified lipgloss.Style
	FileDeleted  lipgloss.Style
	FileRenamed  lipgloss.Style

	// ==========================================================================
	// DIFF VIEW STYLES
	// ==========================================================================

	DiffPane            lipgloss.Style
	PaneDivider         lipgloss.Style
	GutterNumber        lipgloss.Style
	DiffEqualLine       lipgloss.Style
	DiffInsertedLine    lipgloss.Style
	DiffDeletedLine     lipgloss.Style
	DiffPlaceholderLine lipgloss.Style
	PrefixInserted      lipgloss.Style
	PrefixDeleted       lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar       lipgloss.Style
	ShortcutKey     lipgloss.Style
	ShortcutDesc    lipgloss.Style
	StatsInsertions lipgloss.Style
	StatsDeletions  lipgloss.Style
	WatchActive     lipgloss.Style
	WatchInactive   lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner     lipgloss.Style
	LoadingText lipgloss.Style

	// ==========================================================================
	// HELP OVERLAY STYLES
	// ==========================================================================

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	// ==========================================================================
	// MISC STYLES
	// ==========================================================================

	ErrorText lipgloss.Style
	EmptyHint lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Background(TitleBarBg).
		Foreground(TextPrimary).
		Padding(0, 2)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rust)

	t.HeaderPath = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.HeaderMeta = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Sidebar. Rows pad themselves to the column width and carry their own
	// backgrounds; the container only draws the dividing border.
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.SidebarItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true).
		Padding(0, 1)

	t.SidebarEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(0, 1)

	t.FileAdded = lipgloss.NewStyle().
		Foreground(StatusAdded).
		Bold(true)

	t.FileModified = lipgloss.NewStyle().
		Foreground(StatusModified).
		Bold(true)

	t.FileDeleted = lipgloss.NewStyle().
		Foreground(StatusDeleted).
		Bold(true)

	t.FileRenamed = lipgloss.NewStyle().
		Foreground(StatusRenamed).
		Bold(true)

	// Diff view
	t.DiffPane = lipgloss.NewStyle().
		Background(Surface)

	t.PaneDivider = lipgloss.NewStyle().
		Foreground(Overlay)

	t.GutterNumber = lipgloss.NewStyle().
		Foreground(LineNumber)

	t.DiffEqualLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.DiffInsertedLine = lipgloss.NewStyle().
		Background(DiffInsertedBg)

	t.DiffDeletedLine = lipgloss.NewStyle().
		Background(DiffDeletedBg)

	t.DiffPlaceholderLine = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PrefixInserted = lipgloss.NewStyle().
		Foreground(StatusAdded).
		Bold(true)

	t.PrefixDeleted = lipgloss.NewStyle().
		Foreground(StatusDeleted).
		Bold(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(RustBright).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatsInsertions = lipgloss.NewStyle().
		Foreground(StatusAdded).
		Bold(true)

	t.StatsDeletions = lipgloss.NewStyle().
		Foreground(StatusDeleted).
		Bold(true)

	t.WatchActive = lipgloss.NewStyle().
		Foreground(StatusAdded)

	t.WatchInactive = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(RustBright).
		Bold(true)

	t.LoadingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Help overlay
	t.HelpBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rust).
		Padding(1, 3)

	t.HelpTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rust)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(RustBright).
		Bold(true)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Misc
	t.ErrorText = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.EmptyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// Symbols returns the status glyph set matching the terminal's capabilities.
func (t *Theme) Symbols() StatusSymbolSet {
	if t.ColorProfile == termenv.Ascii {
		return ASCIIStatusSymbols
	}
	return StatusSymbols
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
