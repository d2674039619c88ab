// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the lediff TUI.

This package defines the color palette, theme, and spinner animations used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Rust - Primary accent for the header brand and active highlights
  - RustBright - Hover/emphasis variant
  - RustDeep - Pressed states and borders

## Working-Copy Status Colors

Each file status has a dedicated color, used for sidebar symbols, header
labels, and CLI output:

	StatusAdded    - New files (green)
	StatusModified - Changed files (light green)
	StatusDeleted  - Removed files (red)
	StatusRenamed  - Moved files (yellow)

## Diff Colors

	DiffInsertedBg - Row background tint for inserted lines
	DiffDeletedBg  - Row background tint for deleted lines
	LineNumber     - Gutter line numbers

## Surface Colors

Layered surface system for depth:

	Surface       - Diff pane background
	SurfaceDim    - Deepest background
	SurfaceBright - Sidebar and raised panels
	SelectionBg   - Selected sidebar row

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

Status glyphs degrade to ASCII on terminals without Unicode:

	symbols := theme.Symbols()
	fmt.Print(symbols.Modified) // "●" or "*"

# Animation System (animations.go)

Pre-defined spinner styles:

	LineSpinner  - Simple line rotation (default loading spinner)
	DotsSpinner  - Classic three-dot animation
	PulseSpinner - Pulsing indicator

# Usage Example

	import "github.com/jeranaias/lediff/internal/ui/styles"

	// Use adaptive colors
	gutterStyle := lipgloss.NewStyle().
		Background(styles.Surface).
		Foreground(styles.LineNumber)

	// Use spinner configuration
	frames := styles.LineSpinner.Frames
	interval := styles.LineSpinner.Duration()
*/
package styles
