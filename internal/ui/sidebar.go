// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/lediff/internal/ui/styles"
	"github.com/jeranaias/lediff/internal/vcs"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// renderSidebar renders the file list column at the given height. When the
// list is taller than the column, the window slides to keep the selection
// visible.
func (m Model) renderSidebar(height int) string {
	// The right border takes one column of the footprint.
	width := m.sidebarWidth() - 1
	if width < 8 {
		width = 8
	}

	title := fmt.Sprintf("Changed files (%d)", len(m.files))
	lines := []string{m.theme.SidebarTitle.Render(runewidth.Truncate(title, width-2, "…"))}

	visible := height - 1
	if visible < 1 {
		visible = 1
	}

	switch {
	case m.statusLoading && len(m.files) == 0:
		lines = append(lines, m.theme.SidebarEmpty.Render("Loading"))

	case len(m.files) == 0:
		lines = append(lines, m.theme.SidebarEmpty.Render("No changes"))

	default:
		start := 0
		if m.selected >= visible {
			start = m.selected - visible + 1
		}
		end := start + visible
		if end > len(m.files) {
			end = len(m.files)
		}
		for i := start; i < end; i++ {
			lines = append(lines, m.renderSidebarRow(m.files[i], i == m.selected, width))
		}
	}

	return m.theme.Sidebar.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderSidebarRow renders one file entry padded to the full row width. The
// status glyph keeps its own color; on the selected row both segments carry
// the selection background so the highlight spans the row.
func (m Model) renderSidebarRow(f vcs.ChangedFile, selected bool, width int) string {
	glyph, symStyle := m.statusGlyph(f.Status)

	textStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	if selected {
		symStyle = symStyle.Background(styles.SelectionBg)
		textStyle = textStyle.Background(styles.SelectionBg).Bold(true)
	}

	// Row layout: " <glyph> <path><pad>", always exactly width columns.
	labelBudget := width - 3
	if labelBudget < 1 {
		labelBudget = 1
	}
	label := runewidth.Truncate(f.Path, labelBudget, "…")

	pad := width - 3 - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}

	return symStyle.Render(" "+glyph) + textStyle.Render(" "+label+strings.Repeat(" ", pad))
}

// statusGlyph returns the display glyph and style for a file status.
func (m Model) statusGlyph(status vcs.Classification) (string, lipgloss.Style) {
	symbols := m.theme.Symbols()
	switch status {
	case vcs.Added:
		return symbols.Added, m.theme.FileAdded
	case vcs.Modified:
		return symbols.Modified, m.theme.FileModified
	case vcs.Deleted:
		return symbols.Deleted, m.theme.FileDeleted
	case vcs.Renamed:
		return symbols.Renamed, m.theme.FileRenamed
	default:
		return " ", m.theme.SidebarItem
	}
}
