// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
//
// This file composes the full screen: header bar, sidebar, diff column, and
// status bar. Fixed components are rendered first and measured so the body
// always fills exactly the remaining rows.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/lediff/internal/ui/styles"
	"github.com/jeranaias/lediff/internal/viewer"
)

// =============================================================================
// SCREEN COMPOSITION
// =============================================================================

func (m Model) render() string {
	if !m.ready {
		return "Loading..."
	}

	// The help overlay replaces the normal UI entirely.
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	status := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	main := m.renderMain(bodyHeight)

	// Force the main column to the computed height so a sizing mismatch
	// degrades to clipping instead of pushing the status bar off screen.
	if lipgloss.Height(main) != bodyHeight {
		main = lipgloss.NewStyle().
			Height(bodyHeight).
			MaxHeight(bodyHeight).
			Render(main)
	}

	var body string
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		body = main
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(bodyHeight), main)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// =============================================================================
// HEADER
// =============================================================================

// renderHeader renders the top bar: brand, selected file with its status,
// and the diff base revision on the right.
func (m Model) renderHeader() string {
	brand := m.theme.HeaderBrand.Render("lediff")
	right := m.theme.HeaderMeta.Render("base " + m.repo.Revision())

	var middle string
	if f, ok := m.SelectedFile(); ok {
		_, symStyle := m.statusGlyph(f.Status)
		label := symStyle.Render(f.Status.String())

		// Room for the path between the brand and the right section; the
		// header style pads two columns each side.
		budget := m.width - 4 - lipgloss.Width(brand) - lipgloss.Width(right) - lipgloss.Width(label) - 3
		if budget < 4 {
			budget = 4
		}
		path := runewidth.Truncate(f.Path, budget, "…")
		middle = "  " + m.theme.HeaderPath.Render(path) + " " + label
	}

	left := brand + middle
	gap := m.width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return m.theme.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// =============================================================================
// MAIN COLUMN
// =============================================================================

// renderMain renders the diff column: the scrolled diff when one is loaded,
// otherwise the state appropriate placeholder.
func (m Model) renderMain(height int) string {
	width := m.mainWidth()

	switch {
	case m.statusErr != nil:
		message := styles.RenderError("jj status failed: " + m.statusErr.Error())
		hint := m.theme.EmptyHint.Render("Press r to retry.")
		return place(width, height, lipgloss.JoinVertical(lipgloss.Center, message, "", hint))

	case m.statusLoading && len(m.files) == 0:
		return place(width, height, m.spinner.View()+" "+m.theme.LoadingText.Render("Reading working copy"))

	case len(m.files) == 0:
		return place(width, height, m.theme.EmptyHint.Render("Working copy is clean."))
	}

	switch m.cache.State() {
	case viewer.StateLoading:
		label := "Loading diff"
		if path := m.cache.LoadingPath(); path != "" {
			label = "Loading " + runewidth.Truncate(path, width-12, "…")
		}
		return place(width, height, m.spinner.View()+" "+m.theme.LoadingText.Render(label))

	case viewer.StateLoaded:
		return m.viewport.View()

	default:
		return place(width, height, m.theme.EmptyHint.Render("Select a file to view its diff."))
	}
}

// place centers content in a box of the given size.
func place(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

// renderHelpOverlay renders the full-screen help box.
func (m Model) renderHelpOverlay() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	sectionStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Bold(true)

	var sb strings.Builder
	sb.WriteString(m.theme.HelpTitle.Render("Keyboard shortcuts"))
	sb.WriteString("\n")

	for _, section := range HelpSections() {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render(section.Title))
		sb.WriteString("\n")
		for _, item := range section.Items {
			sb.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.HelpKey.Render(fmt.Sprintf("%-12s", item.Key)),
				m.theme.HelpDesc.Render(item.Desc)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.theme.EmptyHint.Render("Press ? to close"))

	box := m.theme.HelpBox.Render(sb.String())
	return place(width, height, box)
}
