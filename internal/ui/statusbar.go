// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
//
// This file renders the bottom status bar. Three layouts cover narrow,
// medium, and wide terminals; the wide layout right-aligns the shortcut
// hints against the state section.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/lediff/internal/config"
	"github.com/jeranaias/lediff/internal/ui/styles"
	"github.com/jeranaias/lediff/internal/viewer"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// renderStatusBar renders the bottom bar in the layout matching the width.
func (m Model) renderStatusBar() string {
	switch m.theme.GetLayoutMode() {
	case styles.LayoutNarrow:
		return m.statusBarNarrow()
	case styles.LayoutMedium:
		return m.statusBarMedium()
	default:
		return m.statusBarWide()
	}
}

// statusBarNarrow renders a compact bar: mode letter, watch glyph, stats.
func (m Model) statusBarNarrow() string {
	mode := "S"
	if m.viewMode == config.ViewModeInline {
		mode = "I"
	}

	parts := []string{
		m.theme.ShortcutKey.Render(mode),
		m.watchIndicator(true),
	}
	if stats := m.statsPart(); stats != "" {
		parts = append(parts, stats)
	}

	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, " "))
}

// statusBarMedium renders mode, watch state, stats, and the help hint.
func (m Model) statusBarMedium() string {
	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	parts := []string{
		m.theme.ShortcutKey.Render(m.modeLabel()),
		m.watchIndicator(false),
	}
	if stats := m.statsPart(); stats != "" {
		parts = append(parts, stats)
	}
	if pos := m.scrollPart(); pos != "" {
		parts = append(parts, pos)
	}
	parts = append(parts, m.theme.ShortcutKey.Render("?")+m.theme.ShortcutDesc.Render(" help"))

	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, separator))
}

// statusBarWide renders the full bar with shortcuts right-aligned.
func (m Model) statusBarWide() string {
	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	leftParts := []string{
		m.theme.ShortcutKey.Render(m.modeLabel()),
		m.watchIndicator(false),
	}
	if stats := m.statsPart(); stats != "" {
		leftParts = append(leftParts, stats)
	}
	if pos := m.scrollPart(); pos != "" {
		leftParts = append(leftParts, pos)
	}
	left := strings.Join(leftParts, separator)

	shortcuts := []struct{ key, desc string }{
		{"j/k", "files"},
		{"s", "mode"},
		{"r", "refresh"},
		{"?", "help"},
		{"q", "quit"},
	}
	rightParts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		rightParts = append(rightParts,
			m.theme.ShortcutKey.Render(sc.key)+m.theme.ShortcutDesc.Render(" "+sc.desc))
	}
	right := strings.Join(rightParts, "  ")

	// The bar style pads one column each side.
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return m.theme.StatusBar.Width(m.width).Render(left)
	}

	return m.theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// =============================================================================
// BAR SEGMENTS
// =============================================================================

// modeLabel names the active diff presentation mode.
func (m Model) modeLabel() string {
	if m.viewMode == config.ViewModeInline {
		return "inline"
	}
	return "side-by-side"
}

// watchIndicator renders the watch state. Compact mode shows only the glyph.
func (m Model) watchIndicator(compact bool) string {
	on, off := "●", "○"
	if m.theme.ColorProfile == termenv.Ascii {
		on, off = "*", "-"
	}

	if m.watching {
		if compact {
			return m.theme.WatchActive.Render(on)
		}
		return m.theme.WatchActive.Render(on + " watch")
	}
	if compact {
		return m.theme.WatchInactive.Render(off)
	}
	return m.theme.WatchInactive.Render(off + " watch")
}

// statsPart renders the insertion and deletion counts of the loaded diff.
func (m Model) statsPart() string {
	res, ok := m.cache.Result()
	if !ok {
		return ""
	}
	return m.theme.StatsInsertions.Render(fmt.Sprintf("+%d", res.Stats.Insertions)) +
		" " +
		m.theme.StatsDeletions.Render(fmt.Sprintf("-%d", res.Stats.Deletions))
}

// scrollPart renders the scroll position of the loaded diff as a percentage.
func (m Model) scrollPart() string {
	if m.cache.State() != viewer.StateLoaded {
		return ""
	}
	percent := m.viewport.ScrollPercent() * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return m.theme.ShortcutDesc.Render(fmt.Sprintf("%3.0f%%", percent))
}
