// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the diff viewer interface for the TUI.
//
// This file renders the diff body: one styled row per unified diff line,
// either as two aligned panes or as a single inline column. Rows are built
// as plain strings and handed to the viewport for scrolling.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/jeranaias/lediff/internal/diff"
	"github.com/jeranaias/lediff/internal/highlight"
	"github.com/jeranaias/lediff/internal/ui/styles"
	"github.com/jeranaias/lediff/internal/viewer"
)

// gutterWidth is the footprint of one line-number column: four digits and a
// trailing space. Placeholder cells render the same footprint as blanks.
const gutterWidth = 5

// =============================================================================
// SIDE-BY-SIDE RENDERING
// =============================================================================

// renderSideBySide builds one row per unified line: the old pane cell, a
// divider, and the new pane cell. Both panes always have the same number of
// rows, so row i of either pane describes unified line i.
func (m Model) renderSideBySide(res viewer.Result) []string {
	width := m.viewport.Width
	if width < 20 {
		width = 20
	}

	// One column for the divider; the new pane absorbs the odd column.
	leftWidth := (width - 1) / 2
	rightWidth := width - 1 - leftWidth

	divider := m.theme.PaneDivider.Render(m.dividerGlyph())

	rows := make([]string, 0, len(res.OldPane))
	for i := range res.OldPane {
		oldCell := m.renderPaneCell(res.OldPane[i], res.OldPane[i].OldLine, res.Rendered[i], leftWidth)
		newCell := m.renderPaneCell(res.NewPane[i], res.NewPane[i].NewLine, res.Rendered[i], rightWidth)
		rows = append(rows, oldCell+divider+newCell)
	}

	return rows
}

// renderPaneCell renders one pane cell at exactly total columns: a gutter
// with the side's line number, then the highlighted content over the row
// tint. Placeholder cells come back as bare padding so the missing side
// reads as empty.
func (m Model) renderPaneCell(cell diff.SplitLine, lineNo int, rendered highlight.RenderedLine, total int) string {
	if total < gutterWidth+1 {
		total = gutterWidth + 1
	}

	if cell.Placeholder {
		return strings.Repeat(" ", total)
	}

	contentWidth := total - gutterWidth
	rowStyle := m.rowStyleFor(cell.Kind)

	return m.gutter(lineNo) + renderSpans(rendered, contentWidth, m.cfg.UI.TabWidth, rowStyle)
}

// =============================================================================
// INLINE RENDERING
// =============================================================================

// renderInline builds one row per unified line in the traditional single
// column layout: both line-number gutters, a change prefix, then content.
func (m Model) renderInline(res viewer.Result) []string {
	width := m.viewport.Width
	if width < 20 {
		width = 20
	}

	// Two gutters plus the two-character prefix column.
	contentWidth := width - 2*gutterWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	rows := make([]string, 0, len(res.Unified))
	for i, line := range res.Unified {
		var sb strings.Builder
		sb.WriteString(m.gutter(line.OldLine))
		sb.WriteString(m.gutter(line.NewLine))

		rowStyle := m.rowStyleFor(line.Kind)
		switch line.Kind {
		case diff.Inserted:
			sb.WriteString(m.theme.PrefixInserted.Background(styles.DiffInsertedBg).Render("+ "))
		case diff.Deleted:
			sb.WriteString(m.theme.PrefixDeleted.Background(styles.DiffDeletedBg).Render("- "))
		default:
			sb.WriteString("  ")
		}

		sb.WriteString(renderSpans(res.Rendered[i], contentWidth, m.cfg.UI.TabWidth, rowStyle))
		rows = append(rows, sb.String())
	}

	return rows
}

// =============================================================================
// ROW PIECES
// =============================================================================

// gutter formats one line-number column. Zero means the line has no number
// on that side and the column stays blank.
func (m Model) gutter(n int) string {
	if !m.cfg.UI.ShowLineNumbers || n <= 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	return m.theme.GutterNumber.Render(fmt.Sprintf("%4d ", n))
}

// rowStyleFor returns the base style of a diff row. Inserted and deleted
// rows carry their background tint; every highlighted span is rendered over
// that same style so the tint covers the whole content area.
func (m Model) rowStyleFor(kind diff.Kind) lipgloss.Style {
	switch kind {
	case diff.Inserted:
		return m.theme.DiffInsertedLine
	case diff.Deleted:
		return m.theme.DiffDeletedLine
	default:
		return m.theme.DiffEqualLine
	}
}

// renderSpans renders a highlighted line over rowStyle at exactly budget
// columns. Tabs expand to spaces before width accounting, content past the
// budget is cut at a rune boundary, and the remainder is padded so the row
// tint reaches the pane edge.
func renderSpans(line highlight.RenderedLine, budget, tabWidth int, rowStyle lipgloss.Style) string {
	if budget <= 0 {
		return ""
	}

	var sb strings.Builder
	used := 0

	for _, span := range line.Spans {
		if used >= budget {
			break
		}

		text := expandTabs(span.Text, tabWidth)
		if text == "" {
			continue
		}

		text = runewidth.Truncate(text, budget-used, "")
		if text == "" {
			break
		}

		style := rowStyle
		if span.Color != "" {
			style = style.Foreground(lipgloss.Color(span.Color))
		}
		sb.WriteString(style.Render(text))
		used += runewidth.StringWidth(text)
	}

	if used < budget {
		sb.WriteString(rowStyle.Render(strings.Repeat(" ", budget-used)))
	}

	return sb.String()
}

// expandTabs replaces tabs with a fixed run of spaces. This is fixed-width
// expansion, not tab stops; spans do not know their start column.
func expandTabs(s string, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// dividerGlyph returns the pane divider, degraded for ASCII terminals.
func (m Model) dividerGlyph() string {
	if m.theme.ColorProfile == termenv.Ascii {
		return "|"
	}
	return "│"
}
