// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

// =============================================================================
// SIDE-BY-SIDE SPLIT
// =============================================================================

// SplitLine is one cell of a side-by-side pane. A placeholder cell is blank
// filler that keeps the two panes aligned: Equal kind, empty content, no line
// numbers.
type SplitLine struct {
	Line
	Placeholder bool
}

// placeholder returns the blank filler cell.
func placeholder() SplitLine {
	return SplitLine{Line: Line{Kind: Equal}, Placeholder: true}
}

// Split maps a unified line sequence onto two panes of equal length by pure
// positional rules: equal lines are duplicated into both panes, a deleted
// line occupies the old pane opposite a placeholder, an inserted line
// occupies the new pane opposite a placeholder. No pairing heuristics are
// applied; both panes always come back the same length.
func Split(unified []Line) (oldPane, newPane []SplitLine) {
	oldPane = make([]SplitLine, 0, len(unified))
	newPane = make([]SplitLine, 0, len(unified))

	for _, line := range unified {
		switch line.Kind {
		case Equal:
			oldPane = append(oldPane, SplitLine{Line: line})
			newPane = append(newPane, SplitLine{Line: line})
		case Deleted:
			oldPane = append(oldPane, SplitLine{Line: line})
			newPane = append(newPane, placeholder())
		case Inserted:
			oldPane = append(oldPane, placeholder())
			newPane = append(newPane, SplitLine{Line: line})
		}
	}

	return oldPane, newPane
}
