// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"fmt"
	"strings"
)

// =============================================================================
// HUNK GROUPING
// =============================================================================

// contextLines is the number of unchanged lines kept around each change when
// grouping into hunks.
const contextLines = 3

// Hunk is a contiguous run of diff lines with surrounding context, in the
// unified-diff sense.
type Hunk struct {
	OldStart int // First old line number in the hunk, 0 if none
	OldCount int // Number of old lines in the hunk
	NewStart int // First new line number in the hunk, 0 if none
	NewCount int // Number of new lines in the hunk
	Lines    []Line
}

// GroupHunks collapses a full tagged sequence into hunks, keeping up to
// contextLines of unchanged lines around each change and merging hunks whose
// context would overlap. An all-equal sequence yields no hunks.
func GroupHunks(lines []Line) []Hunk {
	type span struct{ start, end int }
	var spans []span

	for i, line := range lines {
		if line.Kind == Equal {
			continue
		}
		start := i - contextLines
		if start < 0 {
			start = 0
		}
		end := i + contextLines
		if end > len(lines)-1 {
			end = len(lines) - 1
		}
		if n := len(spans); n > 0 && start <= spans[n-1].end+1 {
			spans[n-1].end = end
		} else {
			spans = append(spans, span{start, end})
		}
	}

	if len(spans) == 0 {
		return nil
	}

	hunks := make([]Hunk, 0, len(spans))
	for _, s := range spans {
		var h Hunk
		for i := s.start; i <= s.end; i++ {
			line := lines[i]
			h.Lines = append(h.Lines, line)
			if line.OldLine > 0 {
				if h.OldStart == 0 {
					h.OldStart = line.OldLine
				}
				h.OldCount++
			}
			if line.NewLine > 0 {
				if h.NewStart == 0 {
					h.NewStart = line.NewLine
				}
				h.NewCount++
			}
		}
		hunks = append(hunks, h)
	}

	return hunks
}

// =============================================================================
// UNIFIED DIFF FORMAT
// =============================================================================

// FormatUnified renders a tagged line sequence in standard unified diff
// format with a/ and b/ path headers.
func FormatUnified(path string, lines []Line) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- a/%s\n", path))
	sb.WriteString(fmt.Sprintf("+++ b/%s\n", path))

	for _, hunk := range GroupHunks(lines) {
		sb.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount,
			hunk.NewStart, hunk.NewCount))

		for _, line := range hunk.Lines {
			sb.WriteString(line.Kind.Prefix())
			sb.WriteString(line.Content)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
