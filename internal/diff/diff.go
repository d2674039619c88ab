// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes line-level diffs between two versions of a file.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// =============================================================================
// LINE TYPES
// =============================================================================

// Kind classifies a single diff line.
type Kind int

const (
	// Equal represents a line present in both versions
	Equal Kind = iota
	// Inserted represents a line present only in the new version
	Inserted
	// Deleted represents a line present only in the old version
	Deleted
)

// String returns the string representation of a line kind.
func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Prefix returns the unified-diff prefix character for this kind.
func (k Kind) Prefix() string {
	switch k {
	case Equal:
		return " "
	case Inserted:
		return "+"
	case Deleted:
		return "-"
	default:
		return " "
	}
}

// =============================================================================
// DIFF LINE
// =============================================================================

// Line is a single tagged line of a computed diff. Content carries no
// trailing newline. OldLine and NewLine are 1-based; 0 means the line has no
// number on that side (inserted lines have no old number, deleted lines no
// new number).
type Line struct {
	Kind    Kind   // Equal, Inserted, or Deleted
	Content string // Line text without the trailing newline
	OldLine int    // Line number in the old version, 0 if absent
	NewLine int    // Line number in the new version, 0 if absent
}

// =============================================================================
// STATS
// =============================================================================

// Stats summarizes a diff as insertion and deletion counts.
type Stats struct {
	Insertions int
	Deletions  int
}

// String formats stats in the conventional "+N -M" form.
func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Insertions, s.Deletions)
}

// Tally counts insertions and deletions across a line sequence.
func Tally(lines []Line) Stats {
	var s Stats
	for _, line := range lines {
		switch line.Kind {
		case Inserted:
			s.Insertions++
		case Deleted:
			s.Deletions++
		}
	}
	return s
}

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// Compute diffs oldText against newText at line granularity and returns the
// full tagged sequence: every line of both versions appears exactly once,
// equal runs included. Deletions precede insertions within a changed region.
// The result is deterministic for a given input pair.
func Compute(oldText, newText string) []Line {
	oldNorm := normalizeTrailingNewline(oldText)
	newNorm := normalizeTrailingNewline(newText)

	dmp := diffmatchpatch.New()

	// Diff at line granularity: map each distinct line to a rune, diff the
	// rune strings, then decode runes back to lines through lineArray.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldNorm, newNorm)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			if idx := int(r); idx >= 0 && idx < len(lineArray) {
				out = append(out, strings.TrimSuffix(lineArray[idx], "\n"))
			}
		}
		return out
	}

	var lines []Line
	oldNum, newNum := 1, 1

	for _, d := range diffs {
		for _, content := range decode(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				lines = append(lines, Line{
					Kind:    Equal,
					Content: content,
					OldLine: oldNum,
					NewLine: newNum,
				})
				oldNum++
				newNum++
			case diffmatchpatch.DiffDelete:
				lines = append(lines, Line{
					Kind:    Deleted,
					Content: content,
					OldLine: oldNum,
				})
				oldNum++
			case diffmatchpatch.DiffInsert:
				lines = append(lines, Line{
					Kind:    Inserted,
					Content: content,
					NewLine: newNum,
				})
				newNum++
			}
		}
	}

	return lines
}

// normalizeTrailingNewline guarantees non-empty text ends with a newline so
// line decoding is uniform and a final newline never yields a phantom empty
// last line. Empty text stays empty and produces zero lines.
func normalizeTrailingNewline(text string) string {
	if text == "" {
		return ""
	}
	if !strings.HasSuffix(text, "\n") {
		return text + "\n"
	}
	return text
}
