// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"reflect"
	"testing"
)

func TestCompute_NewFile(t *testing.T) {
	lines := Compute("", "line1\nline2\nline3")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if line.Kind != Inserted {
			t.Errorf("Line %d: expected Inserted, got %s", i, line.Kind)
		}
		if line.OldLine != 0 {
			t.Errorf("Line %d: expected no old number, got %d", i, line.OldLine)
		}
		if line.NewLine != i+1 {
			t.Errorf("Line %d: expected new number %d, got %d", i, i+1, line.NewLine)
		}
	}
}

func TestCompute_DeletedFile(t *testing.T) {
	lines := Compute("line1\nline2\nline3", "")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if line.Kind != Deleted {
			t.Errorf("Line %d: expected Deleted, got %s", i, line.Kind)
		}
		if line.OldLine != i+1 {
			t.Errorf("Line %d: expected old number %d, got %d", i, i+1, line.OldLine)
		}
		if line.NewLine != 0 {
			t.Errorf("Line %d: expected no new number, got %d", i, line.NewLine)
		}
	}
}

func TestCompute_BothEmpty(t *testing.T) {
	lines := Compute("", "")

	if len(lines) != 0 {
		t.Errorf("Expected no lines for two empty inputs, got %d", len(lines))
	}
}

func TestCompute_IdenticalInputs(t *testing.T) {
	text := "alpha\nbeta\ngamma\n"

	lines := Compute(text, text)

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if line.Kind != Equal {
			t.Errorf("Line %d: expected Equal, got %s", i, line.Kind)
		}
		if line.OldLine != line.NewLine {
			t.Errorf("Line %d: expected matching numbers, got old=%d new=%d",
				i, line.OldLine, line.NewLine)
		}
		if line.OldLine != i+1 {
			t.Errorf("Line %d: expected number %d, got %d", i, i+1, line.OldLine)
		}
	}
}

func TestCompute_SingleLineReplacement(t *testing.T) {
	lines := Compute("a\nb\nc\n", "a\nx\nc\n")

	expected := []Line{
		{Kind: Equal, Content: "a", OldLine: 1, NewLine: 1},
		{Kind: Deleted, Content: "b", OldLine: 2, NewLine: 0},
		{Kind: Inserted, Content: "x", OldLine: 0, NewLine: 2},
		{Kind: Equal, Content: "c", OldLine: 3, NewLine: 3},
	}

	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %+v, got %+v", expected, lines)
	}
}

func TestCompute_TrailingNewlineIsNotALine(t *testing.T) {
	// A final newline must not produce a phantom empty last line, so the
	// same text with and without it diffs as all-equal.
	lines := Compute("a\nb\nc", "a\nb\nc\n")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line.Kind != Equal {
			t.Errorf("Line %d: expected Equal, got %s", i, line.Kind)
		}
	}
}

func TestCompute_DeletionsPrecedeInsertions(t *testing.T) {
	lines := Compute("a\nold1\nold2\nz\n", "a\nnew1\nnew2\nz\n")

	sawInserted := false
	for i, line := range lines {
		if line.Kind == Inserted {
			sawInserted = true
		}
		if line.Kind == Deleted && sawInserted {
			t.Errorf("Line %d: deletion after insertion within a changed region", i)
		}
	}
}

func TestCompute_LineNumbersStrictlyIncrease(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
	}{
		{
			name:    "interleaved changes",
			oldText: "a\nb\nc\nd\ne\n",
			newText: "a\nx\nc\ny\ne\nf\n",
		},
		{
			name:    "complete rewrite",
			oldText: "one\ntwo\nthree\n",
			newText: "uno\ndos\ntres\ncuatro\n",
		},
		{
			name:    "repeated lines",
			oldText: "a\na\nb\na\n",
			newText: "a\nb\na\na\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Compute(tt.oldText, tt.newText)

			lastOld, lastNew := 0, 0
			for i, line := range lines {
				if line.OldLine > 0 {
					if line.OldLine <= lastOld {
						t.Errorf("Line %d: old number %d not greater than %d",
							i, line.OldLine, lastOld)
					}
					lastOld = line.OldLine
				}
				if line.NewLine > 0 {
					if line.NewLine <= lastNew {
						t.Errorf("Line %d: new number %d not greater than %d",
							i, line.NewLine, lastNew)
					}
					lastNew = line.NewLine
				}
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	oldText := "func main() {\n\tfmt.Println(1)\n}\n"
	newText := "func main() {\n\tfmt.Println(2)\n\tfmt.Println(3)\n}\n"

	first := Compute(oldText, newText)
	second := Compute(oldText, newText)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results across runs, got %+v and %+v",
			first, second)
	}
}

func TestCompute_EveryInputLineAppears(t *testing.T) {
	oldText := "a\nb\nc\nd\n"
	newText := "a\nc\nx\nd\n"

	lines := Compute(oldText, newText)

	oldCount, newCount := 0, 0
	for _, line := range lines {
		if line.OldLine > 0 {
			oldCount++
		}
		if line.NewLine > 0 {
			newCount++
		}
	}

	if oldCount != 4 {
		t.Errorf("Expected 4 old lines represented, got %d", oldCount)
	}
	if newCount != 4 {
		t.Errorf("Expected 4 new lines represented, got %d", newCount)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Equal, "equal"},
		{Inserted, "inserted"},
		{Deleted, "deleted"},
	}

	for _, tt := range tests {
		result := tt.kind.String()
		if result != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, result)
		}
	}
}

func TestKind_Prefix(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Equal, " "},
		{Inserted, "+"},
		{Deleted, "-"},
	}

	for _, tt := range tests {
		result := tt.kind.Prefix()
		if result != tt.expected {
			t.Errorf("Expected '%s', got '%s'", tt.expected, result)
		}
	}
}

func TestTally(t *testing.T) {
	lines := Compute("a\nb\nc\n", "a\nx\ny\nc\n")

	stats := Tally(lines)

	if stats.Insertions != 2 {
		t.Errorf("Expected 2 insertions, got %d", stats.Insertions)
	}
	if stats.Deletions != 1 {
		t.Errorf("Expected 1 deletion, got %d", stats.Deletions)
	}
}

func TestStats_String(t *testing.T) {
	s := Stats{Insertions: 3, Deletions: 1}

	if s.String() != "+3 -1" {
		t.Errorf("Expected '+3 -1', got '%s'", s.String())
	}
}
