// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package highlight

import (
	"reflect"
	"strings"
	"testing"
)

func TestRender_ReconstructsEveryLine(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		lines    []string
	}{
		{
			name:     "go source",
			filename: "main.go",
			lines: []string{
				"package main",
				"",
				"import \"fmt\"",
				"",
				"func main() {",
				"\tfmt.Println(\"hello\")",
				"}",
			},
		},
		{
			name:     "python source",
			filename: "script.py",
			lines: []string{
				"def greet(name):",
				"    return f\"hi {name}\"",
			},
		},
		{
			name:     "unknown extension",
			filename: "notes.xyzzy42",
			lines: []string{
				"just some text",
				"",
				"<<>> ~~ weird !! punctuation",
			},
		},
		{
			name:     "tabs and unicode",
			filename: "data.txt",
			lines: []string{
				"\tindented",
				"café → bar",
			},
		},
	}

	r := NewRenderer("monokai")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := r.Render(tt.lines, tt.filename)

			if len(rendered) != len(tt.lines) {
				t.Fatalf("Expected %d rendered lines, got %d",
					len(tt.lines), len(rendered))
			}

			for i, line := range rendered {
				if line.Text() != tt.lines[i] {
					t.Errorf("Line %d: spans reassemble to '%s', want '%s'",
						i, line.Text(), tt.lines[i])
				}
			}
		})
	}
}

func TestRender_EmptyInput(t *testing.T) {
	r := NewRenderer("monokai")

	if rendered := r.Render(nil, "main.go"); rendered != nil {
		t.Errorf("Expected nil for empty input, got %d lines", len(rendered))
	}
}

func TestRender_GoSourceGetsColor(t *testing.T) {
	r := NewRenderer("monokai")

	rendered := r.Render([]string{"package main"}, "main.go")

	if len(rendered) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rendered))
	}

	colored := false
	for _, span := range rendered[0].Spans {
		if span.Color != "" {
			colored = true
		}
		if span.Color != "" && !strings.HasPrefix(span.Color, "#") {
			t.Errorf("Expected hex color, got '%s'", span.Color)
		}
	}
	if !colored {
		t.Error("Expected at least one colored span for Go source")
	}
}

func TestRender_StateCarriesAcrossLines(t *testing.T) {
	// A block comment opened on the first line must keep its color on the
	// second: the lexer state survives the line boundary.
	lines := []string{
		"/* first",
		"second */",
	}

	r := NewRenderer("monokai")
	rendered := r.Render(lines, "main.go")

	if len(rendered) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(rendered))
	}
	if len(rendered[0].Spans) == 0 || len(rendered[1].Spans) == 0 {
		t.Fatal("Expected spans on both comment lines")
	}

	first := rendered[0].Spans[0].Color
	second := rendered[1].Spans[0].Color
	if first == "" {
		t.Error("Expected the comment opener to be colored")
	}
	if first != second {
		t.Errorf("Expected comment color to carry over, got '%s' then '%s'",
			first, second)
	}
}

func TestRender_UnknownStyleFallsBack(t *testing.T) {
	r := NewRenderer("no-such-style")

	rendered := r.Render([]string{"x := 1"}, "main.go")

	if len(rendered) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rendered))
	}
	if rendered[0].Text() != "x := 1" {
		t.Errorf("Expected content preserved, got '%s'", rendered[0].Text())
	}
}

func TestRender_Deterministic(t *testing.T) {
	lines := []string{"package main", "var x = 42"}

	r := NewRenderer("monokai")
	first := r.Render(lines, "main.go")
	second := r.Render(lines, "main.go")

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical rendering across calls")
	}
}

func TestRenderedLine_Text(t *testing.T) {
	line := RenderedLine{Spans: []Span{
		{Text: "func ", Color: "#66d9ef"},
		{Text: "main", Color: ""},
		{Text: "()", Color: "#f8f8f2"},
	}}

	if line.Text() != "func main()" {
		t.Errorf("Expected 'func main()', got '%s'", line.Text())
	}
}
