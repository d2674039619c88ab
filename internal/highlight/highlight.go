// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight turns source lines into colored spans for terminal display.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// SPAN TYPES
// =============================================================================

// Span is a run of characters sharing one color. Color is a hex string like
// "#f92672", or "" for the terminal's default foreground.
type Span struct {
	Text  string
	Color string
}

// RenderedLine holds the spans of one source line. Concatenating the span
// texts always reproduces the line content exactly.
type RenderedLine struct {
	Spans []Span
}

// Text reassembles the line content from its spans.
func (l RenderedLine) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// =============================================================================
// RENDERER
// =============================================================================

// Renderer highlights lines against one fixed chroma style.
type Renderer struct {
	style *chroma.Style
}

// NewRenderer returns a renderer for the named chroma style, falling back to
// the chroma default when the name is unknown.
func NewRenderer(styleName string) *Renderer {
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}
	return &Renderer{style: style}
}

// Render highlights lines as one document so lexer state carries across line
// boundaries within the call: a string or comment opened on one line keeps
// its color on the next. The grammar is chosen from the filename extension,
// with content analysis and a plain-text lexer as fallbacks. Every returned
// line satisfies the reconstruction property; a line the tokenizer mangles
// comes back as a single span of the raw content in the default color.
func (r *Renderer) Render(lines []string, filename string) []RenderedLine {
	if len(lines) == 0 {
		return nil
	}

	// Rejoin with a trailing newline so lexers that require one never
	// alter the source underneath the cursor walk.
	source := strings.Join(lines, "\n") + "\n"

	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainLines(lines)
	}

	out := make([]RenderedLine, len(lines))
	cur := 0
	var spans []Span

	flushLine := func() {
		if cur < len(out) {
			out[cur] = RenderedLine{Spans: spans}
		}
		spans = nil
		cur++
	}

	for token := iterator(); token != chroma.EOF; token = iterator() {
		color := r.colorFor(token.Type)
		value := token.Value
		for {
			idx := strings.IndexByte(value, '\n')
			if idx < 0 {
				if value != "" {
					spans = append(spans, Span{Text: value, Color: color})
				}
				break
			}
			if idx > 0 {
				spans = append(spans, Span{Text: value[:idx], Color: color})
			}
			flushLine()
			value = value[idx+1:]
		}
	}
	if cur < len(out) {
		flushLine()
	}

	// Guard the reconstruction property line by line. Any mismatch degrades
	// that line to a single uncolored span of the original content.
	for i := range out {
		if out[i].Text() != lines[i] {
			out[i] = RenderedLine{Spans: []Span{{Text: lines[i]}}}
		}
	}

	return out
}

// colorFor maps a token type to its hex color under the fixed style.
func (r *Renderer) colorFor(t chroma.TokenType) string {
	entry := r.style.Get(t)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}

// plainLines renders every line as one default-colored span.
func plainLines(lines []string) []RenderedLine {
	out := make([]RenderedLine, len(lines))
	for i, line := range lines {
		out[i] = RenderedLine{Spans: []Span{{Text: line}}}
	}
	return out
}
