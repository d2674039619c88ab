// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight provides syntax highlighting as plain colored spans.
//
// Rendering happens at line granularity against one fixed chroma style: each
// input line becomes a RenderedLine of Spans, and concatenating a line's
// span texts always reproduces the input line byte for byte. That property
// lets callers lay out diff panes around highlighted text without ever
// re-measuring it.
//
// The grammar is picked from the filename, falling back to content analysis
// and finally to plain text, so unknown file types still render.
//
// # Usage
//
//	r := highlight.NewRenderer("monokai")
//	rendered := r.Render([]string{"package main", "func main() {}"}, "main.go")
package highlight
