// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewer assembles complete diff views and caches the active one.
package viewer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/lediff/internal/diff"
	"github.com/jeranaias/lediff/internal/highlight"
	"github.com/jeranaias/lediff/internal/vcs"
)

// =============================================================================
// RESULT
// =============================================================================

// Result is everything the diff view needs for one file: the unified line
// sequence, both side-by-side panes, highlighting, and stats.
//
// Rendered holds one entry per unified line. Because the splitter emits
// exactly one cell into each pane per unified line, pane row i shares
// Rendered[i]; placeholder cells simply render nothing.
type Result struct {
	Path     string
	File     vcs.ChangedFile
	Unified  []diff.Line
	OldPane  []diff.SplitLine
	NewPane  []diff.SplitLine
	Rendered []highlight.RenderedLine
	Stats    diff.Stats
}

// =============================================================================
// BUILDER
// =============================================================================

// ContentResolver supplies the text pair a diff is computed over.
type ContentResolver interface {
	Resolve(ctx context.Context, file vcs.ChangedFile) (oldText, newText string)
}

// Builder computes diff results. Build does all the heavy work and is meant
// to run off the update loop; the returned value is handed back as a message
// and offered to the cache.
type Builder struct {
	resolver ContentResolver
	renderer *highlight.Renderer
}

// NewBuilder returns a builder over the given resolver and renderer.
func NewBuilder(resolver ContentResolver, renderer *highlight.Renderer) *Builder {
	return &Builder{resolver: resolver, renderer: renderer}
}

// Build resolves both sides of a changed file, computes the full line diff,
// splits it into panes, and highlights every line in one pass so lexer state
// carries across the sequence. It never fails: unreadable content resolves
// to empty text and renders as an empty diff.
func (b *Builder) Build(ctx context.Context, file vcs.ChangedFile) Result {
	id := uuid.New().String()
	start := time.Now()

	oldText, newText := b.resolver.Resolve(ctx, file)
	unified := diff.Compute(oldText, newText)
	oldPane, newPane := diff.Split(unified)

	contents := make([]string, len(unified))
	for i, line := range unified {
		contents[i] = line.Content
	}
	rendered := b.renderer.Render(contents, file.NewPath)

	stats := diff.Tally(unified)
	slog.Debug("diff built",
		"id", id,
		"path", file.Path,
		"status", file.Status.String(),
		"lines", len(unified),
		"stats", stats.String(),
		"elapsed", time.Since(start))

	return Result{
		Path:     file.Path,
		File:     file,
		Unified:  unified,
		OldPane:  oldPane,
		NewPane:  newPane,
		Rendered: rendered,
		Stats:    stats,
	}
}
