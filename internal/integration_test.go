// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package internal contains cross-package tests for the lediff pipeline.
//
// These tests exercise the pipeline the way the TUI does: a changed file
// is resolved against a working-copy directory and a base-revision
// snapshot, diffed, split into panes, and highlighted.
package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lediff/internal/config"
	"github.com/jeranaias/lediff/internal/content"
	"github.com/jeranaias/lediff/internal/diff"
	"github.com/jeranaias/lediff/internal/highlight"
	"github.com/jeranaias/lediff/internal/vcs"
	"github.com/jeranaias/lediff/internal/viewer"
)

// =============================================================================
// TEST UTILITIES
// =============================================================================

// snapshotHistory serves base-revision file contents from a map, standing
// in for jj file show.
type snapshotHistory map[string]string

func (s snapshotHistory) FileAtRevision(_ context.Context, path string) string {
	return s[path]
}

// writeWorkingCopy materializes files under a temporary repo root.
func writeWorkingCopy(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, text := range files {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(text), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
	return root
}

// newPipeline wires resolver, renderer and builder exactly as main does.
func newPipeline(root string, history snapshotHistory) *viewer.Builder {
	resolver := content.NewResolver(root, history)
	renderer := highlight.NewRenderer(config.Default().UI.Theme)
	return viewer.NewBuilder(resolver, renderer)
}

// requireRenderedMatchesUnified checks the renderer contract on a build
// result: concatenating the spans of row i reproduces Unified[i].Content.
func requireRenderedMatchesUnified(t *testing.T, res viewer.Result) {
	t.Helper()
	require.Len(t, res.Rendered, len(res.Unified))
	for i, line := range res.Unified {
		require.Equal(t, line.Content, res.Rendered[i].Text(),
			"row %d: rendered spans must reproduce the line", i)
	}
}

// =============================================================================
// PIPELINE TESTS
// =============================================================================

func TestPipeline_ModifiedFile(t *testing.T) {
	oldText := "package main\n\nfunc main() {\n\tprintln(\"old\")\n}\n"
	newText := "package main\n\nfunc main() {\n\tprintln(\"new\")\n}\n"

	root := writeWorkingCopy(t, map[string]string{"main.go": newText})
	builder := newPipeline(root, snapshotHistory{"main.go": oldText})

	file := vcs.ChangedFile{Path: "main.go", OldPath: "main.go", NewPath: "main.go", Status: vcs.Modified}
	res := builder.Build(context.Background(), file)

	require.Equal(t, diff.Stats{Insertions: 1, Deletions: 1}, res.Stats)
	require.Equal(t, len(res.Unified), len(res.OldPane))
	require.Equal(t, len(res.Unified), len(res.NewPane))
	requireRenderedMatchesUnified(t, res)

	var sawDelete, sawInsert bool
	for _, line := range res.Unified {
		switch line.Kind {
		case diff.Deleted:
			sawDelete = true
			if line.OldLine == 0 {
				t.Errorf("Expected deleted line to carry an old line number")
			}
			if line.NewLine != 0 {
				t.Errorf("Expected deleted line to have no new line number, got %d", line.NewLine)
			}
		case diff.Inserted:
			sawInsert = true
			if line.NewLine == 0 {
				t.Errorf("Expected inserted line to carry a new line number")
			}
			if line.OldLine != 0 {
				t.Errorf("Expected inserted line to have no old line number, got %d", line.OldLine)
			}
		}
	}
	if !sawDelete || !sawInsert {
		t.Errorf("Expected both a deletion and an insertion, got delete=%t insert=%t", sawDelete, sawInsert)
	}
}

func TestPipeline_AddedFile(t *testing.T) {
	newText := "fn main() {\n    println!(\"hello\");\n}\n"

	root := writeWorkingCopy(t, map[string]string{"src/main.rs": newText})
	builder := newPipeline(root, snapshotHistory{})

	file := vcs.ChangedFile{Path: "src/main.rs", OldPath: "src/main.rs", NewPath: "src/main.rs", Status: vcs.Added}
	res := builder.Build(context.Background(), file)

	require.Equal(t, diff.Stats{Insertions: 3, Deletions: 0}, res.Stats)
	for i, line := range res.Unified {
		if line.Kind != diff.Inserted {
			t.Fatalf("Expected every line of an added file to be an insertion, line %d is %s", i, line.Kind)
		}
	}
	for i, cell := range res.OldPane {
		if !cell.Placeholder {
			t.Errorf("Expected old pane row %d to be a placeholder", i)
		}
	}
	requireRenderedMatchesUnified(t, res)
}

func TestPipeline_DeletedFile(t *testing.T) {
	oldText := "line one\nline two\n"

	root := writeWorkingCopy(t, map[string]string{})
	builder := newPipeline(root, snapshotHistory{"notes.txt": oldText})

	file := vcs.ChangedFile{Path: "notes.txt", OldPath: "notes.txt", NewPath: "notes.txt", Status: vcs.Deleted}
	res := builder.Build(context.Background(), file)

	require.Equal(t, diff.Stats{Insertions: 0, Deletions: 2}, res.Stats)
	for i, line := range res.Unified {
		if line.Kind != diff.Deleted {
			t.Fatalf("Expected every line of a deleted file to be a deletion, line %d is %s", i, line.Kind)
		}
	}
	for i, cell := range res.NewPane {
		if !cell.Placeholder {
			t.Errorf("Expected new pane row %d to be a placeholder", i)
		}
	}
}

func TestPipeline_RenamedFileReadsOldPath(t *testing.T) {
	text := "contents survive the move\n"

	root := writeWorkingCopy(t, map[string]string{"new/name.go": text})
	builder := newPipeline(root, snapshotHistory{"old/name.go": text})

	file := vcs.ChangedFile{
		Path:    "old/name.go -> new/name.go",
		OldPath: "old/name.go",
		NewPath: "new/name.go",
		Status:  vcs.Renamed,
	}
	res := builder.Build(context.Background(), file)

	// A pure rename diffs its own content against itself.
	require.Equal(t, diff.Stats{}, res.Stats)
	for i, line := range res.Unified {
		if line.Kind != diff.Equal {
			t.Fatalf("Expected a pure rename to diff clean, line %d is %s", i, line.Kind)
		}
	}
}

func TestPipeline_UnifiedOutput(t *testing.T) {
	oldText := "a\nb\nc\nd\ne\nf\ng\nh\n"
	newText := "a\nb\nc\nD\ne\nf\ng\nh\n"

	root := writeWorkingCopy(t, map[string]string{"letters.txt": newText})
	builder := newPipeline(root, snapshotHistory{"letters.txt": oldText})

	file := vcs.ChangedFile{Path: "letters.txt", OldPath: "letters.txt", NewPath: "letters.txt", Status: vcs.Modified}
	res := builder.Build(context.Background(), file)

	out := diff.FormatUnified(res.Path, res.Unified)

	for _, want := range []string{"--- a/letters.txt", "+++ b/letters.txt", "@@ -", "-d", "+D"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected unified output to contain %q, got:\n%s", want, out)
		}
	}
	// Context lines outside the hunk window must not appear.
	if strings.Contains(out, " h\n") {
		t.Errorf("Expected line h to fall outside the hunk, got:\n%s", out)
	}
}

func TestPipeline_CacheFlow(t *testing.T) {
	oldText := "one\n"
	newText := "two\n"

	root := writeWorkingCopy(t, map[string]string{"f.txt": newText})
	builder := newPipeline(root, snapshotHistory{"f.txt": oldText})
	file := vcs.ChangedFile{Path: "f.txt", OldPath: "f.txt", NewPath: "f.txt", Status: vcs.Modified}

	cache := viewer.NewCache()
	require.True(t, cache.Ensure("f.txt"), "first selection must dispatch")

	res := builder.Build(context.Background(), file)
	require.True(t, cache.Complete(res), "matching result must land")

	got, ok := cache.Result()
	require.True(t, ok)
	require.Equal(t, "f.txt", got.Path)

	// Refresh invalidates; a late duplicate from the old worker is dropped.
	cache.Invalidate()
	require.False(t, cache.Complete(res), "stale result must be rejected after invalidation")
	require.Equal(t, viewer.StateEmpty, cache.State())
}

// =============================================================================
// CONFIG ROUND TRIP
// =============================================================================

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := config.Default()
	cfg.UI.ViewMode = config.ViewModeInline
	cfg.UI.TabWidth = 8
	cfg.Repo.Revision = "@"
	cfg.Watch.Enabled = false

	require.NoError(t, config.SaveTOML(cfg, path))

	loaded, err := config.LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, config.ViewModeInline, loaded.UI.ViewMode)
	require.Equal(t, 8, loaded.UI.TabWidth)
	require.Equal(t, "@", loaded.Repo.Revision)
	require.False(t, loaded.Watch.Enabled)
}
