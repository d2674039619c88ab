// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content resolves the old and new text of a changed file.
package content

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/lediff/internal/vcs"
)

// HistoryReader reads a file's contents at the diff base revision.
type HistoryReader interface {
	FileAtRevision(ctx context.Context, path string) string
}

// Resolver maps a changed file to the pair of texts a diff is computed
// over. Resolution is total: it never returns an error, and every failed
// read yields an empty string on that side.
type Resolver struct {
	root    string
	history HistoryReader
}

// NewResolver returns a resolver reading working-copy files under root and
// historical contents through history.
func NewResolver(root string, history HistoryReader) *Resolver {
	return &Resolver{root: root, history: history}
}

// Resolve returns the old and new text for a changed file. Added files have
// no old side and never touch the VCS; deleted files have no new side and
// never touch the filesystem; modified and renamed files read both. Renames
// read history at the pre-rename path.
func (r *Resolver) Resolve(ctx context.Context, file vcs.ChangedFile) (oldText, newText string) {
	switch file.Status {
	case vcs.Added:
		return "", r.readWorkingCopy(file.NewPath)
	case vcs.Deleted:
		return r.history.FileAtRevision(ctx, file.OldPath), ""
	default: // vcs.Modified, vcs.Renamed
		return r.history.FileAtRevision(ctx, file.OldPath), r.readWorkingCopy(file.NewPath)
	}
}

// readWorkingCopy reads a file under the repo root, absorbing any failure
// into an empty string and replacing invalid UTF-8.
func (r *Resolver) readWorkingCopy(path string) string {
	data, err := os.ReadFile(filepath.Join(r.root, path))
	if err != nil {
		slog.Debug("working copy content unavailable", "path", path, "error", err)
		return ""
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
