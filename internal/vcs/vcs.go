// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vcs reads working-copy state from a Jujutsu repository.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// commandTimeout bounds every jj invocation.
const commandTimeout = 30 * time.Second

// DefaultRevision is the revision old file contents are read from: the
// parent of the working copy.
const DefaultRevision = "@-"

// =============================================================================
// REPOSITORY
// =============================================================================

// Repo is a handle to a Jujutsu repository rooted at a directory.
type Repo struct {
	root     string
	revision string
}

// New returns a repo handle for root, reading old contents at revision.
// An empty revision means DefaultRevision.
func New(root, revision string) *Repo {
	if revision == "" {
		revision = DefaultRevision
	}
	return &Repo{root: root, revision: revision}
}

// Root returns the repository root directory.
func (r *Repo) Root() string {
	return r.root
}

// Revision returns the revision old file contents are read from.
func (r *Repo) Revision() string {
	return r.revision
}

// IsRepo reports whether dir is the root of a Jujutsu repository.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".jj"))
	return err == nil && info.IsDir()
}

// FindRoot walks from start up through its parents looking for a .jj
// directory and returns the first directory that has one.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		if IsRepo(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no jj repository found in %s or any parent", start)
		}
		dir = parent
	}
}

// =============================================================================
// JJ COMMANDS
// =============================================================================

// Status runs jj st and returns the parsed working-copy change list. The
// list is empty, not an error, when the working copy has no changes.
func (r *Repo) Status(ctx context.Context) ([]ChangedFile, error) {
	out, err := r.run(ctx, "st", "--no-pager", "--color", "never")
	if err != nil {
		return nil, fmt.Errorf("jj st: %w", err)
	}
	return parseStatus(out), nil
}

// FileAtRevision returns the contents of path at the repo's revision. Every
// failure mode, from a missing jj binary to an unknown path, absorbs to an
// empty string: historical content is best effort by contract.
func (r *Repo) FileAtRevision(ctx context.Context, path string) string {
	out, err := r.run(ctx, "file", "show", "--no-pager", "-r", r.revision, "--", path)
	if err != nil {
		slog.Debug("historical content unavailable",
			"path", path, "revision", r.revision, "error", err)
		return ""
	}
	return out
}

// run executes a jj subcommand in the repo root and returns lossy-UTF-8
// stdout. Command failures carry the first stderr line for context.
func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "jj", args...)
	cmd.Dir = r.root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := firstLine(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w", msg, err)
		}
		return "", err
	}

	return strings.ToValidUTF8(stdout.String(), string(utf8.RuneError)), nil
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
