// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package vcs

import (
	"path"
	"strings"
)

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classification is the working-copy status of a changed file as reported by
// jj.
type Classification int

const (
	// Added represents a file that exists only in the working copy
	Added Classification = iota
	// Modified represents a file changed since the parent revision
	Modified
	// Deleted represents a file removed from the working copy
	Deleted
	// Renamed represents a file moved since the parent revision
	Renamed
)

// String returns the lowercase label for the classification.
func (c Classification) String() string {
	switch c {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// =============================================================================
// CHANGED FILE
// =============================================================================

// ChangedFile is one entry of the working-copy change list. Path is the
// display path exactly as jj printed it. OldPath and NewPath are the paths in
// the parent revision and the working copy; they differ only for renames
// whose arrow notation parsed, and fall back to the display path otherwise.
type ChangedFile struct {
	Path    string
	OldPath string
	NewPath string
	Status  Classification
}

// =============================================================================
// STATUS PARSING
// =============================================================================

// statusSection marks the start of the change list in jj st output.
const statusSection = "Working copy changes:"

// statusTrailer prefixes the commit lines that end the change list.
const statusTrailer = "Working copy "

// parseStatus extracts changed files from jj st output. Parsing starts after
// the "Working copy changes:" line and stops at the working-copy commit
// trailer. Entries carry a single status letter and a path; letters other
// than A, M, D, and R are skipped.
func parseStatus(output string) []ChangedFile {
	var files []ChangedFile
	inSection := false

	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, statusSection) {
			inSection = true
			continue
		}
		if strings.HasPrefix(line, statusTrailer) && !strings.HasPrefix(line, statusSection) {
			break
		}
		if !inSection {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		letter, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}

		var status Classification
		switch letter {
		case "A":
			status = Added
		case "M":
			status = Modified
		case "D":
			status = Deleted
		case "R":
			status = Renamed
		default:
			continue
		}

		rest = strings.TrimSpace(rest)
		oldPath, newPath := splitRename(rest)
		files = append(files, ChangedFile{
			Path:    rest,
			OldPath: oldPath,
			NewPath: newPath,
			Status:  status,
		})
	}

	return files
}

// splitRename resolves jj's rename arrow notation into the old and new
// paths. Both the plain form "old.go => new.go" and the compacted form
// "src/{old.go => new.go}" are handled; anything else comes back unchanged
// on both sides.
func splitRename(raw string) (oldPath, newPath string) {
	if open := strings.IndexByte(raw, '{'); open >= 0 {
		if end := strings.IndexByte(raw[open:], '}'); end >= 0 {
			closeIdx := open + end
			inner := raw[open+1 : closeIdx]
			if before, after, ok := strings.Cut(inner, " => "); ok {
				prefix, suffix := raw[:open], raw[closeIdx+1:]
				return joinRenameParts(prefix, before, suffix),
					joinRenameParts(prefix, after, suffix)
			}
		}
	}

	if before, after, ok := strings.Cut(raw, " => "); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}

	return raw, raw
}

// joinRenameParts reassembles a compacted rename path, collapsing the double
// slash left behind when the changed segment is empty on one side.
func joinRenameParts(prefix, segment, suffix string) string {
	return path.Clean(prefix + segment + suffix)
}
