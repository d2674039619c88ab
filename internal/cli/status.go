// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command implementation for lediff.
//
// Command: status
// Short:   List changed files in the working copy
// Aliases: s
//
// Examples:
//   lediff status                 List changed files
//   lediff status --json          Changed files for scripting
//   lediff status -r @            Changes relative to @
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lediff/internal/vcs"
)

// StatusEntry is one changed file in JSON output.
type StatusEntry struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	OldPath string `json:"old_path,omitempty"`
}

// HandleStatus handles the "status" command.
func HandleStatus(args Args) error {
	repo, err := OpenRepo(args)
	if err != nil {
		if args.JSON {
			NewJSONErrorResponse("status", err).Print()
		}
		return err
	}

	files, err := repo.Status(context.Background())
	if err != nil {
		if args.JSON {
			NewJSONErrorResponse("status", err).Print()
		}
		return fmt.Errorf("jj status failed: %w", err)
	}

	if args.JSON {
		entries := make([]StatusEntry, 0, len(files))
		for _, f := range files {
			entry := StatusEntry{Path: f.Path, Status: f.Status.String()}
			if f.Status == vcs.Renamed {
				entry.OldPath = f.OldPath
			}
			entries = append(entries, entry)
		}
		return NewJSONResponse("status", entries).Print()
	}

	if len(files) == 0 {
		fmt.Println("Working copy is clean.")
		return nil
	}

	fmt.Printf("%s %s\n",
		TitleStyle.Render("Changed files"),
		DimStyle.Render(fmt.Sprintf("(base %s)", repo.Revision())))

	for _, f := range files {
		marker, style := statusMarker(f.Status)
		label := f.Path
		if f.Status == vcs.Renamed && f.OldPath != f.NewPath {
			label = f.OldPath + " -> " + f.NewPath
		}
		fmt.Printf("  %s %s\n", style.Render(marker), label)
	}

	return nil
}

// statusMarker returns the single-letter marker and style for a status.
func statusMarker(status vcs.Classification) (string, lipgloss.Style) {
	switch status {
	case vcs.Added:
		return "A", StatusAddedStyle
	case vcs.Modified:
		return "M", StatusModifiedStyle
	case vcs.Deleted:
		return "D", StatusDeletedStyle
	case vcs.Renamed:
		return "R", StatusRenamedStyle
	default:
		return "?", DimStyle
	}
}
