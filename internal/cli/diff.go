// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff.go - Diff command implementation for lediff.
//
// Command: diff [path]
// Short:   Print unified diffs to stdout
// Aliases: d
//
// Prints the working copy changes in standard unified format, suitable
// for piping into a pager or a patch file. Colored on a terminal unless
// --plain is given.
//
// Examples:
//   lediff diff                   All changed files
//   lediff diff src/main.rs       One file
//   lediff diff > changes.patch   Export without colors
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeranaias/lediff/internal/content"
	"github.com/jeranaias/lediff/internal/diff"
	"github.com/jeranaias/lediff/internal/vcs"
)

// HandleDiff handles the "diff" command.
func HandleDiff(args Args) error {
	repo, err := OpenRepo(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	files, err := repo.Status(ctx)
	if err != nil {
		return fmt.Errorf("jj status failed: %w", err)
	}

	if args.Path != "" {
		files = filterByPath(files, args.Path)
		if len(files) == 0 {
			return &NotFoundError{Resource: "changed file", ID: args.Path}
		}
	}

	if len(files) == 0 {
		fmt.Println("Working copy is clean.")
		return nil
	}

	resolver := content.NewResolver(repo.Root(), repo)
	colored := ColorsEnabled() && !args.Plain

	var total diff.Stats
	for _, f := range files {
		oldText, newText := resolver.Resolve(ctx, f)
		lines := diff.Compute(oldText, newText)

		stats := diff.Tally(lines)
		total.Insertions += stats.Insertions
		total.Deletions += stats.Deletions

		out := diff.FormatUnified(f.Path, lines)
		if colored {
			out = colorizeUnified(out)
		}
		fmt.Print(out)
	}

	if colored {
		fmt.Println(DimStyle.Render(fmt.Sprintf("%d file(s) changed, %s", len(files), total)))
	}

	return nil
}

// filterByPath keeps the files matching path by new or old name.
func filterByPath(files []vcs.ChangedFile, path string) []vcs.ChangedFile {
	var matched []vcs.ChangedFile
	for _, f := range files {
		if f.Path == path || f.OldPath == path || f.NewPath == path {
			matched = append(matched, f)
		}
	}
	return matched
}

// colorizeUnified applies terminal colors to unified diff text, line by
// line. The header check runs before the +/- checks so +++/--- lines keep
// the header color.
func colorizeUnified(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	var sb strings.Builder

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			sb.WriteString(DiffHeaderStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			sb.WriteString(DiffHunkStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			sb.WriteString(DiffAddStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(DiffDelStyle.Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
