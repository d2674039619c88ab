// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vcs reads working-copy state from a Jujutsu (jj) repository.
//
// The package shells out to the jj binary: Status parses the change list
// from jj st, and FileAtRevision reads a file's historical contents with
// jj file show. Historical reads are best effort and absorb every failure
// into an empty string, so callers can always diff against whatever came
// back.
//
// # Key Types
//
//   - Repo: Handle bound to a repository root and a revision
//   - ChangedFile: One change-list entry with parsed rename paths
//   - Classification: Status of an entry (added, modified, deleted, renamed)
//
// # Usage
//
//	root, err := vcs.FindRoot(".")
//	if err != nil {
//		return err
//	}
//	repo := vcs.New(root, vcs.DefaultRevision)
//	files, err := repo.Status(ctx)
package vcs
