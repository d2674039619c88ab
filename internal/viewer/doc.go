// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewer computes diff views and manages the single active one.
//
// Builder runs the whole pipeline for one changed file: resolve contents,
// compute the line diff, split side-by-side panes, and pre-highlight every
// line. Cache is the state machine around the one live result: it moves
// through empty, loading, and loaded, dispatches at most one computation at
// a time, and rejects results that arrive for a path no longer selected.
//
// # Key Types
//
//   - Result: Complete render product for one file
//   - Builder: Off-loop computation of results
//   - Cache: Single-slot holder with the stale-result guard
//
// # Usage
//
//	cache := viewer.NewCache()
//	if cache.Ensure(file.Path) {
//		go func() { results <- builder.Build(ctx, file) }()
//	}
//	// later, on the update loop:
//	accepted := cache.Complete(res)
package viewer
