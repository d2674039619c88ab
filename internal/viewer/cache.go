// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

// =============================================================================
// VIEW STATE
// =============================================================================

// State names the phase of the single diff slot.
type State int

const (
	// StateEmpty means no diff is held or being computed
	StateEmpty State = iota
	// StateLoading means a diff for one path is being computed
	StateLoading
	// StateLoaded means a complete result is held
	StateLoaded
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// =============================================================================
// CACHE
// =============================================================================

// Cache is the single-slot result holder behind the diff view. It holds at
// most one Result and tracks at most one in-flight computation, identified
// by path. Workers never touch the cache; they hand results back to the
// update loop, which calls Complete. The cache is therefore confined to one
// goroutine and needs no locking.
type Cache struct {
	state       State
	loadingPath string
	result      Result
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{state: StateEmpty}
}

// State returns the current phase.
func (c *Cache) State() State {
	return c.state
}

// LoadingPath returns the path being computed, or "" when not loading.
func (c *Cache) LoadingPath() string {
	if c.state != StateLoading {
		return ""
	}
	return c.loadingPath
}

// Result returns the held result and whether one is loaded.
func (c *Cache) Result() (Result, bool) {
	if c.state != StateLoaded {
		return Result{}, false
	}
	return c.result, true
}

// Ensure records that the selection landed on path and reports whether the
// caller must dispatch a computation for it. Selecting the already-loaded
// path or the path already in flight is a no-op; anything else moves the
// slot to loading for the new path, implicitly abandoning whatever was in
// flight before.
func (c *Cache) Ensure(path string) bool {
	switch c.state {
	case StateLoaded:
		if c.result.Path == path {
			return false
		}
	case StateLoading:
		if c.loadingPath == path {
			return false
		}
	}

	c.state = StateLoading
	c.loadingPath = path
	c.result = Result{}
	return true
}

// Complete offers a finished result to the cache and reports whether it was
// accepted. A result is accepted only while the slot is loading that exact
// path; results for abandoned selections or for slots since invalidated are
// discarded, which is the entire staleness guard.
func (c *Cache) Complete(res Result) bool {
	if c.state != StateLoading || c.loadingPath != res.Path {
		return false
	}

	c.state = StateLoaded
	c.loadingPath = ""
	c.result = res
	return true
}

// Invalidate clears the slot. Any computation still in flight for the old
// path will be rejected when it completes.
func (c *Cache) Invalidate() {
	c.state = StateEmpty
	c.loadingPath = ""
	c.result = Result{}
}
