// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watcher provides repository change detection for live refresh.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/jeranaias/lediff/internal/config"
)

// =============================================================================
// WATCHER INTERFACE
// =============================================================================

// Watcher is the interface for repository watching implementations
type Watcher interface {
	// Watch starts watching for repository changes
	Watch() error

	// Close stops watching and releases resources
	Close() error
}

// ignoredNames are directory and file patterns that never signal a
// working-copy change. The VCS directories matter most: jj rewrites its
// op store on every status call, and reacting to that would loop.
var ignoredNames = []string{
	".jj", ".git", ".hg", ".svn",
	"node_modules", "target",
	"*.swp", "*.swx", "*~", "*.tmp",
}

// ignored checks if a file or directory name should be ignored.
func ignored(name string) bool {
	for _, pattern := range ignoredNames {
		matched, _ := filepath.Match(pattern, name)
		if matched {
			return true
		}
	}
	return false
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher implements Watcher using fsnotify. Events are coalesced:
// a burst of writes produces one notification once the repository has been
// quiet for the debounce window.
type FsnotifyWatcher struct {
	root     string
	onChange func()
	watcher  *fsnotify.Watcher
	debounce time.Duration
	limiter  *rate.Limiter

	mu      sync.Mutex
	dirtyAt time.Time
	dirty   bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewFsnotifyWatcher creates a new fsnotify-based watcher
func NewFsnotifyWatcher(root string, cfg config.WatchConfig, onChange func()) (*FsnotifyWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FsnotifyWatcher{
		root:     root,
		onChange: onChange,
		watcher:  watcher,
		debounce: debounceFor(cfg),
		limiter:  limiterFor(cfg),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for repository changes
func (fw *FsnotifyWatcher) Watch() error {
	if err := fw.addRecursive(fw.root); err != nil {
		return err
	}

	go fw.processEvents()
	go fw.processDirty()

	return nil
}

// addRecursive adds a directory and all its subdirectories to the watch list
func (fw *FsnotifyWatcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil // Skip unreadable subtrees
		}

		if !info.IsDir() {
			return nil
		}

		if ignored(filepath.Base(path)) && path != dir {
			return filepath.SkipDir
		}

		if err := fw.watcher.Add(path); err != nil {
			// Non-fatal, continue
			return nil
		}

		return nil
	})
}

// processEvents turns file system events into a pending dirty mark.
func (fw *FsnotifyWatcher) processEvents() {
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if ignored(filepath.Base(event.Name)) {
				continue
			}

			// Any mutation of the working copy changes the diff.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				fw.markDirty()
			}

			// Watch new directories as they appear
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fw.addRecursive(event.Name); err != nil {
						time.Sleep(100 * time.Millisecond)
						fw.addRecursive(event.Name)
					}
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Debug("Watcher error", "error", err)
		}
	}
}

// markDirty records a change; the flush loop fires once events settle.
func (fw *FsnotifyWatcher) markDirty() {
	fw.mu.Lock()
	fw.dirtyAt = time.Now()
	fw.dirty = true
	fw.mu.Unlock()
}

// processDirty fires the callback once the debounce window has passed with
// no further events. When the rate limiter denies, the dirty mark is kept
// so the refresh happens on a later tick instead of being dropped.
func (fw *FsnotifyWatcher) processDirty() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			fw.mu.Lock()
			due := fw.dirty && time.Since(fw.dirtyAt) >= fw.debounce
			if due && fw.limiter.Allow() {
				fw.dirty = false
				fw.mu.Unlock()
				fw.onChange()
				continue
			}
			fw.mu.Unlock()
		}
	}
}

// Close stops watching and releases resources
func (fw *FsnotifyWatcher) Close() error {
	fw.cancel()
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// fileStamp identifies one observed state of a file.
type fileStamp struct {
	modTime time.Time
	size    int64
}

// PollingWatcher implements Watcher using periodic tree scans. Used where
// fsnotify cannot run, for example on network file systems.
type PollingWatcher struct {
	root     string
	onChange func()
	interval time.Duration
	limiter  *rate.Limiter

	mu      sync.Mutex
	files   map[string]fileStamp
	pending bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPollingWatcher creates a new polling-based watcher
func NewPollingWatcher(root string, cfg config.WatchConfig, onChange func()) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &PollingWatcher{
		root:     root,
		onChange: onChange,
		interval: intervalFor(cfg),
		limiter:  limiterFor(cfg),
		files:    make(map[string]fileStamp),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch starts watching for repository changes
func (pw *PollingWatcher) Watch() error {
	// Initial scan establishes the baseline
	stamps, err := scanTree(pw.root)
	if err != nil {
		return err
	}
	pw.mu.Lock()
	pw.files = stamps
	pw.mu.Unlock()

	go pw.poll()

	return nil
}

// scanTree records a stamp for every file under root, skipping ignored names.
func scanTree(root string) (map[string]fileStamp, error) {
	stamps := make(map[string]fileStamp)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}

		if info.IsDir() {
			if ignored(filepath.Base(path)) && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if ignored(filepath.Base(path)) {
			return nil
		}

		stamps[path] = fileStamp{modTime: info.ModTime(), size: info.Size()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stamps, nil
}

// stampsDiffer reports whether two scans describe different trees.
func stampsDiffer(old, current map[string]fileStamp) bool {
	if len(old) != len(current) {
		return true
	}
	for path, stamp := range current {
		prev, ok := old[path]
		if !ok || !prev.modTime.Equal(stamp.modTime) || prev.size != stamp.size {
			return true
		}
	}
	return false
}

// poll periodically rescans the tree and fires on differences.
func (pw *PollingWatcher) poll() {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			pw.checkChanges()
		}
	}
}

// checkChanges compares the current tree against the last scan. A denied
// rate limit keeps the change pending for the next interval.
func (pw *PollingWatcher) checkChanges() {
	stamps, err := scanTree(pw.root)
	if err != nil {
		slog.Debug("Poll scan failed", "error", err)
		return
	}

	pw.mu.Lock()
	changed := stampsDiffer(pw.files, stamps)
	pw.files = stamps
	due := changed || pw.pending
	if due && pw.limiter.Allow() {
		pw.pending = false
		pw.mu.Unlock()
		pw.onChange()
		return
	}
	pw.pending = due
	pw.mu.Unlock()
}

// Close stops watching
func (pw *PollingWatcher) Close() error {
	pw.cancel()
	return nil
}

// =============================================================================
// WATCHER FACTORY
// =============================================================================

// Start builds and starts a watcher for the repository root, preferring
// fsnotify and falling back to polling.
func Start(root string, cfg config.WatchConfig, onChange func()) (Watcher, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	fw, err := NewFsnotifyWatcher(root, cfg, onChange)
	if err == nil {
		if err := fw.Watch(); err == nil {
			slog.Debug("Watching repository", "root", root, "backend", "fsnotify")
			return fw, nil
		}
		fw.Close()
	}

	pw := NewPollingWatcher(root, cfg, onChange)
	if err := pw.Watch(); err != nil {
		return nil, err
	}

	slog.Debug("Watching repository", "root", root, "backend", "polling")
	return pw, nil
}

// =============================================================================
// CONFIG HELPERS
// =============================================================================

func debounceFor(cfg config.WatchConfig) time.Duration {
	if cfg.DebounceMs <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(cfg.DebounceMs) * time.Millisecond
}

func intervalFor(cfg config.WatchConfig) time.Duration {
	if cfg.PollIntervalSecs <= 0 {
		return 2 * time.Second
	}
	return time.Duration(cfg.PollIntervalSecs) * time.Second
}

func limiterFor(cfg config.WatchConfig) *rate.Limiter {
	limit := cfg.MaxRefreshPerSec
	if limit <= 0 {
		limit = 4
	}
	return rate.NewLimiter(rate.Limit(limit), 1)
}
