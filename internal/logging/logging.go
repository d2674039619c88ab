// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jeranaias/lediff/internal/config"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
)

// =============================================================================
// SETUP
// =============================================================================

// Setup installs the default slog logger. Log records go to the rotating
// file named in cfg; with no file configured they are discarded so nothing
// bleeds into the terminal the TUI owns. The debug flag forces level debug
// and source locations regardless of the configured level.
//
// Setup is idempotent. The first call wins; later calls are no-ops.
func Setup(cfg config.LogConfig, debugMode bool) {
	initOnce.Do(func() {
		var sink io.Writer = io.Discard
		if cfg.File != "" {
			sink = &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   false,
			}
		}

		level := ParseLevel(cfg.Level)
		if debugMode {
			level = slog.LevelDebug
		}

		handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level:     level,
			AddSource: debugMode,
		})

		slog.SetDefault(slog.New(handler))
		initialized.Store(true)
	})
}

// Initialized reports whether Setup has run.
func Initialized() bool {
	return initialized.Load()
}

// ParseLevel maps a configuration level string to a slog level.
// Unknown strings fall back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// PANIC RECOVERY
// =============================================================================

// RecoverPanic recovers a panic, logs it, and dumps the stack trace to a
// timestamped file next to the working directory so crashes inside the
// alternate screen are not lost with the terminal state. Call it deferred:
//
//	defer logging.RecoverPanic("tui", restoreTerminal)
//
// The cleanup function, if non-nil, runs after the dump is written.
func RecoverPanic(name string, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}

	slog.Error("Panic recovered", "name", name, "panic", r)

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("lediff-panic-%s-%s.log", name, timestamp)

	file, err := os.Create(filename)
	if err == nil {
		defer file.Close()

		fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
		fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(file, "Stack Trace:\n%s\n", debug.Stack())
	}

	if cleanup != nil {
		cleanup()
	}
}

// ResetForTesting clears the once guard so tests can exercise Setup with
// different configurations.
func ResetForTesting() {
	initOnce = sync.Once{}
	initialized.Store(false)
}
