// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging wires log/slog to a rotating log file.
//
// The TUI draws on stdout and must keep stderr quiet, so log output never
// goes to the terminal: records are JSON-encoded into the file named by
// [log] in the configuration, rotated by size and age, or discarded when
// no file is configured.
//
// # Usage
//
//	logging.Setup(cfg.Log, debugFlag)
//	slog.Info("Diff built", "path", path, "ms", elapsed.Milliseconds())
//
// Panics inside the Bubble Tea program are captured with RecoverPanic,
// which writes a stack dump to a timestamped file before the terminal is
// restored.
package logging
