// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small filesystem helpers shared across lediff.
//
// The main entry point is AtomicWriteFile, used by the config package so
// that a crash during a save never leaves a half-written config file:
//
//	err := util.AtomicWriteFile(path, data, 0644)
package util
