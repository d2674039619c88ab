// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content maps changed files to the text pair a diff runs over.
//
// The resolver picks sources by classification: added files read only the
// working copy, deleted files read only the base revision, modified and
// renamed files read both. It absorbs every read failure into an empty
// string and sanitizes invalid UTF-8, so the diff pipeline downstream never
// sees an error from this layer.
package content
