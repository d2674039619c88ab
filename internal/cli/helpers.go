// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared pieces of the lediff command handlers.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/lediff/internal/config"
	"github.com/jeranaias/lediff/internal/vcs"
)

// OpenRepo locates the jj repository named by the arguments. The repo flag
// wins, then the working directory, walking upwards until a .jj directory
// appears. The revision flag overrides the configured base revision.
func OpenRepo(args Args) (*vcs.Repo, error) {
	start := args.RepoPath
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working directory: %w", err)
		}
		start = wd
	}

	root, err := vcs.FindRoot(start)
	if err != nil {
		return nil, fmt.Errorf("not inside a jj repository: %w", err)
	}

	revision := args.Revision
	if revision == "" {
		revision = config.Global().Repo.Revision
	}
	if revision == "" {
		revision = vcs.DefaultRevision
	}

	return vcs.New(root, revision), nil
}

// LoadArgsConfig loads configuration honoring the --config flag, installs
// it as the global config, and applies flag overrides that map to config
// values.
func LoadArgsConfig(args Args) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if args.Revision != "" {
		cfg.Repo.Revision = args.Revision
	}
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.LogFile != "" {
		cfg.Log.File = args.LogFile
	}
	if args.Inline {
		cfg.UI.ViewMode = config.ViewModeInline
	}
	if args.NoWatch {
		cfg.Watch.Enabled = false
	}

	config.SetGlobal(cfg)
	return cfg, nil
}
