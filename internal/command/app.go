// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/lock-diff/lock-diff/internal/config"
	"github.com/lock-diff/lock-diff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// allow short if-style local cfg; no actual outer cfg
	cfg, _ := config.Load() //nolint
	config.Config.Namespace = "diff"

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "lock-diff",
		Usage:     "compare two dependency lock snapshots",
		UsageText: "lock-diff <OLD-LOCK> <NEW-LOCK> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: NewDiffFlags(cfg.Source),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: diffAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
