// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/lock-diff/lock-diff/internal/differ"
	"github.com/lock-diff/lock-diff/internal/index"
	"github.com/lock-diff/lock-diff/internal/lockfile"
	"github.com/lock-diff/lock-diff/internal/log"
	"github.com/lock-diff/lock-diff/internal/output"
	"github.com/lock-diff/lock-diff/internal/pager"
)

// diffAction is the action handler for the root command. It loads the two
// lock snapshots, diffs them, and emits the change set in the requested
// format. Text output goes through the pager; machine formats are written
// directly so redirects and pipes stay clean.
func diffAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing diff for %v", m.Args[1:])

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("expected <OLD-LOCK> and <NEW-LOCK> arguments, got %d", len(args))
	}

	cs, oldSnap, newSnap, err := compareLocks(args[0], args[1])
	if err != nil {
		return err
	}

	format := cmd.String("output")
	opts := output.Options{
		ShowUnchanged:    cmd.Bool("verbose"),
		Color:            useColor(cmd, format),
		OldFormatVersion: oldSnap.FormatVersion,
		NewFormatVersion: newSnap.FormatVersion,
	}

	out, err := output.Spit(cs, format, opts, cmd.Bool("stat"))
	if err != nil {
		return err
	}

	if format == "text" || format == "" {
		pager.Page(ctx, out)
	} else {
		fmt.Print(out)
	}

	return nil
}

// compareLocks runs the load -> index -> diff pipeline over two lock files.
func compareLocks(oldPath, newPath string) (differ.ChangeSet, *lockfile.Snapshot, *lockfile.Snapshot, error) {
	oldSnap, err := lockfile.Load(oldPath)
	if err != nil {
		return nil, nil, nil, err
	}
	newSnap, err := lockfile.Load(newPath)
	if err != nil {
		return nil, nil, nil, err
	}

	cs := differ.Diff(index.Build(oldSnap.Packages), index.Build(newSnap.Packages))
	log.Debugf("change set: %d entries (%d old, %d new records)",
		len(cs), len(oldSnap.Packages), len(newSnap.Packages))

	return cs, oldSnap, newSnap, nil
}

// useColor decides whether to style the output: only the text format, only
// when not opted out, and only on an interactive terminal.
func useColor(cmd *cli.Command, format string) bool {
	if format != "text" && format != "" {
		return false
	}
	if cmd.Bool("no-color") {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
