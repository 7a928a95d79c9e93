// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/lock-diff/lock-diff/internal/config"
	"github.com/lock-diff/lock-diff/internal/log"
)

// Page writes content to stdout, paging it when that helps: an interactive
// terminal and content taller than the screen get an external pager, or the
// built-in viewer when no pager is configured. Every failure falls back to a
// plain write; paging is a convenience, never a point of failure.
func Page(ctx context.Context, content string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(content)
		return
	}

	_, height, err := term.GetSize(fd)
	if err != nil || contentFits(content, height) {
		fmt.Print(content)
		return
	}

	if pagerCmd := resolvePager(); pagerCmd != "" {
		err := runExternal(ctx, pagerCmd, content)
		if err == nil {
			return
		}
		log.Debugf("external pager failed, falling back: %v", err)
	}

	if err := runViewer(content); err != nil {
		log.Debugf("built-in viewer failed, falling back: %v", err)
		fmt.Print(content)
	}
}

// contentFits reports whether content fits on a screen of the given height,
// leaving one line for the shell prompt.
func contentFits(content string, height int) bool {
	if height <= 0 {
		return true
	}
	return strings.Count(content, "\n") < height-1
}

// resolvePager returns the pager command line to use, or "" when none is
// configured. Precedence: LOCKDIFF_PAGER env, "pager" config key, PAGER env.
func resolvePager() string {
	if p := os.Getenv("LOCKDIFF_PAGER"); p != "" {
		return p
	}
	if p, err := config.GetString("pager"); err == nil && p != "" {
		return p
	}
	return os.Getenv("PAGER")
}

// runExternal pipes content through the given pager command line. The
// command may carry arguments ("less -FRX").
func runExternal(ctx context.Context, pagerCmd, content string) error {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		return fmt.Errorf("empty pager command")
	}

	c := exec.CommandContext(ctx, parts[0], parts[1:]...)
	c.Stdin = strings.NewReader(content)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("pager %q: %w", parts[0], err)
	}
	return nil
}
