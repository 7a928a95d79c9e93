// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lock-diff/lock-diff/internal/command"
	"github.com/lock-diff/lock-diff/internal/config"
	"github.com/lock-diff/lock-diff/internal/log"
	"github.com/lock-diff/lock-diff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version and returns whether it was handled.
// The short -v belongs to --verbose, so only the long form is intercepted.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processSetOnly expands an @set argument into the flag list stored under
// sets.<name> in the config file, at the @set position.
func processSetOnly(args []string) []string {
	removeIdx := -1
	set := ""
	for i, a := range args[1:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = 1 + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	// Remove the @set argument.
	args = append(args[:removeIdx], args[removeIdx+1:]...)
	// Expand the set arguments at the removeIdx position.
	setArgs, _ := config.GetStringSlice("sets." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
		removeIdx += len(parts)
	}
	return args
}

// flagAliases maps short flags to their long form so both spellings
// deduplicate together.
var flagAliases = map[string]string{
	"o": "output",
	"v": "verbose",
}

// canonicalFlag returns the flag name stripped of dashes, an =value suffix,
// and alias spelling.
func canonicalFlag(arg string) string {
	name := strings.TrimLeft(arg, "-")
	if i := strings.Index(name, "="); i >= 0 {
		name = name[:i]
	}
	if long, ok := flagAliases[name]; ok {
		return long
	}
	return name
}

// flagTakesValue reports whether the flag consumes the following argument.
// The flag set is closed, so the value-taking flags are simply enumerated.
func flagTakesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	return canonicalFlag(arg) == "output"
}

// deduplicateFlags drops all but the last occurrence of each flag so that
// set-expanded defaults can be overridden on the command line. Positional
// arguments are preserved in place.
func deduplicateFlags(args []string) []string {
	type group struct {
		key  string
		toks []string
	}

	var groups []group
	for i := 0; i < len(args); i++ {
		a := args[i]
		if i == 0 || !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, group{toks: []string{a}})
			continue
		}

		g := group{key: canonicalFlag(a), toks: []string{a}}
		if flagTakesValue(a) && i+1 < len(args) {
			g.toks = append(g.toks, args[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := make(map[string]int)
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	out := make([]string, 0, len(args))
	for i, g := range groups {
		if g.key != "" && last[g.key] != i {
			continue
		}
		out = append(out, g.toks...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processSetOnly(args)
		args = deduplicateFlags(args)
		log.Debugf("args after preflight: args=%v", args)
	}

	return initAndRunApp(args)
}
