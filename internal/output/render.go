// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/lock-diff/lock-diff/internal/config"
	"github.com/lock-diff/lock-diff/internal/differ"
	"github.com/lock-diff/lock-diff/internal/lockfile"
)

// Options control what Render emits. ShowUnchanged keeps the "=" lines that
// are filtered out by default; Color styles the kind markers. The format
// versions are the lock files' own version fields, reported as a header line
// when they differ.
type Options struct {
	ShowUnchanged    bool
	Color            bool
	OldFormatVersion int
	NewFormatVersion int
}

// Render formats a change set as text, one line per package plus indented
// detail lines for metadata and dependency transitions. It never returns
// empty output: a fully filtered change set renders an explicit no-changes
// message so a silent failure and a clean diff are distinguishable.
func Render(cs differ.ChangeSet, opts Options) string {
	var b strings.Builder
	st := newStyles(opts.Color)

	if opts.OldFormatVersion != opts.NewFormatVersion {
		fmt.Fprintf(&b, "%s\n", st.removed.Render(fmt.Sprintf("- version = %d", opts.OldFormatVersion)))
		fmt.Fprintf(&b, "%s\n", st.added.Render(fmt.Sprintf("+ version = %d", opts.NewFormatVersion)))
	}

	shown := 0
	for _, c := range cs {
		if c.Kind == differ.Unchanged && !opts.ShowUnchanged {
			continue
		}
		shown++
		writeChange(&b, st, c, opts.ShowUnchanged)
	}

	if shown == 0 && opts.OldFormatVersion == opts.NewFormatVersion {
		return "no changes\n"
	}
	return b.String()
}

func writeChange(b *strings.Builder, st styles, c differ.Change, showUnchanged bool) {
	switch c.Kind {
	case differ.Added:
		fmt.Fprintf(b, "%s\n", st.added.Render(fmt.Sprintf("+ %s %s", c.New.Name, c.New.Version)))
	case differ.Removed:
		fmt.Fprintf(b, "%s\n", st.removed.Render(fmt.Sprintf("- %s %s", c.Old.Name, c.Old.Version)))
	case differ.Updated:
		fmt.Fprintf(b, "%s\n", st.modified.Render(
			fmt.Sprintf("~ %s %s -> %s", c.Old.Name, c.Old.Version, c.New.Version)))
		writeDetail(b, st, c, showUnchanged)
	case differ.Changed:
		fmt.Fprintf(b, "%s\n", st.modified.Render(fmt.Sprintf("~ %s %s", c.Old.Name, c.Old.Version)))
		writeDetail(b, st, c, showUnchanged)
	case differ.Unchanged:
		fmt.Fprintf(b, "= %s %s\n", c.Old.Name, c.Old.Version)
	}
}

// writeDetail emits the field-level transitions behind an Updated or Changed
// line: source, checksum, and the dependency set delta.
func writeDetail(b *strings.Builder, st styles, c differ.Change, showUnchanged bool) {
	if c.Old.Source != c.New.Source {
		fmt.Fprintf(b, "    source %s -> %s\n", orNone(c.Old.Source), orNone(c.New.Source))
	}
	if c.Old.Checksum != c.New.Checksum {
		fmt.Fprintf(b, "    checksum %s -> %s\n", orNone(c.Old.Checksum), orNone(c.New.Checksum))
	}

	removed, kept, added := depDelta(c.Old.Dependencies, c.New.Dependencies)
	for _, d := range removed {
		fmt.Fprintf(b, "    %s\n", st.removed.Render("- dep "+d))
	}
	if showUnchanged {
		for _, d := range kept {
			fmt.Fprintf(b, "      dep %s\n", d)
		}
	}
	for _, d := range added {
		fmt.Fprintf(b, "    %s\n", st.added.Render("+ dep "+d))
	}
}

// depDelta computes the unordered set difference between two dependency name
// lists. Each returned slice is sorted.
func depDelta(old, new []string) (removed, kept, added []string) {
	inOld := make(map[string]bool, len(old))
	for _, d := range old {
		inOld[d] = true
	}
	inNew := make(map[string]bool, len(new))
	for _, d := range new {
		inNew[d] = true
	}

	for d := range inOld {
		if inNew[d] {
			kept = append(kept, d)
		} else {
			removed = append(removed, d)
		}
	}
	for d := range inNew {
		if !inOld[d] {
			added = append(added, d)
		}
	}

	sort.Strings(removed)
	sort.Strings(kept)
	sort.Strings(added)
	return
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

type styles struct {
	added    lipgloss.Style
	removed  lipgloss.Style
	modified lipgloss.Style
}

// newStyles initializes the kind styles. Without color every style is a
// no-op and the textual markers carry the meaning on their own.
func newStyles(useColor bool) styles {
	if !useColor {
		return styles{
			added:    lipgloss.NewStyle(),
			removed:  lipgloss.NewStyle(),
			modified: lipgloss.NewStyle(),
		}
	}

	added, removed, modified := getColors("colors")
	return styles{
		added:    lipgloss.NewStyle().Foreground(added),
		removed:  lipgloss.NewStyle().Foreground(removed),
		modified: lipgloss.NewStyle().Foreground(modified),
	}
}

// getColors returns configured color values for the three kind markers. Each
// color is selected based on terminal background brightness so that output is
// reasonably visible for all(?) terminal themes.
func getColors(key string) (added, removed, modified color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	added = resolveColor(key+".added", "#007700", "#00d700")
	removed = resolveColor(key+".removed", "#aa0000", "#ff5f5f")
	modified = resolveColor(key+".modified", "#b08800", "#f6be00")

	return
}

// Row is the machine-readable projection of one Change.
type Row struct {
	Kind string            `json:"kind" yaml:"kind"`
	Name string            `json:"name" yaml:"name"`
	Old  *lockfile.Package `json:"old,omitempty" yaml:"old,omitempty"`
	New  *lockfile.Package `json:"new,omitempty" yaml:"new,omitempty"`
}

// Rows projects a change set for the JSON and YAML writers, honoring the
// unchanged filter.
func Rows(cs differ.ChangeSet, showUnchanged bool) []Row {
	rows := make([]Row, 0, len(cs))
	for _, c := range cs {
		if c.Kind == differ.Unchanged && !showUnchanged {
			continue
		}
		rows = append(rows, Row{
			Kind: c.Kind.String(),
			Name: c.Name(),
			Old:  c.Old,
			New:  c.New,
		})
	}
	return rows
}
