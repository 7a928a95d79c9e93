// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/lock-diff/lock-diff/internal/differ"
)

// statKinds fixes the row order of the summary table.
var statKinds = []differ.Kind{
	differ.Added,
	differ.Removed,
	differ.Updated,
	differ.Changed,
	differ.Unchanged,
}

// RenderStat renders a per-kind change count summary in a tabular form.
func RenderStat(cs differ.ChangeSet, useColor bool) string {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)

	st := newStyles(useColor)
	kindStyle := map[differ.Kind]lipgloss.Style{
		differ.Added:     st.added,
		differ.Removed:   st.removed,
		differ.Updated:   st.modified,
		differ.Changed:   st.modified,
		differ.Unchanged: cellStyle,
	}

	counts := cs.Counts()
	var rows [][]string
	for _, k := range statKinds {
		rows = append(rows, []string{
			kindStyle[k].Render(k.String()),
			humanize.Comma(int64(counts[k])),
		})
	}
	rows = append(rows, []string{"total", humanize.Comma(int64(len(cs)))})

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers("kind", "packages").
		BorderHeader(false).
		Rows(rows...)

	return fmt.Sprintln(t)
}
