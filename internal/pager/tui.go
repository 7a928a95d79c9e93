// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Faint(true)

// runViewer shows content in a scrollable viewport for terminals without an
// external pager.
func runViewer(content string) error {
	p := tea.NewProgram(viewer{content: content}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type viewer struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func (m viewer) Init() tea.Cmd { return nil }

func (m viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// One line reserved for the footer.
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewer) View() string {
	if !m.ready {
		return "loading..."
	}

	footer := footerStyle.Render(
		fmt.Sprintf("%3.f%%  q to quit", m.viewport.ScrollPercent()*100))
	return strings.Join([]string{m.viewport.View(), footer}, "\n")
}
