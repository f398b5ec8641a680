package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pagerModel scrolls a rendered document that is taller than the terminal.
type pagerModel struct {
	title    string
	viewport viewport.Model
	ready    bool
}

// Title and footer rows.
const pagerChrome = 2

func newPagerModel(title, body string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(body)

	return pagerModel{title: title, viewport: vp, ready: true}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()

			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()

			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "Loading document…\n"
	}

	footer := mutedStyle.Render(fmt.Sprintf(
		"%3.f%%  ↑/k up • ↓/j down • g/G top/bottom • q quit",
		pm.viewport.ScrollPercent()*100,
	))

	return lipgloss.JoinVertical(lipgloss.Left, pm.title, pm.viewport.View(), footer)
}
