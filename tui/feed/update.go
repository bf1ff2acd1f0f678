package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loadingMore {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadMoreMsg, settleMsg:
		return m.handleFeedLoadingMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

// Click hit-tests viewport cell (x, y), selects the post under it and
// dispatches the click.
func (m Model) Click(x, y int) (Model, ClickResult, tea.Cmd) {
	path := m.HitTest(x, y)
	for _, n := range path {
		if n.Kind == NodePost {
			if _, i := m.container.ByID(n.ElementID); i >= 0 {
				m.cursor = i
			}
			break
		}
	}
	return m.Dispatch(path)
}
