package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(max(m.viewportHeight()-2, 1))
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-max(m.viewportHeight()-2, 1))
	case key.Matches(msg, m.keys.Top):
		return m.ScrollToTop()
	case key.Matches(msg, m.keys.Like):
		path := likePath(m.Selected())
		if path == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m, _, cmd = m.Dispatch(path)
		return m, cmd
	case key.Matches(msg, m.keys.Open):
		path := bodyPath(m.Selected())
		if path == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m, _, cmd = m.Dispatch(path)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelStep)
	}
	return m, nil
}

// moveCursor selects the next or previous post. At either end of the list
// the viewport keeps scrolling through the last card.
func (m Model) moveCursor(delta int) (Model, tea.Cmd) {
	n := m.container.Len()
	if n == 0 {
		return m, nil
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return m.scrollBy(delta)
	}
	m.cursor = next
	if line := m.cursorScrollTarget(); line != m.scrollLine {
		return m.scrollTo(line)
	}
	return m, nil
}
