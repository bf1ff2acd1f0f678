package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMoreMsg:
		if msg.seq != m.loadSeq || !m.loadingMore {
			return m, nil
		}
		m.renderer.Append(m.container, m.seed)
		m.loadingMore = false
		m.loads++
		m.logger.Debug("appended seed copy",
			zap.Int("loads", m.loads),
			zap.Int("elements", m.container.Len()),
		)
		return m, nil

	case settleMsg:
		if msg.seq != m.settleSeq {
			return m, nil
		}
		m.scrolling = false
		return m, nil
	}
	return m, nil
}

// ScrollToTop jumps to the first post.
func (m Model) ScrollToTop() (Model, tea.Cmd) {
	m.cursor = 0
	return m.scrollTo(0)
}

func (m Model) scrollBy(delta int) (Model, tea.Cmd) {
	return m.scrollTo(m.scrollLine + delta)
}

// scrollTo moves the viewport and emits one scroll event, even when the
// offset is clamped in place.
func (m Model) scrollTo(line int) (Model, tea.Cmd) {
	m.scrollLine = min(max(line, 0), m.maxScroll())
	m.followScroll()
	return m.onScroll()
}

func (m Model) onScroll() (Model, tea.Cmd) {
	m.settleSeq++
	m.scrolling = true
	seq := m.settleSeq
	cmds := []tea.Cmd{
		tea.Tick(m.settleDelay, func(time.Time) tea.Msg { return settleMsg{seq: seq} }),
	}
	if cmd := m.maybeLoadMore(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) nearBottom() bool {
	return m.scrollLine+m.viewportHeight() >= m.documentHeight()-m.loadThreshold
}

// maybeLoadMore schedules one append of the seed list. Triggers while a load
// is in flight do nothing.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.loadingMore || !m.nearBottom() {
		return nil
	}
	m.loadingMore = true
	m.loadSeq++
	seq := m.loadSeq
	m.logger.Debug("loading more posts", zap.Int("seq", seq), zap.Int("scroll", m.scrollLine))
	return tea.Batch(
		tea.Tick(m.loadDelay, func(time.Time) tea.Msg { return loadMoreMsg{seq: seq} }),
		m.spinner.Tick,
	)
}

// followScroll moves the cursor onto the viewport when scrolling left it
// behind.
func (m *Model) followScroll() {
	lay := m.ensureLayout()
	if m.cursor < 0 || m.cursor >= len(lay.tops) {
		return
	}
	top := lay.tops[m.cursor]
	bottom := top + lay.heights[m.cursor] - 1
	if bottom >= m.scrollLine && top < m.scrollLine+m.viewportHeight() {
		return
	}
	if i := lay.elementAt(m.scrollLine); i >= 0 {
		m.cursor = i
	}
}

// cursorScrollTarget is the closest scroll line that shows the whole cursor
// card, or at least its top.
func (m Model) cursorScrollTarget() int {
	lay := m.ensureLayout()
	line := m.scrollLine
	if m.cursor < 0 || m.cursor >= len(lay.tops) {
		return line
	}
	top := lay.tops[m.cursor]
	bottom := top + lay.heights[m.cursor] - 1
	if bottom >= line+m.viewportHeight() {
		line = bottom - m.viewportHeight() + 1
	}
	if top < line {
		line = top
	}
	return line
}
