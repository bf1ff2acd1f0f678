package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalfeed/tui/chrome"
)

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}
	if a.doc.SplashVisible() {
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}
	if a.showAllHints {
		if key.Matches(msg, a.keys.ToggleHints, a.keys.Dismiss, a.keys.Quit) {
			a.showAllHints = false
		}
		return a, nil
	}
	a.status = ""

	if a.doc.ComposeOpen() {
		switch {
		case key.Matches(msg, a.keys.Video):
			a.runComposeAction(chrome.ActionVideo)
			return a, nil
		case key.Matches(msg, a.keys.Audio):
			a.runComposeAction(chrome.ActionAudio)
			return a, nil
		case key.Matches(msg, a.keys.Image):
			a.runComposeAction(chrome.ActionImage)
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		if a.doc.ComposeOpen() || a.doc.SidebarOpen() || a.doc.OverlayActive() {
			a.doc.ClickOverlay()
			return a, nil
		}
		return a, tea.Quit
	case key.Matches(msg, a.keys.ToggleHints):
		a.showAllHints = true
		return a, nil
	case key.Matches(msg, a.keys.Theme):
		a.toggleTheme()
		return a, nil
	case key.Matches(msg, a.keys.Compose):
		if !a.doc.FabVisible() && !a.doc.ComposeOpen() {
			return a, nil
		}
		a.doc.ToggleCompose()
		return a, nil
	case key.Matches(msg, a.keys.Sidebar):
		a.doc.OpenSidebar()
		return a, nil
	case key.Matches(msg, a.keys.Dismiss):
		a.doc.ClickOverlay()
		return a, nil
	case key.Matches(msg, a.keys.NextTab):
		a.doc.CycleTab(1)
		return a, nil
	case key.Matches(msg, a.keys.PrevTab):
		a.doc.CycleTab(-1)
		return a, nil
	case key.Matches(msg, a.keys.Nav):
		a.doc.SelectNav(int(msg.String()[0] - '1'))
		return a, nil
	}

	return a.updateFeed(msg)
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.doc.SplashVisible() {
		return a, nil
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		a.doc.DragMove(msg.X)
		return a, nil
	case tea.MouseActionRelease:
		if a.doc.Dragging() {
			a.doc.DragEnd()
		}
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return a.updateFeed(msg)
	case tea.MouseButtonLeft:
		return a.handleClick(msg.X, msg.Y)
	}
	return a, nil
}

// handleClick routes a left press. Open menus and the overlay sit above
// everything else.
func (a App) handleClick(x, y int) (tea.Model, tea.Cmd) {
	l := a.layout()
	width := a.screenWidth()

	if a.doc.SidebarOpen() {
		if x < a.doc.SidebarVisibleWidth() {
			a.doc.DragStart(x)
			return a, nil
		}
		a.doc.ClickOverlay()
		return a, nil
	}
	if a.doc.ComposeOpen() {
		if y == l.bottom && a.doc.FabHit(x, width) {
			a.doc.ToggleCompose()
			return a, nil
		}
		px, py, pw, ph := a.composeRect(l)
		if x >= px && x < px+pw && y >= py && y < py+ph {
			if action, ok := a.doc.ComposeItemAt(y - py); ok {
				a.runComposeAction(action)
			}
			return a, nil
		}
		a.doc.ClickOverlay()
		return a, nil
	}
	if a.doc.OverlayActive() {
		a.doc.ClickOverlay()
		return a, nil
	}

	switch {
	case y == l.header:
		switch a.doc.HeaderHit(x, width) {
		case chrome.HeaderProfile:
			a.doc.OpenSidebar()
		case chrome.HeaderTheme:
			a.toggleTheme()
		}
		return a, nil
	case y == l.tabs:
		a.doc.SelectTab(a.doc.TabAt(x))
		return a, nil
	case y == l.bottom:
		if a.doc.FabHit(x, width) {
			a.doc.ToggleCompose()
			return a, nil
		}
		a.doc.SelectNav(a.doc.NavAt(x))
		return a, nil
	case y >= l.feedTop && y < l.feedTop+l.feedHeight:
		if y == l.feedTop && a.pillHit(x) {
			before := a.feed.ScrollEvents()
			var cmd tea.Cmd
			a.feed, cmd = a.feed.ScrollToTop()
			a.syncScroll(before)
			return a, cmd
		}
		before := a.feed.ScrollEvents()
		var cmd tea.Cmd
		a.feed, _, cmd = a.feed.Click(x, y-l.feedTop)
		a.syncScroll(before)
		return a, cmd
	}
	return a, nil
}

func (a App) pillHit(x int) bool {
	if a.doc.BackToTop == nil || !a.doc.BackToTop.Visible {
		return false
	}
	start, end := chrome.PillSpan(a.screenWidth())
	return x >= start && x < end
}
