package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/CrestNiraj12/terminalfeed/tui/chrome"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

// View renders the chrome around the feed, then layers the open menus on
// top.
func (a App) View() string {
	width, height := a.screenWidth(), a.screenHeight()
	if a.doc.SplashVisible() {
		return chrome.SplashView(a.styles, width, height, a.spinner.View())
	}

	l := a.layout()
	rows := make([]string, 0, 5)
	if l.header >= 0 {
		rows = append(rows, a.doc.HeaderView(a.styles, width))
	}
	if l.tabs >= 0 {
		rows = append(rows, a.doc.TabsView(a.styles, width))
	}

	feedView := a.feed.View()
	if pill := a.doc.PillView(a.styles); pill != "" {
		start, _ := chrome.PillSpan(width)
		feedView = chrome.Place(feedView, pill, start, 0)
	}
	if a.doc.OverlayActive() {
		feedView = chrome.Dim(a.styles, feedView)
	}
	rows = append(rows, feedView, a.statusLine(width))
	if l.bottom >= 0 {
		rows = append(rows, a.doc.BottomView(a.styles, width))
	}

	screen := strings.Join(rows, "\n")
	if a.doc.ComposeOpen() {
		x, y, _, _ := a.composeRect(l)
		screen = chrome.Place(screen, a.doc.ComposeMenuView(a.styles), x, y)
	}
	if a.doc.SidebarOpen() {
		screen = chrome.Place(screen, a.doc.SidebarView(a.styles, height), 0, 0)
	}
	return screen
}

func (a App) statusLine(width int) string {
	if a.status != "" {
		return common.ClampLinesToWidth(a.styles.StatusBar.Render(" "+a.status), width)
	}
	return common.ClampLinesToWidth(a.styles.Dim.Render(" "+a.hints()), width)
}

func (a App) hints() string {
	bindings := []key.Binding{a.keys.Down, a.keys.Like, a.keys.Open, a.keys.Compose, a.keys.ToggleHints, a.keys.Quit}
	if a.showAllHints {
		k := a.keys
		bindings = []key.Binding{
			k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Like, k.Open,
			k.Theme, k.Compose, k.Sidebar, k.Dismiss, k.NextTab, k.Nav, k.ToggleHints, k.Quit,
		}
	}
	if a.doc.ComposeOpen() {
		bindings = []key.Binding{a.keys.Video, a.keys.Audio, a.keys.Image, a.keys.Dismiss}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
