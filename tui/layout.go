package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// screenLayout is the row of every chrome part; -1 when hidden.
type screenLayout struct {
	header     int
	tabs       int
	feedTop    int
	feedHeight int
	status     int
	bottom     int
}

func (a App) layout() screenLayout {
	l := screenLayout{header: -1, tabs: -1, bottom: -1}
	y := 0
	if a.doc.Header != nil && !a.doc.Header.Hidden {
		l.header = y
		y++
	}
	if a.doc.Tabs != nil && !a.doc.Tabs.Hidden {
		l.tabs = y
		y++
	}
	l.feedTop = y

	reserved := 1 // status line
	if a.doc.BottomVisible() {
		reserved++
	}
	l.feedHeight = max(a.screenHeight()-y-reserved, 1)
	l.status = y + l.feedHeight
	if a.doc.BottomVisible() {
		l.bottom = l.status + 1
	}
	return l
}

// composeRect is where the compose menu panel is drawn: right-aligned,
// directly above the bottom row.
func (a App) composeRect(l screenLayout) (x, y, w, h int) {
	panel := a.doc.ComposeMenuView(a.styles)
	w = lipgloss.Width(panel)
	h = lipgloss.Height(panel)
	anchor := l.status
	if l.bottom >= 0 {
		anchor = l.bottom
	}
	return max(a.screenWidth()-w, 0), max(anchor-h, 0), w, h
}
