package chrome

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

const (
	profileTrigger = "(◉)"
	fabLabel       = "✚ Post"
	backToTopLabel = "↑ Back to top"
)

// HeaderTarget is what a click on the header row landed on.
type HeaderTarget int

const (
	HeaderNone HeaderTarget = iota
	HeaderProfile
	HeaderTheme
)

// HeaderView renders the top bar: sidebar trigger, title and theme button.
func (d *Document) HeaderView(s common.Styles, width int) string {
	left := s.Author.Render(profileTrigger) + s.AppTitle.Render(domain.DisplayAppTitle())
	right := ""
	if d.ThemeButton != nil {
		right = " " + s.Verified.Render(d.ThemeButton.Icon) + " "
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left + strings.Repeat(" ", max(gap, 1)) + right

	bar := lipgloss.NewStyle().Width(width).MaxWidth(width)
	if d.Meta != nil && d.Meta.Color != "" {
		bar = bar.Background(lipgloss.Color(d.Meta.Color))
	}
	return bar.Render(line)
}

// HeaderHit maps a header column to its target.
func (d *Document) HeaderHit(x, width int) HeaderTarget {
	switch {
	case x >= 0 && x < ansi.StringWidth(profileTrigger):
		return HeaderProfile
	case d.ThemeButton != nil && x >= width-3 && x < width:
		return HeaderTheme
	}
	return HeaderNone
}

// TabsView renders the tab strip.
func (d *Document) TabsView(s common.Styles, width int) string {
	if d.Tabs == nil {
		return ""
	}
	parts := make([]string, 0, len(d.Tabs.Labels))
	for i, label := range d.Tabs.Labels {
		if i == d.Tabs.Active {
			parts = append(parts, s.TabActive.Render(label))
			continue
		}
		parts = append(parts, s.TabInactive.Render(label))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// TabAt returns the tab under column x, or -1.
func (d *Document) TabAt(x int) int {
	if d.Tabs == nil {
		return -1
	}
	start := 0
	for i, label := range d.Tabs.Labels {
		end := start + ansi.StringWidth(label) + 4
		if x >= start && x < end {
			return i
		}
		start = end
	}
	return -1
}

// BottomView renders the navigation bar with the compose trigger on the
// right. The trigger is drawn even when the bar itself is hidden.
func (d *Document) BottomView(s common.Styles, width int) string {
	nav := ""
	if d.BottomNav != nil && !d.BottomNav.Hidden {
		parts := make([]string, 0, len(d.BottomNav.Items))
		for i, item := range d.BottomNav.Items {
			text := item.Glyph + " " + item.Label
			if i == d.BottomNav.Active {
				parts = append(parts, s.NavActive.Render(text))
				continue
			}
			parts = append(parts, s.NavInactive.Render(text))
		}
		nav = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	fab := ""
	if d.FabVisible() {
		fab = s.Fab.Render(fabLabel)
	}
	gap := width - ansi.StringWidth(nav) - ansi.StringWidth(fab)
	return common.ClampLinesToWidth(nav+strings.Repeat(" ", max(gap, 0))+fab, width)
}

// BottomVisible reports whether the bottom row has anything to draw.
func (d *Document) BottomVisible() bool {
	return (d.BottomNav != nil && !d.BottomNav.Hidden) || d.FabVisible()
}

// FabVisible reports whether the compose trigger is on screen.
func (d *Document) FabVisible() bool {
	return d.Compose != nil && !d.Compose.Hidden
}

// NavAt returns the navigation item under column x, or -1.
func (d *Document) NavAt(x int) int {
	if d.BottomNav == nil || d.BottomNav.Hidden {
		return -1
	}
	start := 0
	for i, item := range d.BottomNav.Items {
		end := start + ansi.StringWidth(item.Glyph+" "+item.Label) + 2
		if x >= start && x < end {
			return i
		}
		start = end
	}
	return -1
}

// FabHit reports whether column x of the bottom row is the compose trigger.
func (d *Document) FabHit(x, width int) bool {
	return d.FabVisible() && x >= width-ansi.StringWidth(fabLabel)-2 && x < width
}

// ComposeMenuView renders the expanded compose menu panel.
func (d *Document) ComposeMenuView(s common.Styles) string {
	lines := make([]string, 0, len(ComposeActions))
	for _, a := range ComposeActions {
		lines = append(lines, composeLabel(a))
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

// ComposeItemAt maps a row of the menu panel to its action.
func (d *Document) ComposeItemAt(row int) (ComposeAction, bool) {
	i := row - 1 // top border
	if i < 0 || i >= len(ComposeActions) {
		return "", false
	}
	return ComposeActions[i], true
}

func composeLabel(a ComposeAction) string {
	switch a {
	case ActionVideo:
		return "▶ Video   v"
	case ActionAudio:
		return "♪ Audio   a"
	case ActionImage:
		return "▣ Image   i"
	}
	return string(a)
}

// SidebarView renders the visible part of the sidebar, shifted by the live
// drag offset.
func (d *Document) SidebarView(s common.Styles, height int) string {
	if !d.SidebarOpen() {
		return ""
	}
	sb := d.Sidebar
	theme := "dark"
	if d.Root != nil && d.Root.LightMode {
		theme = "light"
	}
	body := strings.Join([]string{
		s.Author.Render("◉ Lautaro"),
		s.Handle.Render("@lautidev_"),
		s.Dim.Render("482 Following · 1.2K Followers"),
		"",
		"☺ Profile",
		"✦ Premium",
		"⚑ Bookmarks",
		"☰ Lists",
		"⚙ Settings",
		"",
		s.Dim.Render("theme: " + theme + " (t)"),
		s.Dim.Render("drag ← or esc to close"),
	}, "\n")
	panel := s.Panel.
		Width(max(sb.Width-2, 1)).
		Height(max(height-2, 1)).
		Render(body)
	if sb.Offset == 0 {
		return panel
	}
	lines := strings.Split(panel, "\n")
	for i, ln := range lines {
		lines[i] = ansi.Cut(ln, -sb.Offset, sb.Width)
	}
	return strings.Join(lines, "\n")
}

// SidebarVisibleWidth is how many columns of the open sidebar are on screen.
func (d *Document) SidebarVisibleWidth() int {
	if !d.SidebarOpen() {
		return 0
	}
	return max(d.Sidebar.Width+d.Sidebar.Offset, 0)
}

// PillView renders the back-to-top pill, or nothing when it is not visible.
func (d *Document) PillView(s common.Styles) string {
	if d.BackToTop == nil || !d.BackToTop.Visible {
		return ""
	}
	return s.Pill.Render(backToTopLabel)
}

// PillSpan is the column range of the pill when centered in width.
func PillSpan(width int) (start, end int) {
	w := ansi.StringWidth(backToTopLabel) + 2
	start = max((width-w)/2, 0)
	return start, start + w
}

// SplashView fills the screen with the title and a spinner.
func SplashView(s common.Styles, width, height int, spin string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.AppTitle.Render(domain.DisplayAppTitle()),
		s.Tagline.Render(domain.AppTagline),
		"",
		spin,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
