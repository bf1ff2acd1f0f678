package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/feed"
)

type memStore map[string]string

func (s memStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return v, nil
}

func (s memStore) Set(_ context.Context, key, value string) error {
	s[key] = value
	return nil
}

func (memStore) Close() error { return nil }

func newTestApp(t *testing.T, store memStore) App {
	t.Helper()
	a := NewApp(Deps{
		Prefs:       store,
		Seed:        domain.SeedPosts(),
		ThemeButton: true,
	})
	return step(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func step(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	updated, ok := m.(App)
	if !ok {
		t.Fatalf("expected App, got %T", m)
	}
	return updated
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewApp_AppliesStoredTheme(t *testing.T) {
	a := newTestApp(t, memStore{domain.ThemePreferenceKey: "light"})
	if !a.doc.Root.LightMode || a.doc.Meta.Color != "#FFFFFF" {
		t.Fatalf("expected stored light theme applied at startup")
	}
}

func TestThemeKey_TogglesAndPersists(t *testing.T) {
	store := memStore{domain.ThemePreferenceKey: "light"}
	a := newTestApp(t, store)

	a = step(t, a, press('t'))
	if a.doc.Root.LightMode || store[domain.ThemePreferenceKey] != "dark" {
		t.Fatalf("expected dark theme persisted, got %q", store[domain.ThemePreferenceKey])
	}
	if a.status != "Theme: dark" {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestThemeKey_NoButtonIsNoop(t *testing.T) {
	store := memStore{}
	a := NewApp(Deps{Prefs: store, Seed: domain.SeedPosts()})
	a = step(t, a, press('t'))
	if len(store) != 0 || a.doc.Root.LightMode {
		t.Fatalf("theme must stay untouched without a button")
	}
}

func TestSplash_BlocksInputUntilDismissed(t *testing.T) {
	a := NewApp(Deps{Seed: domain.SeedPosts(), Splash: true})
	if a.Init() == nil {
		t.Fatalf("expected splash timer")
	}
	a = step(t, a, press('n'))
	if a.doc.ComposeOpen() {
		t.Fatalf("keys are ignored behind the splash")
	}
	a = step(t, a, splashDoneMsg{})
	if a.doc.SplashVisible() {
		t.Fatalf("expected splash hidden")
	}
	a = step(t, a, press('n'))
	if !a.doc.ComposeOpen() {
		t.Fatalf("expected compose menu after splash")
	}
}

func TestComposeMenu_ActionClosesAndReports(t *testing.T) {
	a := newTestApp(t, memStore{})

	a = step(t, a, press('n'))
	if !a.doc.ComposeOpen() || !a.doc.OverlayActive() {
		t.Fatalf("expected compose menu with overlay")
	}
	a = step(t, a, press('v'))
	if a.doc.ComposeOpen() || a.doc.OverlayActive() {
		t.Fatalf("action should close the menu")
	}
	if !strings.Contains(a.status, "video") {
		t.Fatalf("expected not-implemented status, got %q", a.status)
	}
}

func TestComposeMenu_ClickOutsideClosesBoth(t *testing.T) {
	a := newTestApp(t, memStore{})
	a = step(t, a, press('n'))

	a = step(t, a, click(5, 10))
	if a.doc.ComposeOpen() || a.doc.OverlayActive() {
		t.Fatalf("overlay click should close the compose menu")
	}
}

func TestSidebar_OpenFromHeaderAndSwipeClose(t *testing.T) {
	a := newTestApp(t, memStore{})

	a = step(t, a, click(1, 0))
	if !a.doc.SidebarOpen() || !a.doc.OverlayActive() {
		t.Fatalf("profile trigger should open the sidebar")
	}

	a = step(t, a, click(25, 5))
	if !a.doc.Dragging() {
		t.Fatalf("press inside the sidebar should start a drag")
	}
	a = step(t, a, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	a = step(t, a, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if a.doc.SidebarOpen() || a.doc.OverlayActive() {
		t.Fatalf("20 of 30 columns is past 40%%, expected closed")
	}
}

func TestSidebar_ClickOutsideCloses(t *testing.T) {
	a := newTestApp(t, memStore{})
	a = step(t, a, press('s'))

	a = step(t, a, click(60, 10))
	if a.doc.SidebarOpen() || a.doc.OverlayActive() {
		t.Fatalf("overlay click should close the sidebar")
	}
}

func TestScroll_HidesChromeAndClosesCompose(t *testing.T) {
	a := newTestApp(t, memStore{})
	a = step(t, a, press('n'))

	a = step(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if !a.doc.Header.Hidden || !a.doc.Tabs.Hidden || !a.doc.BottomNav.Hidden {
		t.Fatalf("scrolling down should hide the chrome")
	}
	if a.doc.ComposeOpen() || a.doc.OverlayActive() {
		t.Fatalf("scrolling should close the compose menu")
	}
	if l := a.layout(); l.feedTop != 0 || l.feedHeight != 23 {
		t.Fatalf("feed should take the freed rows, got top %d height %d", l.feedTop, l.feedHeight)
	}

	a = step(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if a.doc.Header.Hidden || a.doc.Tabs.Hidden || a.doc.BottomNav.Hidden {
		t.Fatalf("scrolling up should show the chrome")
	}
}

func TestComposeKey_IgnoredWhileTriggerHidden(t *testing.T) {
	a := newTestApp(t, memStore{})
	a = step(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if a.doc.FabVisible() {
		t.Fatalf("scrolling down should hide the compose trigger")
	}

	a = step(t, a, press('n'))
	if a.doc.ComposeOpen() || a.doc.OverlayActive() {
		t.Fatalf("compose key must not open a menu whose trigger is hidden")
	}

	a = step(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	a = step(t, a, press('n'))
	if !a.doc.ComposeOpen() {
		t.Fatalf("compose key should open the menu once the trigger is back")
	}
}

func TestTabsAndNavKeys(t *testing.T) {
	a := newTestApp(t, memStore{})
	a = step(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.doc.Tabs.Active != 1 {
		t.Fatalf("expected second tab, got %d", a.doc.Tabs.Active)
	}
	a = step(t, a, press('3'))
	if a.doc.BottomNav.Active != 2 {
		t.Fatalf("expected third nav item, got %d", a.doc.BottomNav.Active)
	}
}

func TestEnter_NoticeReachesStatusLine(t *testing.T) {
	a := newTestApp(t, memStore{})
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected notice command")
	}
	msg := cmd()
	if _, ok := msg.(feed.NoticeMsg); !ok {
		t.Fatalf("expected NoticeMsg, got %T", msg)
	}
	a = step(t, m.(App), msg)
	if !strings.Contains(a.status, "@lautidev_") {
		t.Fatalf("expected status for first post, got %q", a.status)
	}
}

func TestView_RendersChrome(t *testing.T) {
	a := newTestApp(t, memStore{})
	out := ansi.Strip(a.View())
	for _, want := range []string{"terminalfeed", "For you", "Following", "Home", "✚ Post", "@lautidev_"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
	if got := len(strings.Split(out, "\n")); got != 24 {
		t.Fatalf("expected 24 rows, got %d", got)
	}
}
