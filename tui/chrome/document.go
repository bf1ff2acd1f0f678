// Package chrome models the structural UI around the feed: header, tabs,
// bottom navigation, the floating compose menu, the off-canvas sidebar and
// the shared overlay. Every part except Root is optional; behavior that
// depends on a missing part is skipped.
package chrome

const (
	DefaultSidebarWidth = 30
	// DefaultBackToTopRows is the scroll offset past which the back-to-top
	// pill shows.
	DefaultBackToTopRows = 150
)

// Root carries the document-level style flag.
type Root struct {
	LightMode bool
}

// ThemeButton is the header toggle; Icon is the glyph currently shown.
type ThemeButton struct {
	Icon string
}

// Meta is the theme color hint; the header is painted with it.
type Meta struct {
	Color string
}

type Splash struct {
	Hidden bool
}

type Header struct {
	Hidden bool
}

type Tabs struct {
	Hidden bool
	Labels []string
	Active int
}

type BottomNav struct {
	Hidden bool
	Items  []NavItem
	Active int
}

// NavItem is one bottom navigation entry.
type NavItem struct {
	Glyph string
	Label string
}

type Overlay struct {
	Active bool
}

// ComposeMenu is the floating compose button and its action menu.
type ComposeMenu struct {
	Open   bool
	Hidden bool // the trigger itself is hidden while scrolling down
}

// Sidebar is the off-canvas menu. Offset is the live, non-positive drag
// displacement in columns.
type Sidebar struct {
	Open   bool
	Width  int
	Offset int
	drag   dragState
}

type dragState struct {
	active bool
	startX int
}

type BackToTop struct {
	Visible   bool
	Threshold int
}

// Document is the chrome the feed is rendered into.
type Document struct {
	Root        *Root
	Splash      *Splash
	ThemeButton *ThemeButton
	Meta        *Meta
	Header      *Header
	Tabs        *Tabs
	BottomNav   *BottomNav
	Overlay     *Overlay
	Compose     *ComposeMenu
	Sidebar     *Sidebar
	BackToTop   *BackToTop

	lastScrollTop int
}

// Options selects the optional parts New builds.
type Options struct {
	Splash      bool
	ThemeButton bool
}

// New builds the full chrome. Tests build partial documents directly.
func New(opts Options) *Document {
	d := &Document{
		Root:   &Root{},
		Meta:   &Meta{},
		Header: &Header{},
		Tabs: &Tabs{
			Labels: []string{"For you", "Following"},
		},
		BottomNav: &BottomNav{
			Items: []NavItem{
				{Glyph: "⌂", Label: "Home"},
				{Glyph: "⌕", Label: "Search"},
				{Glyph: "◎", Label: "Alerts"},
				{Glyph: "✉", Label: "Messages"},
			},
		},
		Overlay:   &Overlay{},
		Compose:   &ComposeMenu{},
		Sidebar:   &Sidebar{Width: DefaultSidebarWidth},
		BackToTop: &BackToTop{Threshold: DefaultBackToTopRows},
	}
	if opts.Splash {
		d.Splash = &Splash{}
	}
	if opts.ThemeButton {
		d.ThemeButton = &ThemeButton{}
	}
	return d
}

// SplashVisible reports whether the splash screen still covers the app.
func (d *Document) SplashVisible() bool {
	return d.Splash != nil && !d.Splash.Hidden
}

// HideSplash dismisses the splash screen.
func (d *Document) HideSplash() {
	if d.Splash != nil {
		d.Splash.Hidden = true
	}
}

// SelectTab marks tab i active.
func (d *Document) SelectTab(i int) {
	if d.Tabs == nil || i < 0 || i >= len(d.Tabs.Labels) {
		return
	}
	d.Tabs.Active = i
}

// CycleTab moves the active tab by delta, wrapping around.
func (d *Document) CycleTab(delta int) {
	if d.Tabs == nil || len(d.Tabs.Labels) == 0 {
		return
	}
	n := len(d.Tabs.Labels)
	d.Tabs.Active = ((d.Tabs.Active+delta)%n + n) % n
}

// SelectNav marks bottom navigation item i active.
func (d *Document) SelectNav(i int) {
	if d.BottomNav == nil || i < 0 || i >= len(d.BottomNav.Items) {
		return
	}
	d.BottomNav.Active = i
}

// OverlayActive reports whether the shared overlay is shown.
func (d *Document) OverlayActive() bool {
	return d.Overlay != nil && d.Overlay.Active
}

func (d *Document) setOverlay(active bool) {
	if d.Overlay != nil {
		d.Overlay.Active = active
	}
}
