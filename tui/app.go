package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalfeed/app"
	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/chrome"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
	"github.com/CrestNiraj12/terminalfeed/tui/feed"
	"github.com/CrestNiraj12/terminalfeed/tui/theme"
)

const defaultSplashDelay = 2 * time.Second

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Prefs         app.PreferenceStore
	ColorScheme   app.ColorSchemeHint
	Seed          []domain.Post
	Logger        *zap.Logger
	Splash        bool
	ThemeButton   bool
	SplashDelay   time.Duration
	LoadDelay     time.Duration
	SettleDelay   time.Duration
	LoadThreshold int
}

type splashDoneMsg struct{}

// App is the root Bubble Tea model. It owns the chrome and routes input
// between it and the feed.
type App struct {
	deps         Deps
	logger       *zap.Logger
	doc          *chrome.Document
	theme        *theme.Controller
	feed         feed.Model
	keys         common.KeyMap
	styles       common.Styles
	spinner      spinner.Model
	width        int
	height       int
	status       string // Transient status message (e.g. "Theme: dark")
	showAllHints bool
}

// NewApp creates the root model with all dependencies wired and the initial
// theme applied.
func NewApp(deps Deps) App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.SplashDelay <= 0 {
		deps.SplashDelay = defaultSplashDelay
	}

	doc := chrome.New(chrome.Options{Splash: deps.Splash, ThemeButton: deps.ThemeButton})
	ctrl := theme.New(doc, deps.Prefs, deps.ColorScheme, logger)
	ctrl.Start(context.Background())
	styles := common.NewStyles(doc.Root.LightMode)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(styles.Palette.Accent)

	a := App{
		deps:    deps,
		logger:  logger,
		doc:     doc,
		theme:   ctrl,
		keys:    common.DefaultKeyMap(),
		styles:  styles,
		spinner: s,
		feed: feed.New(feed.Options{
			Seed:          deps.Seed,
			Logger:        logger,
			Styles:        &styles,
			LoadDelay:     deps.LoadDelay,
			SettleDelay:   deps.SettleDelay,
			LoadThreshold: deps.LoadThreshold,
		}),
	}
	a.resize()
	return a
}

// Init schedules the splash dismissal and starts the sub-models.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.feed.Init()}
	if a.doc.SplashVisible() {
		cmds = append(cmds,
			tea.Tick(a.deps.SplashDelay, func(time.Time) tea.Msg { return splashDoneMsg{} }),
			a.spinner.Tick,
		)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and routes them to the chrome or the feed.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case splashDoneMsg:
		a.doc.HideSplash()
		return a, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if a.doc.SplashVisible() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case feed.NoticeMsg:
		a.status = msg.Text
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	return a.updateFeed(msg)
}

// updateFeed delegates to the feed and lets the chrome react to any scroll
// event it produced.
func (a App) updateFeed(msg tea.Msg) (App, tea.Cmd) {
	before := a.feed.ScrollEvents()
	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	a.syncScroll(before)
	return a, cmd
}

func (a *App) syncScroll(before int) {
	if a.feed.ScrollEvents() == before {
		return
	}
	a.doc.OnScroll(a.feed.ScrollOffset())
	a.resize()
}

func (a *App) toggleTheme() {
	if !a.theme.Enabled() {
		a.status = "Theme toggle unavailable"
		return
	}
	t := a.theme.Toggle(context.Background())
	a.styles = common.NewStyles(a.doc.Root.LightMode)
	a.spinner.Style = lipgloss.NewStyle().Foreground(a.styles.Palette.Accent)
	a.feed = a.feed.SetStyles(a.styles)
	a.status = "Theme: " + string(t)
}

func (a *App) runComposeAction(action chrome.ComposeAction) {
	a.doc.RunComposeAction(action)
	a.logger.Info("compose action", zap.String("action", string(action)))
	a.status = "New " + string(action) + " post is not implemented yet"
}

func (a *App) resize() {
	l := a.layout()
	a.feed = a.feed.SetSize(a.screenWidth(), l.feedHeight)
}

func (a App) screenWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

func (a App) screenHeight() int {
	if a.height <= 0 {
		return 24
	}
	return a.height
}
