package feed

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	defaultLoadDelay   = 500 * time.Millisecond
	defaultSettleDelay = 150 * time.Millisecond
	wheelStep          = 3

	// DefaultLoadThreshold is the near-bottom distance in rows: 200 logical
	// units at 20 units per row.
	DefaultLoadThreshold = 10
)

// NoticeMsg asks the parent to show a transient status line.
type NoticeMsg struct {
	Text string
}

type loadMoreMsg struct {
	seq int
}

type settleMsg struct {
	seq int
}

// Options configures a feed Model. Zero values pick the defaults.
type Options struct {
	Seed          []domain.Post
	Logger        *zap.Logger
	Styles        *common.Styles
	LoadDelay     time.Duration
	SettleDelay   time.Duration
	LoadThreshold int
}

type modelServices struct {
	logger   *zap.Logger
	renderer Renderer
}

type feedState struct {
	seed        []domain.Post
	container   *Container
	cursor      int
	loadingMore bool
	loadSeq     int
	loads       int
}

type scrollState struct {
	scrollLine    int
	scrolling     bool // until the settle tick arrives
	settleSeq     int
	loadThreshold int
	loadDelay     time.Duration
	settleDelay   time.Duration
}

type uiState struct {
	keys    common.KeyMap
	spinner spinner.Model
	styles  common.Styles
	width   int
	height  int // viewport rows, set by the parent
	layout  *layoutCache
}

// Model is the scrollable feed of post cards.
type Model struct {
	modelServices
	feedState
	scrollState
	uiState
}

// New renders the seed list into a fresh container.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := common.NewStyles(false)
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Palette.Accent)

	m := Model{
		modelServices: modelServices{
			logger:   logger,
			renderer: NewRenderer(),
		},
		feedState: feedState{
			seed:      append([]domain.Post(nil), opts.Seed...),
			container: NewContainer(),
		},
		scrollState: scrollState{
			loadThreshold: opts.LoadThreshold,
			loadDelay:     opts.LoadDelay,
			settleDelay:   opts.SettleDelay,
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
			styles:  styles,
			width:   defaultWidth,
			height:  defaultHeight,
			layout:  &layoutCache{},
		},
	}
	if m.loadThreshold <= 0 {
		m.loadThreshold = DefaultLoadThreshold
	}
	if m.loadDelay <= 0 {
		m.loadDelay = defaultLoadDelay
	}
	if m.settleDelay <= 0 {
		m.settleDelay = defaultSettleDelay
	}
	m.renderer.Render(m.container, m.seed)
	return m
}

// Init has nothing to start; the feed is rendered synchronously.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// SetSize sets the card area width and the viewport height in rows.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = max(height, 1)
	if m.scrollLine > m.maxScroll() {
		m.scrollLine = m.maxScroll()
	}
	return m
}

// SetStyles swaps the palette, e.g. after a theme toggle.
func (m Model) SetStyles(s common.Styles) Model {
	m.styles = s
	m.spinner.Style = lipgloss.NewStyle().Foreground(s.Palette.Accent)
	return m
}

// Container exposes the rendered elements.
func (m Model) Container() *Container { return m.container }

// Cursor is the index of the selected element.
func (m Model) Cursor() int { return m.cursor }

// Selected returns the selected element, or nil on an empty feed.
func (m Model) Selected() *Element { return m.container.At(m.cursor) }

// ScrollOffset is the first document row in the viewport.
func (m Model) ScrollOffset() int { return m.scrollLine }

// ScrollEvents counts scroll events so far; the parent compares it across
// updates to react to scrolling.
func (m Model) ScrollEvents() int { return m.settleSeq }

// Loading reports whether a load-more is in flight.
func (m Model) Loading() bool { return m.loadingMore }

// Scrolling reports whether the last scroll has not settled yet.
func (m Model) Scrolling() bool { return m.scrolling }

func (m Model) viewportHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

func (m Model) documentHeight() int {
	return m.ensureLayout().total
}

func (m Model) maxScroll() int {
	return max(m.documentHeight()-m.viewportHeight(), 0)
}
