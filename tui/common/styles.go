package common

import "github.com/charmbracelet/lipgloss"

// Palette is one theme's colors.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
	Like       lipgloss.Color
}

var (
	DarkPalette = Palette{
		Foreground: lipgloss.Color("#E7E9EA"),
		Muted:      lipgloss.Color("#8B98A5"),
		Accent:     lipgloss.Color("#1D9BF0"),
		Border:     lipgloss.Color("#38444D"),
		Selected:   lipgloss.Color("#1D9BF0"),
		Like:       lipgloss.Color("#F91880"),
	}
	LightPalette = Palette{
		Foreground: lipgloss.Color("#0F1419"),
		Muted:      lipgloss.Color("#536471"),
		Accent:     lipgloss.Color("#1D9BF0"),
		Border:     lipgloss.Color("#CFD9DE"),
		Selected:   lipgloss.Color("#1D9BF0"),
		Like:       lipgloss.Color("#F91880"),
	}
)

// Styles holds every style the views render with. Built per theme.
type Styles struct {
	Palette Palette

	// AppTitle styles the application title. Rendered at call site with content.
	AppTitle lipgloss.Style
	Tagline  lipgloss.Style

	// Author styles the post author's display name.
	Author    lipgloss.Style
	Handle    lipgloss.Style
	Timestamp lipgloss.Style
	Content   lipgloss.Style
	Verified  lipgloss.Style
	AdBadge   lipgloss.Style
	Media     lipgloss.Style

	// SelectedCard highlights the currently selected post.
	SelectedCard lipgloss.Style
	// Card gives unselected posts a subtle border.
	Card lipgloss.Style

	Action      lipgloss.Style
	ActionLiked lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	Panel     lipgloss.Style // sidebar and compose menu
	Overlay   lipgloss.Style
	Pill      lipgloss.Style
	Fab       lipgloss.Style
	StatusBar lipgloss.Style
	Dim       lipgloss.Style
}

// NewStyles builds the style set for the light or dark palette.
func NewStyles(light bool) Styles {
	p := DarkPalette
	if light {
		p = LightPalette
	}
	return Styles{
		Palette: p,
		AppTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground).
			Padding(0, 1),
		Tagline: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Author: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground),
		Handle:    lipgloss.NewStyle().Foreground(p.Muted),
		Timestamp: lipgloss.NewStyle().Foreground(p.Muted),
		Content:   lipgloss.NewStyle().Foreground(p.Foreground),
		Verified:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		AdBadge: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Media: lipgloss.NewStyle().
			Foreground(p.Accent).
			Faint(true),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Selected).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Action:      lipgloss.NewStyle().Foreground(p.Muted),
		ActionLiked: lipgloss.NewStyle().Foreground(p.Like).Bold(true),
		TabActive: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true).
			Underline(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),
		NavActive: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Padding(0, 1),
		NavInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Foreground).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().Foreground(p.Border).Faint(true),
		Pill: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		Fab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(p.Muted),
		Dim:       lipgloss.NewStyle().Foreground(p.Muted).Faint(true),
	}
}
