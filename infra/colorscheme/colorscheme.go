package colorscheme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint resolves the environment's color-scheme preference. A forced scheme
// ("light" or "dark") wins; otherwise the terminal background is queried.
type Hint struct {
	forced string
	detect func() bool
}

// New creates a hint. forced is usually config.Config.ColorScheme.
func New(forced string) *Hint {
	return &Hint{
		forced: strings.ToLower(strings.TrimSpace(forced)),
		detect: lipgloss.HasDarkBackground,
	}
}

// PrefersDark reports whether a dark scheme is preferred.
func (h *Hint) PrefersDark() bool {
	switch h.forced {
	case "dark":
		return true
	case "light":
		return false
	}
	if h.detect == nil {
		return false
	}
	return h.detect()
}
