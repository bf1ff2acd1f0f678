// Package theme switches the app between light and dark and remembers the
// choice in the preference store.
package theme

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/terminalfeed/app"
	"github.com/CrestNiraj12/terminalfeed/domain"
	"github.com/CrestNiraj12/terminalfeed/tui/chrome"
)

const (
	IconDark  = "☾"
	IconLight = "☀"

	MetaLight = "#FFFFFF"
	MetaDark  = "#15202B"
)

// Controller applies themes to a chrome document. Store and hint may be nil.
type Controller struct {
	doc    *chrome.Document
	store  app.PreferenceStore
	hint   app.ColorSchemeHint
	logger *zap.Logger
}

// New creates a controller bound to doc.
func New(doc *chrome.Document, store app.PreferenceStore, hint app.ColorSchemeHint, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{doc: doc, store: store, hint: hint, logger: logger}
}

// Enabled reports whether the document has a theme button to drive.
func (c *Controller) Enabled() bool {
	return c.doc != nil && c.doc.ThemeButton != nil
}

// Apply persists t and updates the root flag, button icon and meta color.
// A failed write is logged; the visual change still happens.
func (c *Controller) Apply(ctx context.Context, t domain.Theme) {
	if c.store != nil {
		if err := c.store.Set(ctx, domain.ThemePreferenceKey, string(t)); err != nil {
			c.logger.Warn("persist theme preference", zap.String("theme", string(t)), zap.Error(err))
		}
	}
	if c.doc == nil {
		return
	}

	light := t == domain.ThemeLight
	if c.doc.Root != nil {
		c.doc.Root.LightMode = light
	}
	if c.doc.ThemeButton != nil {
		c.doc.ThemeButton.Icon = IconDark
		if light {
			c.doc.ThemeButton.Icon = IconLight
		}
	}
	if c.doc.Meta != nil {
		c.doc.Meta.Color = MetaDark
		if light {
			c.doc.Meta.Color = MetaLight
		}
	}
	c.logger.Debug("theme applied", zap.String("theme", string(t)))
}

// Initial resolves the startup theme: stored preference, then the system
// hint, then light. Unreadable or invalid stored values are skipped.
func (c *Controller) Initial(ctx context.Context) domain.Theme {
	if c.store != nil {
		raw, err := c.store.Get(ctx, domain.ThemePreferenceKey)
		switch {
		case err == nil:
			t, perr := domain.ParseTheme(raw)
			if perr == nil {
				return t
			}
			c.logger.Warn("ignoring stored theme", zap.String("value", raw), zap.Error(perr))
		case !errors.Is(err, domain.ErrPreferenceNotFound):
			c.logger.Warn("read theme preference", zap.Error(err))
		}
	}
	if c.hint != nil && c.hint.PrefersDark() {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

// Start applies the initial theme. No-op without a theme button.
func (c *Controller) Start(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	c.Apply(ctx, c.Initial(ctx))
}

// Current reads the theme off the root flag.
func (c *Controller) Current() domain.Theme {
	if c.doc != nil && c.doc.Root != nil && c.doc.Root.LightMode {
		return domain.ThemeLight
	}
	return domain.ThemeDark
}

// Toggle applies the opposite of the current theme and returns it. No-op
// without a theme button.
func (c *Controller) Toggle(ctx context.Context) domain.Theme {
	if !c.Enabled() {
		return c.Current()
	}
	next := c.Current().Opposite()
	c.Apply(ctx, next)
	return next
}
