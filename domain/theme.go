package domain

import (
	"fmt"
	"strings"
)

// Theme is the persisted color mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemePreferenceKey is the preference key the theme is stored under.
const ThemePreferenceKey = "theme"

// ParseTheme accepts "light" or "dark" (case-insensitive, surrounding space ignored).
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
