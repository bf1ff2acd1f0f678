package domain

import "errors"

var (
	// ErrPreferenceNotFound indicates no value is stored for the requested key.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrUnknownTheme indicates a theme name other than "light" or "dark".
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidPost indicates a seed record that cannot be displayed.
	ErrInvalidPost = errors.New("invalid post")
)
