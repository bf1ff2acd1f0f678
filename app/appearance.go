package app

// ColorSchemeHint reports the operating environment's color-scheme preference.
type ColorSchemeHint interface {
	PrefersDark() bool
}
