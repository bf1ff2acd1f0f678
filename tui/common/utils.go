package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ClampLinesToWidth cuts every line to width display cells.
func ClampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}
