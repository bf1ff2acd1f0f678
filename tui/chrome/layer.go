package chrome

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalfeed/tui/common"
)

const resetStyle = "\x1b[0m"

// Place draws panel over base with its top-left corner at column x, row y.
// Rows of the panel that fall outside base are dropped.
func Place(base, panel string, x, y int) string {
	if panel == "" {
		return base
	}
	rows := strings.Split(base, "\n")
	for i, pl := range strings.Split(panel, "\n") {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		line := rows[row]
		lineW := ansi.StringWidth(line)

		left := ansi.Cut(line, 0, x)
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		right := ""
		if end := x + ansi.StringWidth(pl); end < lineW {
			right = ansi.Cut(line, end, lineW)
		}
		rows[row] = left + resetStyle + pl + resetStyle + right
	}
	return strings.Join(rows, "\n")
}

// Dim repaints already rendered text in the faint overlay style.
func Dim(s common.Styles, text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = s.Overlay.Render(ansi.Strip(ln))
	}
	return strings.Join(lines, "\n")
}
