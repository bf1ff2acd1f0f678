package feed

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders exactly the viewport: visible cards, the loading line and
// the scrollbar.
func (m Model) View() string {
	vh := m.viewportHeight()
	lines := make([]string, 0, vh)

	lay := m.ensureLayout()
	if m.container.Len() == 0 {
		lines = append(lines, m.styles.Dim.Render("  No posts yet."))
	} else {
		start, end := m.scrollLine, m.scrollLine+vh
		for i := lay.elementAt(start); i >= 0 && i < m.container.Len() && lay.tops[i] < end; i++ {
			el := m.container.At(i)
			card := m.renderCard(el, lay.cards[el.ID], i == m.cursor)
			for j, ln := range strings.Split(card, "\n") {
				if line := lay.tops[i] + j; line >= start && line < end {
					lines = append(lines, ln)
				}
			}
		}
	}
	for len(lines) < vh {
		lines = append(lines, "")
	}
	if m.loadingMore {
		lines[vh-1] = "  " + m.spinner.View() + m.styles.Dim.Render(" Loading more posts...")
	}

	list := strings.Join(lines, "\n")
	if lay.total <= vh {
		return list
	}
	listW := lay.innerW + cardChrome
	list = lipgloss.NewStyle().Width(listW).MaxWidth(listW).Render(list)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", m.scrollbar(vh, lay.total))
}

func (m Model) scrollbar(height, total int) string {
	thumbHeight := max(int(float64(height)/float64(total)*float64(height)), 1)
	thumbStart := int(float64(m.scrollLine) / float64(total) * float64(height))
	if thumbStart+thumbHeight > height {
		thumbStart = height - thumbHeight
	}

	thumbColor := m.styles.Palette.Muted
	if m.scrolling {
		thumbColor = m.styles.Palette.Accent
	}
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Render("┃")
	track := lipgloss.NewStyle().Foreground(m.styles.Palette.Border).Render("┃")

	var sb strings.Builder
	for j := 0; j < height; j++ {
		if j >= thumbStart && j < thumbStart+thumbHeight {
			sb.WriteString(thumb)
		} else {
			sb.WriteString(track)
		}
		if j < height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
