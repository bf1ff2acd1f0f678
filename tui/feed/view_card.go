package feed

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (m Model) renderCard(el *Element, card cardLayout, selected bool) string {
	s := m.styles
	rows := make([]string, 0, card.rows)
	rows = append(rows, m.renderCardHeader(el, card))
	for _, ln := range card.body {
		rows = append(rows, s.Content.Render(ln))
	}
	if card.mediaRow >= 0 {
		rows = append(rows, s.Media.Render(ansi.Truncate("▣ "+el.Post.ImageRef, card.innerW, "…")))
	}
	if card.actionRow >= 0 {
		rows = append(rows, m.renderActionRow(el, card.innerW))
	} else {
		rows = append(rows, s.AdBadge.Render("Promoted"))
	}

	style := s.Card
	if selected {
		style = s.SelectedCard
	}
	return style.Width(card.innerW + 2).Render(strings.Join(rows, "\n"))
}

func (m Model) renderCardHeader(el *Element, card cardLayout) string {
	s := m.styles
	p := el.Post
	var b strings.Builder
	b.WriteString(s.Author.Render(p.Author))
	if p.Verified {
		b.WriteString(s.Verified.Render(" ✓"))
	}
	b.WriteString(" " + s.Handle.Render(p.Handle))
	if p.TimestampLabel != "" {
		b.WriteString(" " + s.Timestamp.Render(p.TimestampLabel))
	}
	if p.IsAdvertisement {
		b.WriteString(" " + s.AdBadge.Render("· Ad"))
	}

	left := ansi.Truncate(b.String(), card.menuCol-1, "…")
	gap := card.menuCol - ansi.StringWidth(left)
	return left + strings.Repeat(" ", max(gap, 0)) + s.Handle.Render(menuGlyph)
}

func (m Model) renderActionRow(el *Element, innerW int) string {
	s := m.styles
	ctrls := el.Controls()
	spans := actionSpans(ctrls, innerW)

	var b strings.Builder
	col := 0
	for i, c := range ctrls {
		sp := spans[i]
		if sp.end > innerW {
			break
		}
		b.WriteString(strings.Repeat(" ", sp.start-col))
		style := s.Action
		if c.Kind == ControlLike && el.Liked {
			style = s.ActionLiked
		}
		b.WriteString(style.Render(c.text()))
		col = sp.end
	}
	return b.String()
}
