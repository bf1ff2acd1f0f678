package feed

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxCardWidth = 72
	minInnerW    = 20
	cardChrome   = 4 // border and padding, both sides
	contentLeft  = 2 // left border and padding
	scrollGutter = 2 // space and scrollbar
	menuGlyph    = "⋯"
)

// cardLayout is the geometry of one card at a given width. Rows are content
// rows, i.e. excluding the top border.
type cardLayout struct {
	innerW    int
	height    int // including borders
	rows      int
	menuCol   int
	body      []string // wrapped body lines
	mediaRow  int      // -1 when the post has no image
	actionRow int      // -1 for ads
}

type controlSpan struct {
	kind       ControlKind
	start, end int // content columns, end exclusive
}

// layoutCache holds per-element geometry for the current width. Shared by
// copies of the Model; rebuilt when the width or container changes.
type layoutCache struct {
	innerW  int
	gen     int
	cards   map[string]cardLayout
	tops    []int
	heights []int
	total   int
}

func innerWidth(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	w := min(width-scrollGutter, maxCardWidth) - cardChrome
	return max(w, minInnerW)
}

func layoutCard(el *Element, innerW int) cardLayout {
	wrapped := lipgloss.NewStyle().Width(innerW).Render(el.Post.Body)
	body := strings.Split(wrapped, "\n")
	for i, ln := range body {
		body[i] = strings.TrimRight(ln, " ")
	}

	c := cardLayout{
		innerW:    innerW,
		menuCol:   innerW - 1,
		body:      body,
		mediaRow:  -1,
		actionRow: -1,
	}
	row := 1 + len(body)
	if el.Post.HasImage() {
		c.mediaRow = row
		row++
	}
	if el.HasActions() {
		c.actionRow = row
	}
	row++ // action row, or the promoted label for ads
	c.rows = row
	c.height = row + 2
	return c
}

// actionSpans spreads the controls across the content width.
func actionSpans(ctrls []Control, innerW int) []controlSpan {
	if len(ctrls) == 0 {
		return nil
	}
	total := 0
	for _, c := range ctrls {
		total += ansi.StringWidth(c.text())
	}
	gap := 2
	if n := len(ctrls); n > 1 {
		if g := (innerW - total) / (n - 1); g > gap {
			gap = min(g, 6)
		}
	}
	spans := make([]controlSpan, 0, len(ctrls))
	col := 0
	for _, c := range ctrls {
		w := ansi.StringWidth(c.text())
		spans = append(spans, controlSpan{kind: c.Kind, start: col, end: col + w})
		col += w + gap
	}
	return spans
}

func (m Model) ensureLayout() *layoutCache {
	innerW := innerWidth(m.width)
	lay := m.layout
	if lay.innerW != innerW {
		lay.innerW = innerW
		lay.cards = make(map[string]cardLayout)
		lay.gen = -1
	}
	if lay.gen == m.container.gen {
		return lay
	}

	n := m.container.Len()
	lay.tops = make([]int, n)
	lay.heights = make([]int, n)
	line := 0
	for i, el := range m.container.Elements() {
		c, ok := lay.cards[el.ID]
		if !ok {
			c = layoutCard(el, innerW)
			lay.cards[el.ID] = c
		}
		lay.tops[i] = line
		lay.heights[i] = c.height
		line += c.height
	}
	lay.total = line
	lay.gen = m.container.gen
	return lay
}

// elementAt returns the index of the element covering document line, or -1.
func (lay *layoutCache) elementAt(line int) int {
	if line < 0 {
		return -1
	}
	i := sort.Search(len(lay.tops), func(i int) bool {
		return lay.tops[i]+lay.heights[i] > line
	})
	if i >= len(lay.tops) {
		return -1
	}
	return i
}

// HitTest resolves a click at viewport column x, row y to its ancestor path.
func (m Model) HitTest(x, y int) Path {
	feedNode := Node{Kind: NodeFeed}
	lay := m.ensureLayout()
	line := m.scrollLine + y
	if y < 0 || y >= m.viewportHeight() {
		return Path{feedNode}
	}
	i := lay.elementAt(line)
	if i < 0 {
		return Path{feedNode}
	}
	el := m.container.At(i)
	card := lay.cards[el.ID]
	post := Node{Kind: NodePost, ElementID: el.ID}

	row := line - lay.tops[i] - 1
	col := x - contentLeft
	if row < 0 || row >= card.rows || col < 0 || col >= card.innerW {
		return Path{post, feedNode}
	}

	switch row {
	case 0:
		if col == card.menuCol {
			return Path{{Kind: NodeMenuGlyph}, {Kind: NodeHeader}, post, feedNode}
		}
		return Path{{Kind: NodeHeader}, post, feedNode}
	case card.actionRow:
		for _, sp := range actionSpans(el.Controls(), card.innerW) {
			if col >= sp.start && col < sp.end {
				return Path{{Kind: NodeControl, Control: sp.kind}, {Kind: NodeActionRow}, post, feedNode}
			}
		}
		return Path{{Kind: NodeActionRow}, post, feedNode}
	case card.mediaRow:
		return Path{{Kind: NodeMedia}, post, feedNode}
	}
	return Path{{Kind: NodeBody}, post, feedNode}
}

// likePath is the path a click on el's like control would produce.
func likePath(el *Element) Path {
	if el == nil || !el.HasActions() {
		return nil
	}
	return Path{
		{Kind: NodeControl, Control: ControlLike},
		{Kind: NodeActionRow},
		{Kind: NodePost, ElementID: el.ID},
		{Kind: NodeFeed},
	}
}

// bodyPath is the path a click on el's text would produce.
func bodyPath(el *Element) Path {
	if el == nil {
		return nil
	}
	return Path{
		{Kind: NodeBody},
		{Kind: NodePost, ElementID: el.ID},
		{Kind: NodeFeed},
	}
}
