package feed

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// Renderer builds elements from post records.
type Renderer struct {
	newID func() string
}

// NewRenderer returns a renderer that tags elements with random UUIDs.
func NewRenderer() Renderer {
	return Renderer{newID: uuid.NewString}
}

// CreateElement maps one record to a fresh element. The record is copied,
// never referenced, and its text is reduced to plain printable runes.
func (r Renderer) CreateElement(p domain.Post) *Element {
	p = plainPost(p)
	newID := r.newID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Element{
		ID:        newID(),
		Post:      p,
		Liked:     p.LikedByViewer,
		LikeCount: p.Engagement.LikeCount,
	}
}

// Render clears the container and adds one element per record in order.
func (r Renderer) Render(c *Container, posts []domain.Post) {
	c.Clear()
	r.Append(c, posts)
}

// Append adds one element per record without clearing.
func (r Renderer) Append(c *Container, posts []domain.Post) {
	for _, p := range posts {
		c.Add(r.CreateElement(p))
	}
}

func plainPost(p domain.Post) domain.Post {
	p.Author = plainText(p.Author, false)
	p.Handle = plainText(p.Handle, false)
	p.TimestampLabel = plainText(p.TimestampLabel, false)
	p.Body = plainText(p.Body, true)
	p.ImageRef = plainText(p.ImageRef, false)
	p.AvatarRef = plainText(p.AvatarRef, false)
	p.Engagement.ViewLabel = plainText(p.Engagement.ViewLabel, false)
	return p
}

// plainText drops escape sequences and control characters. Tabs become a
// space; newlines survive only where the card wraps multi-line text.
func plainText(s string, keepNewlines bool) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && keepNewlines:
			return r
		case r == '\t':
			return ' '
		case r < 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return -1
		}
		return r
	}, s)
}
