package feed

import (
	"strconv"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// ControlKind identifies one action-row control.
type ControlKind int

const (
	ControlComment ControlKind = iota
	ControlRepost
	ControlLike
	ControlViews
	ControlSave
	ControlShare
)

// Control is one rendered action-row entry.
type Control struct {
	Kind  ControlKind
	Glyph string
	Label string
}

// Element is the rendered form of one post. Post is a display copy; the
// element owns the live like state.
type Element struct {
	ID        string
	Post      domain.Post
	Liked     bool
	LikeCount int
}

// LikeLabel is always derived from the counter.
func (e *Element) LikeLabel() string {
	return domain.Abbreviate(e.LikeCount)
}

// HasActions reports whether the element carries an action row. Ads don't.
func (e *Element) HasActions() bool {
	return !e.Post.IsAdvertisement
}

// Controls lists the action row in display order; nil for ads.
func (e *Element) Controls() []Control {
	if !e.HasActions() {
		return nil
	}
	like := "♡"
	if e.Liked {
		like = "♥"
	}
	eng := e.Post.Engagement
	return []Control{
		{Kind: ControlComment, Glyph: "↩", Label: strconv.Itoa(eng.CommentCount)},
		{Kind: ControlRepost, Glyph: "⟲", Label: strconv.Itoa(eng.RepostCount)},
		{Kind: ControlLike, Glyph: like, Label: e.LikeLabel()},
		{Kind: ControlViews, Glyph: "▥", Label: eng.ViewLabel},
		{Kind: ControlSave, Glyph: "⚑"},
		{Kind: ControlShare, Glyph: "⇪"},
	}
}

// ToggleLike flips the liked state and moves the counter by exactly one.
// Returns the new state.
func (e *Element) ToggleLike() bool {
	e.Liked = !e.Liked
	if e.Liked {
		e.LikeCount++
	} else {
		e.LikeCount--
	}
	return e.Liked
}

func (c Control) text() string {
	if c.Label == "" {
		return c.Glyph
	}
	return c.Glyph + " " + c.Label
}
