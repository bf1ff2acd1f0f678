package feed

import (
	"testing"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func TestRender_EmptyListClearsContainer(t *testing.T) {
	r := Renderer{newID: sequentialIDs()}
	c := NewContainer()
	r.Append(c, []domain.Post{makePost("a", 1)})

	r.Render(c, nil)
	if c.Len() != 0 {
		t.Fatalf("expected empty container, got %d", c.Len())
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	r := Renderer{newID: sequentialIDs()}
	c := NewContainer()
	r.Render(c, []domain.Post{makePost("first", 1), makePost("second", 2)})

	if c.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", c.Len())
	}
	if c.At(0).Post.Handle != "@first" || c.At(1).Post.Handle != "@second" {
		t.Fatalf("unexpected order: %q, %q", c.At(0).Post.Handle, c.At(1).Post.Handle)
	}
	if c.At(0).ID == c.At(1).ID {
		t.Fatalf("elements must get distinct IDs")
	}
}

func TestAppend_DoesNotClear(t *testing.T) {
	r := NewRenderer()
	c := NewContainer()
	posts := []domain.Post{makePost("a", 1), makePost("b", 2)}
	r.Render(c, posts)
	r.Append(c, posts)

	if c.Len() != 4 {
		t.Fatalf("expected 4 elements after append, got %d", c.Len())
	}
	if c.At(0).ID == c.At(2).ID {
		t.Fatalf("appended copies must be new elements")
	}
	if el, i := c.ByID(c.At(3).ID); el == nil || i != 3 {
		t.Fatalf("expected lookup of last element at 3, got %d", i)
	}
}

func TestCreateElement_AdHasNoActionRow(t *testing.T) {
	el := NewRenderer().CreateElement(makeAd("promo"))
	if el.HasActions() || el.Controls() != nil {
		t.Fatalf("ads must not carry an action row")
	}
}

func TestCreateElement_ActionRow(t *testing.T) {
	p := makePost("a", 1200)
	p.LikedByViewer = true
	el := NewRenderer().CreateElement(p)

	ctrls := el.Controls()
	want := []ControlKind{ControlComment, ControlRepost, ControlLike, ControlViews, ControlSave, ControlShare}
	if len(ctrls) != len(want) {
		t.Fatalf("expected %d controls, got %d", len(want), len(ctrls))
	}
	for i, k := range want {
		if ctrls[i].Kind != k {
			t.Fatalf("control %d: got kind %v want %v", i, ctrls[i].Kind, k)
		}
	}
	like := ctrls[2]
	if like.Glyph != "♥" || like.Label != "1.2K" {
		t.Fatalf("expected liked glyph and abbreviated label, got %q %q", like.Glyph, like.Label)
	}
	if ctrls[3].Label != "1K" {
		t.Fatalf("views label is shown verbatim, got %q", ctrls[3].Label)
	}
}

func TestToggleLike_NeverWritesBackToRecord(t *testing.T) {
	seed := []domain.Post{makePost("a", 10)}
	c := NewContainer()
	r := NewRenderer()
	r.Render(c, seed)

	c.At(0).ToggleLike()
	if seed[0].LikedByViewer || seed[0].Engagement.LikeCount != 10 {
		t.Fatalf("seed record mutated: %+v", seed[0])
	}
	r.Append(c, seed)
	if c.At(1).Liked || c.At(1).LikeCount != 10 {
		t.Fatalf("appended copy must start from the seed state")
	}
}

func TestCreateElement_StripsTerminalControls(t *testing.T) {
	p := makePost("esc", 1)
	p.Author = "Eve\x1b[31m"
	p.Body = "hi \x1b[2J\x1b]0;title\x07 there\tnow\nnext\r"
	el := Renderer{newID: sequentialIDs()}.CreateElement(p)

	if el.Post.Author != "Eve" {
		t.Fatalf("unexpected author: %q", el.Post.Author)
	}
	if el.Post.Body != "hi  there now\nnext" {
		t.Fatalf("unexpected body: %q", el.Post.Body)
	}
}
