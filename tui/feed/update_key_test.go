package feed

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateKey_LikeSelected(t *testing.T) {
	m := newTestModel(t, makePost("a", 1), makePost("b", 41))

	m, _ = m.Update(runeKey('j'))
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", m.Cursor())
	}
	m, _ = m.Update(runeKey('l'))
	if el := m.container.At(1); !el.Liked || el.LikeCount != 42 {
		t.Fatalf("expected second post liked at 42, got %v %d", el.Liked, el.LikeCount)
	}
	if el := m.container.At(0); el.Liked {
		t.Fatalf("first post must be untouched")
	}
}

func TestUpdateKey_LikeOnAdIsNoop(t *testing.T) {
	m := newTestModel(t, makeAd("promo"))
	m, cmd := m.Update(runeKey('l'))
	if cmd != nil || m.container.At(0).Liked {
		t.Fatalf("ads have no like control")
	}
}

func TestUpdateKey_EnterOpensPlaceholder(t *testing.T) {
	m := newTestModel(t, makePost("a", 1))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := cmdMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(NoticeMsg); !ok {
		t.Fatalf("expected NoticeMsg, got %T", msgs[0])
	}
}

func TestUpdateKey_TopResetsScroll(t *testing.T) {
	m := newTestModel(t, manyPosts(12)...)
	m, _ = m.scrollTo(25)
	events := m.ScrollEvents()

	m, _ = m.Update(runeKey('g'))
	if m.ScrollOffset() != 0 || m.Cursor() != 0 {
		t.Fatalf("expected top, got offset %d cursor %d", m.ScrollOffset(), m.Cursor())
	}
	if m.ScrollEvents() != events+1 {
		t.Fatalf("jump to top is a scroll event")
	}
}

func TestUpdateKey_DownScrollsToKeepCursorVisible(t *testing.T) {
	m := newTestModel(t, manyPosts(12)...)
	for range 4 {
		m, _ = m.Update(runeKey('j'))
	}
	if m.Cursor() != 4 {
		t.Fatalf("expected cursor 4, got %d", m.Cursor())
	}
	if m.ScrollOffset() != 5 {
		t.Fatalf("card 4 spans rows 20-24, expected offset 5, got %d", m.ScrollOffset())
	}
}

func TestUpdateMouse_WheelScrolls(t *testing.T) {
	m := newTestModel(t, manyPosts(12)...)
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.ScrollOffset() != wheelStep {
		t.Fatalf("expected offset %d, got %d", wheelStep, m.ScrollOffset())
	}
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.ScrollOffset() != 0 {
		t.Fatalf("expected offset 0, got %d", m.ScrollOffset())
	}
}
