package feed

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// NodeKind tags one level of a hit path.
type NodeKind int

const (
	NodeFeed NodeKind = iota
	NodePost
	NodeHeader
	NodeMenuGlyph
	NodeBody
	NodeMedia
	NodeActionRow
	NodeControl
)

// Node is one level of a hit path. ElementID is set on NodePost; Control on
// NodeControl.
type Node struct {
	Kind      NodeKind
	ElementID string
	Control   ControlKind
}

// Path lists the nodes under a click, leaf first, ending at the feed.
type Path []Node

// TargetKind is the classification of a click.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetLike
	TargetPost
)

// Target is what a click resolved to.
type Target struct {
	Kind      TargetKind
	ElementID string
}

// Classify resolves a hit path. A like control anywhere on the path wins;
// otherwise a post counts only when no action control or overflow glyph was
// crossed on the way up.
func Classify(path Path) Target {
	var (
		postID   string
		inPost   bool
		like     bool
		excluded bool
	)
	for _, n := range path {
		switch n.Kind {
		case NodeControl:
			if n.Control == ControlLike {
				like = true
			} else {
				excluded = true
			}
		case NodeMenuGlyph:
			excluded = true
		case NodePost:
			if !inPost {
				inPost = true
				postID = n.ElementID
			}
		}
		if n.Kind == NodeFeed {
			break
		}
	}
	switch {
	case like && inPost:
		return Target{Kind: TargetLike, ElementID: postID}
	case inPost && !excluded:
		return Target{Kind: TargetPost, ElementID: postID}
	}
	return Target{Kind: TargetNone}
}

// ClickResult reports what a dispatched click did.
type ClickResult struct {
	Target  Target
	Stopped bool // propagation stopped; no outer handler ran
}

type clickHandler func(m *Model, t Target) (stop bool, cmd tea.Cmd)

var clickHandlers = map[TargetKind]clickHandler{
	TargetLike: (*Model).handleLikeClick,
	TargetPost: (*Model).handlePostClick,
}

// Dispatch classifies path and runs the matching handler.
func (m Model) Dispatch(path Path) (Model, ClickResult, tea.Cmd) {
	t := Classify(path)
	res := ClickResult{Target: t}
	h, ok := clickHandlers[t.Kind]
	if !ok {
		return m, res, nil
	}
	stop, cmd := h(&m, t)
	res.Stopped = stop
	return m, res, cmd
}

func (m *Model) handleLikeClick(t Target) (bool, tea.Cmd) {
	el, _ := m.container.ByID(t.ElementID)
	if el == nil {
		return true, nil
	}
	liked := el.ToggleLike()
	m.logger.Debug("like toggled",
		zap.String("element", el.ID),
		zap.String("handle", el.Post.Handle),
		zap.Bool("liked", liked),
		zap.Int("count", el.LikeCount),
	)
	return true, nil
}

// handlePostClick stands in for navigation to a post detail view.
func (m *Model) handlePostClick(t Target) (bool, tea.Cmd) {
	el, _ := m.container.ByID(t.ElementID)
	if el == nil {
		return false, nil
	}
	text := "Post detail for " + el.Post.Handle + " is not available yet"
	m.logger.Info("open post", zap.String("element", el.ID), zap.String("handle", el.Post.Handle))
	return false, func() tea.Msg { return NoticeMsg{Text: text} }
}
