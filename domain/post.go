package domain

import (
	"fmt"
	"strings"
)

// Engagement holds the counters shown in a post's action row.
type Engagement struct {
	CommentCount int
	RepostCount  int
	LikeCount    int
	ViewLabel    string // Pre-formatted, e.g. "91.2K"
}

// Post is one feed entry's display data. Values are never mutated once
// seeded; the rendered element owns the live like state.
type Post struct {
	Author          string
	Handle          string
	TimestampLabel  string // Free-form, e.g. "· 22h"
	Body            string
	ImageRef        string // Optional
	AvatarRef       string
	Verified        bool
	IsAdvertisement bool
	Engagement      Engagement
	LikedByViewer   bool
}

// HasImage reports whether the post references a media asset.
func (p Post) HasImage() bool {
	return strings.TrimSpace(p.ImageRef) != ""
}

// Validate checks the constraints the renderer relies on.
func (p Post) Validate() error {
	if strings.TrimSpace(p.Author) == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidPost)
	}
	if strings.TrimSpace(p.Handle) == "" {
		return fmt.Errorf("%w: handle is required for %q", ErrInvalidPost, p.Author)
	}
	e := p.Engagement
	if e.CommentCount < 0 || e.RepostCount < 0 || e.LikeCount < 0 {
		return fmt.Errorf("%w: negative engagement count for %s", ErrInvalidPost, p.Handle)
	}
	if p.LikedByViewer && e.LikeCount == 0 {
		return fmt.Errorf("%w: liked post %s has no likes", ErrInvalidPost, p.Handle)
	}
	return nil
}
