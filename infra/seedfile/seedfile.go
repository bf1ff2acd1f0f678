package seedfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// Builtin serves the compiled-in mock feed.
type Builtin struct{}

// Posts returns a fresh copy of domain.SeedPosts.
func (Builtin) Posts(context.Context) ([]domain.Post, error) {
	return domain.SeedPosts(), nil
}

// File loads the mock feed from a JSON array on disk.
type File struct {
	path string
}

// NewFile creates a loader for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// count accepts 96, "96" or "1.2K".
type count int

func (c *count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = count(domain.ParseCount(s))
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("count must be an integer or label: %s", data)
	}
	*c = count(n)
	return nil
}

type postJSON struct {
	Author    string `json:"author"`
	Handle    string `json:"handle"`
	Timestamp string `json:"timestamp"`
	Body      string `json:"body"`
	Image     string `json:"image"`
	Avatar    string `json:"avatar"`
	Verified  bool   `json:"verified"`
	Ad        bool   `json:"ad"`
	Comments  count  `json:"comments"`
	Reposts   count  `json:"reposts"`
	Likes     count  `json:"likes"`
	Views     string `json:"views"`
	Liked     bool   `json:"liked"`
}

// Posts reads and validates the file.
func (f *File) Posts(context.Context) ([]domain.Post, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var raw []postJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	posts := make([]domain.Post, 0, len(raw))
	for i, r := range raw {
		p := domain.Post{
			Author:          strings.TrimSpace(r.Author),
			Handle:          strings.TrimSpace(r.Handle),
			TimestampLabel:  r.Timestamp,
			Body:            r.Body,
			ImageRef:        r.Image,
			AvatarRef:       r.Avatar,
			Verified:        r.Verified,
			IsAdvertisement: r.Ad,
			Engagement: domain.Engagement{
				CommentCount: int(r.Comments),
				RepostCount:  int(r.Reposts),
				LikeCount:    int(r.Likes),
				ViewLabel:    r.Views,
			},
			LikedByViewer: r.Liked,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed post %d: %w", i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}
