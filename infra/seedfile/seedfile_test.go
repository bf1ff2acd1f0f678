package seedfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFile_ParsesNumbersAndLabels(t *testing.T) {
	path := writeSeed(t, `[
		{"author": "Ada", "handle": "@ada", "body": "hi", "likes": "1.2K", "comments": 4, "reposts": "7", "views": "3K"},
		{"author": "Promo", "handle": "@promo", "ad": true, "likes": 10, "liked": true}
	]`)

	posts, err := NewFile(path).Posts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, 1200, posts[0].Engagement.LikeCount)
	assert.Equal(t, 4, posts[0].Engagement.CommentCount)
	assert.Equal(t, 7, posts[0].Engagement.RepostCount)
	assert.Equal(t, "3K", posts[0].Engagement.ViewLabel)
	assert.True(t, posts[1].IsAdvertisement)
	assert.True(t, posts[1].LikedByViewer)
}

func TestFile_UnrecognizedLabelDefaultsToZero(t *testing.T) {
	path := writeSeed(t, `[{"author": "Ada", "handle": "@ada", "likes": "lots"}]`)
	posts, err := NewFile(path).Posts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, posts[0].Engagement.LikeCount)
}

func TestFile_RejectsInvalidPosts(t *testing.T) {
	path := writeSeed(t, `[{"author": "", "handle": "@ghost"}]`)
	_, err := NewFile(path).Posts(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidPost)
}

func TestFile_Errors(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "missing.json")).Posts(context.Background())
	assert.Error(t, err)

	_, err = NewFile(writeSeed(t, `{"not": "an array"}`)).Posts(context.Background())
	assert.Error(t, err)

	_, err = NewFile(writeSeed(t, `[{"author": "a", "handle": "@a", "likes": 1.5}]`)).Posts(context.Background())
	assert.Error(t, err)
}

func TestBuiltin_MatchesDomainSeed(t *testing.T) {
	posts, err := Builtin{}.Posts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SeedPosts(), posts)
}

func TestFile_RejectsLikedPostWithoutLikes(t *testing.T) {
	path := writeSeed(t, `[{"author": "Ada", "handle": "@ada", "likes": 0, "liked": true}]`)
	_, err := NewFile(path).Posts(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidPost)
}
