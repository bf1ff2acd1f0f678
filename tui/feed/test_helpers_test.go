package feed

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func makePost(handle string, likes int) domain.Post {
	return domain.Post{
		Author:         "Author " + handle,
		Handle:         "@" + handle,
		TimestampLabel: "· 1h",
		Body:           "hello from " + handle,
		Engagement:     domain.Engagement{CommentCount: 3, RepostCount: 1, LikeCount: likes, ViewLabel: "1K"},
	}
}

func makeAd(handle string) domain.Post {
	p := makePost(handle, 50)
	p.IsAdvertisement = true
	return p
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	}
}

// newTestModel renders posts with predictable element IDs.
func newTestModel(t *testing.T, posts ...domain.Post) Model {
	t.Helper()
	m := New(Options{Seed: posts})
	m.renderer = Renderer{newID: sequentialIDs()}
	m.renderer.Render(m.container, m.seed)
	return m.SetSize(80, 20)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// cmdMsgs flattens a command, including batches, into its messages. Tick
// commands block for their delay, so callers only use it on immediate ones.
func cmdMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, cmdMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findCell returns the viewport cell of the first occurrence of needle on a
// rendered line that also contains marker.
func findCell(t *testing.T, view, marker, needle string) (int, int) {
	t.Helper()
	for y, ln := range strings.Split(ansi.Strip(view), "\n") {
		if !strings.Contains(ln, marker) {
			continue
		}
		if i := strings.Index(ln, needle); i >= 0 {
			return ansi.StringWidth(ln[:i]), y
		}
	}
	t.Fatalf("%q not found on a line with %q", needle, marker)
	return 0, 0
}
