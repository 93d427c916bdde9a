package stops

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "delete":
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

// fixture mirrors an owner that applies intents to a real queue
type fixture struct {
	t     *testing.T
	q     *queue.Queue
	panel *Panel
}

func newFixture(t *testing.T, ids ...string) *fixture {
	t.Helper()
	q := queue.New()
	for _, id := range ids {
		q.Append(catalog.Entry{ID: id, Name: id})
	}
	p := New(nil)
	p.SetSize(40, 20)
	p.Focus()
	p.SetOrder(q.Order())
	return &fixture{t: t, q: q, panel: p}
}

func (f *fixture) send(keys ...string) {
	f.t.Helper()
	for _, k := range keys {
		_, cmd := f.panel.Update(press(k))
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case MoveMsg:
			f.applyMove(msg)
		case RemoveMsg:
			_, err := f.q.RemoveAt(msg.Index)
			require.NoError(f.t, err)
		}
		f.panel.SetOrder(f.q.Order())
	}
}

func (f *fixture) applyMove(msg MoveMsg) {
	f.t.Helper()
	src, dst := f.q.IndexOf(msg.EntryID), f.panel.IndexOf(msg.EntryID)
	require.GreaterOrEqual(f.t, src, 0)
	require.GreaterOrEqual(f.t, dst, 0)
	require.NoError(f.t, f.q.Move(src, dst))
}

func (f *fixture) ids() []string {
	var ids []string
	for _, e := range f.q.Order() {
		ids = append(ids, e.CatalogID)
	}
	return ids
}

func TestCursorNavigation(t *testing.T) {
	f := newFixture(t, "A", "B", "C")

	f.send("down", "down", "down")
	assert.Equal(t, 2, f.panel.Cursor(), "cursor clamps at the last stop")

	f.send("g")
	assert.Equal(t, 0, f.panel.Cursor())

	f.send("up")
	assert.Equal(t, 0, f.panel.Cursor(), "cursor clamps at the first stop")

	f.send("G")
	assert.Equal(t, 2, f.panel.Cursor())
}

func TestGrabMoveDrop(t *testing.T) {
	f := newFixture(t, "A", "B", "C", "D")

	f.send("space")
	require.True(t, f.panel.Grabbed())

	f.send("down", "down")
	assert.Equal(t, []string{"B", "C", "A", "D"}, f.ids())
	assert.Equal(t, 2, f.panel.Cursor(), "cursor follows the grabbed stop")

	f.send("space")
	assert.False(t, f.panel.Grabbed())

	// Navigation no longer moves anything
	f.send("up")
	assert.Equal(t, []string{"B", "C", "A", "D"}, f.ids())
	assert.Equal(t, 1, f.panel.Cursor())
}

func TestGrabCancelRestores(t *testing.T) {
	f := newFixture(t, "A", "B", "C", "D")

	f.send("down", "space", "down", "down")
	assert.Equal(t, []string{"A", "C", "D", "B"}, f.ids())

	f.send("esc")
	assert.False(t, f.panel.Grabbed())
	assert.Equal(t, []string{"A", "B", "C", "D"}, f.ids())
	assert.Equal(t, 1, f.panel.Cursor())
}

func TestMoveShowsBeforeApply(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	grabbed := f.q.Order()[0].EntryID

	f.send("space")
	var pending []MoveMsg
	for i := 0; i < 2; i++ {
		_, cmd := f.panel.Update(press("down"))
		require.NotNil(t, cmd)
		pending = append(pending, cmd().(MoveMsg))
	}

	// The panel reorders on each key press, before the owner applies anything
	assert.Equal(t, 2, f.panel.IndexOf(grabbed))
	assert.Equal(t, 2, f.panel.Cursor())
	assert.Equal(t, []string{"A", "B", "C"}, f.ids())

	for i := len(pending) - 1; i >= 0; i-- {
		assert.Equal(t, grabbed, pending[i].EntryID)
		f.applyMove(pending[i])
		f.panel.SetOrder(f.q.Order())
	}
	assert.Equal(t, []string{"B", "C", "A"}, f.ids())
	assert.Equal(t, 2, f.panel.Cursor())
}

func TestShiftMoveWithoutGrab(t *testing.T) {
	f := newFixture(t, "A", "B", "C")

	f.send("J")
	assert.Equal(t, []string{"B", "A", "C"}, f.ids())

	f.send("K")
	assert.Equal(t, []string{"A", "B", "C"}, f.ids())

	// Moving past either end is ignored
	f.send("K")
	assert.Equal(t, []string{"A", "B", "C"}, f.ids())
}

func TestRemove(t *testing.T) {
	f := newFixture(t, "A", "B", "C")

	f.send("G", "x")
	assert.Equal(t, []string{"A", "B"}, f.ids())
	assert.Equal(t, 1, f.panel.Cursor(), "cursor stays in range after removing the last stop")

	f.send("g", "delete")
	assert.Equal(t, []string{"B"}, f.ids())

	f.send("x")
	assert.Empty(t, f.ids())

	// Keys on an empty queue are ignored
	_, cmd := f.panel.Update(press("x"))
	assert.Nil(t, cmd)
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	f := newFixture(t, "A", "B")
	f.panel.Blur()

	_, cmd := f.panel.Update(press("x"))
	assert.Nil(t, cmd)
}

func TestView(t *testing.T) {
	names := map[string]string{"KING": "King Library"}
	p := New(func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return id
	})
	p.SetSize(50, 10)

	assert.Contains(t, p.View(), "No stops yet")

	q := queue.New()
	q.Append(catalog.Entry{ID: "KING", Name: "King Library"})
	q.Append(catalog.Entry{ID: "ZZZ", Name: "Unknown"})
	p.SetOrder(q.Order())

	view := p.View()
	assert.Contains(t, view, "Queue (2)")
	assert.Contains(t, view, "1. King Library")
	assert.Contains(t, view, "2. ZZZ")
	assert.Less(t, strings.Index(view, "King Library"), strings.Index(view, "2. ZZZ"))
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	ids := make([]string, 30)
	for i := range ids {
		ids[i] = string(rune('A' + i%26))
	}
	f := newFixture(t, ids...)
	f.panel.SetSize(40, 7) // five visible rows

	f.send("G")
	assert.Equal(t, 29, f.panel.Cursor())
	assert.Contains(t, f.panel.View(), "30. ")
	assert.NotContains(t, f.panel.View(), " 1. ")
}
