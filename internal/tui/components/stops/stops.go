// Package stops is the queue panel: the ordered stops with grab-and-move reordering.
package stops

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/core"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// MoveMsg reports that the panel has moved the stop with EntryID to a new row.
// The owner places that entry wherever IndexOf says it now sits, so repeated
// or reordered deliveries converge on the panel's latest order.
type MoveMsg struct {
	EntryID string
}

// RemoveMsg asks for the stop at Index to be removed
type RemoveMsg struct {
	Index int
}

// Namer resolves a catalog id to a display name
type Namer func(catalogID string) string

// Panel renders the selection queue and turns keys into edit intents.
// It never edits the queue itself; the owner applies each intent and calls SetOrder.
type Panel struct {
	core.FocusableBase
	core.SizeableBase

	order  []queue.Entry
	name   Namer
	cursor int
	offset int

	grabbed bool
	origin  int

	keyMap KeyMap
}

// New creates an empty queue panel
func New(name Namer) *Panel {
	if name == nil {
		name = func(id string) string { return id }
	}
	return &Panel{
		name:   name,
		keyMap: DefaultKeyMap(),
	}
}

// KeyMap returns the panel bindings
func (p *Panel) KeyMap() KeyMap {
	return p.keyMap
}

// SetOrder replaces the displayed queue, keeping the cursor in range
func (p *Panel) SetOrder(order []queue.Entry) {
	p.order = order
	if len(order) == 0 {
		p.grabbed = false
	}
	p.SetCursor(p.cursor)
}

// IndexOf returns the row showing the entry with the given id, or -1
func (p *Panel) IndexOf(entryID string) int {
	return slices.IndexFunc(p.order, func(e queue.Entry) bool { return e.EntryID == entryID })
}

// Cursor returns the highlighted position
func (p *Panel) Cursor() int {
	return p.cursor
}

// SetCursor highlights position i, clamped to the queue
func (p *Panel) SetCursor(i int) {
	if i >= len(p.order) {
		i = len(p.order) - 1
	}
	if i < 0 {
		i = 0
	}
	p.cursor = i
	p.scroll()
}

// Grabbed reports whether a stop is picked up for moving
func (p *Panel) Grabbed() bool {
	return p.grabbed
}

// Init initializes the panel
func (p *Panel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !p.IsFocused() || len(p.order) == 0 {
		return p, nil
	}

	if p.grabbed {
		return p.updateGrabbed(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, p.keyMap.Up):
		p.SetCursor(p.cursor - 1)
	case key.Matches(keyMsg, p.keyMap.Down):
		p.SetCursor(p.cursor + 1)
	case key.Matches(keyMsg, p.keyMap.Home):
		p.SetCursor(0)
	case key.Matches(keyMsg, p.keyMap.End):
		p.SetCursor(len(p.order) - 1)
	case key.Matches(keyMsg, p.keyMap.Grab):
		p.grabbed = true
		p.origin = p.cursor
	case key.Matches(keyMsg, p.keyMap.MoveUp):
		return p, p.move(p.cursor - 1)
	case key.Matches(keyMsg, p.keyMap.MoveDown):
		return p, p.move(p.cursor + 1)
	case key.Matches(keyMsg, p.keyMap.Remove):
		index := p.cursor
		return p, func() tea.Msg { return RemoveMsg{Index: index} }
	}

	return p, nil
}

func (p *Panel) updateGrabbed(msg tea.KeyPressMsg) (*Panel, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keyMap.Up), key.Matches(msg, p.keyMap.MoveUp):
		return p, p.move(p.cursor - 1)
	case key.Matches(msg, p.keyMap.Down), key.Matches(msg, p.keyMap.MoveDown):
		return p, p.move(p.cursor + 1)
	case key.Matches(msg, p.keyMap.Home):
		return p, p.move(0)
	case key.Matches(msg, p.keyMap.End):
		return p, p.move(len(p.order) - 1)
	case key.Matches(msg, p.keyMap.Grab):
		p.grabbed = false
	case key.Matches(msg, p.keyMap.Cancel):
		p.grabbed = false
		return p, p.move(p.origin)
	}
	return p, nil
}

// move shows the highlighted stop at dst right away, follows it with the
// cursor and asks the owner to do the same to the queue
func (p *Panel) move(dst int) tea.Cmd {
	if dst < 0 || dst >= len(p.order) || dst == p.cursor {
		return nil
	}
	e := p.order[p.cursor]
	order := slices.Delete(slices.Clone(p.order), p.cursor, p.cursor+1)
	p.order = slices.Insert(order, dst, e)
	p.SetCursor(dst)
	return func() tea.Msg { return MoveMsg{EntryID: e.EntryID} }
}

// scroll keeps the cursor inside the visible window
func (p *Panel) scroll() {
	visible := p.visibleRows()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func (p *Panel) visibleRows() int {
	// title and blank line
	rows := p.Height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// SetSize sets the panel's content area
func (p *Panel) SetSize(width, height int) tea.Cmd {
	p.SizeableBase.SetSize(width, height)
	p.scroll()
	return nil
}

// View renders the panel
func (p *Panel) View() string {
	theme := styles.CurrentTheme()
	s := theme.S()

	title := s.Title.Render(fmt.Sprintf("%s Queue (%d)", styles.PinIcon, len(p.order)))
	if p.grabbed {
		title += " " + s.Warning.Render("moving")
	}

	if len(p.order) == 0 {
		empty := s.Muted.Render("No stops yet. Add buildings from the left panel.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	lines := []string{title, ""}
	end := min(len(p.order), p.offset+p.visibleRows())
	for i := p.offset; i < end; i++ {
		lines = append(lines, p.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (p *Panel) renderRow(i int) string {
	s := styles.CurrentTheme().S()
	e := p.order[i]

	row := fmt.Sprintf("%2d. %s %s", i+1, p.name(e.CatalogID), s.Subtle.Render(e.CatalogID))
	width := p.Width
	if width < 1 {
		width = lipgloss.Width(row) + 2
	}

	switch {
	case i == p.cursor && p.grabbed:
		return s.Grabbed.Width(width).Render(styles.GripIcon + " " + row)
	case i == p.cursor && p.IsFocused():
		return s.Selected.Width(width).Render("> " + row)
	default:
		return lipgloss.NewStyle().Width(width).Render("  " + row)
	}
}
