// Package buildings is the catalog panel: a filterable list of campus buildings.
package buildings

import (
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/core"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// AddMsg asks for the entry to be appended to the queue
type AddMsg struct {
	Entry catalog.Entry
}

// InsertMsg asks for the entry to be placed at the queue cursor
type InsertMsg struct {
	Entry catalog.Entry
}

// KeyMap defines the catalog panel bindings
type KeyMap struct {
	Add    key.Binding
	Insert key.Binding
}

// DefaultKeyMap returns the default catalog panel bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter/a", "add to queue"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert at queue cursor"),
		),
	}
}

// item adapts a catalog entry to list.DefaultItem
type item struct {
	entry catalog.Entry
}

func (i item) Title() string       { return i.entry.Name }
func (i item) Description() string { return i.entry.ID }
func (i item) FilterValue() string { return i.entry.Label() }

// Panel lists every building in the catalog
type Panel struct {
	core.FocusableBase
	core.SizeableBase

	list   list.Model
	keyMap KeyMap
}

// New creates a catalog panel over cat
func New(cat *catalog.Catalog) *Panel {
	entries := cat.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = item{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	theme := styles.CurrentTheme()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Secondary).
		BorderForeground(theme.Secondary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Accent).
		BorderForeground(theme.Secondary)

	l := list.New(items, delegate, 0, 0)
	l.Title = styles.BuildingIcon + " Buildings"
	l.Styles.Title = l.Styles.Title.
		Background(theme.Primary).
		Foreground(theme.FgBase)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Filter = FilterFor(cat)

	return &Panel{
		list:   l,
		keyMap: DefaultKeyMap(),
	}
}

// FilterFor ranks list targets with the catalog's fuzzy search.
// Targets must be the catalog labels in catalog order, which is how New builds the list.
func FilterFor(cat *catalog.Catalog) list.FilterFunc {
	return func(term string, targets []string) []list.Rank {
		if len(targets) != cat.Len() {
			return list.DefaultFilter(term, targets)
		}
		matches := cat.Search(term)
		ranks := make([]list.Rank, len(matches))
		for i, m := range matches {
			ranks[i] = list.Rank{Index: m.Index, MatchedIndexes: m.MatchedIndexes}
		}
		return ranks
	}
}

// KeyMap returns the panel bindings
func (p *Panel) KeyMap() KeyMap {
	return p.keyMap
}

// Filtering reports whether the user is typing a filter, when keys belong to the list
func (p *Panel) Filtering() bool {
	return p.list.FilterState() == list.Filtering
}

// Selected returns the highlighted building
func (p *Panel) Selected() (catalog.Entry, bool) {
	it, ok := p.list.SelectedItem().(item)
	if !ok {
		return catalog.Entry{}, false
	}
	return it.entry, true
}

// SetSize resizes the list to the panel's content area
func (p *Panel) SetSize(width, height int) tea.Cmd {
	p.SizeableBase.SetSize(width, height)
	p.list.SetSize(width, height)
	return nil
}

// Init initializes the panel
func (p *Panel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok && p.IsFocused() && !p.Filtering() {
		switch {
		case key.Matches(msg, p.keyMap.Add):
			if e, ok := p.Selected(); ok {
				return p, func() tea.Msg { return AddMsg{Entry: e} }
			}
			return p, nil
		case key.Matches(msg, p.keyMap.Insert):
			if e, ok := p.Selected(); ok {
				return p, func() tea.Msg { return InsertMsg{Entry: e} }
			}
			return p, nil
		}
	}

	if _, ok := msg.(tea.KeyPressMsg); ok && !p.IsFocused() {
		return p, nil
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View renders the panel
func (p *Panel) View() string {
	return p.list.View()
}
