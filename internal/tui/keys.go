package tui

import (
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/buildings"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/stops"
)

// KeyMap holds the bindings that work from either panel
type KeyMap struct {
	Tab    key.Binding
	Filter key.Binding
	Reset  key.Binding
	Search key.Binding
	Map    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default global bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter buildings"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset queue"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start search"),
		),
		Map: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "campus map"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys joins the global and panel bindings for the help views
type helpKeys struct {
	global    KeyMap
	buildings buildings.KeyMap
	stops     stops.KeyMap
}

// ShortHelp returns the bindings shown in the status bar
func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.global.Tab, k.global.Search, k.global.Map, k.global.Help}
}

// FullHelp returns every binding, grouped by where it applies
func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.buildings.Add, k.buildings.Insert, k.global.Filter},
		{k.stops.Up, k.stops.Down, k.stops.Grab, k.stops.Cancel, k.stops.MoveUp, k.stops.MoveDown, k.stops.Remove},
		{k.global.Tab, k.global.Reset, k.global.Search, k.global.Map, k.global.Help, k.global.Quit},
	}
}
