package tui

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/toommyliu/cs146-finalproject/internal/app"
	"github.com/toommyliu/cs146-finalproject/internal/search"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/buildings"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/core"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/dialog"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/status"
	"github.com/toommyliu/cs146-finalproject/internal/tui/components/stops"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// Model is the root Bubble Tea model: catalog and queue panels, status bar and dialogs
type Model struct {
	width  int
	height int

	// Components
	layout        *core.SplitLayout
	buildings     *buildings.Panel
	stops         *stops.Panel
	statusBar     *status.Component
	dialogManager *dialog.Manager
	keyMap        KeyMap

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// App holds all business logic
	app *app.App

	// UI state only
	mapText   string
	themeErr  error
	searching bool
}

// searchDoneMsg carries the outcome of a search command
type searchDoneMsg struct {
	result *search.Result
	err    error
}

// New creates a new TUI model from an app instance and event broker
func New(appInstance *app.App, eventBroker *events.Broker) *Model {
	themes := styles.NewManager("campus")
	themeErr := themes.SetTheme(appInstance.Config.Theme)
	styles.SetDefaultManager(themes)

	catalogPanel := buildings.New(appInstance.Catalog)
	queuePanel := stops.New(appInstance.Catalog.Name)
	statusBar := status.New()
	dialogManager := dialog.NewManager(eventBroker)

	m := &Model{
		layout:        core.NewSplitLayout(catalogPanel, queuePanel),
		buildings:     catalogPanel,
		stops:         queuePanel,
		statusBar:     statusBar,
		dialogManager: dialogManager,
		keyMap:        DefaultKeyMap(),
		eventBroker:   eventBroker,
		app:           appInstance,
		themeErr:      themeErr,
	}

	keys := helpKeys{global: m.keyMap, buildings: catalogPanel.KeyMap(), stops: queuePanel.KeyMap()}
	dialogManager.SetKeyMap(keys)
	statusBar.SetHints(keys.ShortHelp()...)

	if path := appInstance.Config.MapPath; path != "" {
		if data, err := os.ReadFile(path); err == nil {
			m.mapText = string(data)
		}
	}

	// Subscribe to all events
	m.eventSub = eventBroker.Subscribe()

	m.syncQueue()
	return m
}

// Init initializes the TUI model and all components
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.buildings.Init(),
		m.stops.Init(),
		m.dialogManager.Init(),
		m.buildings.Focus(),
		m.listenForEvents(),
	}

	// Warnings go last so the status bar keeps them over the greeting
	m.eventBroker.Status("info", fmt.Sprintf("%d buildings loaded. Press ? for help", m.app.Catalog.Len()))
	if m.mapText == "" && m.app.Config.MapPath != "" {
		m.eventBroker.Status("warning", fmt.Sprintf("Could not read map file %s", m.app.Config.MapPath))
	}
	if m.themeErr != nil {
		themes := styles.DefaultManager()
		m.eventBroker.Status("warning", fmt.Sprintf("%v, using %s (available: %s)",
			m.themeErr, themes.Current().Name, strings.Join(themes.List(), ", ")))
	}

	return tea.Batch(cmds...)
}

// Update handles all TUI updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle events that come as messages
	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		return m, tea.Batch(cmd, m.listenForEvents())
	}

	// If a dialog is open, route input to it first
	if m.dialogManager.IsDialogOpen() {
		var cmd tea.Cmd
		m.dialogManager, cmd = m.dialogManager.Update(msg)
		if _, ok := msg.(tea.KeyPressMsg); ok {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resizeComponents())

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case buildings.AddMsg:
		m.app.QueueService.Add(msg.Entry)
		m.syncQueue()
		m.stops.SetCursor(m.app.Queue.Len() - 1)
		return m, nil

	case buildings.InsertMsg:
		index := m.stops.Cursor()
		if _, err := m.app.QueueService.Insert(msg.Entry, index); err == nil {
			m.syncQueue()
			m.stops.SetCursor(index)
		}
		return m, nil

	case stops.MoveMsg:
		// The panel has already reordered its rows; its current row for the
		// entry is the target, whatever order the intents arrive in.
		if dst := m.stops.IndexOf(msg.EntryID); dst >= 0 {
			if err := m.app.QueueService.MoveEntry(msg.EntryID, dst); err == nil {
				m.syncQueue()
				return m, nil
			}
		}
		m.syncQueue()
		if src := m.app.Queue.IndexOf(msg.EntryID); src >= 0 {
			m.stops.SetCursor(src)
		}
		return m, nil

	case stops.RemoveMsg:
		m.app.QueueService.Remove(msg.Index)
		m.syncQueue()
		return m, nil

	case searchDoneMsg:
		m.searching = false
		if m.app.Config.Debug {
			log.Printf("search finished: result=%+v err=%v", msg.result, msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.buildings, cmd = m.buildings.Update(msg)
	cmds = append(cmds, cmd)

	m.stops, cmd = m.stops.Update(msg)
	cmds = append(cmds, cmd)

	m.statusBar, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey processes keys that are not owned by a single panel
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m.dialogManager.OpenDialog(dialog.QuitDialogType), true
	}

	// While filtering, every other key belongs to the filter input
	if m.buildings.IsFocused() && m.buildings.Filtering() {
		return nil, false
	}
	// While a stop is grabbed, esc and the arrows belong to the queue panel
	if m.stops.Grabbed() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m.dialogManager.OpenDialog(dialog.QuitDialogType), true
	case key.Matches(msg, m.keyMap.Tab):
		return m.layout.Toggle(), true
	case key.Matches(msg, m.keyMap.Help):
		return m.dialogManager.OpenDialog(dialog.HelpDialogType), true
	case key.Matches(msg, m.keyMap.Map):
		m.dialogManager.SetMapLegend(m.app.Catalog, m.app.Queue.Order(), m.mapText)
		return m.dialogManager.OpenDialog(dialog.MapDialogType), true
	case key.Matches(msg, m.keyMap.Reset):
		m.app.QueueService.Reset()
		m.syncQueue()
		return nil, true
	case key.Matches(msg, m.keyMap.Search):
		return m.startSearch(), true
	}

	return nil, false
}

// startSearch runs the search trigger off the UI loop
func (m *Model) startSearch() tea.Cmd {
	if m.searching {
		m.eventBroker.Status("info", "A search is already running")
		return nil
	}
	m.searching = true

	svc := m.app.SearchService
	return func() tea.Msg {
		res, err := svc.Start(context.Background())
		return searchDoneMsg{result: res, err: err}
	}
}

// syncQueue pushes the current queue order to every component that shows it
func (m *Model) syncQueue() {
	order := m.app.Queue.Order()
	m.stops.SetOrder(order)

	switch len(order) {
	case 0:
		m.statusBar.SetLeftContent("Queue empty")
	case 1:
		m.statusBar.SetLeftContent("1 stop")
	default:
		first := m.app.Catalog.Name(order[0].CatalogID)
		last := m.app.Catalog.Name(order[len(order)-1].CatalogID)
		m.statusBar.SetLeftContent(fmt.Sprintf("%d stops: %s → %s", len(order), first, last))
	}
}

// View renders the entire TUI
func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Overlay dialog if one is open
	if m.dialogManager.IsDialogOpen() {
		if dialogView := m.dialogManager.View(); dialogView != "" {
			return dialogView
		}
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	title := styles.RenderThemeGradient("CampusPath") + "  " + s.Muted.Render("plan a route across campus")
	header := lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(title)

	body := m.layout.View(s.Panel, s.PanelFocused)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.statusBar.View())
}
