package dialog

import (
	"github.com/charmbracelet/bubbles/v2/help"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/tui/events"
)

// DialogType identifies the type of dialog
type DialogType string

const (
	QuitDialogType DialogType = "quit"
	HelpDialogType DialogType = "help"
	MapDialogType  DialogType = "map"
)

// Manager manages all dialogs in the application
type Manager struct {
	dialogs      map[DialogType]Dialog
	activeDialog DialogType
	eventBroker  *events.Broker
	width        int
	height       int
}

// NewManager creates a new dialog manager
func NewManager(eventBroker *events.Broker) *Manager {
	m := &Manager{
		dialogs:     make(map[DialogType]Dialog),
		eventBroker: eventBroker,
	}

	m.dialogs[QuitDialogType] = NewQuitDialog()
	m.dialogs[HelpDialogType] = NewHelpDialog()
	m.dialogs[MapDialogType] = NewMapDialog()

	return m
}

// Init initializes all dialogs
func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, dialog := range m.dialogs {
		cmds = append(cmds, dialog.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles updates for the active dialog
func (m *Manager) Update(msg tea.Msg) (*Manager, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(wsm.Width, wsm.Height)
	}

	if m.activeDialog == "" {
		return m, nil
	}

	dialog, ok := m.dialogs[m.activeDialog]
	if !ok {
		return m, nil
	}

	d, cmd := dialog.Update(msg)
	m.dialogs[m.activeDialog] = d

	if !d.IsOpen() {
		closed := m.activeDialog
		m.activeDialog = ""
		m.eventBroker.Publish(events.Event{
			Type: events.DialogCloseEvent,
			Payload: events.DialogPayload{
				DialogID: string(closed),
				Data:     d.GetResult(),
			},
		})
	}

	return m, cmd
}

// View renders the active dialog
func (m *Manager) View() string {
	if m.activeDialog == "" {
		return ""
	}

	if dialog, ok := m.dialogs[m.activeDialog]; ok {
		return dialog.View()
	}

	return ""
}

// SetSize sets the size for all dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, dialog := range m.dialogs {
		cmds = append(cmds, dialog.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog opens a specific dialog
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	dialog, ok := m.dialogs[dialogType]
	if !ok {
		return nil
	}

	m.activeDialog = dialogType
	m.eventBroker.Publish(events.Event{
		Type: events.DialogOpenEvent,
		Payload: events.DialogPayload{
			DialogID: string(dialogType),
		},
	})

	return dialog.Open()
}

// CloseActiveDialog closes the currently active dialog
func (m *Manager) CloseActiveDialog() tea.Cmd {
	if m.activeDialog != "" {
		if dialog, ok := m.dialogs[m.activeDialog]; ok {
			m.activeDialog = ""
			return dialog.Close()
		}
	}
	return nil
}

// IsDialogOpen returns whether any dialog is open
func (m *Manager) IsDialogOpen() bool {
	return m.activeDialog != ""
}

// GetActiveDialog returns the currently active dialog type
func (m *Manager) GetActiveDialog() DialogType {
	return m.activeDialog
}

// SetKeyMap sets the bindings listed by the help dialog
func (m *Manager) SetKeyMap(km help.KeyMap) {
	if dialog, ok := m.dialogs[HelpDialogType].(*HelpDialog); ok {
		dialog.SetKeyMap(km)
	}
}

// SetMapLegend refreshes the campus map dialog
func (m *Manager) SetMapLegend(cat *catalog.Catalog, order []queue.Entry, mapText string) {
	if dialog, ok := m.dialogs[MapDialogType].(*MapDialog); ok {
		dialog.SetLegend(cat, order, mapText)
	}
}
