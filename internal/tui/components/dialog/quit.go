package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// QuitDialog asks for confirmation before quitting
type QuitDialog struct {
	*BaseDialog

	selectedNo bool // "No" is the default
}

// NewQuitDialog creates a new quit confirmation dialog
func NewQuitDialog() *QuitDialog {
	return &QuitDialog{
		BaseDialog: NewBaseDialog("Quit campuspath?"),
		selectedNo: true,
	}
}

// Init initializes the dialog
func (d *QuitDialog) Init() tea.Cmd {
	return nil
}

// Open resets the selection to "No" each time
func (d *QuitDialog) Open() tea.Cmd {
	d.selectedNo = true
	return d.BaseDialog.Open()
}

// Update handles messages
func (d *QuitDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "ctrl+c", "y", "Y":
			// Ctrl+C while the dialog is open confirms
			d.SetResult(true)
			return d, tea.Quit
		case "esc", "n", "N", "q":
			return d, d.Cancel()
		case "left", "right", "tab", "h", "l":
			d.selectedNo = !d.selectedNo
		case "enter", "space":
			if d.selectedNo {
				return d, d.Cancel()
			}
			d.SetResult(true)
			return d, tea.Quit
		}
	}

	return d, nil
}

// View renders the dialog
func (d *QuitDialog) View() string {
	if !d.isOpen {
		return ""
	}

	theme := styles.CurrentTheme()
	button := lipgloss.NewStyle().
		Padding(0, 3).
		Background(theme.BgSubtle).
		Foreground(theme.FgMuted)
	selected := button.
		Background(theme.Primary).
		Foreground(theme.FgBase).
		Bold(true)

	yesStyle, noStyle := button, selected
	if !d.selectedNo {
		yesStyle, noStyle = selected, button
	}

	question := theme.S().Subtitle.Render("Leave now? Your queue is not saved.")
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render("Yes"), "  ", noStyle.Render("No"))
	buttons = lipgloss.NewStyle().
		Width(lipgloss.Width(question)).
		Align(lipgloss.Right).
		Render(buttons)

	help := theme.S().Subtle.Italic(true).Render("Ctrl+C again to quit • Esc to cancel")

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Center, question, "", buttons, "", help))
}
