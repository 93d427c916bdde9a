package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// HelpDialog displays key bindings and usage tips as rendered markdown
type HelpDialog struct {
	*BaseDialog

	keyMap    help.KeyMap
	activeTab int
	tabs      []string
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog() *HelpDialog {
	return &HelpDialog{
		BaseDialog: NewBaseDialog("Help"),
		tabs:       []string{"Keys", "Queue", "Tips"},
	}
}

// SetKeyMap sets the bindings listed on the Keys tab
func (d *HelpDialog) SetKeyMap(km help.KeyMap) {
	d.keyMap = km
}

// Init initializes the dialog
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *HelpDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return d, d.Close()
		case "tab", "right", "l":
			d.activeTab = (d.activeTab + 1) % len(d.tabs)
		case "shift+tab", "left", "h":
			d.activeTab = (d.activeTab - 1 + len(d.tabs)) % len(d.tabs)
		case "1", "2", "3":
			d.activeTab = int(msg.String()[0] - '1')
		}
	}

	return d, nil
}

// ActiveTab returns the name of the visible tab
func (d *HelpDialog) ActiveTab() string {
	return d.tabs[d.activeTab]
}

// View renders the dialog
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}

	theme := styles.CurrentTheme()
	tab := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.FgSubtle)
	active := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.Accent).Bold(true).Underline(true)

	var tabs []string
	for i, name := range d.tabs {
		style := tab
		if i == d.activeTab {
			style = active
		}
		tabs = append(tabs, style.Render(name))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	width := d.Width / 2
	if width < 40 {
		width = 40
	}
	body := styles.RenderMarkdown(d.markdown(), width)

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, tabBar, strings.TrimRight(body, "\n")))
}

// markdown returns the source for the active tab
func (d *HelpDialog) markdown() string {
	switch d.activeTab {
	case 0:
		return KeysMarkdown(d.keyMap)
	case 1:
		return queueHelp
	default:
		return tipsHelp
	}
}

// KeysMarkdown renders every enabled binding of km as a markdown table
func KeysMarkdown(km help.KeyMap) string {
	var b strings.Builder
	b.WriteString("| Key | Action |\n|---|---|\n")
	if km == nil {
		return b.String()
	}
	seen := make(map[string]bool)
	for _, group := range km.FullHelp() {
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			h := binding.Help()
			if h.Key == "" || seen[h.Key] {
				continue
			}
			seen[h.Key] = true
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	return b.String()
}

const queueHelp = `## Building a route

1. Pick buildings in the **Buildings** panel and press **enter** to add each one to the end of the queue.
2. Press **i** instead to drop a building just before the highlighted stop.
3. In the **Queue** panel press **space** to pick a stop up, move it with the arrow keys, then press **space** again to drop it.
4. Press **x** to remove a stop or **ctrl+r** to start over.
5. Press **ctrl+s** to search for a path through the stops in order.

The same building may appear more than once.
`

const tipsHelp = `## Tips

- Type **/** in the Buildings panel to filter by name or code, for example ` + "`king`" + ` or ` + "`ENG`" + `.
- Press **m** to open the campus map legend.
- Press **tab** to switch between panels.
- Set ` + "`theme`" + ` in ` + "`.campuspath/config.json`" + ` to ` + "`campus`" + `, ` + "`dark`" + ` or ` + "`fire`" + `.
`
