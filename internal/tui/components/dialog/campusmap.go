package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// MapDialog shows the campus map legend in a scrollable viewport
type MapDialog struct {
	*BaseDialog

	viewport viewport.Model
	markdown string
	wrap     int
}

// NewMapDialog creates a new campus map dialog
func NewMapDialog() *MapDialog {
	return &MapDialog{
		BaseDialog: NewBaseDialog("Campus Map"),
		viewport:   viewport.New(),
		wrap:       60,
	}
}

// SetLegend rebuilds the map content from the catalog, the queued stops and an optional map text
func (d *MapDialog) SetLegend(cat *catalog.Catalog, order []queue.Entry, mapText string) {
	d.markdown = Legend(cat, order, mapText)
	d.render()
}

// Init initializes the dialog
func (d *MapDialog) Init() tea.Cmd {
	return nil
}

// Open scrolls back to the top each time
func (d *MapDialog) Open() tea.Cmd {
	d.render()
	d.viewport.GotoTop()
	return d.BaseDialog.Open()
}

// SetSize sizes the viewport to most of the screen
func (d *MapDialog) SetSize(width, height int) tea.Cmd {
	d.BaseDialog.SetSize(width, height)
	d.wrap = max(20, width*3/4)
	d.viewport = viewport.New(
		viewport.WithWidth(d.wrap),
		viewport.WithHeight(max(5, height-10)),
	)
	d.viewport.MouseWheelEnabled = true
	d.render()
	return nil
}

// Update handles messages
func (d *MapDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc", "q", "m":
			return d, d.Close()
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the dialog
func (d *MapDialog) View() string {
	if !d.isOpen {
		return ""
	}

	footer := styles.CurrentTheme().S().Subtle.Render(
		fmt.Sprintf("↑/↓ scroll • esc close • %3.f%%", d.viewport.ScrollPercent()*100))
	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, d.viewport.View(), footer))
}

func (d *MapDialog) render() {
	if d.markdown == "" {
		return
	}
	d.viewport.SetContent(styles.RenderMarkdown(d.markdown, d.wrap))
}

// Legend builds the markdown shown in the map dialog.
// Queued stops come first, numbered in visiting order, then the full building directory.
func Legend(cat *catalog.Catalog, order []queue.Entry, mapText string) string {
	var b strings.Builder

	b.WriteString("# " + styles.PinIcon + " San José State University\n\n")

	if text := strings.TrimSpace(mapText); text != "" {
		fence := codeFence(text)
		b.WriteString(fence + "\n" + text + "\n" + fence + "\n\n")
	}

	b.WriteString("## Your stops\n\n")
	if len(order) == 0 {
		b.WriteString("_No stops queued yet._\n\n")
	} else {
		for i, e := range order {
			fmt.Fprintf(&b, "%d. **%s** `%s`\n", i+1, cat.Name(e.CatalogID), e.CatalogID)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Buildings\n\n| Code | Building |\n|---|---|\n")
	for _, e := range cat.Entries() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", e.ID, e.Name)
	}

	return b.String()
}

// codeFence returns a backtick fence longer than any backtick run in text,
// so the text cannot close its own code block
func codeFence(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return strings.Repeat("`", max(3, longest+1))
}
