package status

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/toommyliu/cs146-finalproject/internal/tui/styles"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// ParseType maps an event payload kind ("info", "warning", "error", "success") to a MessageType
func ParseType(kind string) MessageType {
	switch strings.ToLower(kind) {
	case "warning", "warn":
		return Warning
	case "error":
		return Error
	case "success":
		return Success
	default:
		return Info
	}
}

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component is the bottom bar: a queue summary on the left, transient messages on the right
type Component struct {
	message     *StatusMessage
	width       int
	leftContent string
	hints       []key.Binding

	// Timer for clearing messages
	clearAfter time.Duration
	now        func() time.Time
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
		now:        time.Now,
	}
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	stamp := c.now()
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: stamp,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the message currently shown, if any
func (c *Component) Message() *StatusMessage {
	return c.message
}

// SetLeftContent sets the left side content (the queue summary)
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetHints sets the key hints shown when no message is active
func (c *Component) SetHints(bindings ...key.Binding) {
	c.hints = bindings
}

// SetSize sets the bar width; height is always one line
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Update clears the message once its timer fires
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View renders the status bar
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()

	statusStyle := lipgloss.NewStyle().
		Width(c.width).
		Height(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	left := c.leftContent
	right := c.formatMessage()
	if right == "" {
		right = c.formatHints()
	}

	available := c.width - 2
	right = truncate(right, available/2)
	left = truncate(left, available-lipgloss.Width(right)-1)

	gap := available - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// formatMessage formats the status message with appropriate styling
func (c *Component) formatMessage() string {
	if c.message == nil {
		return ""
	}

	s := styles.CurrentTheme().S()
	switch c.message.Type {
	case Success:
		return s.Success.Render(styles.CheckIcon + " " + c.message.Content)
	case Warning:
		return s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
	case Error:
		return s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
	default:
		return s.Info.Render(styles.InfoIcon + " " + c.message.Content)
	}
}

func (c *Component) formatHints() string {
	s := styles.CurrentTheme().S()
	parts := make([]string, 0, len(c.hints))
	for _, b := range c.hints {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, s.Key.Render(h.Key)+" "+s.Muted.Render(h.Desc))
	}
	return strings.Join(parts, s.Subtle.Render(" • "))
}

// truncate shortens s to at most width cells
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
