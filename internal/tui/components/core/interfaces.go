package core

import tea "github.com/charmbracelet/bubbletea/v2"

// Sizeable components can be resized
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
	GetSize() (width, height int)
}

// Focusable components can receive keyboard focus
type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool
}

// Panel is a sizeable, focusable region of the main screen
type Panel interface {
	Sizeable
	Focusable
	View() string
}
