package core

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Frame is the border plus padding a panel draws around its content
const Frame = 2

// SplitLayout places two panels side by side above a fixed-height footer.
// The left panel gets Ratio of the width, never less than MinLeft columns.
type SplitLayout struct {
	Left    Panel
	Right   Panel
	Ratio   float64
	MinLeft int
	Footer  int

	width  int
	height int
}

// NewSplitLayout creates a layout with a 45/55 split and a one-line footer
func NewSplitLayout(left, right Panel) *SplitLayout {
	return &SplitLayout{
		Left:    left,
		Right:   right,
		Ratio:   0.45,
		MinLeft: 24,
		Footer:  1,
	}
}

// Columns returns the outer widths of the left and right panels
func (l *SplitLayout) Columns() (left, right int) {
	left = int(float64(l.width) * l.Ratio)
	if left < l.MinLeft {
		left = l.MinLeft
	}
	if left > l.width {
		left = l.width
	}
	return left, l.width - left
}

// BodyHeight is the outer height available to the panels
func (l *SplitLayout) BodyHeight(header int) int {
	h := l.height - header - l.Footer
	if h < Frame+1 {
		h = Frame + 1
	}
	return h
}

// SetSize resizes both panels, reserving header lines at the top
func (l *SplitLayout) SetSize(width, height, header int) tea.Cmd {
	l.width = width
	l.height = height

	leftW, rightW := l.Columns()
	bodyH := l.BodyHeight(header)
	return tea.Batch(
		l.Left.SetSize(leftW-Frame, bodyH-Frame),
		l.Right.SetSize(rightW-Frame, bodyH-Frame),
	)
}

// Focused returns whichever panel holds focus, or nil
func (l *SplitLayout) Focused() Panel {
	switch {
	case l.Left.IsFocused():
		return l.Left
	case l.Right.IsFocused():
		return l.Right
	}
	return nil
}

// Toggle moves focus to the other panel
func (l *SplitLayout) Toggle() tea.Cmd {
	if l.Left.IsFocused() {
		return tea.Batch(l.Left.Blur(), l.Right.Focus())
	}
	return tea.Batch(l.Right.Blur(), l.Left.Focus())
}

// View renders both panels inside borders, highlighting the focused one
func (l *SplitLayout) View(panel, focused lipgloss.Style) string {
	render := func(p Panel) string {
		style := panel
		if p.IsFocused() {
			style = focused
		}
		w, h := p.GetSize()
		return style.Width(w).Height(h).Render(p.View()) // border adds Frame
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, render(l.Left), render(l.Right))
}
