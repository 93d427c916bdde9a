package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// headerHeight is the title line plus the blank line under it
const headerHeight = 2

// resizeComponents resizes all components based on current window size
func (m *Model) resizeComponents() tea.Cmd {
	m.layout.Ratio = m.calculateCatalogRatio()

	return tea.Batch(
		m.layout.SetSize(m.width, m.height, headerHeight),
		m.statusBar.SetSize(m.width, 1),
		m.dialogManager.SetSize(m.width, m.height),
	)
}

// calculateCatalogRatio gives the catalog more room on narrow terminals
func (m *Model) calculateCatalogRatio() float64 {
	switch {
	case m.width < 80:
		return 0.5
	case m.width < 120:
		return 0.45
	default:
		return 0.4
	}
}
