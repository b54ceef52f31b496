package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the dial panel and state panel horizontally,
// with menu bar on top and status bar (plus optional help) on bottom.
func ComposeLayout(menuBar, dialPanel, statePanel, statusBar, help string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, dialPanel, statePanel)
	if help == "" {
		return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar, help)
}

// Split divides the body between the dial panel and the state panel.
func Split(width int) (dialW, stateW int) {
	dialW = max(width*3/4, 30)
	stateW = width - dialW
	if stateW < 24 {
		stateW = 24
		dialW = width - stateW
	}
	return dialW, stateW
}

// PanelInner returns the drawable area of a bordered panel.
func PanelInner(width, height int) (cols, rows int) {
	return max(width-4, 5), max(height-2, 3)
}
