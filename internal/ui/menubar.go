package ui

import (
	"fmt"
	"strings"

	"dial-sweep.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width, selections, durationMs int) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"SPC", "advance"},
		{"D", "iag"},
		{"?", "help"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	left := StyleMenuKey.Render(title) + menu.String()
	right := StyleMenuLabel.Render(fmt.Sprintf("N=%d  %dms ", selections, durationMs))

	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 0) // bar padding
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
