package ui

import (
	"fmt"
	"math"
	"strings"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st dial.State, diagnostics bool, fps float64) string {
	status := StyleStatusIdle.Render("[IDLE]")
	if !st.Idle() {
		status = StyleStatusSweeping.Render(fmt.Sprintf("[SWEEP %3.0f%%]", st.Progress*100))
	}
	if diagnostics {
		status += " " + StyleStatusDiag.Render("[DIAG]")
	}

	info := fmt.Sprintf(" Selection: %d  Marker: %ddeg  Arc: %d+%.1fdeg  FPS: %.0f",
		st.LastSelection,
		int(math.Round(dial.Degrees(dial.NormalizeAngle(st.MarkerAngle)))),
		int(dial.NormalizeDegrees(st.StartAngleDeg)),
		st.SweepAngleDeg,
		fps)

	content := status + info

	gap := max(width-2-lipgloss.Width(content), 0) // bar padding
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
