package ui

import (
	"fmt"
	"math"
	"strings"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatePanel renders the animation state beside the dial: the state
// fields, a progress bar, the selection list, the marker heading and the
// recent frame times.
func RenderStatePanel(st dial.State, selections, width, height int, frameMs []float64) string {
	innerW := max(width-4, 20)

	lines := []string{
		StylePanelTitle.Render("SWEEP STATE"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}

	fields := []struct{ label, value string }{
		{"Committed", fmt.Sprintf("%d", st.LastSelection)},
		{"Target", fmt.Sprintf("%d", st.ActiveSelection)},
		{"Marker", fmt.Sprintf("%.1fdeg %s", dial.Degrees(dial.NormalizeAngle(st.MarkerAngle)), Compass(st.MarkerAngle))},
		{"Arc", fmt.Sprintf("%.0f+%.1fdeg", dial.NormalizeDegrees(st.StartAngleDeg), st.SweepAngleDeg)},
		{"Sweeps", fmt.Sprintf("%d", st.Commits)},
		{"Duration", fmt.Sprintf("%dms", st.DurationMs)},
	}
	for _, f := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf(" %-10s", f.label))+StyleValue.Render(f.value))
	}

	lines = append(lines, "", StyleLabel.Render(" Progress ")+renderProgressBar(st.Progress, max(innerW-12, 8)), "")
	lines = append(lines, renderSelections(st, selections, innerW)...)
	lines = append(lines, "")

	if len(frameMs) > 0 {
		lines = append(lines,
			StyleLabel.Render(" Frame ms:"),
			" "+lipgloss.NewStyle().Foreground(ColorActive).Render(renderSparkline(frameMs, innerW-2)),
			"")
	}

	headingH := height - len(lines) - 3
	if headingH >= 5 {
		headingW := min(innerW, headingH*3)
		pad := strings.Repeat(" ", max((innerW-headingW)/2, 0))
		for _, l := range strings.Split(RenderHeading(headingW, headingH, st.MarkerAngle), "\n") {
			lines = append(lines, pad+l)
		}
	}

	if len(lines) > height-2 {
		lines = lines[:max(height-2, 0)]
	}
	for len(lines) < height-2 {
		lines = append(lines, "")
	}

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderSelections lays the positions out in rows, highlighting the
// committed selection and the sweep target.
func renderSelections(st dial.State, selections, maxW int) []string {
	const cellW = 4
	perRow := max((maxW-1)/cellW, 1)

	var out []string
	var row strings.Builder
	row.WriteString(" ")
	for i := 0; i < selections; i++ {
		label := fmt.Sprintf("%3d", i)
		switch {
		case i == st.LastSelection:
			row.WriteString(StyleSelectionCommitted.Render(label))
		case i == st.ActiveSelection && !st.Idle():
			row.WriteString(StyleSelectionTarget.Render(label))
		default:
			row.WriteString(StyleSelection.Render(label))
		}
		row.WriteString(" ")
		if (i+1)%perRow == 0 || i == selections-1 {
			out = append(out, row.String())
			row.Reset()
			row.WriteString(" ")
		}
	}
	return out
}

func renderProgressBar(progress float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(1, progress)) * float64(width)))

	bar := strings.Repeat("=", filled) + strings.Repeat("-", width-filled)
	filledPart := lipgloss.NewStyle().Foreground(ColorAccent).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorAccentDim).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	rng := math.Max(maxV-minV, 1)

	start := max(len(values)-width, 0)

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		sb.WriteByte(chars[idx])
	}
	return sb.String()
}
