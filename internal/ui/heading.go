package ui

import (
	"math"
	"strings"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/charmbracelet/lipgloss"
)

// RenderHeading renders a small ring with an arrow from the center toward
// angle (radians, 0 = east, clockwise).
func RenderHeading(width, height int, angle float64) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	isArrow := make([][]bool, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
		isArrow[i] = make([]bool, width)
	}

	fcx := float64(width-1) / 2
	fcy := float64(height-1) / 2
	rx := math.Max(fcx-1, 3)
	ry := math.Max(fcy-1, 2)

	set := func(col, row int, ch byte, arrow bool) {
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = ch
			isArrow[row][col] = arrow
		}
	}

	steps := 64
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		set(int(math.Round(fcx+rx*math.Cos(a))), int(math.Round(fcy+ry*math.Sin(a))), '.', false)
	}

	cosA, sinA := math.Cos(angle), math.Sin(angle)
	shaft := int(math.Max(rx, ry))
	var tipCol, tipRow int
	for s := 1; s <= shaft; s++ {
		t := float64(s) / float64(shaft) * 0.85
		tipCol = int(math.Round(fcx + t*rx*cosA))
		tipRow = int(math.Round(fcy + t*ry*sinA))
		set(tipCol, tipRow, shaftChar(angle), true)
	}
	set(tipCol, tipRow, arrowTip(angle), true)
	set(int(math.Round(fcx)), int(math.Round(fcy)), '+', false)

	arrowSty := lipgloss.NewStyle().Foreground(ColorMarker).Bold(true)
	ringSty := lipgloss.NewStyle().Foreground(ColorAccentDim)
	centerSty := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case isArrow[row][col]:
				sb.WriteString(arrowSty.Render(string(ch)))
			case ch == '+':
				sb.WriteString(centerSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(ringSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// sector returns the compass point nearest a screen angle, counted
// clockwise in 45° steps from east.
func sector(a float64) int {
	best, bestDiff := 0, math.Inf(1)
	for i := 0; i < 8; i++ {
		if d := dial.AngleDiff(a, float64(i)*math.Pi/4); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// shaftChar returns the line character for a direction.
func shaftChar(a float64) byte {
	switch sector(a) {
	case 0, 4: // E, W
		return '-'
	case 2, 6: // S, N
		return '|'
	case 1, 5: // SE, NW
		return '\\'
	default: // SW, NE
		return '/'
	}
}

// arrowTip returns the arrowhead character for a direction.
func arrowTip(a float64) byte {
	switch sector(a) {
	case 0:
		return '>'
	case 2:
		return 'v'
	case 4:
		return '<'
	case 6:
		return '^'
	case 1, 5:
		return '\\'
	default:
		return '/'
	}
}

// Compass returns the eight-point direction of a screen angle.
func Compass(a float64) string {
	return [...]string{"E", "SE", "S", "SW", "W", "NW", "N", "NE"}[sector(a)]
}
