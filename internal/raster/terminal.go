package raster

import (
	"math"
	"strings"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/charmbracelet/lipgloss"
)

const (
	glyphFill   = '.'
	glyphDot    = '●'
	glyphArc    = '█'
	glyphLine   = '+'
	glyphBlank  = ' '
	smallCircle = 6 // discs narrower than this many cells render as a dot
)

// Cell is one terminal character.
type Cell struct {
	Ch    rune
	Color dial.Color
}

// Grid rasterizes draw commands onto terminal cells. Viewport coordinates
// are pixels; one cell covers cellW × cellH of them.
type Grid struct {
	cols, rows   int
	cellW, cellH float64
	cells        []Cell
}

// NewGrid creates a blank cols × rows grid.
func NewGrid(cols, rows int, cellW, cellH float64) *Grid {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if !(cellW > 0) {
		cellW = 1
	}
	if !(cellH > 0) {
		cellH = 1
	}
	g := &Grid{cols: cols, rows: rows, cellW: cellW, cellH: cellH, cells: make([]Cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].Ch = glyphBlank
	}
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// CellOf maps a viewport point to its cell.
func (g *Grid) CellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellW)), int(math.Floor(y / g.cellH))
}

// At returns the cell at (col, row), or a blank cell outside the grid.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Cell{Ch: glyphBlank}
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) setCell(col, row int, ch rune, c dial.Color) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = Cell{Ch: ch, Color: c}
}

func (g *Grid) plot(x, y float64, ch rune, c dial.Color) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	col, row := g.CellOf(x, y)
	g.setCell(col, row, ch, c)
}

// Draw rasterizes cmds in order; later commands overwrite earlier ones.
func (g *Grid) Draw(cmds []dial.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case dial.Circle:
			if c.Style.Filled {
				g.disc(c)
			} else {
				g.ring(c.CX, c.CY, c.R, c.Style.Color)
			}
		case dial.Arc:
			g.arc(c)
		case dial.Text:
			g.text(c)
		case dial.Polyline:
			g.polyline(c)
		}
	}
}

// steps returns how many samples keep a curve of length l gap-free.
func (g *Grid) steps(l float64) int {
	n := int(2*l/math.Min(g.cellW, g.cellH)) + 8
	return min(n, 1<<16)
}

func (g *Grid) ring(cx, cy, r float64, c dial.Color) {
	n := g.steps(2 * math.Pi * r)
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		g.plot(cx+r*math.Cos(a), cy+r*math.Sin(a), ringChar(a), c)
	}
}

func (g *Grid) disc(c dial.Circle) {
	ch := glyphFill
	if 2*c.R < smallCircle*g.cellW {
		ch = glyphDot
	}

	c0, r0 := g.CellOf(c.CX-c.R, c.CY-c.R)
	c1, r1 := g.CellOf(c.CX+c.R, c.CY+c.R)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, g.cols-1), min(r1, g.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * g.cellW
			py := (float64(row) + 0.5) * g.cellH
			if math.Hypot(px-c.CX, py-c.CY) <= c.R {
				g.setCell(col, row, ch, c.Style.Color)
			}
		}
	}
	g.plot(c.CX, c.CY, ch, c.Style.Color)
}

func (g *Grid) arc(a dial.Arc) {
	if !(a.SweepAngleDeg > 0) {
		return
	}
	sweep := math.Min(a.SweepAngleDeg, 360)
	cx, cy := a.Bounds.Center()
	rx, ry := a.Bounds.Width()/2, a.Bounds.Height()/2

	// offsets beyond the grid only plot off-screen
	cols, rows := g.Size()
	reach := math.Max(rx, ry) + math.Hypot(float64(cols)*g.cellW, float64(rows)*g.cellH)
	half := math.Min(a.StrokeWidth/2, reach)
	band := math.Min(g.cellW, g.cellH) / 2
	n := g.steps(math.Max(rx, ry) * dial.Radians(sweep))
	for off := -half; off <= half; off += band {
		for i := 0; i <= n; i++ {
			t := dial.Radians(a.StartAngleDeg + sweep*float64(i)/float64(n))
			g.plot(cx+(rx+off)*math.Cos(t), cy+(ry+off)*math.Sin(t), glyphArc, a.Color)
		}
	}
}

func (g *Grid) text(t dial.Text) {
	col, row := g.CellOf(t.X, t.Y)
	runes := []rune(t.Content)
	start := col - len(runes)/2
	for i, r := range runes {
		g.setCell(start+i, row, r, t.Style.Color)
	}
}

func (g *Grid) polyline(p dial.Polyline) {
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		n := g.steps(math.Hypot(b.X-a.X, b.Y-a.Y))
		for s := 0; s <= n; s++ {
			f := float64(s) / float64(n)
			g.plot(a.X+(b.X-a.X)*f, a.Y+(b.Y-a.Y)*f, glyphLine, p.Style.Color)
		}
	}
}

// ringChar returns the outline character tangent to a circle at angle a
// (0 = east, clockwise).
func ringChar(a float64) rune {
	sector := int(math.Round(dial.NormalizeAngle(a)/(math.Pi/4))) % 8
	switch sector {
	case 0, 4: // E, W
		return '|'
	case 1, 5: // SE, NW
		return '/'
	case 2, 6: // S, N
		return '-'
	default: // SW, NE
		return '\\'
	}
}

// Plain returns the grid as unstyled text.
func (g *Grid) Plain() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.cells[row*g.cols+col].Ch)
		}
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Styled returns the grid with each cell coloured through lipgloss.
func (g *Grid) Styled() string {
	styles := make(map[dial.Color]lipgloss.Style)
	styleFor := func(c Cell) lipgloss.Style {
		key := c.Color
		if c.Ch == glyphFill {
			key += "/fill"
		}
		if s, ok := styles[key]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c.Color)))
		if c.Ch == glyphFill {
			s = s.Faint(true)
		} else {
			s = s.Bold(true)
		}
		styles[key] = s
		return s
	}

	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.Ch == glyphBlank {
				sb.WriteRune(glyphBlank)
				continue
			}
			sb.WriteString(styleFor(c).Render(string(c.Ch)))
		}
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Terminal rasterizes cmds onto a cols × rows grid and returns styled text.
func Terminal(cols, rows int, cellW, cellH float64, cmds []dial.Command) string {
	g := NewGrid(cols, rows, cellW, cellH)
	g.Draw(cmds)
	return g.Styled()
}
