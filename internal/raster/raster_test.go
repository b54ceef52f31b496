package raster

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepingFrame(t *testing.T, w, h float64, diagnostics bool) []dial.Command {
	t.Helper()
	cfg := dial.MustConfig(dial.DefaultOptions())
	a := dial.NewAnimator(cfg)
	a.Advance()
	a.Tick(500)
	return dial.BuildCommands(dial.NewViewport(w, h), cfg, a.State(), dial.BuildOptions{Diagnostics: diagnostics})
}

func committedFrame(t *testing.T, w, h float64) []dial.Command {
	t.Helper()
	cfg := dial.MustConfig(dial.DefaultOptions())
	a := dial.NewAnimator(cfg)
	a.Advance()
	a.Tick(1000)
	return dial.BuildCommands(dial.NewViewport(w, h), cfg, a.State(), dial.BuildOptions{})
}

func markerOf(cmds []dial.Command) dial.Circle {
	var marker dial.Circle
	for _, c := range cmds {
		if circle, ok := c.(dial.Circle); ok && circle.Style.Color == dial.ColorRed {
			marker = circle
		}
	}
	return marker
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#000000", Hex(dial.ColorBlack))
	assert.Equal(t, "#ff3300", Hex(dial.ColorRed))
	assert.Equal(t, "#000000", Hex("unknown"))
}

func TestGridPlotsMarkerCell(t *testing.T) {
	const cellW, cellH = 8.0, 16.0
	cmds := committedFrame(t, 640, 640)

	g := NewGrid(80, 40, cellW, cellH)
	g.Draw(cmds)

	marker := markerOf(cmds)
	col, row := g.CellOf(marker.CX, marker.CY)
	cell := g.At(col, row)
	assert.Equal(t, dial.ColorRed, cell.Color)
	assert.Equal(t, glyphDot, cell.Ch)
}

func TestGridLabelsAndArc(t *testing.T) {
	cmds := sweepingFrame(t, 640, 640, false)
	g := NewGrid(80, 40, 8, 16)
	g.Draw(cmds)

	plain := g.Plain()
	lines := strings.Split(plain, "\n")
	require.Len(t, lines, 40)
	for _, l := range lines {
		assert.Equal(t, 80, len([]rune(l)))
	}
	assert.Contains(t, plain, "11")
	assert.Contains(t, plain, string(glyphArc))
	assert.Contains(t, plain, string(glyphFill))
}

func TestGridHugeStrokeFinishes(t *testing.T) {
	arc := dial.Arc{
		Bounds:        dial.SquareAround(80, 80, 60),
		StartAngleDeg: 0,
		SweepAngleDeg: 360,
		Color:         dial.ColorBlue,
		StrokeWidth:   1e8,
	}

	done := make(chan *Grid, 1)
	go func() {
		g := NewGrid(20, 10, 8, 16)
		g.Draw([]dial.Command{arc})
		done <- g
	}()

	select {
	case g := <-done:
		assert.Contains(t, g.Plain(), string(glyphArc))
	case <-time.After(5 * time.Second):
		t.Fatal("drawing a wide stroke did not finish")
	}
}

func TestGridIdleDrawsNoArc(t *testing.T) {
	cfg := dial.MustConfig(dial.DefaultOptions())
	cmds := dial.BuildCommands(dial.NewViewport(640, 640), cfg, dial.NewAnimator(cfg).State(), dial.BuildOptions{})
	g := NewGrid(80, 40, 8, 16)
	g.Draw(cmds)
	assert.NotContains(t, g.Plain(), string(glyphArc))
}

func TestGridDiagnostics(t *testing.T) {
	g := NewGrid(80, 40, 8, 16)
	g.Draw(sweepingFrame(t, 640, 640, true))
	assert.Contains(t, g.Plain(), string(glyphLine))
}

func TestGridDegenerate(t *testing.T) {
	g := NewGrid(0, 0, 0, 0)
	g.Draw(sweepingFrame(t, 0, 0, true))
	assert.Equal(t, "", g.Plain())

	out := Terminal(10, 5, 8, 16, sweepingFrame(t, 0, 0, false))
	assert.NotEmpty(t, out)
}

func TestRingChar(t *testing.T) {
	assert.Equal(t, '|', ringChar(0))
	assert.Equal(t, '-', ringChar(dial.Radians(90)))
	assert.Equal(t, '/', ringChar(dial.Radians(45)))
	assert.Equal(t, '\\', ringChar(dial.Radians(315)))
}

func TestImageRasterizes(t *testing.T) {
	cmds := committedFrame(t, 400, 400)
	img := Image(cmds, 400, 400)
	require.Equal(t, 400, img.Bounds().Dx())

	assert.Equal(t, background, img.RGBAAt(0, 0))
	assert.Equal(t, RGBA(dial.ColorGreen), img.RGBAAt(200, 200+40))

	marker := markerOf(cmds)
	assert.Equal(t, RGBA(dial.ColorRed), img.RGBAAt(int(marker.CX), int(marker.CY)))
}

func TestImageArcSweep(t *testing.T) {
	arc := dial.Arc{
		Bounds:        dial.SquareAround(100, 100, 50),
		StartAngleDeg: 270,
		SweepAngleDeg: 90,
		Color:         dial.ColorBlue,
		StrokeWidth:   6,
	}
	img := Image([]dial.Command{arc}, 200, 200)

	// 315° lies inside the sweep, 225° outside.
	assert.Equal(t, RGBA(dial.ColorBlue), img.RGBAAt(135, 64))
	assert.Equal(t, background, img.RGBAAt(64, 64))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, sweepingFrame(t, 120, 90, false), 120, 90))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sweepingFrame(t, 300, 300, true), 300, 300))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, "<polyline")
	assert.Equal(t, 12, strings.Count(out, "<text"))
}

func TestArcPath(t *testing.T) {
	assert.Equal(t, "M100.00,50.00 A50.00,50.00 0 0 1 150.00,100.00", arcPath(100, 100, 50, 270, 90))
	assert.Contains(t, arcPath(0, 0, 10, 0, 270), " 0 1 1 ")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteError(t *testing.T) {
	err := WriteSVG(failWriter{}, nil, 10, 10)
	assert.EqualError(t, err, "disk full")
}
