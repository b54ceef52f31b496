package raster

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"dial-sweep.klederson.com/internal/dial"
	svg "github.com/ajstarks/svgo"
)

func f64s(val float64) string {
	return strconv.FormatFloat(val, 'f', 2, 64)
}

func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// arcPath returns an SVG path for the clockwise arc of radius r around
// (cx, cy) from startDeg through sweepDeg.
func arcPath(cx, cy, r, startDeg, sweepDeg float64) string {
	a0 := dial.Radians(startDeg)
	a1 := dial.Radians(startDeg + sweepDeg)
	x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	x1, y1 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	large := 0
	if sweepDeg > 180 {
		large = 1
	}
	return fmt.Sprintf("M%s,%s A%s,%s 0 %d 1 %s,%s",
		f64s(x0), f64s(y0), f64s(r), f64s(r), large, f64s(x1), f64s(y1))
}

// WriteSVG writes one frame of cmds as an SVG document.
func WriteSVG(w io.Writer, cmds []dial.Command, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case dial.Circle:
			if c.Style.Filled {
				canvas.Circle(px(c.CX), px(c.CY), px(c.R), "fill:"+Hex(c.Style.Color))
			} else {
				canvas.Circle(px(c.CX), px(c.CY), px(c.R),
					fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", Hex(c.Style.Color), f64s(math.Max(c.Style.StrokeWidth, 1))))
			}
		case dial.Arc:
			if !(c.SweepAngleDeg > 0) {
				continue
			}
			cx, cy := c.Bounds.Center()
			style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", Hex(c.Color), f64s(c.StrokeWidth))
			if c.SweepAngleDeg >= 360 {
				canvas.Circle(px(cx), px(cy), px(c.Bounds.Width()/2), style)
				continue
			}
			canvas.Path(arcPath(cx, cy, c.Bounds.Width()/2, c.StartAngleDeg, c.SweepAngleDeg), style)
		case dial.Text:
			canvas.Text(px(c.X), px(c.Y), c.Content,
				fmt.Sprintf("text-anchor:middle;font-size:%spx;fill:%s", f64s(c.Style.TextSize), Hex(c.Style.Color)))
		case dial.Polyline:
			xs := make([]int, len(c.Points))
			ys := make([]int, len(c.Points))
			for i, p := range c.Points {
				xs[i], ys[i] = px(p.X), px(p.Y)
			}
			canvas.Polyline(xs, ys,
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", Hex(c.Style.Color), f64s(math.Max(c.Style.StrokeWidth, 1))))
		}
	}

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
