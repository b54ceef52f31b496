package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"dial-sweep.klederson.com/internal/dial"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image rasterizes cmds into a width × height RGBA image on a white
// background.
func Image(cmds []dial.Command, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case dial.Circle:
			col := RGBA(c.Style.Color)
			if c.Style.Filled {
				fillCircle(img, c.CX, c.CY, c.R, col)
			} else {
				strokeRing(img, c.CX, c.CY, c.R, math.Max(c.Style.StrokeWidth, 1), 0, 360, col)
			}
		case dial.Arc:
			if !(c.SweepAngleDeg > 0) {
				continue
			}
			cx, cy := c.Bounds.Center()
			strokeRing(img, cx, cy, c.Bounds.Width()/2, math.Max(c.StrokeWidth, 1), c.StartAngleDeg, c.SweepAngleDeg, RGBA(c.Color))
		case dial.Text:
			drawText(img, c)
		case dial.Polyline:
			strokePolyline(img, c.Points, math.Max(c.Style.StrokeWidth, 1), RGBA(c.Style.Color))
		}
	}
	return img
}

// WritePNG encodes one frame of cmds as PNG.
func WritePNG(w io.Writer, cmds []dial.Command, width, height int) error {
	return png.Encode(w, Image(cmds, width, height))
}

// clip returns the integer pixel box around (cx, cy) ± r inside img.
func clip(img *image.RGBA, cx, cy, r float64) (x0, y0, x1, y1 int, ok bool) {
	if math.IsNaN(cx+cy+r) || math.IsInf(cx, 0) || math.IsInf(cy, 0) || math.IsInf(r, 0) {
		return 0, 0, 0, 0, false
	}
	b := img.Bounds()
	x0 = max(int(math.Floor(cx-r)), b.Min.X)
	y0 = max(int(math.Floor(cy-r)), b.Min.Y)
	x1 = min(int(math.Ceil(cx+r)), b.Max.X-1)
	y1 = min(int(math.Ceil(cy+r)), b.Max.Y-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// fillCircle draws a filled disc.
func fillCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	x0, y0, x1, y1, ok := clip(img, cx, cy, radius)
	if !ok {
		return
	}
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// strokeRing draws the band radius ± width/2 limited to the clockwise sweep
// starting at startDeg.
func strokeRing(img *image.RGBA, cx, cy, radius, width, startDeg, sweepDeg float64, col color.RGBA) {
	half := width / 2
	x0, y0, x1, y1, ok := clip(img, cx, cy, radius+half)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if math.Abs(math.Hypot(dx, dy)-radius) > half {
				continue
			}
			deg := dial.Degrees(math.Atan2(dy, dx))
			if dial.InSweep(deg, startDeg, sweepDeg) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func strokePolyline(img *image.RGBA, pts []dial.Point, width float64, col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		n := int(math.Hypot(b.X-a.X, b.Y-a.Y)) + 1
		for s := 0; s <= n; s++ {
			f := float64(s) / float64(n)
			fillCircle(img, a.X+(b.X-a.X)*f, a.Y+(b.Y-a.Y)*f, width/2, col)
		}
	}
}

// drawText centres t.Content on t.X with the baseline at t.Y. basicfont has
// a single size, so TextSize is ignored.
func drawText(img *image.RGBA, t dial.Text) {
	if math.IsNaN(t.X) || math.IsNaN(t.Y) {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(RGBA(t.Style.Color)),
		Face: face,
	}
	w := d.MeasureString(t.Content)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(math.Round(t.X))) - w/2,
		Y: fixed.I(int(math.Round(t.Y))),
	}
	d.DrawString(t.Content)
}
