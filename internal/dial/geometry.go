package dial

import "math"

// Angles are radians, 0 = 3 o'clock, increasing clockwise (screen y grows down).

// Viewport is the host-owned drawing area.
type Viewport struct {
	Width  float64
	Height float64
	Radius float64
}

// NewViewport derives the dial radius from the view size.
func NewViewport(width, height float64) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		Radius: math.Min(width, height) / 2 * RadiusFactor,
	}
}

// Center returns the viewport center.
func (v Viewport) Center() (x, y float64) {
	return v.Width / 2, v.Height / 2
}

// SlotAngle is the angular width of one position in radians.
func SlotAngle(cfg Config) float64 {
	return 2 * math.Pi / float64(cfg.SelectionCount)
}

// SlotDegrees is the angular width of one position in degrees, truncated
// to a whole number when the config asks for it.
func SlotDegrees(cfg Config) float64 {
	if cfg.TruncateSlotDegrees {
		return float64(360 / cfg.SelectionCount)
	}
	return 360 / float64(cfg.SelectionCount)
}

// PositionAngle returns the angle of a selection. pos is not reduced.
func PositionAngle(pos int, cfg Config) float64 {
	return cfg.AngularOffset + float64(pos)*SlotAngle(cfg)
}

// PointForAngle converts a polar coordinate around the viewport center to
// viewport coordinates.
func PointForAngle(angle, radius float64, vp Viewport) (x, y float64) {
	cx, cy := vp.Center()
	return radius*math.Cos(angle) + cx, radius*math.Sin(angle) + cy
}

// PointForPosition places a selection at radius.
func PointForPosition(pos int, radius float64, cfg Config, vp Viewport) (x, y float64) {
	return PointForAngle(PositionAngle(pos, cfg), radius, vp)
}

// Wrap reduces pos into [0, n).
func Wrap(pos, n int) int {
	m := pos % n
	if m < 0 {
		m += n
	}
	return m
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}

// AngleDiff returns the shortest angular distance between two angles.
// Result is in [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// InSweep reports whether deg lies on the arc that starts at startDeg and
// extends clockwise by sweepDeg. A sweep of 360 or more covers the circle.
func InSweep(deg, startDeg, sweepDeg float64) bool {
	if sweepDeg <= 0 {
		return false
	}
	if sweepDeg >= 360 {
		return true
	}
	return NormalizeDegrees(deg-startDeg) <= sweepDeg
}
