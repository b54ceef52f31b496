package dial

// Color names a paint colour. Rasterizers map names to their own palette.
type Color string

const (
	ColorGray    Color = "gray"
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorBlue    Color = "blue"
	ColorBlack   Color = "black"
	ColorOutline Color = "outline" // diagnostics overlay
)

// Style carries paint attributes for circles, text and polylines.
type Style struct {
	Color       Color
	Filled      bool
	StrokeWidth float64
	TextSize    float64
}

// Point is a viewport coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in viewport coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Center returns the rectangle center.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Corners returns the closed outline of the rectangle.
func (r Rect) Corners() []Point {
	return []Point{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Bottom},
		{r.Left, r.Top},
	}
}

// SquareAround returns the square of half-side radius centred on (cx, cy).
func SquareAround(cx, cy, radius float64) Rect {
	return Rect{Left: cx - radius, Top: cy - radius, Right: cx + radius, Bottom: cy + radius}
}

// Command is one draw operation. The set of implementations is closed:
// Circle, Arc, Text and Polyline.
type Command interface {
	isCommand()
}

// Circle draws a circle outline, or a disc when Style.Filled is set.
type Circle struct {
	CX, CY, R float64
	Style     Style
}

// Arc strokes the part of the ellipse inscribed in Bounds that starts at
// StartAngleDeg and extends clockwise by SweepAngleDeg.
type Arc struct {
	Bounds        Rect
	StartAngleDeg float64
	SweepAngleDeg float64
	Color         Color
	StrokeWidth   float64
}

// Text draws Content centred horizontally on X with its baseline at Y.
type Text struct {
	X, Y    float64
	Content string
	Style   Style
}

// Polyline strokes consecutive points.
type Polyline struct {
	Points []Point
	Style  Style
}

func (Circle) isCommand()   {}
func (Arc) isCommand()      {}
func (Text) isCommand()     {}
func (Polyline) isCommand() {}
