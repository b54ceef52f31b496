package dial

import "strconv"

// BuildOptions toggles optional overlays.
type BuildOptions struct {
	// Diagnostics adds the outline overlay: arc bounding boxes and the
	// marker radial.
	Diagnostics bool
}

// BuildCommands produces the draw commands for one frame, background first.
// It reads nothing but its arguments.
func BuildCommands(vp Viewport, cfg Config, st State, opts BuildOptions) []Command {
	cx, cy := vp.Center()
	labelRadius := vp.Radius + cfg.LabelRadiusOffset
	markerRadius := vp.Radius - cfg.MarkerRadiusOffset

	cmds := make([]Command, 0, 2*cfg.SelectionCount+8)

	dialColor := ColorGray
	if st.ActiveSelection >= 1 {
		dialColor = ColorGreen
	}
	cmds = append(cmds, Circle{CX: cx, CY: cy, R: vp.Radius, Style: Style{Color: dialColor, Filled: true}})

	labelStyle := Style{Color: ColorBlack, Filled: true, TextSize: LabelTextSize}
	ringStyle := Style{Color: ColorBlack, StrokeWidth: 1}
	for i := 0; i < cfg.SelectionCount; i++ {
		x, y := PointForPosition(i, labelRadius, cfg, vp)
		cmds = append(cmds,
			Circle{CX: x, CY: y, R: PositionDotRadius, Style: ringStyle},
			Text{X: x, Y: y, Content: strconv.Itoa(i), Style: labelStyle},
		)
	}

	cmds = append(cmds, Circle{CX: cx, CY: cy, R: markerRadius, Style: ringStyle})

	mx, my := PointForAngle(st.MarkerAngle, markerRadius, vp)
	cmds = append(cmds, Circle{CX: mx, CY: my, R: MarkerDotRadius, Style: Style{Color: ColorRed, Filled: true}})

	labelBounds := SquareAround(cx, cy, labelRadius)
	markerBounds := SquareAround(cx, cy, markerRadius)
	cmds = append(cmds,
		Arc{Bounds: labelBounds, StartAngleDeg: st.StartAngleDeg, SweepAngleDeg: st.SweepAngleDeg, Color: ColorBlue, StrokeWidth: cfg.StrokeWidth},
		Arc{Bounds: markerBounds, StartAngleDeg: st.StartAngleDeg, SweepAngleDeg: st.SweepAngleDeg, Color: ColorBlue, StrokeWidth: cfg.StrokeWidth},
	)

	if opts.Diagnostics {
		outline := Style{Color: ColorOutline, StrokeWidth: 1}
		cmds = append(cmds,
			Polyline{Points: labelBounds.Corners(), Style: outline},
			Polyline{Points: markerBounds.Corners(), Style: outline},
			Polyline{Points: []Point{{cx, cy}, {mx, my}}, Style: outline},
		)
	}

	return cmds
}
