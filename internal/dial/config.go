package dial

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by NewConfig when a field cannot produce
// defined angles.
var ErrInvalidConfig = errors.New("invalid dial configuration")

const (
	DefaultSelectionCount     = 12
	DefaultDurationMs         = 1000
	DefaultAngularOffsetSlots = 9.0  // 9 slots of 30° puts position 0 at 12 o'clock
	DefaultLabelRadiusOffset  = 20.0 // label ring sits outside the dial
	DefaultMarkerRadiusOffset = 35.0 // marker path sits inside the dial
	DefaultStrokeWidth        = 15.0

	// MarkerDotRadius is the radius of the animated marker point.
	MarkerDotRadius = 20.0
	// PositionDotRadius is the radius of the small ring drawn under each label.
	PositionDotRadius = 6.0
	// LabelTextSize is the label font size in viewport pixels.
	LabelTextSize = 40.0
	// RadiusFactor scales min(width, height)/2 down to the dial radius.
	RadiusFactor = 0.8
)

// Options is the configuration surface accepted by NewConfig.
type Options struct {
	SelectionCount     int
	DurationMs         int
	AngularOffsetSlots float64
	LabelRadiusOffset  float64
	MarkerRadiusOffset float64
	StrokeWidth        float64

	// TruncateSlotDegrees advances the arc start by the whole-degree
	// 360/N instead of the exact slot width.
	TruncateSlotDegrees bool
}

// DefaultOptions returns the stock 12-position dial configuration.
func DefaultOptions() Options {
	return Options{
		SelectionCount:     DefaultSelectionCount,
		DurationMs:         DefaultDurationMs,
		AngularOffsetSlots: DefaultAngularOffsetSlots,
		LabelRadiusOffset:  DefaultLabelRadiusOffset,
		MarkerRadiusOffset: DefaultMarkerRadiusOffset,
		StrokeWidth:        DefaultStrokeWidth,
	}
}

// Config is the validated, read-only dial configuration. Build it with
// NewConfig; the zero value is not usable.
type Config struct {
	SelectionCount      int
	DurationMs          int
	AngularOffsetSlots  float64
	AngularOffset       float64 // radians, AngularOffsetSlots × slot angle
	LabelRadiusOffset   float64
	MarkerRadiusOffset  float64
	StrokeWidth         float64
	TruncateSlotDegrees bool
}

// NewConfig validates opts and derives the angular offset.
func NewConfig(opts Options) (Config, error) {
	if opts.SelectionCount <= 0 {
		return Config{}, fmt.Errorf("%w: selection count must be > 0, got %d", ErrInvalidConfig, opts.SelectionCount)
	}
	if opts.DurationMs <= 0 {
		return Config{}, fmt.Errorf("%w: duration must be > 0 ms, got %d", ErrInvalidConfig, opts.DurationMs)
	}

	cfg := Config{
		SelectionCount:      opts.SelectionCount,
		DurationMs:          opts.DurationMs,
		AngularOffsetSlots:  opts.AngularOffsetSlots,
		LabelRadiusOffset:   opts.LabelRadiusOffset,
		MarkerRadiusOffset:  opts.MarkerRadiusOffset,
		StrokeWidth:         opts.StrokeWidth,
		TruncateSlotDegrees: opts.TruncateSlotDegrees,
	}
	cfg.AngularOffset = opts.AngularOffsetSlots * SlotAngle(cfg)
	return cfg, nil
}

// MustConfig is NewConfig for configurations known to be valid.
func MustConfig(opts Options) Config {
	cfg, err := NewConfig(opts)
	if err != nil {
		panic(err)
	}
	return cfg
}
