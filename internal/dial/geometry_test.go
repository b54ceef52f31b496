package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"single position", func(o *Options) { o.SelectionCount = 1 }, false},
		{"zero selections", func(o *Options) { o.SelectionCount = 0 }, true},
		{"negative selections", func(o *Options) { o.SelectionCount = -4 }, true},
		{"zero duration", func(o *Options) { o.DurationMs = 0 }, true},
		{"negative duration", func(o *Options) { o.DurationMs = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			cfg, err := NewConfig(opts)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				assert.Equal(t, Config{}, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, opts.SelectionCount, cfg.SelectionCount)
		})
	}
}

func TestDefaultAngularOffsetIsTwelveOClock(t *testing.T) {
	cfg := MustConfig(DefaultOptions())
	assert.InDelta(t, 9*(2*math.Pi/12), cfg.AngularOffset, eps)
	assert.InDelta(t, 270, Degrees(PositionAngle(0, cfg)), eps)

	vp := NewViewport(200, 200)
	x, y := PointForPosition(0, 50, cfg, vp)
	assert.InDelta(t, 100, x, eps)
	assert.InDelta(t, 50, y, eps)
}

func TestNewViewport(t *testing.T) {
	vp := NewViewport(400, 300)
	assert.InDelta(t, 120, vp.Radius, eps)
	cx, cy := vp.Center()
	assert.Equal(t, 200.0, cx)
	assert.Equal(t, 150.0, cy)

	zero := NewViewport(0, 0)
	assert.Zero(t, zero.Radius)
}

func TestPointForAngle(t *testing.T) {
	vp := NewViewport(100, 60)

	x, y := PointForAngle(0, 10, vp)
	assert.InDelta(t, 60, x, eps)
	assert.InDelta(t, 30, y, eps)

	x, y = PointForAngle(math.Pi/2, 10, vp)
	assert.InDelta(t, 50, x, eps)
	assert.InDelta(t, 40, y, eps)
}

func TestPointForAngleNaNPropagates(t *testing.T) {
	x, y := PointForAngle(math.NaN(), 10, NewViewport(100, 100))
	assert.True(t, math.IsNaN(x))
	assert.True(t, math.IsNaN(y))

	x, _ = PointForAngle(0, math.Inf(1), NewViewport(100, 100))
	assert.True(t, math.IsInf(x, 1))
}

func TestSlotDegrees(t *testing.T) {
	tests := []struct {
		n        int
		truncate bool
		want     float64
	}{
		{12, false, 30},
		{12, true, 30},
		{7, false, 360.0 / 7},
		{7, true, 51},
		{1, false, 360},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.SelectionCount = tt.n
		opts.TruncateSlotDegrees = tt.truncate
		cfg := MustConfig(opts)
		assert.InDelta(t, tt.want, SlotDegrees(cfg), eps, "n=%d truncate=%v", tt.n, tt.truncate)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 0, Wrap(12, 12))
	assert.Equal(t, 11, Wrap(-1, 12))
	assert.Equal(t, 3, Wrap(-9, 4))
	assert.Equal(t, 5, Wrap(5, 12))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), eps)
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), eps)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(5*math.Pi/2), eps)
	assert.InDelta(t, 90, NormalizeDegrees(-270), eps)
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 0.2, AngleDiff(0.1, 2*math.Pi-0.1), eps)
	assert.InDelta(t, math.Pi, AngleDiff(0, math.Pi), eps)
}

func TestInSweep(t *testing.T) {
	assert.True(t, InSweep(280, 270, 30))
	assert.True(t, InSweep(10, 350, 30))
	assert.False(t, InSweep(20, 350, 15))
	assert.False(t, InSweep(270, 270, 0))
	assert.True(t, InSweep(123, 0, 360))
}
