package dial

import "math"

// State is a snapshot of the animator.
type State struct {
	LastSelection   int // last committed selection
	ActiveSelection int // sweep target
	Progress        float64
	DurationMs      int
	MarkerAngle     float64 // radians
	StartAngleDeg   float64 // cumulative arc base
	SweepAngleDeg   float64
	Commits         int
}

// Idle reports whether the snapshot has no sweep in flight.
func (s State) Idle() bool {
	return s.Progress >= 1
}

// Animator drives the marker sweep from the last committed selection to the
// active one. It is not safe for concurrent use; Widget serialises access.
type Animator struct {
	cfg Config

	last     int
	active   int
	progress float64

	markerAngle float64
	startDeg    float64
	sweepDeg    float64
	commits     int
}

// NewAnimator creates an idle animator resting on selection 0.
func NewAnimator(cfg Config) *Animator {
	return &Animator{
		cfg:         cfg,
		progress:    1,
		markerAngle: PositionAngle(0, cfg),
		startDeg:    cfg.AngularOffsetSlots * SlotDegrees(cfg),
	}
}

// Advance targets the next selection and restarts the sweep from the last
// committed selection. An in-flight sweep is abandoned without committing.
func (a *Animator) Advance() {
	a.active = Wrap(a.active+1, a.cfg.SelectionCount)
	a.progress = 0
	a.markerAngle = PositionAngle(a.last, a.cfg)
	a.sweepDeg = 0
}

// Tick advances progress by deltaMs of the configured duration and reports
// whether the sweep committed. Non-positive deltas and idle ticks are no-ops.
func (a *Animator) Tick(deltaMs float64) bool {
	if a.progress >= 1 || !(deltaMs > 0) {
		return false
	}

	a.progress = math.Min(1, a.progress+deltaMs/float64(a.cfg.DurationMs))
	if a.progress >= 1 {
		a.last = a.active
		a.markerAngle = PositionAngle(a.active, a.cfg)
		a.startDeg += SlotDegrees(a.cfg)
		a.sweepDeg = 0
		a.commits++
		return true
	}

	a.markerAngle = PositionAngle(a.last, a.cfg) + SlotAngle(a.cfg)*a.progress
	a.sweepDeg = SlotDegrees(a.cfg) * a.progress
	return false
}

// IsIdle reports whether no sweep is in flight.
func (a *Animator) IsIdle() bool {
	return a.progress >= 1
}

// CurrentMarkerAngle returns the marker angle in radians for this frame.
func (a *Animator) CurrentMarkerAngle() float64 {
	return a.markerAngle
}

// CurrentArc returns the arc start and sweep in degrees for this frame.
func (a *Animator) CurrentArc() (startDeg, sweepDeg float64) {
	return a.startDeg, a.sweepDeg
}

// Progress returns the normalized sweep progress in [0, 1].
func (a *Animator) Progress() float64 {
	return a.progress
}

// LastSelection returns the last committed selection.
func (a *Animator) LastSelection() int {
	return a.last
}

// ActiveSelection returns the sweep target.
func (a *Animator) ActiveSelection() int {
	return a.active
}

// Commits returns the number of completed sweeps.
func (a *Animator) Commits() int {
	return a.commits
}

// State returns a snapshot of the animator.
func (a *Animator) State() State {
	return State{
		LastSelection:   a.last,
		ActiveSelection: a.active,
		Progress:        a.progress,
		DurationMs:      a.cfg.DurationMs,
		MarkerAngle:     a.markerAngle,
		StartAngleDeg:   a.startDeg,
		SweepAngleDeg:   a.sweepDeg,
		Commits:         a.commits,
	}
}
