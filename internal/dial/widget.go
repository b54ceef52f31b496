package dial

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Widget owns one dial: its configuration, viewport and animator. All
// methods are safe for concurrent use.
type Widget struct {
	mu          sync.Mutex
	cfg         Config
	vp          Viewport
	anim        *Animator
	diagnostics bool
	log         logrus.FieldLogger
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger routes transition logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Widget) {
		w.log = l
	}
}

// WithDiagnostics enables the outline overlay from the start.
func WithDiagnostics(on bool) Option {
	return func(w *Widget) {
		w.diagnostics = on
	}
}

// New creates an idle widget with a zero-size viewport.
func New(cfg Config, opts ...Option) *Widget {
	w := &Widget{
		cfg:  cfg,
		anim: NewAnimator(cfg),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		w.log = l
	}
	return w
}

// OnAdvance moves the target to the next selection and restarts the sweep.
func (w *Widget) OnAdvance() {
	w.mu.Lock()
	defer w.mu.Unlock()

	restarted := !w.anim.IsIdle()
	w.anim.Advance()
	w.log.WithFields(logrus.Fields{
		"last":      w.anim.LastSelection(),
		"active":    w.anim.ActiveSelection(),
		"restarted": restarted,
	}).Debug("dial advance")
}

// OnTick feeds elapsed frame time to the animator. Ticks while idle are
// ignored.
func (w *Widget) OnTick(deltaMs float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.anim.Tick(deltaMs) {
		return
	}
	start, _ := w.anim.CurrentArc()
	w.log.WithFields(logrus.Fields{
		"selection": w.anim.LastSelection(),
		"start_deg": start,
		"commits":   w.anim.Commits(),
	}).Debug("dial sweep committed")
}

// OnResize updates the viewport and recomputes the radius.
func (w *Widget) OnResize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.vp = NewViewport(width, height)
}

// BuildDrawCommands returns the draw commands for the current frame.
func (w *Widget) BuildDrawCommands() []Command {
	w.mu.Lock()
	defer w.mu.Unlock()
	return BuildCommands(w.vp, w.cfg, w.anim.State(), BuildOptions{Diagnostics: w.diagnostics})
}

// IsIdle reports whether no sweep is in flight.
func (w *Widget) IsIdle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.anim.IsIdle()
}

// State returns a snapshot of the animation state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.anim.State()
}

// Viewport returns the current viewport.
func (w *Widget) Viewport() Viewport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.vp
}

// Config returns the widget configuration.
func (w *Widget) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// SetDiagnostics toggles the outline overlay.
func (w *Widget) SetDiagnostics(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.diagnostics = on
}

// Diagnostics reports whether the outline overlay is on.
func (w *Widget) Diagnostics() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.diagnostics
}
