package app

import "time"

// FrameTimes keeps the most recent frame intervals with a running total,
// so the mean and frame rate cost nothing per frame.
type FrameTimes struct {
	buf   []time.Duration
	next  int
	count int
	total time.Duration
}

// NewFrameTimes keeps up to window intervals.
func NewFrameTimes(window int) *FrameTimes {
	return &FrameTimes{buf: make([]time.Duration, max(window, 1))}
}

// Push records one frame interval, evicting the oldest once the window is
// full. Non-positive intervals (clock steps) are dropped.
func (f *FrameTimes) Push(d time.Duration) {
	if d <= 0 {
		return
	}
	if f.count == len(f.buf) {
		f.total -= f.buf[f.next]
	} else {
		f.count++
	}
	f.buf[f.next] = d
	f.total += d
	f.next = (f.next + 1) % len(f.buf)
}

// Len returns the number of intervals in the window.
func (f *FrameTimes) Len() int {
	return f.count
}

// Millis returns the window oldest first, in milliseconds.
func (f *FrameTimes) Millis() []float64 {
	if f.count == 0 {
		return nil
	}
	out := make([]float64, 0, f.count)
	start := (f.next - f.count + len(f.buf)) % len(f.buf)
	for i := 0; i < f.count; i++ {
		out = append(out, float64(f.buf[(start+i)%len(f.buf)])/float64(time.Millisecond))
	}
	return out
}

// Mean returns the average interval, or 0 with no frames.
func (f *FrameTimes) Mean() time.Duration {
	if f.count == 0 {
		return 0
	}
	return f.total / time.Duration(f.count)
}

// FPS returns the frame rate implied by the window.
func (f *FrameTimes) FPS() float64 {
	if f.total <= 0 {
		return 0
	}
	return float64(f.count) / f.total.Seconds()
}
