package tetris

import "time"

// Throttle lets at most one sample through per window. Samples arriving
// inside a window are coalesced; only the latest is kept and released by
// Flush once the window has closed.
type Throttle[T any] struct {
	window  time.Duration
	last    time.Time
	emitted bool
	pending bool
	sample  T
}

// NewThrottle returns a throttle with the given window.
func NewThrottle[T any](window time.Duration) *Throttle[T] {
	return &Throttle[T]{window: window}
}

// Offer submits a sample at now. It returns the sample with true when it
// may be used immediately. Otherwise the sample replaces any pending one
// and the returned deadline tells when Flush can release it.
func (t *Throttle[T]) Offer(sample T, now time.Time) (T, bool, time.Time) {
	if t.open(now) {
		t.last = now
		t.emitted = true
		t.pending = false
		return sample, true, time.Time{}
	}
	t.sample = sample
	t.pending = true
	var zero T
	return zero, false, t.last.Add(t.window)
}

// Flush releases the pending sample if its window has closed.
func (t *Throttle[T]) Flush(now time.Time) (T, bool) {
	var zero T
	if !t.pending || !t.open(now) {
		return zero, false
	}
	t.last = now
	t.pending = false
	s := t.sample
	t.sample = zero
	return s, true
}

// Pending reports whether a coalesced sample is waiting, and its deadline.
func (t *Throttle[T]) Pending() (time.Time, bool) {
	if !t.pending {
		return time.Time{}, false
	}
	return t.last.Add(t.window), true
}

// Reset drops any pending sample and reopens the window.
func (t *Throttle[T]) Reset() {
	var zero T
	t.emitted = false
	t.pending = false
	t.sample = zero
	t.last = time.Time{}
}

func (t *Throttle[T]) open(now time.Time) bool {
	return !t.emitted || now.Sub(t.last) >= t.window
}
