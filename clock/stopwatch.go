package clock

import "github.com/sarchlab/ticktime/timing"

// Stopwatch measures time elapsed on a Clock.
type Stopwatch[T timing.Ticks, S timing.Scale] struct {
	clock Clock[T, S]
	start timing.Instant[T, S]
}

// NewStopwatch creates a running Stopwatch.
func NewStopwatch[T timing.Ticks, S timing.Scale](c Clock[T, S]) *Stopwatch[T, S] {
	return &Stopwatch[T, S]{clock: c, start: c.Now()}
}

// Start restarts the measurement from the current instant.
func (w *Stopwatch[T, S]) Start() {
	w.start = w.clock.Now()
}

// Elapsed returns the time since the last Start. It reports false once the
// counter has run more than half its range, when the start instant reads as
// being in the future.
func (w *Stopwatch[T, S]) Elapsed() (timing.Duration[T, S], bool) {
	return w.clock.Now().CheckedDurationSince(w.start)
}

// Deadline is an instant on a Clock after which a timeout has expired.
type Deadline[T timing.Ticks, S timing.Scale] struct {
	clock Clock[T, S]
	at    timing.Instant[T, S]
}

// NewDeadline creates a Deadline timeout from now.
func NewDeadline[T timing.Ticks, S timing.Scale](
	c Clock[T, S],
	timeout timing.Duration[T, S],
) *Deadline[T, S] {
	return &Deadline[T, S]{clock: c, at: c.Now().Add(timeout)}
}

// At returns the instant the deadline expires.
func (d *Deadline[T, S]) At() timing.Instant[T, S] {
	return d.at
}

// Expired reports whether the clock has reached the deadline.
func (d *Deadline[T, S]) Expired() bool {
	return !d.clock.Now().Before(d.at)
}

// Remaining returns the time left before the deadline, or false once it has
// passed.
func (d *Deadline[T, S]) Remaining() (timing.Duration[T, S], bool) {
	return d.at.CheckedDurationSince(d.clock.Now())
}
