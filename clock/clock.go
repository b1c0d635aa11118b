// Package clock reads the current instant from a tick counter.
package clock

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/sarchlab/ticktime/scale"
	"github.com/sarchlab/ticktime/timing"
)

// Clock is a source of instants, usually a free-running hardware counter.
type Clock[T timing.Ticks, S timing.Scale] interface {
	Now() timing.Instant[T, S]
}

// Monotonic is a Clock driven by the host's monotonic clock. It counts ticks
// of S since it was created and wraps at the width of T, the same way a
// hardware counter does. It is safe for concurrent use.
type Monotonic[T timing.Ticks, S timing.Scale] struct {
	start   time.Time
	now     func() time.Time
	factors scale.Factors
}

// NewMonotonic creates a Monotonic clock that reads zero now.
func NewMonotonic[T timing.Ticks, S timing.Scale]() *Monotonic[T, S] {
	return newMonotonic[T, S](time.Now)
}

func newMonotonic[T timing.Ticks, S timing.Scale](now func() time.Time) *Monotonic[T, S] {
	var s S
	if err := s.Ratio().Validate(); err != nil {
		panic(fmt.Errorf("%w: %v", timing.ErrInvalidScale, err))
	}

	return &Monotonic[T, S]{
		start:   now(),
		now:     now,
		factors: scale.Reduce(scale.Nanos, s.Ratio()),
	}
}

// Now implements Clock.
func (m *Monotonic[T, S]) Now() timing.Instant[T, S] {
	elapsed := m.now().Sub(m.start)
	if elapsed < 0 {
		elapsed = 0
	}

	return timing.NewInstant[S](T(nanosToTicks(uint64(elapsed), m.factors)))
}

// nanosToTicks rescales with a 128-bit intermediate and keeps the low 64
// bits of the quotient, so the result wraps instead of failing.
func nanosToTicks(ns uint64, f scale.Factors) uint64 {
	if f.SameBase {
		return ns
	}

	hi, lo := bits.Mul64(ns, f.Left)
	rem := hi % f.Right
	q, _ := bits.Div64(rem, lo, f.Right)

	return q
}
