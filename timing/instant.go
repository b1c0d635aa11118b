package timing

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
)

// Instant is a position on a wrapping time axis, typically a hardware
// counter value. The axis has a period of max(T)+1 ticks.
type Instant[T Ticks, S Scale] struct {
	ticks T
}

// NewInstant creates an Instant from a counter value. It panics if S names
// an invalid ratio.
func NewInstant[S Scale, T Ticks](ticks T) Instant[T, S] {
	mustScale[S]()

	return Instant[T, S]{ticks: ticks}
}

// Ticks returns the raw counter value.
func (i Instant[T, S]) Ticks() T {
	return i.ticks
}

// Scale returns the ratio of S.
func (i Instant[T, S]) Scale() scale.Ratio {
	return ratioOf[S]()
}

// CompareTicks orders two counter values on a wrapping axis. It assumes the
// true distance between them is less than half the counter range and picks
// whichever of "a is ahead" or "a is behind" satisfies that. At exactly half
// the range the order is indeterminate and 0 is returned.
//
// The relation is not transitive once the compared values spread over more
// than half the range, so it must not be used to sort.
func CompareTicks[T Ticks](a, b T) int {
	if a == b {
		return 0
	}

	half := ^T(0) / 2
	d := a - b

	switch {
	case d > half:
		return -1
	case d < half:
		return 1
	default:
		return 0
	}
}

// ElapsedTicks returns now - earlier on a wrapping axis, or false if earlier
// is in fact after now under CompareTicks.
func ElapsedTicks[T Ticks](now, earlier T) (T, bool) {
	if CompareTicks(now, earlier) < 0 {
		return 0, false
	}

	return now - earlier, true
}

// Compare orders two instants with CompareTicks. It is not a total order;
// see CompareTicks.
func (i Instant[T, S]) Compare(o Instant[T, S]) int {
	return CompareTicks(i.ticks, o.ticks)
}

// Equal reports whether both instants hold the same counter value.
func (i Instant[T, S]) Equal(o Instant[T, S]) bool {
	return i.ticks == o.ticks
}

// After reports whether i is later than o.
func (i Instant[T, S]) After(o Instant[T, S]) bool {
	return i.Compare(o) > 0
}

// Before reports whether i is earlier than o.
func (i Instant[T, S]) Before(o Instant[T, S]) bool {
	return i.Compare(o) < 0
}

// DurationSinceEpoch reinterprets the counter as the time since it started
// at zero. It is only meaningful while the counter has not wrapped.
func (i Instant[T, S]) DurationSinceEpoch() Duration[T, S] {
	return Duration[T, S]{ticks: i.ticks}
}

// CheckedDurationSince returns the time from o to i, or false if o is later
// than i.
func (i Instant[T, S]) CheckedDurationSince(o Instant[T, S]) (Duration[T, S], bool) {
	ticks, ok := ElapsedTicks(i.ticks, o.ticks)
	return Duration[T, S]{ticks: ticks}, ok
}

// DurationSince is CheckedDurationSince that panics if o is later than i.
func (i Instant[T, S]) DurationSince(o Instant[T, S]) Duration[T, S] {
	d, ok := i.CheckedDurationSince(o)
	if !ok {
		panic(fmt.Errorf("%w: %v since %v", ErrInstantOrder, i, o))
	}

	return d
}

// Add moves the instant forward, wrapping around the counter range.
func (i Instant[T, S]) Add(d Duration[T, S]) Instant[T, S] {
	return Instant[T, S]{ticks: i.ticks + d.ticks}
}

// Sub moves the instant backward, wrapping around the counter range.
func (i Instant[T, S]) Sub(d Duration[T, S]) Instant[T, S] {
	return Instant[T, S]{ticks: i.ticks - d.ticks}
}

// CheckedAddToInstant moves i forward by d given in another scale. Only the
// rescaling can fail; the addition itself wraps.
func CheckedAddToInstant[T Ticks, S, D Scale](i Instant[T, S], d Duration[T, D]) (Instant[T, S], bool) {
	ticks, ok := factors[S, D]().RightIntoLeft(uint64(d.ticks), limitOf[T]())
	if !ok {
		return Instant[T, S]{}, false
	}

	return Instant[T, S]{ticks: i.ticks + T(ticks)}, true
}

// CheckedSubFromInstant moves i backward by d given in another scale.
func CheckedSubFromInstant[T Ticks, S, D Scale](i Instant[T, S], d Duration[T, D]) (Instant[T, S], bool) {
	ticks, ok := factors[S, D]().RightIntoLeft(uint64(d.ticks), limitOf[T]())
	if !ok {
		return Instant[T, S]{}, false
	}

	return Instant[T, S]{ticks: i.ticks - T(ticks)}, true
}
