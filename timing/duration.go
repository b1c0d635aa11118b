package timing

import (
	"cmp"
	"fmt"

	"github.com/sarchlab/ticktime/scale"
)

// Duration is an elapsed amount of time: ticks * S.Num / S.Den seconds.
type Duration[T Ticks, S Scale] struct {
	ticks T
}

// NewDuration creates a Duration from a tick count. It panics if S names an
// invalid ratio.
//
//	d := timing.NewDuration[timing.Millis](uint32(234))
func NewDuration[S Scale, T Ticks](ticks T) Duration[T, S] {
	mustScale[S]()

	return Duration[T, S]{ticks: ticks}
}

// Ticks returns the raw tick count.
func (d Duration[T, S]) Ticks() T {
	return d.ticks
}

// Scale returns the ratio of S.
func (d Duration[T, S]) Scale() scale.Ratio {
	return ratioOf[S]()
}

// IsZero reports whether the duration has no ticks.
func (d Duration[T, S]) IsZero() bool {
	return d.ticks == 0
}

// CheckedAdd adds two durations of the same scale.
func (d Duration[T, S]) CheckedAdd(o Duration[T, S]) (Duration[T, S], bool) {
	ticks, ok := checkedAdd(d.ticks, o.ticks)
	return Duration[T, S]{ticks: ticks}, ok
}

// Add is CheckedAdd that panics on overflow.
func (d Duration[T, S]) Add(o Duration[T, S]) Duration[T, S] {
	v, ok := d.CheckedAdd(o)
	if !ok {
		panic(fmt.Errorf("%w: %v + %v", ErrOverflow, d, o))
	}

	return v
}

// CheckedSub subtracts two durations of the same scale.
func (d Duration[T, S]) CheckedSub(o Duration[T, S]) (Duration[T, S], bool) {
	ticks, ok := checkedSub(d.ticks, o.ticks)
	return Duration[T, S]{ticks: ticks}, ok
}

// Sub is CheckedSub that panics on underflow.
func (d Duration[T, S]) Sub(o Duration[T, S]) Duration[T, S] {
	v, ok := d.CheckedSub(o)
	if !ok {
		panic(fmt.Errorf("%w: %v - %v", ErrOverflow, d, o))
	}

	return v
}

// CheckedMul multiplies the duration by an integer.
func (d Duration[T, S]) CheckedMul(k T) (Duration[T, S], bool) {
	ticks, ok := checkedMul(d.ticks, k)
	return Duration[T, S]{ticks: ticks}, ok
}

// Mul is CheckedMul that panics on overflow.
func (d Duration[T, S]) Mul(k T) Duration[T, S] {
	v, ok := d.CheckedMul(k)
	if !ok {
		panic(fmt.Errorf("%w: %v * %d", ErrOverflow, d, k))
	}

	return v
}

// CheckedDiv divides the duration by an integer, truncating.
func (d Duration[T, S]) CheckedDiv(k T) (Duration[T, S], bool) {
	if k == 0 {
		return Duration[T, S]{}, false
	}

	return Duration[T, S]{ticks: d.ticks / k}, true
}

// Div is CheckedDiv that panics on a zero divisor.
func (d Duration[T, S]) Div(k T) Duration[T, S] {
	v, ok := d.CheckedDiv(k)
	if !ok {
		panic(fmt.Errorf("%w: %v / 0", ErrDivideByZero, d))
	}

	return v
}

// Compare returns -1, 0 or +1 as d is shorter than, equal to or longer than
// o.
func (d Duration[T, S]) Compare(o Duration[T, S]) int {
	return cmp.Compare(d.ticks, o.ticks)
}

// Equal reports whether both durations have the same tick count.
func (d Duration[T, S]) Equal(o Duration[T, S]) bool {
	return d.ticks == o.ticks
}

// Less reports whether d is shorter than o.
func (d Duration[T, S]) Less(o Duration[T, S]) bool {
	return d.ticks < o.ticks
}

// Greater reports whether d is longer than o.
func (d Duration[T, S]) Greater(o Duration[T, S]) bool {
	return d.ticks > o.ticks
}

// CheckedAddDuration adds b, rescaled into a's scale, to a. It fails if the
// rescaling multiply or the addition overflows T.
func CheckedAddDuration[T Ticks, L, R Scale](
	a Duration[T, L],
	b Duration[T, R],
) (Duration[T, L], bool) {
	ticks, ok := factors[L, R]().RightIntoLeft(uint64(b.ticks), limitOf[T]())
	if !ok {
		return Duration[T, L]{}, false
	}

	return a.CheckedAdd(Duration[T, L]{ticks: T(ticks)})
}

// CheckedSubDuration subtracts b, rescaled into a's scale, from a.
func CheckedSubDuration[T Ticks, L, R Scale](
	a Duration[T, L],
	b Duration[T, R],
) (Duration[T, L], bool) {
	ticks, ok := factors[L, R]().RightIntoLeft(uint64(b.ticks), limitOf[T]())
	if !ok {
		return Duration[T, L]{}, false
	}

	return a.CheckedSub(Duration[T, L]{ticks: T(ticks)})
}

// CheckedConvertDuration rescales d into the To scale. The multiply is done
// in 64 bits and the truncated result must fit T.
//
//	ms := timing.NewDuration[timing.Millis](uint32(1500))
//	s, ok := timing.CheckedConvertDuration[timing.Secs](ms) // 1, true
func CheckedConvertDuration[To Scale, T Ticks, From Scale](
	d Duration[T, From],
) (Duration[T, To], bool) {
	mustScale[To]()

	ticks, ok := factors[From, To]().LeftIntoRight(uint64(d.ticks), limitOf[T]())
	if !ok {
		return Duration[T, To]{}, false
	}

	return Duration[T, To]{ticks: T(ticks)}, true
}

// ConvertDuration is CheckedConvertDuration that panics when the result
// does not fit.
func ConvertDuration[To Scale, T Ticks, From Scale](d Duration[T, From]) Duration[T, To] {
	v, ok := CheckedConvertDuration[To](d)
	if !ok {
		panic(fmt.Errorf("%w: %v into %v", ErrConversion, d, ratioOf[To]()))
	}

	return v
}

// CompareDurations orders durations of different scales. The second result
// is false when the comparison is undefined because scaling either side into
// the common unit overflows T.
func CompareDurations[T Ticks, L, R Scale](a Duration[T, L], b Duration[T, R]) (int, bool) {
	return factors[L, R]().Compare(uint64(a.ticks), uint64(b.ticks), limitOf[T]())
}

// EqualDurations reports whether two durations of possibly different scales
// describe the same amount of time. Incomparable durations are not equal.
func EqualDurations[T Ticks, L, R Scale](a Duration[T, L], b Duration[T, R]) bool {
	c, ok := CompareDurations(a, b)
	return ok && c == 0
}

// CheckedDivDurations returns how many times b fits in a. b is converted
// into a's scale first, and the quotient truncates.
func CheckedDivDurations[T Ticks, L, R Scale](a Duration[T, L], b Duration[T, R]) (T, bool) {
	conv, ok := CheckedConvertDuration[L](b)
	if !ok || conv.ticks == 0 {
		return 0, false
	}

	return a.ticks / conv.ticks, true
}

// DivDurations is CheckedDivDurations that panics on failure.
func DivDurations[T Ticks, L, R Scale](a Duration[T, L], b Duration[T, R]) T {
	conv := ConvertDuration[L](b)
	if conv.ticks == 0 {
		panic(fmt.Errorf("%w: %v / %v", ErrDivideByZero, a, b))
	}

	return a.ticks / conv.ticks
}
