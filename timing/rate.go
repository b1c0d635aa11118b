package timing

import (
	"cmp"
	"fmt"

	"github.com/sarchlab/ticktime/scale"
)

// Rate is a frequency: raw * S.Num / S.Den hertz. It is the reciprocal of a
// Duration.
type Rate[T Ticks, S Scale] struct {
	raw T
}

// NewRate creates a Rate from a raw count. It panics if S names an invalid
// ratio.
func NewRate[S Scale, T Ticks](raw T) Rate[T, S] {
	mustScale[S]()

	return Rate[T, S]{raw: raw}
}

// Raw returns the raw count.
func (r Rate[T, S]) Raw() T {
	return r.raw
}

// Scale returns the ratio of S.
func (r Rate[T, S]) Scale() scale.Ratio {
	return ratioOf[S]()
}

// IsZero reports whether the rate is zero.
func (r Rate[T, S]) IsZero() bool {
	return r.raw == 0
}

// CheckedAdd adds two rates of the same scale.
func (r Rate[T, S]) CheckedAdd(o Rate[T, S]) (Rate[T, S], bool) {
	raw, ok := checkedAdd(r.raw, o.raw)
	return Rate[T, S]{raw: raw}, ok
}

// Add is CheckedAdd that panics on overflow.
func (r Rate[T, S]) Add(o Rate[T, S]) Rate[T, S] {
	v, ok := r.CheckedAdd(o)
	if !ok {
		panic(fmt.Errorf("%w: %v + %v", ErrOverflow, r, o))
	}

	return v
}

// CheckedSub subtracts two rates of the same scale.
func (r Rate[T, S]) CheckedSub(o Rate[T, S]) (Rate[T, S], bool) {
	raw, ok := checkedSub(r.raw, o.raw)
	return Rate[T, S]{raw: raw}, ok
}

// Sub is CheckedSub that panics on underflow.
func (r Rate[T, S]) Sub(o Rate[T, S]) Rate[T, S] {
	v, ok := r.CheckedSub(o)
	if !ok {
		panic(fmt.Errorf("%w: %v - %v", ErrOverflow, r, o))
	}

	return v
}

// CheckedMul multiplies the rate by an integer.
func (r Rate[T, S]) CheckedMul(k T) (Rate[T, S], bool) {
	raw, ok := checkedMul(r.raw, k)
	return Rate[T, S]{raw: raw}, ok
}

// Mul is CheckedMul that panics on overflow.
func (r Rate[T, S]) Mul(k T) Rate[T, S] {
	v, ok := r.CheckedMul(k)
	if !ok {
		panic(fmt.Errorf("%w: %v * %d", ErrOverflow, r, k))
	}

	return v
}

// CheckedDiv divides the rate by an integer, truncating.
func (r Rate[T, S]) CheckedDiv(k T) (Rate[T, S], bool) {
	if k == 0 {
		return Rate[T, S]{}, false
	}

	return Rate[T, S]{raw: r.raw / k}, true
}

// Div is CheckedDiv that panics on a zero divisor.
func (r Rate[T, S]) Div(k T) Rate[T, S] {
	v, ok := r.CheckedDiv(k)
	if !ok {
		panic(fmt.Errorf("%w: %v / 0", ErrDivideByZero, r))
	}

	return v
}

// Compare returns -1, 0 or +1 as r is lower than, equal to or higher than o.
func (r Rate[T, S]) Compare(o Rate[T, S]) int {
	return cmp.Compare(r.raw, o.raw)
}

// Equal reports whether both rates have the same raw count.
func (r Rate[T, S]) Equal(o Rate[T, S]) bool {
	return r.raw == o.raw
}

// Less reports whether r is lower than o.
func (r Rate[T, S]) Less(o Rate[T, S]) bool {
	return r.raw < o.raw
}

// Greater reports whether r is higher than o.
func (r Rate[T, S]) Greater(o Rate[T, S]) bool {
	return r.raw > o.raw
}

// CheckedAddRate adds b, rescaled into a's scale, to a.
func CheckedAddRate[T Ticks, L, R Scale](a Rate[T, L], b Rate[T, R]) (Rate[T, L], bool) {
	raw, ok := factors[L, R]().RightIntoLeft(uint64(b.raw), limitOf[T]())
	if !ok {
		return Rate[T, L]{}, false
	}

	return a.CheckedAdd(Rate[T, L]{raw: T(raw)})
}

// CheckedSubRate subtracts b, rescaled into a's scale, from a.
func CheckedSubRate[T Ticks, L, R Scale](a Rate[T, L], b Rate[T, R]) (Rate[T, L], bool) {
	raw, ok := factors[L, R]().RightIntoLeft(uint64(b.raw), limitOf[T]())
	if !ok {
		return Rate[T, L]{}, false
	}

	return a.CheckedSub(Rate[T, L]{raw: T(raw)})
}

// CheckedConvertRate rescales r into the To scale.
func CheckedConvertRate[To Scale, T Ticks, From Scale](r Rate[T, From]) (Rate[T, To], bool) {
	mustScale[To]()

	raw, ok := factors[From, To]().LeftIntoRight(uint64(r.raw), limitOf[T]())
	if !ok {
		return Rate[T, To]{}, false
	}

	return Rate[T, To]{raw: T(raw)}, true
}

// ConvertRate is CheckedConvertRate that panics when the result does not
// fit.
func ConvertRate[To Scale, T Ticks, From Scale](r Rate[T, From]) Rate[T, To] {
	v, ok := CheckedConvertRate[To](r)
	if !ok {
		panic(fmt.Errorf("%w: %v into %v", ErrConversion, r, ratioOf[To]()))
	}

	return v
}

// CompareRates orders rates of different scales. The second result is false
// when scaling either side overflows T.
func CompareRates[T Ticks, L, R Scale](a Rate[T, L], b Rate[T, R]) (int, bool) {
	return factors[L, R]().Compare(uint64(a.raw), uint64(b.raw), limitOf[T]())
}

// EqualRates reports whether two rates of possibly different scales are the
// same frequency. Incomparable rates are not equal.
func EqualRates[T Ticks, L, R Scale](a Rate[T, L], b Rate[T, R]) bool {
	c, ok := CompareRates(a, b)
	return ok && c == 0
}

// CheckedDivRates returns how many times b fits in a, converting b into a's
// scale first.
func CheckedDivRates[T Ticks, L, R Scale](a Rate[T, L], b Rate[T, R]) (T, bool) {
	conv, ok := CheckedConvertRate[L](b)
	if !ok || conv.raw == 0 {
		return 0, false
	}

	return a.raw / conv.raw, true
}

// DivRates is CheckedDivRates that panics on failure.
func DivRates[T Ticks, L, R Scale](a Rate[T, L], b Rate[T, R]) T {
	conv := ConvertRate[L](b)
	if conv.raw == 0 {
		panic(fmt.Errorf("%w: %v / %v", ErrDivideByZero, a, b))
	}

	return a.raw / conv.raw
}

// CheckedRateToDuration returns the period of r in the To scale. A zero
// rate has no period.
//
//	khz := timing.NewRate[timing.Kilohertz](uint32(1))
//	p, ok := timing.CheckedRateToDuration[timing.Micros](khz) // 1000 us, true
func CheckedRateToDuration[To Scale, T Ticks, From Scale](r Rate[T, From]) (Duration[T, To], bool) {
	mustScale[To]()

	ticks, ok := factors[From, To]().Reciprocal(uint64(r.raw), limitOf[T]())
	if !ok {
		return Duration[T, To]{}, false
	}

	return Duration[T, To]{ticks: T(ticks)}, true
}

// RateToDuration is CheckedRateToDuration that panics on a zero rate or an
// out-of-range period.
func RateToDuration[To Scale, T Ticks, From Scale](r Rate[T, From]) Duration[T, To] {
	d, ok := CheckedRateToDuration[To](r)
	if !ok {
		panic(reciprocalError(uint64(r.raw), r))
	}

	return d
}

// CheckedDurationToRate returns the frequency whose period is d, in the To
// scale. A zero duration has no frequency.
func CheckedDurationToRate[To Scale, T Ticks, From Scale](d Duration[T, From]) (Rate[T, To], bool) {
	mustScale[To]()

	raw, ok := factors[From, To]().Reciprocal(uint64(d.ticks), limitOf[T]())
	if !ok {
		return Rate[T, To]{}, false
	}

	return Rate[T, To]{raw: T(raw)}, true
}

// DurationToRate is CheckedDurationToRate that panics on a zero duration or
// an out-of-range frequency.
func DurationToRate[To Scale, T Ticks, From Scale](d Duration[T, From]) Rate[T, To] {
	r, ok := CheckedDurationToRate[To](d)
	if !ok {
		panic(reciprocalError(uint64(d.ticks), d))
	}

	return r
}

func reciprocalError(v uint64, src fmt.Stringer) error {
	if v == 0 {
		return fmt.Errorf("%w: reciprocal of %v", ErrDivideByZero, src)
	}

	return fmt.Errorf("%w: reciprocal of %v", ErrConversion, src)
}
