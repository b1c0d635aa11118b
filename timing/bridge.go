package timing

import (
	"fmt"
	"math"
)

// Mixing widths: a 32-bit value always widens losslessly to 64 bits, while
// narrowing is fallible. Operators are only provided in the "wide op narrow"
// direction; narrow op wide must narrow explicitly first.

// WidenDuration promotes a 32-bit duration to 64 bits.
func WidenDuration[S Scale](d Duration[uint32, S]) Duration[uint64, S] {
	return Duration[uint64, S]{ticks: uint64(d.ticks)}
}

// NarrowDuration demotes a 64-bit duration to 32 bits. It returns
// ErrNarrowing if the tick count does not fit.
func NarrowDuration[S Scale](d Duration[uint64, S]) (Duration[uint32, S], error) {
	if d.ticks > math.MaxUint32 {
		return Duration[uint32, S]{}, fmt.Errorf("%w: %v", ErrNarrowing, d)
	}

	return Duration[uint32, S]{ticks: uint32(d.ticks)}, nil
}

// WidenRate promotes a 32-bit rate to 64 bits.
func WidenRate[S Scale](r Rate[uint32, S]) Rate[uint64, S] {
	return Rate[uint64, S]{raw: uint64(r.raw)}
}

// NarrowRate demotes a 64-bit rate to 32 bits. It returns ErrNarrowing if the
// raw count does not fit.
func NarrowRate[S Scale](r Rate[uint64, S]) (Rate[uint32, S], error) {
	if r.raw > math.MaxUint32 {
		return Rate[uint32, S]{}, fmt.Errorf("%w: %v", ErrNarrowing, r)
	}

	return Rate[uint32, S]{raw: uint32(r.raw)}, nil
}

// AddNarrowDuration adds a 32-bit duration to a 64-bit one of the same
// scale. It panics on overflow.
func AddNarrowDuration[S Scale](a Duration[uint64, S], b Duration[uint32, S]) Duration[uint64, S] {
	return a.Add(WidenDuration(b))
}

// SubNarrowDuration subtracts a 32-bit duration from a 64-bit one of the
// same scale. It panics on underflow.
func SubNarrowDuration[S Scale](a Duration[uint64, S], b Duration[uint32, S]) Duration[uint64, S] {
	return a.Sub(WidenDuration(b))
}

// AddNarrowRate adds a 32-bit rate to a 64-bit one of the same scale.
func AddNarrowRate[S Scale](a Rate[uint64, S], b Rate[uint32, S]) Rate[uint64, S] {
	return a.Add(WidenRate(b))
}

// SubNarrowRate subtracts a 32-bit rate from a 64-bit one of the same scale.
func SubNarrowRate[S Scale](a Rate[uint64, S], b Rate[uint32, S]) Rate[uint64, S] {
	return a.Sub(WidenRate(b))
}

// AddNarrowToInstant moves a 64-bit instant forward by a 32-bit duration.
func AddNarrowToInstant[S Scale](i Instant[uint64, S], d Duration[uint32, S]) Instant[uint64, S] {
	return i.Add(WidenDuration(d))
}

// SubNarrowFromInstant moves a 64-bit instant backward by a 32-bit duration.
func SubNarrowFromInstant[S Scale](i Instant[uint64, S], d Duration[uint32, S]) Instant[uint64, S] {
	return i.Sub(WidenDuration(d))
}

// CompareMixedDurations orders a 64-bit duration against a 32-bit one of any
// scale. Widening is lossless, so this has the same semantics as
// CompareDurations on two 64-bit values.
func CompareMixedDurations[L, R Scale](a Duration[uint64, L], b Duration[uint32, R]) (int, bool) {
	return CompareDurations(a, WidenDuration(b))
}

// EqualMixedDurations reports whether a 64-bit and a 32-bit duration
// describe the same amount of time.
func EqualMixedDurations[L, R Scale](a Duration[uint64, L], b Duration[uint32, R]) bool {
	return EqualDurations(a, WidenDuration(b))
}

// CompareMixedRates orders a 64-bit rate against a 32-bit one of any scale.
func CompareMixedRates[L, R Scale](a Rate[uint64, L], b Rate[uint32, R]) (int, bool) {
	return CompareRates(a, WidenRate(b))
}

// EqualMixedRates reports whether a 64-bit and a 32-bit rate are the same
// frequency.
func EqualMixedRates[L, R Scale](a Rate[uint64, L], b Rate[uint32, R]) bool {
	return EqualRates(a, WidenRate(b))
}
