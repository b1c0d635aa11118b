package scale

import (
	"math/bits"
)

// Factors are the reduced cross-multiplication factors between a left and a
// right ratio.
//
//	lhs_ticks * Ln / Ld  {cmp}  rhs_ticks * Rn / Rd
//
// is rewritten as
//
//	lhs_ticks * Left  {cmp}  rhs_ticks * Right
//
// where Left = Rd*Ln/g, Right = Ld*Rn/g and g = gcd(Ld*Rn, Rd*Ln). Dividing
// by g keeps the factors as small as possible so a single multiply suffices.
type Factors struct {
	// Left is Rd*Ln reduced. It scales left-hand ticks into the common unit.
	Left uint64

	// Right is Ld*Rn reduced. It scales right-hand ticks into the common unit.
	Right uint64

	// RecipNum and RecipDen are Rd*Ld and Ln*Rn reduced by their gcd. They
	// relate a value in one ratio to its reciprocal in the other.
	RecipNum uint64
	RecipDen uint64

	// SameBase is set when both ratios describe the same scale.
	SameBase bool
}

// Reduce computes the factors between l and r. It never panics; if either
// ratio is invalid the zero Factors is returned and every kernel on it fails.
func Reduce(l, r Ratio) Factors {
	if !l.Valid() || !r.Valid() {
		return Factors{}
	}

	ln, ld := uint64(l.Num), uint64(l.Den)
	rn, rd := uint64(r.Num), uint64(r.Den)

	divisor := gcd(ld*rn, rd*ln)
	divisor2 := gcd(ln*rn, rd*ld)

	f := Factors{
		Left:     (rd * ln) / divisor,
		Right:    (ld * rn) / divisor,
		RecipNum: (rd * ld) / divisor2,
		RecipDen: (ln * rn) / divisor2,
	}
	f.SameBase = f.Left == f.Right

	return f
}

func (f Factors) valid() bool {
	return f.Left != 0 && f.Right != 0 && f.RecipDen != 0
}

// ReciprocalNumerator is the value that, divided by a raw count in one ratio,
// yields the reciprocal count in the other.
func (f Factors) ReciprocalNumerator() uint64 {
	if !f.valid() {
		return 0
	}

	return f.RecipNum / f.RecipDen
}

// RightIntoLeft rescales a right-hand count into the left-hand ratio. The
// multiply must stay within limit, the maximum of the backing integer.
func (f Factors) RightIntoLeft(v, limit uint64) (uint64, bool) {
	if !f.valid() {
		return 0, false
	}

	if f.SameBase {
		return v, v <= limit
	}

	p, ok := mulWithin(v, f.Right, limit)
	if !ok {
		return 0, false
	}

	return p / f.Left, true
}

// LeftIntoRight rescales a left-hand count into the right-hand ratio. The
// multiply is done in 64 bits before dividing, and the truncated quotient
// must not exceed limit.
func (f Factors) LeftIntoRight(v, limit uint64) (uint64, bool) {
	return f.leftIntoRight(v, limit, false)
}

// LeftIntoRightCeil is LeftIntoRight with the division rounded up.
func (f Factors) LeftIntoRightCeil(v, limit uint64) (uint64, bool) {
	return f.leftIntoRight(v, limit, true)
}

func (f Factors) leftIntoRight(v, limit uint64, ceil bool) (uint64, bool) {
	if !f.valid() {
		return 0, false
	}

	if f.SameBase {
		return v, v <= limit
	}

	p, ok := mulWithin(v, f.Left, maxUint64)
	if !ok {
		return 0, false
	}

	q := p / f.Right
	if ceil && p%f.Right != 0 {
		q++
	}

	if q > limit {
		return 0, false
	}

	return q, true
}

// Compare orders a left-hand count against a right-hand count. It returns
// -1, 0 or +1 and true, or false when scaling either side overflows limit.
func (f Factors) Compare(l, r, limit uint64) (int, bool) {
	if !f.valid() {
		return 0, false
	}

	if !f.SameBase {
		var okL, okR bool

		l, okL = mulWithin(l, f.Left, limit)
		r, okR = mulWithin(r, f.Right, limit)

		if !okL || !okR {
			return 0, false
		}
	}

	switch {
	case l < r:
		return -1, true
	case l > r:
		return 1, true
	default:
		return 0, true
	}
}

// Reciprocal converts a count into its reciprocal in the other ratio, for
// example a rate into the period it describes. Zero has no reciprocal.
func (f Factors) Reciprocal(v, limit uint64) (uint64, bool) {
	if !f.valid() || v == 0 {
		return 0, false
	}

	q := f.ReciprocalNumerator() / v
	if q > limit {
		return 0, false
	}

	return q, true
}

const maxUint64 = ^uint64(0)

func mulWithin(a, b, limit uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 || lo > limit {
		return 0, false
	}

	return lo, true
}

// gcd is the binary GCD. gcd(0, x) == x.
func gcd(a, b uint64) uint64 {
	if a == 0 {
		return b
	}

	if b == 0 {
		return a
	}

	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)

	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}

	return a << shift
}

func lcm(a, b uint64) (uint64, bool) {
	g := gcd(a, b)
	if g == 0 {
		return 0, false
	}

	return mulWithin(a/g, b, maxUint64)
}
