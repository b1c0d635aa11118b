package timing

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
)

// Ticks is the set of backing integers.
type Ticks interface {
	uint32 | uint64
}

// Scale is implemented by zero-size marker types that name a ratio.
type Scale interface {
	Ratio() scale.Ratio
}

// Nanos is one nanosecond per tick.
type Nanos struct{}

// Ratio implements Scale.
func (Nanos) Ratio() scale.Ratio { return scale.Nanos }

// Micros is one microsecond per tick.
type Micros struct{}

// Ratio implements Scale.
func (Micros) Ratio() scale.Ratio { return scale.Micros }

// Millis is one millisecond per tick.
type Millis struct{}

// Ratio implements Scale.
func (Millis) Ratio() scale.Ratio { return scale.Millis }

// Secs is one second per tick.
type Secs struct{}

// Ratio implements Scale.
func (Secs) Ratio() scale.Ratio { return scale.Secs }

// Minutes is one minute per tick.
type Minutes struct{}

// Ratio implements Scale.
func (Minutes) Ratio() scale.Ratio { return scale.Minutes }

// Hours is one hour per tick.
type Hours struct{}

// Ratio implements Scale.
func (Hours) Ratio() scale.Ratio { return scale.Hours }

// Hertz is one hertz per raw unit.
type Hertz struct{}

// Ratio implements Scale.
func (Hertz) Ratio() scale.Ratio { return scale.Hertz }

// Kilohertz is one kilohertz per raw unit.
type Kilohertz struct{}

// Ratio implements Scale.
func (Kilohertz) Ratio() scale.Ratio { return scale.Kilohertz }

// Megahertz is one megahertz per raw unit.
type Megahertz struct{}

// Ratio implements Scale.
func (Megahertz) Ratio() scale.Ratio { return scale.Megahertz }

// Gigahertz is one gigahertz per raw unit.
type Gigahertz struct{}

// Ratio implements Scale.
func (Gigahertz) Ratio() scale.Ratio { return scale.Gigahertz }

func ratioOf[S Scale]() scale.Ratio {
	var s S
	return s.Ratio()
}

// mustScale panics if S names an invalid ratio. Such a scale is a
// programming error, not a runtime condition.
func mustScale[S Scale]() {
	r := ratioOf[S]()
	if !r.Valid() {
		panic(fmt.Errorf("%w: %T is %d/%d", ErrInvalidScale, *new(S), r.Num, r.Den))
	}
}

func factors[L, R Scale]() scale.Factors {
	return scale.Reduce(ratioOf[L](), ratioOf[R]())
}

func limitOf[T Ticks]() uint64 {
	return uint64(^T(0))
}

func checkedAdd[T Ticks](a, b T) (T, bool) {
	s := a + b
	if s < a {
		return 0, false
	}

	return s, true
}

func checkedSub[T Ticks](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}

	return a - b, true
}

func checkedMul[T Ticks](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
