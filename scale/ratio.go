// Package scale implements rational time bases and the arithmetic needed to
// move tick counts between them without materialising overflow-prone cross
// products.
package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRatio indicates a ratio with a zero numerator or denominator.
	ErrInvalidRatio = errors.New("scale: numerator and denominator must be greater than zero")

	// ErrBaseOverflow indicates that the common base of the registered ratios
	// cannot be represented with a 32-bit denominator.
	ErrBaseOverflow = errors.New("scale: common base overflow")

	// ErrNoScales indicates that a registry has no ratios registered yet.
	ErrNoScales = errors.New("scale: no scales registered")
)

// Ratio is a rational scale factor. For durations and instants it is the
// number of seconds per tick, for rates the number of hertz per raw unit.
type Ratio struct {
	Num uint32
	Den uint32
}

// Well-known ratios.
var (
	Nanos     = Ratio{Num: 1, Den: 1_000_000_000}
	Micros    = Ratio{Num: 1, Den: 1_000_000}
	Millis    = Ratio{Num: 1, Den: 1_000}
	Secs      = Ratio{Num: 1, Den: 1}
	Minutes   = Ratio{Num: 60, Den: 1}
	Hours     = Ratio{Num: 3_600, Den: 1}
	Hertz     = Ratio{Num: 1, Den: 1}
	Kilohertz = Ratio{Num: 1_000, Den: 1}
	Megahertz = Ratio{Num: 1_000_000, Den: 1}
	Gigahertz = Ratio{Num: 1_000_000_000, Den: 1}
)

// New builds a validated ratio.
func New(num, den uint32) (Ratio, error) {
	r := Ratio{Num: num, Den: den}
	if err := r.Validate(); err != nil {
		return Ratio{}, err
	}

	return r, nil
}

// MustNew is like New but panics on an invalid ratio.
func MustNew(num, den uint32) Ratio {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// Valid reports whether both terms are positive.
func (r Ratio) Valid() bool {
	return r.Num > 0 && r.Den > 0
}

// Validate returns ErrInvalidRatio if the ratio is not valid.
func (r Ratio) Validate() error {
	if !r.Valid() {
		return fmt.Errorf("%w: got %d/%d", ErrInvalidRatio, r.Num, r.Den)
	}

	return nil
}

// Reduced returns the ratio in lowest terms. Invalid ratios are returned
// unchanged.
func (r Ratio) Reduced() Ratio {
	if !r.Valid() {
		return r
	}

	g := uint32(gcd(uint64(r.Num), uint64(r.Den)))

	return Ratio{Num: r.Num / g, Den: r.Den / g}
}

// Reciprocal swaps numerator and denominator.
func (r Ratio) Reciprocal() Ratio {
	return Ratio{Num: r.Den, Den: r.Num}
}

// SameBase reports whether r and o describe the same scale, possibly written
// with different terms.
func (r Ratio) SameBase(o Ratio) bool {
	return Reduce(r, o).SameBase
}

func (r Ratio) String() string {
	return strconv.FormatUint(uint64(r.Num), 10) + "/" +
		strconv.FormatUint(uint64(r.Den), 10)
}

var durationSymbols = []struct {
	ratio  Ratio
	symbol string
}{
	{Hours, "h"},
	{Minutes, "min"},
	{Secs, "s"},
	{Millis, "ms"},
	{Micros, "us"},
	{Nanos, "ns"},
}

var rateSymbols = []struct {
	ratio  Ratio
	symbol string
}{
	{Hertz, "Hz"},
	{Kilohertz, "kHz"},
	{Megahertz, "MHz"},
	{Gigahertz, "GHz"},
}

// DurationSymbol returns the unit symbol for a duration scale. Only exact
// terms match: 2/2000 is not reported as "ms".
func DurationSymbol(r Ratio) (string, bool) {
	for _, s := range durationSymbols {
		if s.ratio == r {
			return s.symbol, true
		}
	}

	return "", false
}

// RateSymbol returns the unit symbol for a rate scale.
func RateSymbol(r Ratio) (string, bool) {
	for _, s := range rateSymbols {
		if s.ratio == r {
			return s.symbol, true
		}
	}

	return "", false
}

// Parse reads a ratio written as "num/den", as a plain integer "num"
// (denominator 1), or as a unit symbol such as "ms", "us", "min" or "kHz".
func Parse(s string) (Ratio, error) {
	s = strings.TrimSpace(s)

	for _, table := range [][]struct {
		ratio  Ratio
		symbol string
	}{durationSymbols, rateSymbols} {
		for _, e := range table {
			if e.symbol == s {
				return e.ratio, nil
			}
		}
	}

	numStr, denStr, hasDen := strings.Cut(s, "/")
	if !hasDen {
		denStr = "1"
	}

	num, err := strconv.ParseUint(strings.TrimSpace(numStr), 10, 32)
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: cannot parse %q: %v", ErrInvalidRatio, s, err)
	}

	den, err := strconv.ParseUint(strings.TrimSpace(denStr), 10, 32)
	if err != nil {
		return Ratio{}, fmt.Errorf("%w: cannot parse %q: %v", ErrInvalidRatio, s, err)
	}

	return New(uint32(num), uint32(den))
}
