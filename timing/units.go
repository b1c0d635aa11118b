package timing

import (
	"fmt"

	"github.com/sarchlab/ticktime/scale"
)

// FromUnits creates a Duration in scale S from val counted in unit. The
// result truncates towards zero; it fails if it does not fit T.
//
//	timing.FromUnits[timing.Millis](uint32(1500), scale.Micros) // 1 ms
func FromUnits[S Scale, T Ticks](val T, unit scale.Ratio) (Duration[T, S], bool) {
	mustScale[S]()

	ticks, ok := scale.Reduce(unit, ratioOf[S]()).LeftIntoRight(uint64(val), limitOf[T]())
	if !ok {
		return Duration[T, S]{}, false
	}

	return Duration[T, S]{ticks: T(ticks)}, true
}

// FromUnitsCeil is FromUnits rounding up, so the result covers at least val
// units even when S is coarser than unit.
func FromUnitsCeil[S Scale, T Ticks](val T, unit scale.Ratio) (Duration[T, S], bool) {
	mustScale[S]()

	ticks, ok := scale.Reduce(unit, ratioOf[S]()).LeftIntoRightCeil(uint64(val), limitOf[T]())
	if !ok {
		return Duration[T, S]{}, false
	}

	return Duration[T, S]{ticks: T(ticks)}, true
}

func mustFromUnits[S Scale, T Ticks](val T, unit scale.Ratio, ceil bool) Duration[T, S] {
	var (
		d  Duration[T, S]
		ok bool
	)

	if ceil {
		d, ok = FromUnitsCeil[S](val, unit)
	} else {
		d, ok = FromUnits[S](val, unit)
	}

	if !ok {
		panic(fmt.Errorf("%w: %d x %v into %v", ErrConversion, val, unit, ratioOf[S]()))
	}

	return d
}

// FromNanos creates a Duration from nanoseconds.
func FromNanos[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Nanos, false)
}

// FromMicros creates a Duration from microseconds.
func FromMicros[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Micros, false)
}

// FromMillis creates a Duration from milliseconds.
func FromMillis[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Millis, false)
}

// FromSecs creates a Duration from seconds.
func FromSecs[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Secs, false)
}

// FromMinutes creates a Duration from minutes.
func FromMinutes[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Minutes, false)
}

// FromHours creates a Duration from hours.
func FromHours[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Hours, false)
}

// FromNanosAtLeast creates the shortest Duration covering val nanoseconds.
func FromNanosAtLeast[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Nanos, true)
}

// FromMicrosAtLeast creates the shortest Duration covering val
// microseconds.
func FromMicrosAtLeast[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Micros, true)
}

// FromMillisAtLeast creates the shortest Duration covering val
// milliseconds.
func FromMillisAtLeast[S Scale, T Ticks](val T) Duration[T, S] {
	return mustFromUnits[S](val, scale.Millis, true)
}

// ToUnits expresses the duration as a count of unit, truncating.
func (d Duration[T, S]) ToUnits(unit scale.Ratio) (T, bool) {
	v, ok := scale.Reduce(ratioOf[S](), unit).LeftIntoRight(uint64(d.ticks), limitOf[T]())
	return T(v), ok
}

// ToUnitsCeil expresses the duration as a count of unit, rounding up.
func (d Duration[T, S]) ToUnitsCeil(unit scale.Ratio) (T, bool) {
	v, ok := scale.Reduce(ratioOf[S](), unit).LeftIntoRightCeil(uint64(d.ticks), limitOf[T]())
	return T(v), ok
}

func (d Duration[T, S]) mustToUnits(unit scale.Ratio) T {
	v, ok := d.ToUnits(unit)
	if !ok {
		panic(fmt.Errorf("%w: %v into %v", ErrConversion, d, unit))
	}

	return v
}

// ToNanos returns the duration in whole nanoseconds.
func (d Duration[T, S]) ToNanos() T { return d.mustToUnits(scale.Nanos) }

// ToMicros returns the duration in whole microseconds.
func (d Duration[T, S]) ToMicros() T { return d.mustToUnits(scale.Micros) }

// ToMillis returns the duration in whole milliseconds.
func (d Duration[T, S]) ToMillis() T { return d.mustToUnits(scale.Millis) }

// ToSecs returns the duration in whole seconds.
func (d Duration[T, S]) ToSecs() T { return d.mustToUnits(scale.Secs) }

// ToMinutes returns the duration in whole minutes.
func (d Duration[T, S]) ToMinutes() T { return d.mustToUnits(scale.Minutes) }

// ToHours returns the duration in whole hours.
func (d Duration[T, S]) ToHours() T { return d.mustToUnits(scale.Hours) }

// FromHz creates a Rate from hertz.
func FromHz[S Scale, T Ticks](val T) Rate[T, S] {
	return mustRateFromUnits[S](val, scale.Hertz)
}

// FromKHz creates a Rate from kilohertz.
func FromKHz[S Scale, T Ticks](val T) Rate[T, S] {
	return mustRateFromUnits[S](val, scale.Kilohertz)
}

// FromMHz creates a Rate from megahertz.
func FromMHz[S Scale, T Ticks](val T) Rate[T, S] {
	return mustRateFromUnits[S](val, scale.Megahertz)
}

func mustRateFromUnits[S Scale, T Ticks](val T, unit scale.Ratio) Rate[T, S] {
	mustScale[S]()

	raw, ok := scale.Reduce(unit, ratioOf[S]()).LeftIntoRight(uint64(val), limitOf[T]())
	if !ok {
		panic(fmt.Errorf("%w: %d x %v into %v", ErrConversion, val, unit, ratioOf[S]()))
	}

	return Rate[T, S]{raw: T(raw)}
}

func (r Rate[T, S]) mustToUnits(unit scale.Ratio) T {
	v, ok := scale.Reduce(ratioOf[S](), unit).LeftIntoRight(uint64(r.raw), limitOf[T]())
	if !ok {
		panic(fmt.Errorf("%w: %v into %v", ErrConversion, r, unit))
	}

	return T(v)
}

// ToHz returns the rate in whole hertz.
func (r Rate[T, S]) ToHz() T { return r.mustToUnits(scale.Hertz) }

// ToKHz returns the rate in whole kilohertz.
func (r Rate[T, S]) ToKHz() T { return r.mustToUnits(scale.Kilohertz) }

// ToMHz returns the rate in whole megahertz.
func (r Rate[T, S]) ToMHz() T { return r.mustToUnits(scale.Megahertz) }
