package timing

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Values encode as their bare tick or raw count. The scale is part of the
// type and is not written out.

// MarshalText implements encoding.TextMarshaler.
func (d Duration[T, S]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(d.ticks), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration[T, S]) UnmarshalText(text []byte) error {
	v, err := parseTicks[T](text)
	if err != nil {
		return err
	}

	d.ticks = v

	return nil
}

// MarshalJSON encodes the duration as a JSON number.
func (d Duration[T, S]) MarshalJSON() ([]byte, error) {
	return d.MarshalText()
}

// UnmarshalJSON decodes a JSON number.
func (d *Duration[T, S]) UnmarshalJSON(data []byte) error {
	return d.UnmarshalText(data)
}

// MarshalText implements encoding.TextMarshaler.
func (i Instant[T, S]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(i.ticks), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Instant[T, S]) UnmarshalText(text []byte) error {
	v, err := parseTicks[T](text)
	if err != nil {
		return err
	}

	i.ticks = v

	return nil
}

// MarshalJSON encodes the instant as a JSON number.
func (i Instant[T, S]) MarshalJSON() ([]byte, error) {
	return i.MarshalText()
}

// UnmarshalJSON decodes a JSON number.
func (i *Instant[T, S]) UnmarshalJSON(data []byte) error {
	return i.UnmarshalText(data)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rate[T, S]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(r.raw), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rate[T, S]) UnmarshalText(text []byte) error {
	v, err := parseTicks[T](text)
	if err != nil {
		return err
	}

	r.raw = v

	return nil
}

// MarshalJSON encodes the rate as a JSON number.
func (r Rate[T, S]) MarshalJSON() ([]byte, error) {
	return r.MarshalText()
}

// UnmarshalJSON decodes a JSON number.
func (r *Rate[T, S]) UnmarshalJSON(data []byte) error {
	return r.UnmarshalText(data)
}

func parseTicks[T Ticks](text []byte) (T, error) {
	v, err := strconv.ParseUint(string(text), 10, bits.Len64(limitOf[T]()))
	if err != nil {
		return 0, fmt.Errorf("%w: cannot decode %q: %v", ErrConversion, text, err)
	}

	return T(v), nil
}
