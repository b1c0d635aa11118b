package timing

import (
	"errors"
	"fmt"

	"github.com/sarchlab/ticktime/scale"
)

var (
	// ErrInvalidScale indicates a scale type whose ratio has a zero term.
	ErrInvalidScale = fmt.Errorf("timing: invalid scale: %w", scale.ErrInvalidRatio)

	// ErrOverflow indicates that tick arithmetic left the range of the
	// backing integer.
	ErrOverflow = errors.New("timing: tick arithmetic overflow")

	// ErrConversion indicates that rescaling produced a value the target
	// cannot represent.
	ErrConversion = errors.New("timing: value out of range for target scale")

	// ErrNarrowing indicates that a 64-bit value does not fit 32 bits.
	ErrNarrowing = fmt.Errorf("%w: value does not fit 32 bits", ErrConversion)

	// ErrDivideByZero indicates a division or reciprocal of zero.
	ErrDivideByZero = errors.New("timing: divide by zero")

	// ErrInstantOrder indicates that the other instant is later than the
	// receiver under modular ordering.
	ErrInstantOrder = errors.New("timing: other instant is later")
)
