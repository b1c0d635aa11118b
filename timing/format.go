package timing

import (
	"strconv"

	"github.com/sarchlab/ticktime/scale"
)

// String prints well-known scales with their unit ("5 ms", "3 h") and any
// other scale as "N ticks @ (num/den)".
func (d Duration[T, S]) String() string {
	return FormatDuration(uint64(d.ticks), ratioOf[S]())
}

// String prints the counter value the same way Duration does.
func (i Instant[T, S]) String() string {
	return FormatDuration(uint64(i.ticks), ratioOf[S]())
}

// String prints well-known scales with their unit ("10 kHz") and any other
// scale as "N raw @ (num/den)".
func (r Rate[T, S]) String() string {
	return FormatRate(uint64(r.raw), ratioOf[S]())
}

// FormatDuration formats a tick count whose scale is only known at run time.
func FormatDuration(ticks uint64, ratio scale.Ratio) string {
	s := strconv.FormatUint(ticks, 10)

	if sym, ok := scale.DurationSymbol(ratio); ok {
		return s + " " + sym
	}

	return s + " ticks @ (" + ratio.String() + ")"
}

// FormatRate formats a raw rate count whose scale is only known at run time.
func FormatRate(raw uint64, ratio scale.Ratio) string {
	s := strconv.FormatUint(raw, 10)

	if sym, ok := scale.RateSymbol(ratio); ok {
		return s + " " + sym
	}

	return s + " raw @ (" + ratio.String() + ")"
}
