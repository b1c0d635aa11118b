// Package timing provides durations, instants and rates whose time base is
// part of their type.
//
// A value is a bare tick count. Its scale, the number of seconds (or hertz)
// one tick represents, is a type parameter bound to a zero-size marker type:
//
//	type RTC struct{}
//
//	func (RTC) Ratio() scale.Ratio { return scale.Ratio{Num: 1, Den: 32_768} }
//
//	timeout := timing.FromMillis[RTC](uint32(250)) // 8192 ticks
//
// Mixing two scales in one expression is a compile error unless the caller
// goes through one of the cross-scale functions (CheckedAddDuration,
// ConvertDuration, CompareDurations, ...), which reduce the two ratios and
// rescale with a single multiply.
//
// Every fallible operation has a checked form returning (value, ok). The
// plain forms call the checked ones and panic on failure, because a silently
// wrapped duration is worse than a crash. Instants are the exception: adding
// to an instant wraps around like the hardware counter it models.
package timing
