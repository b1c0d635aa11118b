package timing

// Common instantiations. They are plain aliases, so values convert freely
// with the generic forms.
type (
	NanosDurationU32  = Duration[uint32, Nanos]
	MicrosDurationU32 = Duration[uint32, Micros]
	MillisDurationU32 = Duration[uint32, Millis]
	SecsDurationU32   = Duration[uint32, Secs]

	NanosDurationU64  = Duration[uint64, Nanos]
	MicrosDurationU64 = Duration[uint64, Micros]
	MillisDurationU64 = Duration[uint64, Millis]
	SecsDurationU64   = Duration[uint64, Secs]

	MicrosInstantU32 = Instant[uint32, Micros]
	MillisInstantU32 = Instant[uint32, Millis]
	MicrosInstantU64 = Instant[uint64, Micros]
	MillisInstantU64 = Instant[uint64, Millis]

	HertzRateU32     = Rate[uint32, Hertz]
	KilohertzRateU32 = Rate[uint32, Kilohertz]
	MegahertzRateU32 = Rate[uint32, Megahertz]
	HertzRateU64     = Rate[uint64, Hertz]
	KilohertzRateU64 = Rate[uint64, Kilohertz]
	MegahertzRateU64 = Rate[uint64, Megahertz]
)
