package scale

import (
	"math"
)

// Registry collects several ratios and derives the coarsest common base of
// which each of them is an integer multiple, so counts kept in different
// ratios can be placed on one shared tick axis.
type Registry struct {
	base    Ratio
	domains map[Ratio]*Domain
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		domains: make(map[Ratio]*Domain),
	}
}

// Register adds a ratio and returns its domain. Ratios that are the same base
// as an already registered one share its domain.
func (r *Registry) Register(ratio Ratio) (*Domain, error) {
	if err := ratio.Validate(); err != nil {
		return nil, err
	}

	key := ratio.Reduced()
	if domain, exists := r.domains[key]; exists {
		return domain, nil
	}

	if !r.base.Valid() {
		r.base = key
	} else {
		newBase, err := commonBase(r.base, key)
		if err != nil {
			return nil, err
		}
		r.base = newBase
	}

	domain := &Domain{
		ratio:    key,
		registry: r,
	}
	r.domains[key] = domain

	return domain, nil
}

// Base returns the common base of all registered ratios.
func (r *Registry) Base() (Ratio, error) {
	if !r.base.Valid() {
		return Ratio{}, ErrNoScales
	}

	return r.base, nil
}

// Len returns the number of distinct bases registered.
func (r *Registry) Len() int {
	return len(r.domains)
}

// Stride returns the number of base ticks in one tick of ratio.
func (r *Registry) Stride(ratio Ratio) (uint64, bool) {
	domain, ok := r.domains[ratio.Reduced()]
	if !ok || !r.base.Valid() {
		return 0, false
	}

	f := Reduce(domain.ratio, r.base)

	// base divides ratio, so one tick of ratio is an exact count of base ticks.
	return f.LeftIntoRight(1, math.MaxUint64)
}

// commonBase returns gcd(numerators)/lcm(denominators) of two reduced
// ratios.
func commonBase(a, b Ratio) (Ratio, error) {
	num := gcd(uint64(a.Num), uint64(b.Num))

	den, ok := lcm(uint64(a.Den), uint64(b.Den))
	if !ok || den > math.MaxUint32 {
		return Ratio{}, ErrBaseOverflow
	}

	return Ratio{Num: uint32(num), Den: uint32(den)}.Reduced(), nil
}

// Domain is a registered ratio. It aligns counts on the registry's base axis
// to the domain's own tick boundaries.
type Domain struct {
	ratio    Ratio
	registry *Registry
}

// Ratio returns the domain's ratio in lowest terms.
func (e *Domain) Ratio() Ratio {
	if e == nil {
		return Ratio{}
	}

	return e.ratio
}

// Stride returns the number of base ticks contained in one tick of the
// domain. The stride changes as more ratios are registered.
func (e *Domain) Stride() uint64 {
	return e.stride()
}

// ThisTick aligns a base count to the earliest domain tick that is not
// earlier than the input.
func (e *Domain) ThisTick(now uint64) uint64 {
	stride := e.stride()
	if stride == 0 {
		return 0
	}

	tick, ok := roundUpToStride(now, stride)
	if !ok {
		return math.MaxUint64
	}

	return tick
}

// NextTick advances to the next domain tick strictly after the base count.
func (e *Domain) NextTick(now uint64) uint64 {
	stride := e.stride()
	if stride == 0 {
		return 0
	}

	tick, ok := roundUpToStride(now, stride)
	if !ok {
		return math.MaxUint64
	}

	if tick == now {
		next, ok := addSaturating(now, stride)
		if !ok {
			return math.MaxUint64
		}
		return next
	}

	return tick
}

// NTicksLater advances the base count by n domain ticks, then aligns it. The
// result saturates at the maximum count.
func (e *Domain) NTicksLater(now, n uint64) uint64 {
	stride := e.stride()
	if stride == 0 {
		return 0
	}

	if n == 0 {
		return e.ThisTick(now)
	}

	offset, ok := mulWithin(n, stride, math.MaxUint64)
	if !ok {
		return math.MaxUint64
	}

	future, ok := addSaturating(now, offset)
	if !ok {
		return math.MaxUint64
	}

	tick, ok := roundUpToStride(future, stride)
	if !ok {
		return math.MaxUint64
	}

	return tick
}

func (e *Domain) stride() uint64 {
	if e == nil || e.registry == nil {
		return 0
	}

	stride, ok := e.registry.Stride(e.ratio)
	if !ok {
		return 0
	}

	return stride
}

func roundUpToStride(value, stride uint64) (uint64, bool) {
	remainder := value % stride
	if remainder == 0 {
		return value, true
	}

	return addSaturating(value, stride-remainder)
}

func addSaturating(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return math.MaxUint64, false
	}

	return a + b, true
}
