package scale

import (
	"errors"
	"math"
	"testing"
)

func TestRegisterSingleScale(t *testing.T) {
	registry := NewRegistry()

	domain, err := registry.Register(Millis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if domain == nil {
		t.Fatalf("expected domain, got nil")
	}

	if got, want := domain.Ratio(), Millis; got != want {
		t.Fatalf("ratio mismatch: got %v, want %v", got, want)
	}

	if got, want := domain.Stride(), uint64(1); got != want {
		t.Fatalf("stride mismatch: got %d, want %d", got, want)
	}

	// The same base written differently must map to the same domain.
	domain2, err := registry.Register(MustNew(2, 2000))
	if err != nil {
		t.Fatalf("unexpected error on re-register: %v", err)
	}
	if domain2 != domain {
		t.Fatalf("expected identical domain pointers on re-register")
	}
	if registry.Len() != 1 {
		t.Fatalf("expected one domain, got %d", registry.Len())
	}
}

func TestRegisterMultipleScales(t *testing.T) {
	registry := NewRegistry()

	millis, err := registry.Register(Millis)
	if err != nil {
		t.Fatalf("unexpected error registering millis: %v", err)
	}

	rtc, err := registry.Register(MustNew(1, 32_768))
	if err != nil {
		t.Fatalf("unexpected error registering rtc: %v", err)
	}

	base, err := registry.Base()
	if err != nil {
		t.Fatalf("unexpected error reading base: %v", err)
	}
	if got, want := base, MustNew(1, 4_096_000); got != want {
		t.Fatalf("base mismatch: got %v, want %v", got, want)
	}

	if got, want := millis.Stride(), uint64(4_096); got != want {
		t.Fatalf("millis stride mismatch: got %d, want %d", got, want)
	}

	if got, want := rtc.Stride(), uint64(125); got != want {
		t.Fatalf("rtc stride mismatch: got %d, want %d", got, want)
	}

	if got, want := rtc.ThisTick(5), uint64(125); got != want {
		t.Fatalf("ThisTick mismatch: got %d, want %d", got, want)
	}

	if got, want := rtc.ThisTick(250), uint64(250); got != want {
		t.Fatalf("ThisTick on boundary mismatch: got %d, want %d", got, want)
	}

	if got, want := rtc.NextTick(250), uint64(375); got != want {
		t.Fatalf("NextTick mismatch: got %d, want %d", got, want)
	}

	if got, want := millis.NTicksLater(0, 3), uint64(12_288); got != want {
		t.Fatalf("NTicksLater mismatch: got %d, want %d", got, want)
	}

	overflowStart := uint64(math.MaxUint64 - 4)
	if got, want := millis.NTicksLater(overflowStart, 1), uint64(math.MaxUint64); got != want {
		t.Fatalf("NTicksLater overflow mismatch: got %d, want %d", got, want)
	}
}

func TestRegisterCoarseScales(t *testing.T) {
	registry := NewRegistry()

	minutes, _ := registry.Register(Minutes)
	secs, _ := registry.Register(Secs)

	base, err := registry.Base()
	if err != nil {
		t.Fatalf("unexpected error reading base: %v", err)
	}
	if base != Secs {
		t.Fatalf("base mismatch: got %v, want %v", base, Secs)
	}
	if minutes.Stride() != 60 || secs.Stride() != 1 {
		t.Fatalf("stride mismatch: got %d and %d", minutes.Stride(), secs.Stride())
	}

	// Non-integer numerators still share a base.
	registry = NewRegistry()
	a, _ := registry.Register(MustNew(3, 2))
	b, _ := registry.Register(MustNew(3, 4))
	if a.Stride() != 2 || b.Stride() != 1 {
		t.Fatalf("stride mismatch: got %d and %d", a.Stride(), b.Stride())
	}
}

func TestRegistryErrors(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Base(); !errors.Is(err, ErrNoScales) {
		t.Fatalf("expected ErrNoScales, got %v", err)
	}

	if _, err := registry.Register(Ratio{Num: 1}); !errors.Is(err, ErrInvalidRatio) {
		t.Fatalf("expected ErrInvalidRatio, got %v", err)
	}

	if _, err := registry.Register(MustNew(1, math.MaxUint32)); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := registry.Register(MustNew(1, math.MaxUint32-1)); !errors.Is(err, ErrBaseOverflow) {
		t.Fatalf("expected ErrBaseOverflow, got %v", err)
	}

	var nilDomain *Domain
	if nilDomain.Stride() != 0 || nilDomain.ThisTick(10) != 0 {
		t.Fatalf("nil domain should report zero")
	}
}
