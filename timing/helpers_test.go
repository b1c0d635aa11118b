package timing_test

import (
	"testing"

	"github.com/sarchlab/ticktime/scale"
	"github.com/stretchr/testify/require"
)

// tenthMillis ticks every 100 us, a base that shares no exact term with the
// built-in scales.
type tenthMillis struct{}

func (tenthMillis) Ratio() scale.Ratio { return scale.MustNew(1, 10_000) }

// milliHertz is a rate scale whose reciprocals are large.
type milliHertz struct{}

func (milliHertz) Ratio() scale.Ratio { return scale.MustNew(1, 1_000) }

type brokenScale struct{}

func (brokenScale) Ratio() scale.Ratio { return scale.Ratio{Num: 0, Den: 1} }

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()

	f()
}
