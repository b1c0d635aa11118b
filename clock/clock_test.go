package clock

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sarchlab/ticktime/scale"
	"github.com/sarchlab/ticktime/timing"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -destination "mock_clock_test.go" -package $GOPACKAGE -write_package_comment=false github.com/sarchlab/ticktime/clock Clock

type halfNanos struct{}

func (halfNanos) Ratio() scale.Ratio { return scale.MustNew(1, 2_000_000_000) }

type zeroScale struct{}

func (zeroScale) Ratio() scale.Ratio { return scale.Ratio{} }

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

type ClockTestSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	clock    *MockClock[uint32, timing.Millis]
}

func (suite *ClockTestSuite) SetupTest() {
	suite.mockCtrl = gomock.NewController(suite.T())
	suite.clock = NewMockClock[uint32, timing.Millis](suite.mockCtrl)
}

func (suite *ClockTestSuite) TearDownTest() {
	suite.mockCtrl.Finish()
}

func (suite *ClockTestSuite) expectNow(ticks ...uint32) {
	calls := make([]any, 0, len(ticks))
	for _, t := range ticks {
		calls = append(calls,
			suite.clock.EXPECT().Now().Return(timing.NewInstant[timing.Millis](t)))
	}

	gomock.InOrder(calls...)
}

func (suite *ClockTestSuite) TestStopwatchAcrossWrap() {
	suite.expectNow(math.MaxUint32-4, 5)

	sw := NewStopwatch[uint32, timing.Millis](suite.clock)

	elapsed, ok := sw.Elapsed()
	suite.Require().True(ok)
	suite.Equal(uint32(10), elapsed.Ticks())
}

func (suite *ClockTestSuite) TestStopwatchRestart() {
	suite.expectNow(100, 400, 450)

	sw := NewStopwatch[uint32, timing.Millis](suite.clock)
	sw.Start()

	elapsed, ok := sw.Elapsed()
	suite.Require().True(ok)
	suite.Equal(uint32(50), elapsed.Ticks())
}

func (suite *ClockTestSuite) TestDeadline() {
	suite.expectNow(100, 120, 120, 150, 150, 151, 151)

	d := NewDeadline[uint32, timing.Millis](suite.clock, timing.NewDuration[timing.Millis](uint32(50)))
	suite.Equal(uint32(150), d.At().Ticks())

	suite.False(d.Expired())
	left, ok := d.Remaining()
	suite.Require().True(ok)
	suite.Equal(uint32(30), left.Ticks())

	suite.True(d.Expired())
	left, ok = d.Remaining()
	suite.Require().True(ok)
	suite.True(left.IsZero())

	suite.True(d.Expired())
	_, ok = d.Remaining()
	suite.False(ok)
}

func (suite *ClockTestSuite) TestDeadlineAcrossWrap() {
	suite.expectNow(math.MaxUint32-9, math.MaxUint32, math.MaxUint32)

	d := NewDeadline[uint32, timing.Millis](suite.clock, timing.NewDuration[timing.Millis](uint32(20)))
	suite.Equal(uint32(10), d.At().Ticks())

	suite.False(d.Expired())
	left, ok := d.Remaining()
	suite.Require().True(ok)
	suite.Equal(uint32(11), left.Ticks())
}

func TestClockTestSuite(t *testing.T) {
	suite.Run(t, new(ClockTestSuite))
}

type MonotonicTestSuite struct {
	suite.Suite

	time *fakeTime
}

func (suite *MonotonicTestSuite) SetupTest() {
	suite.time = &fakeTime{t: time.Unix(1_700_000_000, 0)}
}

func (suite *MonotonicTestSuite) TestStartsAtZero() {
	m := newMonotonic[uint64, timing.Micros](suite.time.now)
	suite.Equal(uint64(0), m.Now().Ticks())
}

func (suite *MonotonicTestSuite) TestCoarserScaleTruncates() {
	m := newMonotonic[uint32, timing.Millis](suite.time.now)
	suite.time.advance(1500*time.Millisecond + 999*time.Microsecond)
	suite.Equal(uint32(1500), m.Now().Ticks())

	s := newMonotonic[uint64, timing.Secs](suite.time.now)
	suite.time.advance(2500 * time.Millisecond)
	suite.Equal(uint64(2), s.Now().Ticks())
}

func (suite *MonotonicTestSuite) TestNarrowCounterWraps() {
	m := newMonotonic[uint32, timing.Nanos](suite.time.now)
	suite.time.advance(5 * time.Second)
	suite.Equal(uint32(5_000_000_000-math.MaxUint32-1), m.Now().Ticks())
}

func (suite *MonotonicTestSuite) TestFinerThanNanos() {
	m := newMonotonic[uint64, halfNanos](suite.time.now)
	suite.time.advance(time.Second)
	suite.Equal(uint64(2_000_000_000), m.Now().Ticks())
}

func (suite *MonotonicTestSuite) TestHostClockGoingBackwards() {
	m := newMonotonic[uint32, timing.Millis](suite.time.now)
	suite.time.advance(-time.Second)
	suite.Equal(uint32(0), m.Now().Ticks())
}

func (suite *MonotonicTestSuite) TestInvalidScale() {
	defer func() {
		err, ok := recover().(error)
		suite.Require().True(ok)
		suite.True(errors.Is(err, timing.ErrInvalidScale))
	}()

	newMonotonic[uint32, zeroScale](suite.time.now)
}

func (suite *MonotonicTestSuite) TestRealClockAdvances() {
	m := NewMonotonic[uint64, timing.Nanos]()
	first := m.Now()
	second := m.Now()
	suite.False(second.Before(first))
}

func TestMonotonicTestSuite(t *testing.T) {
	suite.Run(t, new(MonotonicTestSuite))
}
