package devices

import (
	"sync"

	"golang.org/x/sys/unix"
)

// IntervalTimerPeriod is the interval timer's reload value (§6): 100ms,
// expressed in the same clock-tick unit TOD reads return.
const IntervalTimerPeriod = 100000

// Clock is the time-of-day source the nucleus reads to stamp process start
// times and compute CPU-time deltas. The production Clock backs TOD with
// the host's monotonic clock (CLOCK_MONOTONIC via golang.org/x/sys/unix),
// scaled into the same microsecond unit the original's TODLO/TIMESCALE
// register pair produces; a test harness can substitute a fake that
// advances on command.
type Clock interface {
	// Now returns the current TOD reading in microseconds.
	Now() uint64
}

// SystemClock is a Clock backed by CLOCK_MONOTONIC.
type SystemClock struct {
	mu     sync.Mutex
	origin unix.Timespec
	have   bool
}

// NewSystemClock returns a Clock whose Now() is relative to the instant it
// was constructed, matching the original's TOD reading being relative to
// machine boot rather than wall-clock epoch.
func NewSystemClock() *SystemClock {
	c := &SystemClock{}
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err == nil {
		c.origin = ts
		c.have = true
	}
	return c
}

func (c *SystemClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.have {
		return 0
	}
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	elapsed := int64(ts.Sec-c.origin.Sec)*1_000_000_000 + int64(ts.Nsec-c.origin.Nsec)
	return uint64(elapsed / 1000)
}

// FakeClock is a manually advanced Clock for tests and the scripted test
// harness, where real wall-clock time would make timing-sensitive
// scenarios (quantum expiry, pseudo-clock wakeups) flaky.
type FakeClock struct {
	now uint64
}

// NewFakeClock returns a FakeClock starting at 0.
func NewFakeClock() *FakeClock { return &FakeClock{} }

func (c *FakeClock) Now() uint64 { return c.now }

// Advance moves the clock forward by delta microseconds.
func (c *FakeClock) Advance(delta uint64) { c.now += delta }
