// Package clock provides an injectable time source so the refresh loop and
// the simulated data source latency can be driven deterministically in tests.
//
// Production code uses Real(). Tests use Fake(t0), register waiters by running
// the code under test, call WaitForTimers(n), then Advance(d).
package clock

import "time"

// Clock abstracts the time operations used by the tracker.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time after
	// duration d elapses. If d <= 0, the channel receives immediately.
	After(d time.Duration) <-chan time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
