package game

import "time"

// FallTimer is a repeating timer driving gravity.
type FallTimer struct {
	Interval time.Duration
	elapsed  time.Duration
}

// Tick advances the timer and reports whether an interval completed. A long
// frame completes at most one interval; the remainder carries over.
func (t *FallTimer) Tick(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed < t.Interval {
		return false
	}
	t.elapsed = (t.elapsed - t.Interval) % t.Interval
	return true
}

// Elapsed returns the time accumulated toward the next interval.
func (t *FallTimer) Elapsed() time.Duration {
	return t.elapsed
}

// Reset restarts the current interval.
func (t *FallTimer) Reset() {
	t.elapsed = 0
}
