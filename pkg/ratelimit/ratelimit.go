package ratelimit

import "time"

// Limiter decides admission for events against a configured throughput
// budget. Implementations are provided by the leakybucket and tokenbucket
// subpackages.
type Limiter interface {
	// Allow reports whether an event arriving now may happen. It reads
	// the implementation's clock and does not block.
	Allow() bool

	// AllowAt reports whether an event arriving at the given time may
	// happen. The timestamp is supplied by the caller, so decisions are
	// reproducible. Timestamps earlier than a previously seen one are
	// treated as zero elapsed time; the bucket never gains capacity from
	// time moving backward.
	AllowAt(now time.Time) bool
}

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ElapsedSeconds returns the wall-clock seconds between from and to,
// clamped to zero when to does not advance past from.
func ElapsedSeconds(from, to time.Time) float64 {
	elapsed := to.Sub(from)
	if elapsed <= 0 {
		return 0
	}
	return elapsed.Seconds()
}
