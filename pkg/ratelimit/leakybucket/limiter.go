package leakybucket

import (
	"sync"
	"time"

	"github.com/vnykmshr/goadmit/pkg/ratelimit"
)

const moduleName = "leakybucket"

// Limiter controls the rate at which events are admitted using a leaky
// bucket algorithm. Unlike a token bucket, it enforces a smooth output
// rate by draining accepted work at a fixed interval.
type Limiter interface {
	// Allow reports whether an event arriving now may happen. It does not block.
	Allow() bool

	// AllowAt reports whether an event arriving at the given time may happen.
	AllowAt(now time.Time) bool

	// Capacity returns the bucket capacity.
	Capacity() int

	// LeakRate returns the drain rate in units per second.
	LeakRate() float64

	// Level returns the current fill level of the bucket.
	Level() float64

	// Available returns the available space in the bucket.
	Available() float64
}

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Capacity is the maximum occupancy of the bucket.
	Capacity int

	// LeakRate is the rate at which occupancy drains, in units per second.
	LeakRate float64

	// Clock provides the current time for Allow. If nil, the system
	// clock is used.
	Clock ratelimit.Clock
}

// limiter wraps a Bucket with a mutex and a clock so the
// read-drain-compare-write sequence is atomic for shared callers.
type limiter struct {
	mu     sync.Mutex
	bucket *Bucket
	clock  ratelimit.Clock
}

var _ ratelimit.Limiter = (*limiter)(nil)

// New creates a leaky bucket rate limiter with the given capacity and leak
// rate in units per second. The bucket starts empty. The returned Limiter
// is safe for concurrent use. It returns an error if capacity or rate is
// not positive.
func New(capacity, leakRatePerSecond int) (Limiter, error) {
	return NewWithConfig(Config{
		Capacity: capacity,
		LeakRate: float64(leakRatePerSecond),
	})
}

// NewWithConfig creates a leaky bucket rate limiter from the given
// configuration.
func NewWithConfig(config Config) (Limiter, error) {
	bucket, err := NewBucket(config.Capacity, config.LeakRate)
	if err != nil {
		return nil, err
	}
	clock := config.Clock
	if clock == nil {
		clock = ratelimit.SystemClock{}
	}
	return &limiter{bucket: bucket, clock: clock}, nil
}

// Allow reports whether an event arriving now may happen.
func (l *limiter) Allow() bool {
	return l.AllowAt(l.clock.Now())
}

// AllowAt reports whether an event arriving at the given time may happen.
func (l *limiter) AllowAt(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bucket.AllowAt(now)
}

// Capacity returns the bucket capacity.
func (l *limiter) Capacity() int {
	return l.bucket.Capacity()
}

// LeakRate returns the drain rate in units per second.
func (l *limiter) LeakRate() float64 {
	return l.bucket.LeakRate()
}

// Level returns the fill level after draining up to the current time.
func (l *limiter) Level() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bucket.levelAt(l.clock.Now())
}

// Available returns the available space in the bucket.
func (l *limiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return float64(l.bucket.capacity) - l.bucket.levelAt(l.clock.Now())
}
