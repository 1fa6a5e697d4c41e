package tokenbucket

import (
	"sync"
	"time"

	"github.com/vnykmshr/goadmit/pkg/ratelimit"
)

const moduleName = "tokenbucket"

// Limiter controls how frequently events are admitted using a token bucket
// algorithm. It tolerates bursts up to its capacity: the bucket starts full
// and refills at a steady rate.
type Limiter interface {
	// Allow reports whether an event arriving now may happen. It does not block.
	Allow() bool

	// AllowAt reports whether an event arriving at the given time may happen.
	AllowAt(now time.Time) bool

	// Capacity returns the maximum token count.
	Capacity() int

	// RefillRate returns the refill rate in tokens per minute.
	RefillRate() float64

	// Tokens returns the number of tokens currently available.
	Tokens() float64
}

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Capacity is the maximum number of tokens the bucket can hold.
	Capacity int

	// RefillRate is the number of tokens earned per minute.
	RefillRate float64

	// Clock provides the current time for Allow. If nil, the system
	// clock is used.
	Clock ratelimit.Clock
}

// limiter wraps a Bucket with a mutex and a clock so the
// refill-compare-consume sequence is atomic for shared callers.
type limiter struct {
	mu     sync.Mutex
	bucket *Bucket
	clock  ratelimit.Clock
}

var _ ratelimit.Limiter = (*limiter)(nil)

// New creates a token bucket rate limiter with the given capacity and
// refill rate in tokens per minute. The bucket starts full, so the first
// admission always succeeds. The returned Limiter is safe for concurrent
// use. It returns an error if capacity or rate is not positive.
func New(capacity, refillRatePerMinute int) (Limiter, error) {
	return NewWithConfig(Config{
		Capacity:   capacity,
		RefillRate: float64(refillRatePerMinute),
	})
}

// NewWithConfig creates a token bucket rate limiter from the given
// configuration.
func NewWithConfig(config Config) (Limiter, error) {
	bucket, err := NewBucket(config.Capacity, config.RefillRate)
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

// Capacity returns the maximum token count.
func (l *limiter) Capacity() int {
	return l.bucket.Capacity()
}

// RefillRate returns the refill rate in tokens per minute.
func (l *limiter) RefillRate() float64 {
	return l.bucket.RefillRate()
}

// Tokens returns the token count refilled up to the current time.
func (l *limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bucket.tokensAt(l.clock.Now())
}
