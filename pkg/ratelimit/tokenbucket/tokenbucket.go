package tokenbucket

import (
	"math"
	"time"

	"github.com/vnykmshr/goadmit/pkg/common/validation"
	"github.com/vnykmshr/goadmit/pkg/ratelimit"
)

// Bucket is the unsynchronized token bucket core. It starts full and
// refills linearly over time up to its capacity; each admitted event
// consumes one token. The zero value is not usable; create one with
// NewBucket.
//
// Bucket is not safe for concurrent use. Callers that share a Bucket must
// serialize AllowAt themselves, or use the Limiter returned by New, which
// wraps the bucket in a mutex.
type Bucket struct {
	capacity   int
	refillRate float64 // tokens earned per minute
	tokens     float64
	lastRefill time.Time
	started    bool
}

// NewBucket creates a token bucket core with the given capacity and refill
// rate in tokens per minute. The bucket starts full. It returns an error
// if capacity or rate is not positive.
func NewBucket(capacity int, refillRatePerMinute float64) (*Bucket, error) {
	if err := validation.ValidatePositive(moduleName, "capacity", capacity); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveFloat(moduleName, "refillRate", refillRatePerMinute); err != nil {
		return nil, err
	}
	return &Bucket{
		capacity:   capacity,
		refillRate: refillRatePerMinute,
		tokens:     float64(capacity),
	}, nil
}

// AllowAt reports whether an event arriving at now may be admitted,
// consuming one token when it is.
//
// Availability is the stored token count plus elapsed*rate earned since
// the last admission, clamped to capacity (elapsed itself clamped at
// zero). On admission the leftover, including any fractional remainder,
// is stored and the refill anchor moves to now. A denied call mutates
// nothing: the anchor stays on the last admission, so a dense run of
// denials re-derives availability from the same fixed baseline instead of
// earning it again. This is the deliberate counterpart to the leaky
// bucket, whose anchor advances on every call.
func (b *Bucket) AllowAt(now time.Time) bool {
	available := b.tokensAt(now)
	if available < 1 {
		return false
	}
	b.tokens = available - 1
	b.lastRefill = now
	b.started = true
	return true
}

// tokensAt returns the token count refilled up to now, without mutating
// the bucket. The per-minute rate divides by 60 in floating point so
// rates under one token per minute still refill.
func (b *Bucket) tokensAt(now time.Time) float64 {
	if !b.started {
		return b.tokens
	}
	earned := ratelimit.ElapsedSeconds(b.lastRefill, now) * (b.refillRate / 60)
	return math.Min(float64(b.capacity), b.tokens+earned)
}

// Capacity returns the maximum token count.
func (b *Bucket) Capacity() int {
	return b.capacity
}

// RefillRate returns the refill rate in tokens per minute.
func (b *Bucket) RefillRate() float64 {
	return b.refillRate
}

// Tokens returns the token count as of the last admission.
func (b *Bucket) Tokens() float64 {
	return b.tokens
}
