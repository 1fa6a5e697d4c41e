package leakybucket

import (
	"math"
	"time"

	"github.com/vnykmshr/goadmit/pkg/common/validation"
	"github.com/vnykmshr/goadmit/pkg/ratelimit"
)

// Bucket is the unsynchronized leaky bucket core. It fills by one unit per
// admitted event and drains continuously at a fixed rate. The zero value is
// not usable; create one with NewBucket.
//
// Bucket is not safe for concurrent use. Callers that share a Bucket must
// serialize AllowAt themselves, or use the Limiter returned by New, which
// wraps the bucket in a mutex.
type Bucket struct {
	capacity   int
	leakRate   float64 // units drained per second
	level      float64
	lastUpdate time.Time
	started    bool
}

// NewBucket creates a leaky bucket core with the given capacity and leak
// rate in units per second. The bucket starts empty. It returns an error
// if capacity or rate is not positive.
func NewBucket(capacity int, leakRatePerSecond float64) (*Bucket, error) {
	if err := validation.ValidatePositive(moduleName, "capacity", capacity); err != nil {
		return nil, err
	}
	if err := validation.ValidatePositiveFloat(moduleName, "leakRate", leakRatePerSecond); err != nil {
		return nil, err
	}
	return &Bucket{
		capacity: capacity,
		leakRate: leakRatePerSecond,
	}, nil
}

// AllowAt reports whether an event arriving at now may be admitted,
// adding one unit of occupancy when it is.
//
// The first call ever made to a bucket records now as the time anchor and
// drains nothing. Every later call drains elapsed*rate units (elapsed
// clamped at zero, so out-of-order timestamps never free capacity) and
// advances the anchor, whether or not the event is admitted. The event is
// admitted when the post-increment occupancy would not exceed capacity.
func (b *Bucket) AllowAt(now time.Time) bool {
	b.level = b.levelAt(now)
	b.started = true
	b.lastUpdate = now

	if b.level+1 <= float64(b.capacity) {
		b.level++
		return true
	}
	return false
}

// levelAt returns the occupancy after draining up to now, without
// mutating the bucket.
func (b *Bucket) levelAt(now time.Time) float64 {
	if !b.started {
		return b.level
	}
	drained := ratelimit.ElapsedSeconds(b.lastUpdate, now) * b.leakRate
	return math.Max(0, b.level-drained)
}

// Capacity returns the maximum occupancy.
func (b *Bucket) Capacity() int {
	return b.capacity
}

// LeakRate returns the drain rate in units per second.
func (b *Bucket) LeakRate() float64 {
	return b.leakRate
}

// Level returns the occupancy as of the last admission check.
func (b *Bucket) Level() float64 {
	return b.level
}
