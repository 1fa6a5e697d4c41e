/*
Package leakybucket provides leaky bucket rate limiting for Go applications.

A leaky bucket fills by one unit per admitted event and drains continuously
at a fixed rate. An event is admitted only when the post-drain occupancy
plus one unit still fits within capacity, so accepted work flows out at a
steady rate regardless of input patterns.

Basic usage:

	limiter, err := leakybucket.New(10, 5) // capacity 10, leaks 5 units/sec
	if err != nil {
		// invalid capacity or rate
	}
	if limiter.Allow() {
		// Process event
	}

Deterministic admission:

AllowAt takes the event timestamp from the caller instead of reading a
clock, which makes decisions reproducible:

	limiter.AllowAt(eventTime)

Timestamps that go backward are treated as zero elapsed time; the bucket
never gains capacity from a non-monotonic clock.

Time accounting:

The bucket records its first-ever admission check as the time anchor
without draining. Every subsequent check drains elapsed*rate units and
advances the anchor whether or not the event is admitted. This differs
from the token bucket in pkg/ratelimit/tokenbucket, which advances its
anchor only on success.

Comparison with Token Bucket:

	// Leaky bucket: starts empty, smooth flow
	smooth, _ := leakybucket.New(10, 5)

	// Token bucket: starts full, allows immediate burst
	bursty, _ := tokenbucket.New(10, 300)

Configuration:

	config := leakybucket.Config{
		Capacity: 20,    // Maximum occupancy
		LeakRate: 2.5,   // Units drained per second (fractional rates allowed)
		Clock:    clock, // Custom time source (for testing)
	}
	limiter, err := leakybucket.NewWithConfig(config)

Concurrency:

Limiters returned by New and NewWithConfig are safe for concurrent use;
a mutex makes each admission check atomic. The Bucket core is also
exported for single-owner callers that manage their own synchronization.
*/
package leakybucket
