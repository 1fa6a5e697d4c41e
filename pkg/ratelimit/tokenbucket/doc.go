/*
Package tokenbucket provides token bucket rate limiting for Go applications.

A token bucket starts full of tokens and refills linearly over time up to a
capacity ceiling; each admitted event consumes one token. Because the budget
is available up front, callers can burst up to the full capacity before the
refill rate becomes the limit.

Basic usage:

	limiter, err := tokenbucket.New(10, 300) // capacity 10, refills 300 tokens/min
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

Time accounting:

The refill anchor advances only on a successful admission. A denied call
mutates nothing, so availability during a run of denials is always derived
from the last admission's baseline rather than accumulated check by check.
The refill rate is configured in tokens per minute and divided by 60 in
floating point, so rates below one token per minute still refill, just
slowly.

Comparison with Leaky Bucket:

	// Token bucket: starts full, allows immediate burst of 10
	bursty, _ := tokenbucket.New(10, 300)

	// Leaky bucket: starts empty, smooth flow
	smooth, _ := leakybucket.New(10, 5)

Concurrency:

Limiters returned by New and NewWithConfig are safe for concurrent use;
a mutex makes each admission check atomic. The Bucket core is also
exported for single-owner callers that manage their own synchronization.
*/
package tokenbucket
