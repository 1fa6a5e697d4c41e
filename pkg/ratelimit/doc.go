/*
Package ratelimit defines the admission-control capability shared by the
rate limiter implementations in its subpackages.

Two limiter types are provided:

  - leakybucket: Continuous-drain limiter enforcing smooth traffic flow
  - tokenbucket: Linear-refill limiter allowing controlled bursts

Leaky Bucket vs Token Bucket:

A leaky bucket starts empty, fills by one unit per admitted event and
drains continuously at a fixed rate. It smooths bursts:

	smooth, _ := leakybucket.New(5, 10) // capacity 5, leaks 10/sec
	if smooth.Allow() {
		// process event
	}

A token bucket starts full and refills continuously up to its capacity.
It tolerates bursts up to the full budget:

	bursty, _ := tokenbucket.New(5, 600) // capacity 5, refills 600/min
	if bursty.Allow() {
		// process event
	}

Both implement the Limiter interface defined here, so callers can swap
strategies without code changes. AllowAt accepts the event timestamp
explicitly, which keeps admission decisions deterministic under test;
Allow reads an injected Clock.

The two algorithms account for time differently on purpose: the leaky
bucket advances its drain baseline on every call, while the token bucket
advances its refill baseline only on a successful admission. See the
subpackage documentation for details.
*/
package ratelimit
