/*
Package goadmit provides single-process, in-memory admission-control
primitives for Go applications.

Rate Limiting (pkg/ratelimit):
  - leakybucket: Continuous-drain limiter for smooth traffic flow
  - tokenbucket: Linear-refill limiter allowing burst traffic

Both limiters decide, per incoming event, whether the event is admitted or
rejected against a configured throughput budget. They share one capability:

	type Limiter interface {
		Allow() bool
		AllowAt(now time.Time) bool
	}

AllowAt takes the event timestamp from the caller, so admission decisions
are deterministic and testable; Allow is a thin adapter that reads an
injected clock.

Example usage:

	import (
		"github.com/vnykmshr/goadmit/pkg/ratelimit/leakybucket"
		"github.com/vnykmshr/goadmit/pkg/ratelimit/tokenbucket"
	)

	smooth, _ := leakybucket.New(10, 5)   // capacity 10, leaks 5/sec
	bursty, _ := tokenbucket.New(20, 600) // capacity 20, refills 600/min

	if smooth.Allow() {
		// process event
	}
	if bursty.Allow() {
		// process event
	}

Limiters returned by the package constructors are safe for concurrent use.
The raw bucket cores are also exported for single-owner callers that manage
their own synchronization.
*/
package goadmit
