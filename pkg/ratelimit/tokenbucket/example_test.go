package tokenbucket_test

import (
	"fmt"
	"log"
	"time"

	"github.com/vnykmshr/goadmit/pkg/ratelimit/tokenbucket"
)

// Example demonstrates basic usage of the token bucket rate limiter
func Example() {
	// Capacity 5, refills 300 tokens per minute
	limiter, err := tokenbucket.New(5, 300)
	if err != nil {
		log.Fatal(err)
	}

	if limiter.Allow() {
		fmt.Println("Request allowed")
	} else {
		fmt.Println("Request denied")
	}

	// Output: Request allowed
}

// Example_deterministic demonstrates admission with caller-supplied timestamps
func Example_deterministic() {
	// Capacity 3, refills 60 tokens per minute (one per second)
	limiter, err := tokenbucket.New(3, 60)
	if err != nil {
		log.Fatal(err)
	}

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fmt.Println(limiter.AllowAt(t0)) // consumes token 1
	fmt.Println(limiter.AllowAt(t0)) // consumes token 2
	fmt.Println(limiter.AllowAt(t0)) // consumes token 3
	fmt.Println(limiter.AllowAt(t0)) // budget spent, denied

	// One second later one token has been earned
	fmt.Println(limiter.AllowAt(t0.Add(time.Second)))

	// Output:
	// true
	// true
	// true
	// false
	// true
}

// Example_burst demonstrates the up-front budget of a full bucket
func Example_burst() {
	// Capacity 4, refills 120 tokens per minute
	limiter, err := tokenbucket.New(4, 120)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Initial tokens: %.0f/%d\n", limiter.Tokens(), limiter.Capacity())

	admitted := 0
	for i := 0; i < 6; i++ {
		if limiter.Allow() {
			admitted++
		}
	}

	fmt.Printf("Admitted %d of 6\n", admitted)

	// Output:
	// Initial tokens: 4/4
	// Admitted 4 of 6
}
