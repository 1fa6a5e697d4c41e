package tokenbucket

import (
	"testing"
	"time"
)

// BenchmarkAllow measures the performance of Allow calls
func BenchmarkAllow(b *testing.B) {
	limiter, err := New(1000, 60000000) // High refill rate so admissions keep succeeding
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			limiter.Allow()
		}
	})
}

// BenchmarkAllowAt measures the performance of explicit-timestamp admission
func BenchmarkAllowAt(b *testing.B) {
	limiter, err := New(1000, 60000000)
	if err != nil {
		b.Fatal(err)
	}
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.AllowAt(now.Add(time.Duration(i) * time.Microsecond))
	}
}

// BenchmarkBucketAllowAt measures the unsynchronized core
func BenchmarkBucketAllowAt(b *testing.B) {
	bucket, err := NewBucket(1000, 60000000)
	if err != nil {
		b.Fatal(err)
	}
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bucket.AllowAt(now.Add(time.Duration(i) * time.Microsecond))
	}
}
