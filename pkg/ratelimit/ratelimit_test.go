package ratelimit

import (
	"testing"
	"time"
)

func TestElapsedSeconds(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want float64
	}{
		{"one second", base, base.Add(time.Second), 1.0},
		{"fractional", base, base.Add(250 * time.Millisecond), 0.25},
		{"same instant", base, base, 0},
		{"time moved backward", base, base.Add(-time.Minute), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedSeconds(tt.from, tt.to); got != tt.want {
				t.Errorf("ElapsedSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("SystemClock.Now() = %v, want between %v and %v", got, before, after)
	}
}
