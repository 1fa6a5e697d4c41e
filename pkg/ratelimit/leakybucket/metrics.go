package leakybucket

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/goadmit/pkg/metrics"
)

const limiterType = "leaky_bucket"

// MetricsLimiter wraps a Limiter with Prometheus metrics collection.
type MetricsLimiter struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new leaky bucket limiter with metrics enabled.
func NewWithMetrics(capacity, leakRatePerSecond int, name string) (Limiter, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{
		Capacity: capacity,
		LeakRate: float64(leakRatePerSecond),
	}, name, config)
}

// NewWithConfigAndMetrics creates a new leaky bucket limiter with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (Limiter, error) {
	baseLimiter, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}

	if !metricsConfig.Enabled {
		return baseLimiter, nil
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsLimiter{
		limiter:  baseLimiter,
		name:     name,
		registry: registry,
		enabled:  true,
	}, nil
}

// Allow reports whether an event arriving now may happen.
func (ml *MetricsLimiter) Allow() bool {
	return ml.observe(ml.limiter.Allow())
}

// AllowAt reports whether an event arriving at the given time may happen.
func (ml *MetricsLimiter) AllowAt(now time.Time) bool {
	return ml.observe(ml.limiter.AllowAt(now))
}

func (ml *MetricsLimiter) observe(allowed bool) bool {
	if ml.enabled {
		ml.registry.AdmitRequests.WithLabelValues(limiterType, ml.name).Inc()
		if allowed {
			ml.registry.AdmitAllowed.WithLabelValues(limiterType, ml.name).Inc()
		} else {
			ml.registry.AdmitDenied.WithLabelValues(limiterType, ml.name).Inc()
		}
		ml.registry.BucketLevel.WithLabelValues(limiterType, ml.name).Set(ml.limiter.Level())
	}
	return allowed
}

// Capacity returns the bucket capacity.
func (ml *MetricsLimiter) Capacity() int {
	return ml.limiter.Capacity()
}

// LeakRate returns the drain rate in units per second.
func (ml *MetricsLimiter) LeakRate() float64 {
	return ml.limiter.LeakRate()
}

// Level returns the current fill level of the bucket.
func (ml *MetricsLimiter) Level() float64 {
	level := ml.limiter.Level()
	if ml.enabled {
		ml.registry.BucketLevel.WithLabelValues(limiterType, ml.name).Set(level)
	}
	return level
}

// Available returns the available space in the bucket.
func (ml *MetricsLimiter) Available() float64 {
	return ml.limiter.Available()
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLimiter) EnableMetrics(config metrics.Config) error {
	ml.enabled = config.Enabled
	if config.Registry != nil {
		ml.registry = metrics.NewRegistry(config.Registry)
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (ml *MetricsLimiter) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLimiter) MetricsEnabled() bool {
	return ml.enabled
}
