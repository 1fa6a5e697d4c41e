// Package metrics provides Prometheus instrumentation for goadmit limiters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goadmit components.
type Registry struct {
	AdmitRequests *prometheus.CounterVec
	AdmitAllowed  *prometheus.CounterVec
	AdmitDenied   *prometheus.CounterVec
	BucketLevel   *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by goadmit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		AdmitRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "ratelimit",
				Name:      "requests_total",
				Help:      "Total number of admission checks",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		AdmitAllowed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "ratelimit",
				Name:      "allowed_total",
				Help:      "Total number of admitted events",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		AdmitDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "ratelimit",
				Name:      "denied_total",
				Help:      "Total number of denied events",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		BucketLevel: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goadmit",
				Subsystem: "ratelimit",
				Name:      "bucket_level",
				Help:      "Current bucket occupancy or available tokens",
			},
			[]string{"limiter_type", "limiter_name"},
		),
	}
}
