package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	registry := NewRegistry(reg)

	registry.AdmitRequests.WithLabelValues("token_bucket", "api").Inc()
	registry.AdmitAllowed.WithLabelValues("token_bucket", "api").Inc()
	registry.AdmitDenied.WithLabelValues("leaky_bucket", "ingest").Add(2)
	registry.BucketLevel.WithLabelValues("leaky_bucket", "ingest").Set(4.5)

	if got := promtestutil.ToFloat64(registry.AdmitRequests.WithLabelValues("token_bucket", "api")); got != 1 {
		t.Errorf("AdmitRequests = %v, want 1", got)
	}
	if got := promtestutil.ToFloat64(registry.AdmitDenied.WithLabelValues("leaky_bucket", "ingest")); got != 2 {
		t.Errorf("AdmitDenied = %v, want 2", got)
	}
	if got := promtestutil.ToFloat64(registry.BucketLevel.WithLabelValues("leaky_bucket", "ingest")); got != 4.5 {
		t.Errorf("BucketLevel = %v, want 4.5", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if !config.Enabled {
		t.Error("default config should be enabled")
	}
	if config.Registry == nil {
		t.Error("default config should use the default registerer")
	}
}

func TestDefaultRegistryInitialized(t *testing.T) {
	if DefaultRegistry == nil {
		t.Fatal("DefaultRegistry should be initialized")
	}
}
