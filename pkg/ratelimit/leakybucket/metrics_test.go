package leakybucket

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vnykmshr/goadmit/internal/testutil"
	"github.com/vnykmshr/goadmit/pkg/metrics"
)

func TestMetricsLimiterCounts(t *testing.T) {
	registry := prometheus.NewRegistry()
	limiter, err := NewWithConfigAndMetrics(Config{
		Capacity: 2,
		LeakRate: 1,
	}, "test_limiter", metrics.Config{Enabled: true, Registry: registry})
	testutil.AssertNoError(t, err)

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testutil.AssertEqual(t, limiter.AllowAt(t0), true)
	testutil.AssertEqual(t, limiter.AllowAt(t0), true)
	testutil.AssertEqual(t, limiter.AllowAt(t0), false)

	ml := limiter.(*MetricsLimiter)
	requests := promtestutil.ToFloat64(ml.registry.AdmitRequests.WithLabelValues(limiterType, "test_limiter"))
	allowed := promtestutil.ToFloat64(ml.registry.AdmitAllowed.WithLabelValues(limiterType, "test_limiter"))
	denied := promtestutil.ToFloat64(ml.registry.AdmitDenied.WithLabelValues(limiterType, "test_limiter"))

	testutil.AssertEqual(t, requests, 3.0)
	testutil.AssertEqual(t, allowed, 2.0)
	testutil.AssertEqual(t, denied, 1.0)
}

func TestMetricsDisabledPassthrough(t *testing.T) {
	limiter, err := NewWithConfigAndMetrics(Config{
		Capacity: 1,
		LeakRate: 1,
	}, "unused", metrics.Config{Enabled: false})
	testutil.AssertNoError(t, err)

	// Disabled metrics return the plain limiter, no decorator overhead.
	if _, ok := limiter.(*MetricsLimiter); ok {
		t.Error("disabled metrics should not wrap the limiter")
	}
	testutil.AssertEqual(t, limiter.AllowAt(time.Now()), true)
}

func TestMetricsToggle(t *testing.T) {
	limiter, err := NewWithMetrics(2, 1, "toggle_limiter")
	testutil.AssertNoError(t, err)

	ml, ok := limiter.(*MetricsLimiter)
	if !ok {
		t.Fatal("NewWithMetrics should return a MetricsLimiter")
	}
	testutil.AssertEqual(t, ml.MetricsEnabled(), true)

	ml.DisableMetrics()
	testutil.AssertEqual(t, ml.MetricsEnabled(), false)

	testutil.AssertNoError(t, ml.EnableMetrics(metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	}))
	testutil.AssertEqual(t, ml.MetricsEnabled(), true)
}
