package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsObserveRewrite(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	metrics.ObserveRewrite("rewrite", "youtube-videoplayback", 120*time.Microsecond)
	metrics.ObserveRewrite("skip", "", 3*time.Microsecond)
	metrics.ObserveRewrite("error", "", time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("expected metrics gather to succeed: %v", err)
	}

	counts := map[string]bool{}
	for _, family := range families {
		counts[family.GetName()] = true
	}
	for _, name := range []string{
		"arcpath_rewrites_total",
		"arcpath_fuzzy_matches_total",
		"arcpath_rewrite_errors_total",
		"arcpath_rewrite_duration_seconds",
	} {
		if !counts[name] {
			t.Fatalf("expected metric family %q to be registered", name)
		}
	}
}

func TestMetricsNilReceiver(t *testing.T) {
	var metrics *Metrics
	metrics.ObserveRewrite("rewrite", "", time.Second)
}
