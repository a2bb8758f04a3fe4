package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	rewritesTotal     *prometheus.CounterVec
	fuzzyMatchesTotal *prometheus.CounterVec
	errorsTotal       prometheus.Counter
	rewriteDuration   prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rewritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "arcpath_rewrites_total", Help: "Total rewrite calls"},
			[]string{"outcome"},
		),
		fuzzyMatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "arcpath_fuzzy_matches_total", Help: "Total fuzzy rule matches"},
			[]string{"rule"},
		),
		errorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "arcpath_rewrite_errors_total", Help: "Total failed rewrite calls"},
		),
		rewriteDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "arcpath_rewrite_duration_seconds",
				Help:    "Rewrite call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.rewritesTotal,
		m.fuzzyMatchesTotal,
		m.errorsTotal,
		m.rewriteDuration,
	)

	return m
}

func (m *Metrics) Handler(reg *prometheus.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveRewrite records one rewrite call. rule is empty when no fuzzy rule
// fired.
func (m *Metrics) ObserveRewrite(outcome, rule string, duration time.Duration) {
	if m == nil {
		return
	}

	m.rewritesTotal.WithLabelValues(outcome).Inc()
	m.rewriteDuration.Observe(duration.Seconds())

	if rule != "" {
		m.fuzzyMatchesTotal.WithLabelValues(rule).Inc()
	}
	if outcome == "error" {
		m.errorsTotal.Inc()
	}
}
