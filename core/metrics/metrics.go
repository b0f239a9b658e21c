package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts reconciliation runs by outcome.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bom_matcher_runs_total",
			Help: "Total number of reconciliation runs",
		},
		[]string{"status"},
	)

	// TokensTotal counts reconciled designators by classification.
	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bom_matcher_tokens_total",
			Help: "Total number of reconciled designators",
		},
		[]string{"classification"},
	)

	// DiscardedLinesTotal counts skipped freeform lines per input side.
	DiscardedLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bom_matcher_discarded_lines_total",
			Help: "Total number of freeform lines skipped during tokenizing",
		},
		[]string{"side"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bom_matcher_run_duration_seconds",
			Help:    "Duration of reconciliation runs",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)
)

// RecordRun records the outcome and duration of one run.
func RecordRun(status string, started time.Time) {
	RunsTotal.WithLabelValues(status).Inc()
	RunDuration.Observe(time.Since(started).Seconds())
}

// RecordClassification adds n designators under a classification.
func RecordClassification(classification string, n int) {
	if n > 0 {
		TokensTotal.WithLabelValues(classification).Add(float64(n))
	}
}

// RecordDiscarded adds n skipped lines for an input side.
func RecordDiscarded(side string, n int) {
	if n > 0 {
		DiscardedLinesTotal.WithLabelValues(side).Add(float64(n))
	}
}
