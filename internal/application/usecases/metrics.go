package usecases

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilePasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nr01_reconcile_passes_total",
		Help: "Reconciliation passes by result (written, unchanged, skipped, failed)",
	}, []string{"result"})

	reconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nr01_reconcile_duration_seconds",
		Help:    "Duration of a reconciliation pass",
		Buckets: prometheus.DefBuckets,
	})

	themeMetricsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nr01_theme_metrics_computed_total",
		Help: "Theme metric computations by scope (sector or all)",
	}, []string{"scope"})

	responsesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nr01_responses_submitted_total",
		Help: "Questionnaire responses accepted",
	})

	reportsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nr01_reports_saved_total",
		Help: "Diagnostic report versions saved",
	})
)

func reconcileOutcome(written, skipped bool, err error) string {
	switch {
	case err != nil:
		return "failed"
	case skipped:
		return "skipped"
	case written:
		return "written"
	default:
		return "unchanged"
	}
}
