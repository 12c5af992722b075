// Package metrics holds the Prometheus collectors of the backend. They are
// registered on the default registerer served by the ops server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mca"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

var ( //nolint: gochecknoglobals
	paybackResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payback",
			Name:      "results_total",
			Help:      "Payback results recorded, by resulting status.",
		},
		[]string{"status"},
	)

	jobRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "job_runs_total",
			Help:      "Background jobs processed, by kind and outcome.",
		},
		[]string{"kind", "result"},
	)

	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "job_duration_seconds",
			Help:      "Duration of background jobs.",
			Buckets:   DefaultBuckets,
		},
		[]string{"kind"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "messages_total",
			Help:      "Notifications attempted, by template and outcome.",
		},
		[]string{"template", "result"},
	)
)

func init() { //nolint: gochecknoinits
	prometheus.MustRegister(paybackResults, jobRuns, jobDuration, notifications)
}

func result(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

// RecordPaybackResult counts a payback moving to status.
func RecordPaybackResult(status string) {
	paybackResults.WithLabelValues(status).Inc()
}

// RecordJob counts a finished job and observes its duration.
func RecordJob(kind string, err error, took time.Duration) {
	jobRuns.WithLabelValues(kind, result(err)).Inc()
	jobDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func RecordNotification(template string, err error) {
	notifications.WithLabelValues(template, result(err)).Inc()
}
