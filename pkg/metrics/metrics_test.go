package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"mca/pkg/metrics"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metric:
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if labels[l.GetName()] != l.GetValue() {
					continue metric
				}
			}

			return m.GetCounter().GetValue()
		}
	}

	return 0
}

func TestRecordJob(t *testing.T) {
	labels := map[string]string{"kind": "test_job", "result": "error"}
	before := counterValue(t, "mca_worker_job_runs_total", labels)

	metrics.RecordJob("test_job", errors.New("boom"), 20*time.Millisecond)
	metrics.RecordJob("test_job", nil, 10*time.Millisecond)

	require.InDelta(t, before+1, counterValue(t, "mca_worker_job_runs_total", labels), 0)
	require.InDelta(t, 1, counterValue(t, "mca_worker_job_runs_total",
		map[string]string{"kind": "test_job", "result": "ok"}), 0)
}

func TestRecordPaybackResult(t *testing.T) {
	metrics.RecordPaybackResult("paid")
	metrics.RecordPaybackResult("paid")
	metrics.RecordNotification("payback_failed", nil)

	require.InDelta(t, 2, counterValue(t, "mca_payback_results_total", map[string]string{"status": "paid"}), 0)
	require.InDelta(t, 1, counterValue(t, "mca_notifier_messages_total",
		map[string]string{"template": "payback_failed", "result": "ok"}), 0)
}
