package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"mca/internal/rollup"
	"mca/pkg/logger"
	"mca/pkg/metrics"
	"mca/pkg/serrors"
)

// StatsRefreshWorker recomputes and caches the stats of a funding.
type StatsRefreshWorker struct {
	river.WorkerDefaults[rollup.RefreshArgs]

	rollup rollup.Rollup
}

func NewStatsRefreshWorker(rollup rollup.Rollup) *StatsRefreshWorker {
	return &StatsRefreshWorker{rollup: rollup}
}

// Work cancels the job when the funding is gone; other errors are retried.
func (w *StatsRefreshWorker) Work(ctx context.Context, job *river.Job[rollup.RefreshArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("job_id", job.ID), zap.Stringer("funding_id", job.Args.FundingID))

	started := time.Now()
	_, err := w.rollup.Refresh(ctx, job.Args.FundingID)
	metrics.RecordJob(job.Kind, err, time.Since(started))
	if err != nil {
		if serrors.IsPermanent(err) {
			logger.Warn(ctx, "dropping stats refresh", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error refreshing funding stats", zap.Error(err))

		return fmt.Errorf("could not refresh funding stats: %w", err)
	}

	return nil
}
