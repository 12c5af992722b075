package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"mca/internal/payback"
	"mca/pkg/logger"
	"mca/pkg/metrics"
	"mca/pkg/serrors"
)

// PaybackFailedWorker alerts the collections team about failed paybacks.
// Stale jobs, whose payback is gone or no longer failed, are cancelled, and so
// are alerts the relay rejects. While the mail relay is unavailable the job is
// snoozed up to maxSnoozes times and retried after that.
type PaybackFailedWorker struct {
	river.WorkerDefaults[payback.NotifyFailedArgs]

	service    payback.Service
	snooze     time.Duration
	maxSnoozes int
}

func NewPaybackFailedWorker(service payback.Service, snooze time.Duration, maxSnoozes int) *PaybackFailedWorker {
	return &PaybackFailedWorker{service: service, snooze: snooze, maxSnoozes: maxSnoozes}
}

func (w *PaybackFailedWorker) Work(ctx context.Context, job *river.Job[payback.NotifyFailedArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("job_id", job.ID), zap.Stringer("payback_id", job.Args.PaybackID))

	started := time.Now()
	err := w.service.NotifyFailed(ctx, job.Args.PaybackID)
	metrics.RecordJob(job.Kind, err, time.Since(started))
	if err != nil {
		if serrors.IsPermanent(err) {
			logger.Warn(ctx, "dropping payback failure notification", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error notifying payback failure", zap.Error(err))

		// a snooze does not use up an attempt but still counts in job.Attempt
		if errors.Is(err, serrors.ErrUnavailable) && job.Attempt <= w.maxSnoozes {
			return river.JobSnooze(w.snooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not notify payback failure: %w", err)
	}

	logger.Info(ctx, "payback failure notified")

	return nil
}

// ReminderArgs asks for reminders about paybacks due within HorizonDays
// business days.
type ReminderArgs struct {
	HorizonDays int `json:"horizonDays"`
}

func (ReminderArgs) Kind() string { return "RemindUpcomingPaybacksJob" }

// InsertOpts keeps several nodes from reminding merchants twice in one run.
func (ReminderArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ReminderWorker emails merchants about their upcoming paybacks.
type ReminderWorker struct {
	river.WorkerDefaults[ReminderArgs]

	service payback.Service
}

func NewReminderWorker(service payback.Service) *ReminderWorker {
	return &ReminderWorker{service: service}
}

func (w *ReminderWorker) Work(ctx context.Context, job *river.Job[ReminderArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("job_id", job.ID), zap.Int("horizon_days", job.Args.HorizonDays))

	started := time.Now()
	sent, err := w.service.RemindUpcoming(ctx, job.Args.HorizonDays)
	metrics.RecordJob(job.Kind, err, time.Since(started))
	if err != nil {
		if serrors.IsPermanent(err) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not send payback reminders: %w", err)
	}

	logger.Info(ctx, "payback reminders sent", zap.Int("sent", sent))

	return nil
}
