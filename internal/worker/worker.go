// Package worker runs the background jobs of the backend on River.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"

	"mca/internal/config"
	"mca/internal/payback"
	"mca/internal/rollup"
	"mca/pkg/logger"
)

// Options configure the job runner.
type Options struct {
	MaxWorkers int
	// ReminderSchedule triggers the upcoming payback reminder; nil disables it.
	ReminderSchedule    cron.Schedule
	ReminderHorizonDays int
	// UnavailableSnooze delays a notification when the mail relay is down,
	// at most UnavailableMaxSnoozes times before regular retries take over.
	UnavailableSnooze     time.Duration
	UnavailableMaxSnoozes int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	options := Options{
		MaxWorkers:          cfg.Worker.MaxWorkers,
		ReminderHorizonDays: cfg.Worker.ReminderHorizonDays,
		UnavailableSnooze:     time.Minute,
		UnavailableMaxSnoozes: 60,
	}

	if cfg.Worker.ReminderCron != "" {
		schedule, err := cron.ParseStandard(cfg.Worker.ReminderCron)
		if err != nil {
			return Options{}, fmt.Errorf("could not parse reminder cron %q: %w", cfg.Worker.ReminderCron, err)
		}
		options.ReminderSchedule = schedule
	}

	return options, nil
}

// Services are the domain services the workers delegate to.
type Services struct {
	Payback payback.Service
	Rollup  rollup.Rollup
}

// Start registers every worker and starts processing jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	services Services,
	options Options,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewStatsRefreshWorker(services.Rollup))
	river.AddWorker(workers, NewPaybackFailedWorker(services.Payback,
		options.UnavailableSnooze, options.UnavailableMaxSnoozes))
	river.AddWorker(workers, NewReminderWorker(services.Payback))

	var periodic []*river.PeriodicJob
	if options.ReminderSchedule != nil {
		horizon := options.ReminderHorizonDays
		periodic = append(periodic, river.NewPeriodicJob(
			options.ReminderSchedule,
			func() (river.JobArgs, *river.InsertOpts) {
				return ReminderArgs{HorizonDays: horizon}, nil
			},
			nil,
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(options.MaxWorkers, 1)},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
