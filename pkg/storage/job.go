package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the job only
// becomes visible to workers once the transaction commits.
type JobStorage interface {
	// AddJob reports false when the job was skipped as a duplicate of an
	// existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
