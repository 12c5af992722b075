package rollup

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"mca/pkg/domain"
)

// RefreshArgs asks a worker to recompute and persist the stats of a funding.
type RefreshArgs struct {
	FundingID domain.FundingID `json:"fundingId" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// NewRefreshArgs builds refresh job args. Refreshes of the same funding
// enqueued within uniquePeriod while one is still waiting are coalesced.
func NewRefreshArgs(fundingID domain.FundingID, maxAttempts int, uniquePeriod time.Duration) RefreshArgs {
	return RefreshArgs{
		FundingID:    fundingID,
		maxAttempts:  maxAttempts,
		uniquePeriod: uniquePeriod,
	}
}

func (RefreshArgs) Kind() string { return "RefreshFundingStatsJob" }

func (args RefreshArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// a completed refresh does not count: later changes need a new one
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
