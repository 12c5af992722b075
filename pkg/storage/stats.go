package storage

import (
	"context"

	"mca/pkg/domain"
	"mca/pkg/stats"
)

// StatsStorage caches computed funding stats.
type StatsStorage interface {
	// SaveFundingStats upserts the snapshot of a funding.
	SaveFundingStats(ctx context.Context, s stats.FundingStats) error
	// FundingStats returns the cached snapshot of a funding, or nil.
	FundingStats(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error)
}
