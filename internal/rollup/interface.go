package rollup

import (
	"context"

	"mca/pkg/domain"
	"mca/pkg/stats"
)

// Rollup computes funding figures on read and their aggregates per
// application, merchant, funder and syndicator.
//
//go:generate mockgen -package mockrollup -source=interface.go -destination=mock/mockrollup.go *
type Rollup interface {
	FundingStats(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error)
	// CachedFundingStats returns the snapshot persisted by the last Refresh.
	CachedFundingStats(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error)
	ApplicationStats(ctx context.Context, applicationID domain.ApplicationID) (*stats.Totals, error)
	MerchantStats(ctx context.Context, merchantID domain.MerchantID) (*stats.Totals, error)
	FunderStats(ctx context.Context, funderID domain.PartyID) (*stats.Totals, error)
	SyndicatorStats(ctx context.Context, syndicatorID domain.PartyID) (*stats.SyndicatorStats, error)
	// Refresh recomputes the figures of a funding and persists the snapshot.
	Refresh(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error)
}
