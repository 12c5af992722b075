package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"mca/pkg/domain"
	"mca/pkg/stats"
)

const fundingStatsTable = "funding_stats"

type pgFundingStats struct {
	FundingID uuid.UUID       `db:"funding_id"`
	Stats     json.RawMessage `db:"stats"`
}

// SaveFundingStats upserts the snapshot as JSONB.
func (p *PgSQL) SaveFundingStats(ctx context.Context, s stats.FundingStats) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal funding stats: %w", err)
	}

	_, err = p.Builder.Insert(fundingStatsTable).
		Rows(goqu.Record{
			"funding_id": uuid.UUID(s.FundingID),
			"stats":      string(b),
		}).
		OnConflict(goqu.DoUpdate("funding_id", goqu.Record{
			"stats":       goqu.L("EXCLUDED.stats"),
			"computed_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not save funding stats in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) FundingStats(ctx context.Context, fundingID domain.FundingID) (*stats.FundingStats, error) {
	var row pgFundingStats
	found, err := p.Builder.From(fundingStatsTable).
		Select("funding_id", "stats").
		Where(goqu.I("funding_id").Eq(uuid.UUID(fundingID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch funding stats from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	var s stats.FundingStats
	if err := json.Unmarshal(row.Stats, &s); err != nil {
		return nil, fmt.Errorf("could not unmarshal funding stats: %w", err)
	}

	return &s, nil
}
