package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"mca/pkg/domain"
	"mca/pkg/stats"
)

func TestPgSQL_FundingStats(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	f := seedFunding(t, pg, domain.MerchantID(uuid.New()), domain.PartyID(uuid.New()))

	got, err := pg.FundingStats(ctx, f.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	next := day(time.March, 17)
	s := stats.Funding(stats.FundingInput{Funding: f}, day(time.March, 10))
	s.NextPaybackDate = &next
	require.NoError(t, pg.SaveFundingStats(ctx, s))

	got, err = pg.FundingStats(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, f.ID, got.FundingID)
	require.Equal(t, f.MerchantID, got.MerchantID)
	requireAmount(t, "13500", got.BalanceAmount)
	require.NotNil(t, got.NextPaybackDate)
	require.True(t, next.Equal(*got.NextPaybackDate))

	s.PaidBackAmount = decimal.NewFromInt(500)
	require.NoError(t, pg.SaveFundingStats(ctx, s))

	got, err = pg.FundingStats(ctx, f.ID)
	require.NoError(t, err)
	requireAmount(t, "500", got.PaidBackAmount)
}
