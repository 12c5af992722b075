package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mca/pkg/domain"
	"mca/pkg/storage"
)

func TestPgSQL_Fundings(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	merchantA := domain.MerchantID(uuid.New())
	merchantB := domain.MerchantID(uuid.New())
	funder := domain.PartyID(uuid.New())

	f1 := seedFunding(t, pg, merchantA, funder)
	f2 := seedFunding(t, pg, merchantA, domain.PartyID(uuid.New()))
	f3 := seedFunding(t, pg, merchantB, funder)

	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		got, err := pg.FundingByID(ctx, f1.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, f1.ID, got.ID)
		require.Equal(t, merchantA, got.MerchantID)
		require.Equal(t, "Joe's Diner", got.Merchant.Name)
		requireAmount(t, "10000", got.FundedAmount)
		requireAmount(t, "13500", got.PaybackAmount)
		requireAmount(t, "1.35", got.FactorRate())
		require.Equal(t, "2025-03-03", got.FundedDate.Format("2006-01-02"))
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		got, err := pg.FundingByID(ctx, domain.FundingID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("application", func(t *testing.T) {
		t.Parallel()

		app, err := pg.ApplicationByID(ctx, f1.ApplicationID)
		require.NoError(t, err)
		require.NotNil(t, app)
		require.Equal(t, domain.ApplicationStatusFunded, app.Status)
		requireAmount(t, "10000", app.RequestedAmount)

		res, err := pg.Fundings(ctx, storage.FundingFilter{ApplicationID: &f1.ApplicationID})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, f1.ID, res[0].ID)
	})

	t.Run("by merchant", func(t *testing.T) {
		t.Parallel()

		res, err := pg.Fundings(ctx, storage.FundingFilter{MerchantID: &merchantA})
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("by funder", func(t *testing.T) {
		t.Parallel()

		res, err := pg.Fundings(ctx, storage.FundingFilter{FunderID: &funder})
		require.NoError(t, err)
		require.Len(t, res, 2)
		ids := []domain.FundingID{res[0].ID, res[1].ID}
		require.ElementsMatch(t, []domain.FundingID{f1.ID, f3.ID}, ids)
	})

	t.Run("by ids and status", func(t *testing.T) {
		t.Parallel()

		res, err := pg.Fundings(ctx, storage.FundingFilter{
			IDs:      []domain.FundingID{f2.ID, f3.ID},
			Statuses: []domain.FundingStatus{domain.FundingStatusPerforming},
		})
		require.NoError(t, err)
		require.Len(t, res, 2)
	})
}

func TestPgSQL_UpdateFundingStatus(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	f := seedFunding(t, pg, domain.MerchantID(uuid.New()), domain.PartyID(uuid.New()))
	require.NoError(t, pg.UpdateFundingStatus(ctx, f.ID, domain.FundingStatusSlowPay))

	got, err := pg.FundingByID(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, domain.FundingStatusSlowPay, got.Status)
	require.False(t, got.UpdatedAt.IsZero())

	res, err := pg.Fundings(ctx, storage.FundingFilter{Statuses: []domain.FundingStatus{domain.FundingStatusPerforming}})
	require.NoError(t, err)
	require.Empty(t, res)
}
