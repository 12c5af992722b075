package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mca/internal/payback"
	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/notifier"
	"mca/pkg/storage"
)

func TestPgSQL_LockPaybackPlan_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := pg.LockPaybackPlan(context.Background(), domain.PaybackPlanID(uuid.New()))
	require.ErrorIs(t, err, storage.ErrNotInTx)

	_, err = pg.LockFunding(context.Background(), domain.FundingID(uuid.New()))
	require.ErrorIs(t, err, storage.ErrNotInTx)
}

func TestPgSQL_LockPaybackPlan_BlocksSecondTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	f := seedFunding(t, pg, domain.MerchantID(uuid.New()), domain.PartyID(uuid.New()))
	plan, _ := seedPlan(t, pg, f.ID)

	first, err := pg.Begin(ctx)
	require.NoError(t, err)
	locked, err := first.LockPaybackPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Equal(t, plan.ID, locked.ID)

	acquired := make(chan time.Time, 1)
	go func() {
		_ = pg.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.LockPaybackPlan(ctx, plan.ID); err != nil {
				return err
			}
			acquired <- time.Now()

			return nil
		})
	}()

	select {
	case <-acquired:
		t.Fatal("second transaction locked the plan while the first held it")
	case <-time.After(200 * time.Millisecond):
	}

	released := time.Now()
	require.NoError(t, first.Commit())

	select {
	case at := <-acquired:
		require.False(t, at.Before(released))
	case <-time.After(5 * time.Second):
		t.Fatal("second transaction never locked the plan")
	}
}

func TestPgSQL_LockPaybackPlan_Missing(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		got, err := tx.LockPaybackPlan(ctx, domain.PaybackPlanID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)

		return nil
	})
	require.NoError(t, err)
}

// Settling the last two paybacks of a plan at the same time must still leave
// the plan completed with no next payment date.
func TestPaybackService_ConcurrentResultsCompletePlan(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)
	ctx := context.Background()

	service := payback.New(pg, notifier.NewLog(), payback.Options{
		Calendar:    calendar.New(),
		MaxAttempts: 3,
		Now:         func() time.Time { return day(time.March, 26) },
	})

	for range 5 {
		f := seedFunding(t, pg, domain.MerchantID(uuid.New()), domain.PartyID(uuid.New()))
		plan, paybacks := seedPlan(t, pg, f.ID)

		_, err := service.RecordResult(ctx, paybacks[0].ID, domain.PaybackStatusPaid, "")
		require.NoError(t, err)

		start := make(chan struct{})
		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i, p := range paybacks[1:] {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, errs[i] = service.RecordResult(ctx, p.ID, domain.PaybackStatusPaid, "")
			}()
		}
		close(start)
		wg.Wait()
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		got, err := pg.PaybackPlanByID(ctx, plan.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PaybackPlanStatusCompleted, got.Status)
		require.Nil(t, got.NextPaymentDate)
	}
}

// A pause racing a reschedule must not leave scheduled paybacks behind.
func TestPaybackService_PauseRacingReschedule(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)
	ctx := context.Background()

	service := payback.New(pg, notifier.NewLog(), payback.Options{
		Calendar:    calendar.New(),
		MaxAttempts: 3,
		Now:         func() time.Time { return day(time.March, 12) },
	})

	for range 5 {
		f := seedFunding(t, pg, domain.MerchantID(uuid.New()), domain.PartyID(uuid.New()))
		plan, _ := seedPlan(t, pg, f.ID)

		start := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			// a reschedule that loses the race sees a paused plan
			_, _ = service.Reschedule(ctx, plan.ID, day(time.March, 12))
		}()
		var pauseErr error
		go func() {
			defer wg.Done()
			<-start
			_, pauseErr = service.SetStatus(ctx, plan.ID, domain.PaybackPlanStatusPaused)
		}()
		close(start)
		wg.Wait()
		require.NoError(t, pauseErr)

		got, err := pg.PaybackPlanByID(ctx, plan.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PaybackPlanStatusPaused, got.Status)

		paybacks, err := pg.PaybacksByPlan(ctx, plan.ID)
		require.NoError(t, err)
		for _, p := range paybacks {
			if !p.DueDate.Before(day(time.March, 12)) {
				require.NotEqualf(t, domain.PaybackStatusScheduled, p.Status,
					"payback %d due %s is still scheduled", p.Seq, p.DueDate.Format(time.DateOnly))
			}
		}
	}
}
