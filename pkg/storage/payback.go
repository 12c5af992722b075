package storage

import (
	"context"
	"time"

	"mca/pkg/domain"
)

// PaybackPlanUpdates lists the plan fields to change. Nil fields are left as is.
type PaybackPlanUpdates struct {
	Status *domain.PaybackPlanStatus
	// NextPaymentDate is set when non-nil; ClearNextPaymentDate sets it to NULL.
	NextPaymentDate      *time.Time
	ClearNextPaymentDate bool
}

// PaybackPlanStorage persists payback plans.
type PaybackPlanStorage interface {
	StorePaybackPlan(ctx context.Context, plan domain.PaybackPlan) (*domain.PaybackPlan, error)
	PaybackPlanByID(ctx context.Context, id domain.PaybackPlanID) (*domain.PaybackPlan, error)
	// LockPaybackPlan reads a plan and locks its row until the transaction
	// ends. Writers of a plan's paybacks hold it. It returns ErrNotInTx
	// outside of a transaction.
	LockPaybackPlan(ctx context.Context, id domain.PaybackPlanID) (*domain.PaybackPlan, error)
	PaybackPlansByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.PaybackPlan, error)
	UpdatePaybackPlan(ctx context.Context, id domain.PaybackPlanID, updates PaybackPlanUpdates) (*domain.PaybackPlan, error)
}

// PaybackUpdates lists the payback fields to change.
type PaybackUpdates struct {
	Status        domain.PaybackStatus
	FailureReason *string
	PaidDate      *time.Time
}

// PaybackStorage persists paybacks.
type PaybackStorage interface {
	StorePaybacks(ctx context.Context, paybacks ...domain.Payback) ([]domain.Payback, error)
	PaybackByID(ctx context.Context, id domain.PaybackID) (*domain.Payback, error)
	// LockPayback reads a payback and locks its row until the transaction
	// ends. It returns ErrNotInTx outside of a transaction.
	LockPayback(ctx context.Context, id domain.PaybackID) (*domain.Payback, error)
	// PaybacksByFundings returns paybacks ordered by due date.
	PaybacksByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Payback, error)
	// PaybacksByPlan returns the paybacks of a plan ordered by due date.
	PaybacksByPlan(ctx context.Context, planID domain.PaybackPlanID) ([]domain.Payback, error)
	UpdatePayback(ctx context.Context, id domain.PaybackID, updates PaybackUpdates) (*domain.Payback, error)
	// CancelScheduledPaybacks cancels the scheduled paybacks of a plan due on
	// or after from and returns how many were cancelled.
	CancelScheduledPaybacks(ctx context.Context, planID domain.PaybackPlanID, from time.Time) (int64, error)
	// UpcomingPaybacks returns scheduled paybacks due in [from, to].
	UpcomingPaybacks(ctx context.Context, from, to time.Time) ([]domain.Payback, error)
}
