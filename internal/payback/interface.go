package payback

import (
	"context"
	"time"

	"mca/pkg/domain"
	"mca/pkg/schedule"
)

// Service manages payback plans and records collection results.
//
//go:generate mockgen -package mockpayback -source=interface.go -destination=mock/mockpayback.go *
type Service interface {
	// CreatePlan persists plan with its scheduled paybacks. A zero total
	// defaults to the funding's payback amount.
	CreatePlan(ctx context.Context, plan domain.PaybackPlan) (*domain.PaybackPlan, []domain.Payback, error)
	Preview(ctx context.Context, plan domain.PaybackPlan) ([]schedule.Installment, error)
	// RecordResult moves a scheduled or pending payback to paid, failed or pending.
	RecordResult(ctx context.Context,
		paybackID domain.PaybackID,
		status domain.PaybackStatus,
		reason string) (*domain.Payback, error)
	// Reschedule regenerates the outstanding balance of a plan from from on.
	Reschedule(ctx context.Context, planID domain.PaybackPlanID, from time.Time) ([]domain.Payback, error)
	SetStatus(ctx context.Context, planID domain.PaybackPlanID, status domain.PaybackPlanStatus) (*domain.PaybackPlan, error)
	Projection(ctx context.Context, planID domain.PaybackPlanID) (*schedule.Projection, error)
	// NotifyFailed alerts the collections team about a failed payback.
	NotifyFailed(ctx context.Context, paybackID domain.PaybackID) error
	// RemindUpcoming emails merchants about paybacks due within horizonDays
	// business days and returns how many reminders were sent.
	RemindUpcoming(ctx context.Context, horizonDays int) (int, error)
}
