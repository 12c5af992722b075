package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often a payback plan debits the merchant.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Convention decides where a date falling on a non-business day is moved to.
type Convention string

const (
	// ConventionFollowing moves to the next business day.
	ConventionFollowing Convention = "following"
	// ConventionPreceding moves to the previous business day.
	ConventionPreceding Convention = "preceding"
	// ConventionModifiedFollowing moves to the next business day unless that
	// crosses into another month, in which case it moves to the previous one.
	ConventionModifiedFollowing Convention = "modified_following"
)

// PaybackPlanStatus is the lifecycle state of a payback plan.
type PaybackPlanStatus string

const (
	PaybackPlanStatusActive    PaybackPlanStatus = "active"
	PaybackPlanStatusPaused    PaybackPlanStatus = "paused"
	PaybackPlanStatusStopped   PaybackPlanStatus = "stopped"
	PaybackPlanStatusCompleted PaybackPlanStatus = "completed"
)

// PaybackPlan describes recurring debits against a merchant's account that
// repay TotalAmount of a funding. Either PaymentAmount or PaymentCount drives
// the split of TotalAmount across the generated dates.
type PaybackPlan struct {
	ID        PaybackPlanID `json:"id"`
	FundingID FundingID     `json:"fundingId"`

	Frequency Frequency `json:"frequency"`
	StartDate time.Time `json:"startDate"`
	// DayOfWeek anchors weekly and biweekly plans; nil means StartDate's weekday.
	DayOfWeek *time.Weekday `json:"dayOfWeek,omitempty"`
	// DayOfMonth anchors monthly plans; nil means StartDate's day.
	DayOfMonth *int `json:"dayOfMonth,omitempty"`

	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentCount  int             `json:"paymentCount,omitempty"`

	Convention   Convention `json:"convention"`
	SkipWeekends bool       `json:"skipWeekends"`

	Status          PaybackPlanStatus `json:"status"`
	NextPaymentDate *time.Time        `json:"nextPaymentDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaybackStatus is the collection state of a payback.
type PaybackStatus string

const (
	PaybackStatusScheduled PaybackStatus = "scheduled"
	PaybackStatusPending   PaybackStatus = "pending"
	PaybackStatusPaid      PaybackStatus = "paid"
	PaybackStatusFailed    PaybackStatus = "failed"
	PaybackStatusCancelled PaybackStatus = "cancelled"
)

// IsTerminal reports whether a payback in this state can no longer change.
func (s PaybackStatus) IsTerminal() bool {
	return s == PaybackStatusPaid || s == PaybackStatusFailed || s == PaybackStatusCancelled
}

// IsOpen reports whether the payback is still expected to be collected.
func (s PaybackStatus) IsOpen() bool {
	return s == PaybackStatusScheduled || s == PaybackStatusPending
}

// Payback is a single debit against the merchant. PlanID is nil for paybacks
// recorded outside of a plan.
type Payback struct {
	ID            PaybackID       `json:"id"`
	FundingID     FundingID       `json:"fundingId"`
	PlanID        *PaybackPlanID  `json:"planId,omitempty"`
	Seq           int             `json:"seq"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        PaybackStatus   `json:"status"`
	FailureReason string          `json:"failureReason,omitempty"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
