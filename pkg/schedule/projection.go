package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"mca/pkg/calendar"
	"mca/pkg/domain"
)

// Projection summarizes where a plan stands once paid has been collected.
// Collected money covers installments in order.
type Projection struct {
	NextDate        *time.Time      `json:"nextDate,omitempty"`
	RemainingCount  int             `json:"remainingCount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	EstimatedPayoff *time.Time      `json:"estimatedPayoff,omitempty"`
	ExpectedToDate  decimal.Decimal `json:"expectedToDate"`
}

// ExpectedToDate sums the installments due on or before asOf.
func ExpectedToDate(installments []Installment, asOf time.Time) decimal.Decimal {
	asOf = calendar.Date(asOf)
	sum := decimal.Zero
	for _, in := range installments {
		if !in.Date.After(asOf) {
			sum = sum.Add(in.Amount)
		}
	}

	return sum
}

// Project computes the projection of installments after paid was collected.
func Project(installments []Installment, paid decimal.Decimal, asOf time.Time) Projection {
	asOf = calendar.Date(asOf)
	p := Projection{
		RemainingAmount: decimal.Zero,
		ExpectedToDate:  ExpectedToDate(installments, asOf),
	}

	covered := domain.Money(paid)
	for _, in := range installments {
		if covered.GreaterThanOrEqual(in.Amount) {
			covered = covered.Sub(in.Amount)

			continue
		}

		owed := in.Amount.Sub(covered)
		covered = decimal.Zero
		p.RemainingCount++
		p.RemainingAmount = p.RemainingAmount.Add(owed)

		d := in.Date
		if p.NextDate == nil && !d.Before(asOf) {
			p.NextDate = &d
		}
		p.EstimatedPayoff = &d
	}

	return p
}
