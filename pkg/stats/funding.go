// Package stats derives financial figures for fundings and rolls them up per
// application, merchant, funder and syndicator. Every function is pure: the
// caller loads the related collections and passes them in.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"mca/pkg/calendar"
	"mca/pkg/domain"
	"mca/pkg/schedule"
)

// FundingInput is a funding with the collections its figures derive from.
// Installments are the generated schedule of the funding's active plans.
type FundingInput struct {
	Funding      domain.Funding
	Fees         []domain.Fee
	Expenses     []domain.Expense
	Intents      []domain.Intent
	Syndications []domain.Syndication
	Paybacks     []domain.Payback
	Installments []schedule.Installment
}

// FundingStats are the derived figures of a single funding.
type FundingStats struct {
	FundingID     domain.FundingID     `json:"fundingId"`
	ApplicationID domain.ApplicationID `json:"applicationId"`
	MerchantID    domain.MerchantID    `json:"merchantId"`
	FunderID      domain.PartyID       `json:"funderId"`
	Status        domain.FundingStatus `json:"status"`

	FundedAmount  decimal.Decimal `json:"fundedAmount"`
	PaybackAmount decimal.Decimal `json:"paybackAmount"`
	FactorRate    decimal.Decimal `json:"factorRate"`

	FeeAmount        decimal.Decimal `json:"feeAmount"`
	UpfrontFeeAmount decimal.Decimal `json:"upfrontFeeAmount"`
	ExpenseAmount    decimal.Decimal `json:"expenseAmount"`
	NetFundedAmount  decimal.Decimal `json:"netFundedAmount"`

	DisbursedAmount           decimal.Decimal `json:"disbursedAmount"`
	PendingDisbursementAmount decimal.Decimal `json:"pendingDisbursementAmount"`
	CommissionAmount          decimal.Decimal `json:"commissionAmount"`
	PaidCommissionAmount      decimal.Decimal `json:"paidCommissionAmount"`

	SyndicatedAmount        decimal.Decimal `json:"syndicatedAmount"`
	SyndicatedPercent       decimal.Decimal `json:"syndicatedPercent"`
	SyndicationPayoutAmount decimal.Decimal `json:"syndicationPayoutAmount"`

	PaidBackAmount decimal.Decimal `json:"paidBackAmount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	FailedAmount   decimal.Decimal `json:"failedAmount"`
	PaidCount      int             `json:"paidCount"`
	FailedCount    int             `json:"failedCount"`

	BalanceAmount      decimal.Decimal `json:"balanceAmount"`
	PaidPercent        decimal.Decimal `json:"paidPercent"`
	ExpectedToDate     decimal.Decimal `json:"expectedToDate"`
	PerformancePercent decimal.Decimal `json:"performancePercent"`
	RetainedAmount     decimal.Decimal `json:"retainedAmount"`
	ProfitAmount       decimal.Decimal `json:"profitAmount"`

	NextPaybackDate *time.Time `json:"nextPaybackDate,omitempty"`
	AsOf            time.Time  `json:"asOf"`
}

var hundred = decimal.NewFromInt(100) //nolint: gochecknoglobals

// Funding computes the figures of in as of asOf. Cancelled intents,
// syndications and paybacks never count.
func Funding(in FundingInput, asOf time.Time) FundingStats {
	f := in.Funding
	asOf = calendar.Date(asOf)

	s := FundingStats{
		FundingID:     f.ID,
		ApplicationID: f.ApplicationID,
		MerchantID:    f.MerchantID,
		FunderID:      f.FunderID,
		Status:        f.Status,
		FundedAmount:  domain.Money(f.FundedAmount),
		PaybackAmount: domain.Money(f.PaybackAmount),
		FactorRate:    f.FactorRate(),
		AsOf:          asOf,
	}

	for _, fee := range in.Fees {
		s.FeeAmount = s.FeeAmount.Add(fee.Amount)
		if fee.Upfront {
			s.UpfrontFeeAmount = s.UpfrontFeeAmount.Add(fee.Amount)
		}
	}
	for _, e := range in.Expenses {
		s.ExpenseAmount = s.ExpenseAmount.Add(e.Amount)
	}
	s.NetFundedAmount = s.FundedAmount.Sub(s.UpfrontFeeAmount)

	for _, it := range in.Intents {
		switch it.Kind {
		case domain.IntentKindDisbursement:
			switch it.Status {
			case domain.IntentStatusSucceeded:
				s.DisbursedAmount = s.DisbursedAmount.Add(it.Amount)
			case domain.IntentStatusScheduled, domain.IntentStatusPending:
				s.PendingDisbursementAmount = s.PendingDisbursementAmount.Add(it.Amount)
			}
		case domain.IntentKindCommission:
			if it.Status != domain.IntentStatusCancelled {
				s.CommissionAmount = s.CommissionAmount.Add(it.Amount)
			}
			if it.Status == domain.IntentStatusSucceeded {
				s.PaidCommissionAmount = s.PaidCommissionAmount.Add(it.Amount)
			}
		case domain.IntentKindSyndicationPayout:
			if it.Status == domain.IntentStatusSucceeded {
				s.SyndicationPayoutAmount = s.SyndicationPayoutAmount.Add(it.Amount)
			}
		}
	}

	for _, syn := range in.Syndications {
		if syn.Status == domain.SyndicationStatusActive {
			s.SyndicatedAmount = s.SyndicatedAmount.Add(syn.ParticipationAmount)
		}
	}
	s.SyndicatedPercent = domain.Percent(s.SyndicatedAmount, s.FundedAmount)

	for _, p := range in.Paybacks {
		switch p.Status {
		case domain.PaybackStatusPaid:
			s.PaidBackAmount = s.PaidBackAmount.Add(p.Amount)
			s.PaidCount++
		case domain.PaybackStatusFailed:
			s.FailedAmount = s.FailedAmount.Add(p.Amount)
			s.FailedCount++
		case domain.PaybackStatusScheduled, domain.PaybackStatusPending:
			s.PendingAmount = s.PendingAmount.Add(p.Amount)

			due := calendar.Date(p.DueDate)
			if !due.Before(asOf) && (s.NextPaybackDate == nil || due.Before(*s.NextPaybackDate)) {
				s.NextPaybackDate = &due
			}
		}
	}

	s.BalanceAmount = decimal.Max(s.PaybackAmount.Sub(s.PaidBackAmount), decimal.Zero)
	s.PaidPercent = domain.Percent(s.PaidBackAmount, s.PaybackAmount)
	s.ExpectedToDate = schedule.ExpectedToDate(in.Installments, asOf)
	if s.ExpectedToDate.IsPositive() {
		s.PerformancePercent = domain.Percent(s.PaidBackAmount, s.ExpectedToDate)
	} else {
		s.PerformancePercent = hundred
	}
	s.RetainedAmount = s.PaidBackAmount.Sub(s.SyndicationPayoutAmount)
	s.ProfitAmount = s.PaidBackAmount.Sub(s.NetFundedAmount).Sub(s.PaidCommissionAmount).Sub(s.ExpenseAmount)

	return s.rounded()
}

func (s FundingStats) rounded() FundingStats {
	for _, d := range []*decimal.Decimal{
		&s.FeeAmount, &s.UpfrontFeeAmount, &s.ExpenseAmount, &s.NetFundedAmount,
		&s.DisbursedAmount, &s.PendingDisbursementAmount, &s.CommissionAmount, &s.PaidCommissionAmount,
		&s.SyndicatedAmount, &s.SyndicationPayoutAmount,
		&s.PaidBackAmount, &s.PendingAmount, &s.FailedAmount,
		&s.BalanceAmount, &s.ExpectedToDate, &s.RetainedAmount, &s.ProfitAmount,
	} {
		*d = domain.Money(*d)
	}

	return s
}
