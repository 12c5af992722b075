package stats

import (
	"github.com/shopspring/decimal"

	"mca/pkg/domain"
)

// Totals aggregates the figures of several fundings.
type Totals struct {
	Count            int             `json:"count"`
	FundedAmount     decimal.Decimal `json:"fundedAmount"`
	PaybackAmount    decimal.Decimal `json:"paybackAmount"`
	PaidBackAmount   decimal.Decimal `json:"paidBackAmount"`
	BalanceAmount    decimal.Decimal `json:"balanceAmount"`
	FeeAmount        decimal.Decimal `json:"feeAmount"`
	ExpenseAmount    decimal.Decimal `json:"expenseAmount"`
	DisbursedAmount  decimal.Decimal `json:"disbursedAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	SyndicatedAmount decimal.Decimal `json:"syndicatedAmount"`
	ProfitAmount     decimal.Decimal `json:"profitAmount"`
	PaidPercent      decimal.Decimal `json:"paidPercent"`
}

// Aggregate sums fundings into Totals.
func Aggregate(fundings []FundingStats) Totals {
	var t Totals
	for _, f := range fundings {
		t.Count++
		t.FundedAmount = t.FundedAmount.Add(f.FundedAmount)
		t.PaybackAmount = t.PaybackAmount.Add(f.PaybackAmount)
		t.PaidBackAmount = t.PaidBackAmount.Add(f.PaidBackAmount)
		t.BalanceAmount = t.BalanceAmount.Add(f.BalanceAmount)
		t.FeeAmount = t.FeeAmount.Add(f.FeeAmount)
		t.ExpenseAmount = t.ExpenseAmount.Add(f.ExpenseAmount)
		t.DisbursedAmount = t.DisbursedAmount.Add(f.DisbursedAmount)
		t.CommissionAmount = t.CommissionAmount.Add(f.CommissionAmount)
		t.SyndicatedAmount = t.SyndicatedAmount.Add(f.SyndicatedAmount)
		t.ProfitAmount = t.ProfitAmount.Add(f.ProfitAmount)
	}
	t.PaidPercent = domain.Percent(t.PaidBackAmount, t.PaybackAmount)

	return t
}

// GroupBy aggregates fundings sharing the same key.
func GroupBy[K comparable](fundings []FundingStats, key func(FundingStats) K) map[K]Totals {
	groups := make(map[K][]FundingStats)
	for _, f := range fundings {
		k := key(f)
		groups[k] = append(groups[k], f)
	}

	out := make(map[K]Totals, len(groups))
	for k, g := range groups {
		out[k] = Aggregate(g)
	}

	return out
}

// ByApplication groups fundings per application.
func ByApplication(fundings []FundingStats) map[domain.ApplicationID]Totals {
	return GroupBy(fundings, func(f FundingStats) domain.ApplicationID { return f.ApplicationID })
}

// ByMerchant groups fundings per merchant.
func ByMerchant(fundings []FundingStats) map[domain.MerchantID]Totals {
	return GroupBy(fundings, func(f FundingStats) domain.MerchantID { return f.MerchantID })
}

// ByFunder groups fundings per funder.
func ByFunder(fundings []FundingStats) map[domain.PartyID]Totals {
	return GroupBy(fundings, func(f FundingStats) domain.PartyID { return f.FunderID })
}
