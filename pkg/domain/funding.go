package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingStatus is the performance state of a funding.
type FundingStatus string

const (
	FundingStatusPending    FundingStatus = "pending"
	FundingStatusPerforming FundingStatus = "performing"
	FundingStatusSlowPay    FundingStatus = "slow_pay"
	FundingStatusDefault    FundingStatus = "default"
	FundingStatusPaidOff    FundingStatus = "paid_off"
	FundingStatusCancelled  FundingStatus = "cancelled"
)

// Funding is an advance made by a funder to a merchant against an approved
// application. The merchant owes PaybackAmount, collected through payback plans.
type Funding struct {
	ID            FundingID       `json:"id"`
	ApplicationID ApplicationID   `json:"applicationId"`
	MerchantID    MerchantID      `json:"merchantId"`
	FunderID      PartyID         `json:"funderId"`
	ISOID         PartyID         `json:"isoId"`
	FundedAmount  decimal.Decimal `json:"fundedAmount"`
	PaybackAmount decimal.Decimal `json:"paybackAmount"`
	Status        FundingStatus   `json:"status"`
	FundedDate    time.Time       `json:"fundedDate"`
	Merchant      Contact         `json:"merchant"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FactorRate is payback over funded amount, or zero for an unfunded advance.
func (f Funding) FactorRate() decimal.Decimal {
	if !f.FundedAmount.IsPositive() {
		return decimal.Zero
	}

	return f.PaybackAmount.DivRound(f.FundedAmount, 4)
}
