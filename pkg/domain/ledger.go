package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeType classifies a fee charged on a funding.
type FeeType string

const (
	FeeTypeOrigination FeeType = "origination"
	FeeTypeACH         FeeType = "ach"
	FeeTypeNSF         FeeType = "nsf"
	FeeTypeWire        FeeType = "wire"
	FeeTypeOther       FeeType = "other"
)

// Fee is charged to the merchant. Upfront fees are deducted from the disbursement.
type Fee struct {
	ID        FeeID           `json:"id"`
	FundingID FundingID       `json:"fundingId"`
	Type      FeeType         `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Upfront   bool            `json:"upfront"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Expense is a cost carried by the funder on a funding.
type Expense struct {
	ID          ExpenseID       `json:"id"`
	FundingID   FundingID       `json:"fundingId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IntentKind is the kind of money movement an intent describes.
type IntentKind string

const (
	IntentKindDisbursement      IntentKind = "disbursement"
	IntentKindCommission        IntentKind = "commission"
	IntentKindSyndicationPayout IntentKind = "syndication_payout"
)

// IntentStatus is the execution state of an intent.
type IntentStatus string

const (
	IntentStatusScheduled IntentStatus = "scheduled"
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusSucceeded IntentStatus = "succeeded"
	IntentStatusFailed    IntentStatus = "failed"
	IntentStatusCancelled IntentStatus = "cancelled"
)

// Intent is a scheduled financial movement prior to its settlement.
type Intent struct {
	ID            IntentID        `json:"id"`
	FundingID     FundingID       `json:"fundingId"`
	Kind          IntentKind      `json:"kind"`
	PayeeID       PartyID         `json:"payeeId"`
	SyndicationID *SyndicationID  `json:"syndicationId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        IntentStatus    `json:"status"`
	ScheduledDate time.Time       `json:"scheduledDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TransactionKind is the direction of a transaction from the funder's books.
type TransactionKind string

const (
	TransactionKindDebit  TransactionKind = "debit"
	TransactionKindCredit TransactionKind = "credit"
)

// TransactionSource names what produced a transaction.
type TransactionSource string

const (
	TransactionSourcePayback    TransactionSource = "payback"
	TransactionSourceIntent     TransactionSource = "intent"
	TransactionSourceAdjustment TransactionSource = "adjustment"
)

// Transaction is a settled movement of money. ReferenceID points at the
// payback or intent that produced it.
type Transaction struct {
	ID          TransactionID     `json:"id"`
	FundingID   FundingID         `json:"fundingId"`
	Kind        TransactionKind   `json:"kind"`
	Source      TransactionSource `json:"source"`
	ReferenceID uuid.UUID         `json:"referenceId"`
	Amount      decimal.Decimal   `json:"amount"`
	SettledAt   time.Time         `json:"settledAt"`
}
