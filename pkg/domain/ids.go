package domain

import "github.com/google/uuid"

// ApplicationID uniquely identifies an application.
type ApplicationID uuid.UUID

// FundingID uniquely identifies a funding.
type FundingID uuid.UUID

// MerchantID uniquely identifies a merchant.
type MerchantID uuid.UUID

// PartyID identifies a counterparty: a funder, an ISO, a syndicator or any
// other payee of an intent.
type PartyID uuid.UUID

// PaybackPlanID uniquely identifies a payback plan.
type PaybackPlanID uuid.UUID

// PaybackID uniquely identifies a single payback.
type PaybackID uuid.UUID

// SyndicationID uniquely identifies a syndication.
type SyndicationID uuid.UUID

// SyndicationOfferID uniquely identifies a syndication offer.
type SyndicationOfferID uuid.UUID

// IntentID uniquely identifies an intent.
type IntentID uuid.UUID

// TransactionID uniquely identifies a transaction.
type TransactionID uuid.UUID

// FeeID uniquely identifies a fee.
type FeeID uuid.UUID

// ExpenseID uniquely identifies an expense.
type ExpenseID uuid.UUID

func (id ApplicationID) String() string      { return uuid.UUID(id).String() }
func (id FundingID) String() string          { return uuid.UUID(id).String() }
func (id MerchantID) String() string         { return uuid.UUID(id).String() }
func (id PartyID) String() string            { return uuid.UUID(id).String() }
func (id PaybackPlanID) String() string      { return uuid.UUID(id).String() }
func (id PaybackID) String() string          { return uuid.UUID(id).String() }
func (id SyndicationID) String() string      { return uuid.UUID(id).String() }
func (id SyndicationOfferID) String() string { return uuid.UUID(id).String() }
func (id IntentID) String() string           { return uuid.UUID(id).String() }
func (id TransactionID) String() string      { return uuid.UUID(id).String() }
func (id FeeID) String() string              { return uuid.UUID(id).String() }
func (id ExpenseID) String() string          { return uuid.UUID(id).String() }

// The ids marshal as their canonical string form in JSON and job args.

func (id ApplicationID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id FundingID) MarshalText() ([]byte, error)          { return uuid.UUID(id).MarshalText() }
func (id MerchantID) MarshalText() ([]byte, error)         { return uuid.UUID(id).MarshalText() }
func (id PartyID) MarshalText() ([]byte, error)            { return uuid.UUID(id).MarshalText() }
func (id PaybackPlanID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id PaybackID) MarshalText() ([]byte, error)          { return uuid.UUID(id).MarshalText() }
func (id SyndicationID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id SyndicationOfferID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id IntentID) MarshalText() ([]byte, error)           { return uuid.UUID(id).MarshalText() }
func (id TransactionID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id FeeID) MarshalText() ([]byte, error)              { return uuid.UUID(id).MarshalText() }
func (id ExpenseID) MarshalText() ([]byte, error)          { return uuid.UUID(id).MarshalText() }

func (id *ApplicationID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *FundingID) UnmarshalText(b []byte) error          { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *MerchantID) UnmarshalText(b []byte) error         { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PartyID) UnmarshalText(b []byte) error            { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PaybackPlanID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PaybackID) UnmarshalText(b []byte) error          { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *SyndicationID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *SyndicationOfferID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *IntentID) UnmarshalText(b []byte) error           { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *TransactionID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *FeeID) UnmarshalText(b []byte) error              { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ExpenseID) UnmarshalText(b []byte) error          { return (*uuid.UUID)(id).UnmarshalText(b) }
