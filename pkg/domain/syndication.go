package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SyndicationStatus is the lifecycle state of a syndication.
type SyndicationStatus string

const (
	SyndicationStatusActive    SyndicationStatus = "active"
	SyndicationStatusClosed    SyndicationStatus = "closed"
	SyndicationStatusCancelled SyndicationStatus = "cancelled"
)

// Syndication is a syndicator's participation in a funding. The syndicator is
// entitled to ParticipationPercent of the payback, less ManagementFeePercent.
type Syndication struct {
	ID                   SyndicationID     `json:"id"`
	FundingID            FundingID         `json:"fundingId"`
	SyndicatorID         PartyID           `json:"syndicatorId"`
	ParticipationAmount  decimal.Decimal   `json:"participationAmount"`
	ParticipationPercent decimal.Decimal   `json:"participationPercent"`
	ManagementFeePercent decimal.Decimal   `json:"managementFeePercent"`
	Status               SyndicationStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SyndicationOfferStatus is the state of an offer made to a syndicator.
type SyndicationOfferStatus string

const (
	SyndicationOfferStatusPending  SyndicationOfferStatus = "pending"
	SyndicationOfferStatusAccepted SyndicationOfferStatus = "accepted"
	SyndicationOfferStatusDeclined SyndicationOfferStatus = "declined"
	SyndicationOfferStatusExpired  SyndicationOfferStatus = "expired"
)

// SyndicationOffer invites a syndicator to participate in a funding.
type SyndicationOffer struct {
	ID            SyndicationOfferID     `json:"id"`
	FundingID     FundingID              `json:"fundingId"`
	SyndicatorID  PartyID                `json:"syndicatorId"`
	OfferedAmount decimal.Decimal        `json:"offeredAmount"`
	Status        SyndicationOfferStatus `json:"status"`
	ExpiresAt     time.Time              `json:"expiresAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
