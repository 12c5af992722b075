package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "new"
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusDeclined  ApplicationStatus = "declined"
	ApplicationStatusFunded    ApplicationStatus = "funded"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// Contact is the denormalized merchant contact copied onto applications and
// fundings for list views.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Application is a merchant's request for financing, submitted through an ISO.
type Application struct {
	ID              ApplicationID     `json:"id"`
	MerchantID      MerchantID        `json:"merchantId"`
	ISOID           PartyID           `json:"isoId"`
	RequestedAmount decimal.Decimal   `json:"requestedAmount"`
	Status          ApplicationStatus `json:"status"`
	Merchant        Contact           `json:"merchant"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
