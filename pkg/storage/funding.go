package storage

import (
	"context"

	"mca/pkg/domain"
)

// FundingFilter selects fundings. Empty fields do not filter; a filter with
// no field set matches every funding.
type FundingFilter struct {
	IDs           []domain.FundingID
	ApplicationID *domain.ApplicationID
	MerchantID    *domain.MerchantID
	FunderID      *domain.PartyID
	Statuses      []domain.FundingStatus
}

// FundingStorage persists applications and fundings.
type FundingStorage interface {
	StoreApplications(ctx context.Context, applications ...domain.Application) ([]domain.Application, error)
	ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error)

	StoreFundings(ctx context.Context, fundings ...domain.Funding) ([]domain.Funding, error)
	FundingByID(ctx context.Context, id domain.FundingID) (*domain.Funding, error)
	// LockFunding reads a funding and locks its row until the transaction
	// ends. It returns ErrNotInTx outside of a transaction.
	LockFunding(ctx context.Context, id domain.FundingID) (*domain.Funding, error)
	// Fundings returns the fundings matching filter ordered by funded date.
	Fundings(ctx context.Context, filter FundingFilter) ([]domain.Funding, error)
	UpdateFundingStatus(ctx context.Context, id domain.FundingID, status domain.FundingStatus) error
}
