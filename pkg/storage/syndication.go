package storage

import (
	"context"

	"mca/pkg/domain"
)

// SyndicationStorage persists syndications and syndication offers.
type SyndicationStorage interface {
	StoreSyndications(ctx context.Context, syndications ...domain.Syndication) ([]domain.Syndication, error)
	SyndicationsByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Syndication, error)
	SyndicationsBySyndicator(ctx context.Context, syndicatorID domain.PartyID) ([]domain.Syndication, error)

	StoreSyndicationOffers(ctx context.Context, offers ...domain.SyndicationOffer) ([]domain.SyndicationOffer, error)
	SyndicationOffersBySyndicator(ctx context.Context, syndicatorID domain.PartyID) ([]domain.SyndicationOffer, error)
}
