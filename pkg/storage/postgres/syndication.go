package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"mca/pkg/domain"
)

const (
	syndicationsTable      = "syndications"
	syndicationOffersTable = "syndication_offers"
)

func (p *PgSQL) StoreSyndications(ctx context.Context,
	syndications ...domain.Syndication) ([]domain.Syndication, error) {
	return insertRows[domain.Syndication, PgSyndication](ctx, p.Builder, syndicationsTable, syndications)
}

func (p *PgSQL) SyndicationsByFundings(ctx context.Context,
	fundingIDs ...domain.FundingID) ([]domain.Syndication, error) {
	if len(fundingIDs) == 0 {
		return nil, nil
	}

	return selectRows[domain.Syndication, PgSyndication](ctx, p.Builder.From(syndicationsTable).
		Where(goqu.I("funding_id").In(uuids(fundingIDs))).
		Order(goqu.I("created_at").Asc()))
}

func (p *PgSQL) SyndicationsBySyndicator(ctx context.Context,
	syndicatorID domain.PartyID) ([]domain.Syndication, error) {
	return selectRows[domain.Syndication, PgSyndication](ctx, p.Builder.From(syndicationsTable).
		Where(goqu.I("syndicator_id").Eq(uuid.UUID(syndicatorID))).
		Order(goqu.I("created_at").Asc()))
}

func (p *PgSQL) StoreSyndicationOffers(ctx context.Context,
	offers ...domain.SyndicationOffer) ([]domain.SyndicationOffer, error) {
	return insertRows[domain.SyndicationOffer, PgSyndicationOffer](ctx, p.Builder, syndicationOffersTable, offers)
}

func (p *PgSQL) SyndicationOffersBySyndicator(ctx context.Context,
	syndicatorID domain.PartyID) ([]domain.SyndicationOffer, error) {
	return selectRows[domain.SyndicationOffer, PgSyndicationOffer](ctx, p.Builder.From(syndicationOffersTable).
		Where(goqu.I("syndicator_id").Eq(uuid.UUID(syndicatorID))).
		Order(goqu.I("created_at").Asc()))
}
