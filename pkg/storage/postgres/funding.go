package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"mca/pkg/domain"
	"mca/pkg/storage"
)

const (
	applicationsTable = "applications"
	fundingsTable     = "fundings"
)

func (p *PgSQL) StoreApplications(ctx context.Context, applications ...domain.Application) ([]domain.Application, error) {
	return insertRows[domain.Application, PgApplication](ctx, p.Builder, applicationsTable, applications)
}

func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	return selectRow[domain.Application, PgApplication](ctx,
		p.Builder.From(applicationsTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) StoreFundings(ctx context.Context, fundings ...domain.Funding) ([]domain.Funding, error) {
	return insertRows[domain.Funding, PgFunding](ctx, p.Builder, fundingsTable, fundings)
}

func (p *PgSQL) FundingByID(ctx context.Context, id domain.FundingID) (*domain.Funding, error) {
	return selectRow[domain.Funding, PgFunding](ctx,
		p.Builder.From(fundingsTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) LockFunding(ctx context.Context, id domain.FundingID) (*domain.Funding, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	return selectRow[domain.Funding, PgFunding](ctx, p.Builder.From(fundingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) Fundings(ctx context.Context, filter storage.FundingFilter) ([]domain.Funding, error) {
	var w []goqu.Expression
	if len(filter.IDs) > 0 {
		w = append(w, goqu.I("id").In(uuids(filter.IDs)))
	}
	if filter.ApplicationID != nil {
		w = append(w, goqu.I("application_id").Eq(uuid.UUID(*filter.ApplicationID)))
	}
	if filter.MerchantID != nil {
		w = append(w, goqu.I("merchant_id").Eq(uuid.UUID(*filter.MerchantID)))
	}
	if filter.FunderID != nil {
		w = append(w, goqu.I("funder_id").Eq(uuid.UUID(*filter.FunderID)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	return selectRows[domain.Funding, PgFunding](ctx, p.Builder.From(fundingsTable).
		Where(w...).
		Order(goqu.I("funded_date").Asc(), goqu.I("id").Asc()))
}

func (p *PgSQL) UpdateFundingStatus(ctx context.Context, id domain.FundingID, status domain.FundingStatus) error {
	_, err := p.Builder.Update(fundingsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update funding status in pg: %w", err)
	}

	return nil
}
