package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"mca/pkg/domain"
	"mca/pkg/storage"
)

const (
	paybackPlansTable = "payback_plans"
	paybacksTable     = "paybacks"
)

func (p *PgSQL) StorePaybackPlan(ctx context.Context, plan domain.PaybackPlan) (*domain.PaybackPlan, error) {
	res, err := insertRows[domain.PaybackPlan, PgPaybackPlan](ctx, p.Builder, paybackPlansTable,
		[]domain.PaybackPlan{plan})
	if err != nil {
		return nil, err
	}

	return &res[0], nil
}

func (p *PgSQL) PaybackPlanByID(ctx context.Context, id domain.PaybackPlanID) (*domain.PaybackPlan, error) {
	return selectRow[domain.PaybackPlan, PgPaybackPlan](ctx,
		p.Builder.From(paybackPlansTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) LockPaybackPlan(ctx context.Context, id domain.PaybackPlanID) (*domain.PaybackPlan, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	return selectRow[domain.PaybackPlan, PgPaybackPlan](ctx, p.Builder.From(paybackPlansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) PaybackPlansByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.PaybackPlan, error) {
	if len(fundingIDs) == 0 {
		return nil, nil
	}

	return selectRows[domain.PaybackPlan, PgPaybackPlan](ctx, p.Builder.From(paybackPlansTable).
		Where(goqu.I("funding_id").In(uuids(fundingIDs))).
		Order(goqu.I("start_date").Asc(), goqu.I("created_at").Asc()))
}

func (p *PgSQL) UpdatePaybackPlan(ctx context.Context,
	id domain.PaybackPlanID,
	updates storage.PaybackPlanUpdates) (*domain.PaybackPlan, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	switch {
	case updates.ClearNextPaymentDate:
		rec["next_payment_date"] = nil
	case updates.NextPaymentDate != nil:
		rec["next_payment_date"] = date(*updates.NextPaymentDate)
	}

	return updateRow[domain.PaybackPlan, PgPaybackPlan](ctx, p.Builder.Update(paybackPlansTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) StorePaybacks(ctx context.Context, paybacks ...domain.Payback) ([]domain.Payback, error) {
	return insertRows[domain.Payback, PgPayback](ctx, p.Builder, paybacksTable, paybacks)
}

func (p *PgSQL) PaybackByID(ctx context.Context, id domain.PaybackID) (*domain.Payback, error) {
	return selectRow[domain.Payback, PgPayback](ctx,
		p.Builder.From(paybacksTable).Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) LockPayback(ctx context.Context, id domain.PaybackID) (*domain.Payback, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	return selectRow[domain.Payback, PgPayback](ctx, p.Builder.From(paybacksTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait))
}

func (p *PgSQL) PaybacksByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Payback, error) {
	if len(fundingIDs) == 0 {
		return nil, nil
	}

	return selectRows[domain.Payback, PgPayback](ctx, p.Builder.From(paybacksTable).
		Where(goqu.I("funding_id").In(uuids(fundingIDs))).
		Order(goqu.I("due_date").Asc(), goqu.I("seq").Asc()))
}

func (p *PgSQL) PaybacksByPlan(ctx context.Context, planID domain.PaybackPlanID) ([]domain.Payback, error) {
	return selectRows[domain.Payback, PgPayback](ctx, p.Builder.From(paybacksTable).
		Where(goqu.I("plan_id").Eq(uuid.UUID(planID))).
		Order(goqu.I("due_date").Asc(), goqu.I("seq").Asc()))
}

func (p *PgSQL) UpdatePayback(ctx context.Context,
	id domain.PaybackID,
	updates storage.PaybackUpdates) (*domain.Payback, error) {
	rec := goqu.Record{
		"status":     string(updates.Status),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FailureReason != nil {
		if *updates.FailureReason == "" {
			rec["failure_reason"] = nil
		} else {
			rec["failure_reason"] = *updates.FailureReason
		}
	}
	if updates.PaidDate != nil {
		rec["paid_date"] = date(*updates.PaidDate)
	}

	return updateRow[domain.Payback, PgPayback](ctx, p.Builder.Update(paybacksTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))))
}

func (p *PgSQL) CancelScheduledPaybacks(ctx context.Context, planID domain.PaybackPlanID, from time.Time) (int64, error) {
	res, err := p.Builder.Update(paybacksTable).
		Set(goqu.Record{
			"status":     string(domain.PaybackStatusCancelled),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("plan_id").Eq(uuid.UUID(planID)),
			goqu.I("status").Eq(string(domain.PaybackStatusScheduled)),
			goqu.I("due_date").Gte(date(from)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not cancel scheduled paybacks in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count cancelled paybacks: %w", err)
	}

	return n, nil
}

func (p *PgSQL) UpcomingPaybacks(ctx context.Context, from, to time.Time) ([]domain.Payback, error) {
	return selectRows[domain.Payback, PgPayback](ctx, p.Builder.From(paybacksTable).
		Where(
			goqu.I("status").Eq(string(domain.PaybackStatusScheduled)),
			goqu.I("due_date").Between(goqu.Range(date(from), date(to))),
		).
		Order(goqu.I("due_date").Asc(), goqu.I("funding_id").Asc()))
}
