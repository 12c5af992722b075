package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"mca/pkg/domain"
)

const (
	feesTable         = "fees"
	expensesTable     = "expenses"
	intentsTable      = "intents"
	transactionsTable = "transactions"
)

func (p *PgSQL) StoreFees(ctx context.Context, fees ...domain.Fee) ([]domain.Fee, error) {
	return insertRows[domain.Fee, PgFee](ctx, p.Builder, feesTable, fees)
}

func (p *PgSQL) FeesByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Fee, error) {
	if len(fundingIDs) == 0 {
		return nil, nil
	}

	return selectRows[domain.Fee, PgFee](ctx, p.Builder.From(feesTable).
		Where(goqu.I("funding_id").In(uuids(fundingIDs))).
		Order(goqu.I("created_at").Asc()))
}

func (p *PgSQL) StoreExpenses(ctx context.Context, expenses ...domain.Expense) ([]domain.Expense, error) {
	return insertRows[domain.Expense, PgExpense](ctx, p.Builder, expensesTable, expenses)
}

func (p *PgSQL) ExpensesByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Expense, error) {
	if len(fundingIDs) == 0 {
		return nil, nil
	}

	return selectRows[domain.Expense, PgExpense](ctx, p.Builder.From(expensesTable).
		Where(goqu.I("funding_id").In(uuids(fundingIDs))).
		Order(goqu.I("created_at").Asc()))
}

func (p *PgSQL) StoreIntents(ctx context.Context, intents ...domain.Intent) ([]domain.Intent, error) {
	return insertRows[domain.Intent, PgIntent](ctx, p.Builder, intentsTable, intents)
}

func (p *PgSQL) IntentsByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Intent, error) {
	if len(fundingIDs) == 0 {
		return nil, nil
	}

	return selectRows[domain.Intent, PgIntent](ctx, p.Builder.From(intentsTable).
		Where(goqu.I("funding_id").In(uuids(fundingIDs))).
		Order(goqu.I("scheduled_date").Asc(), goqu.I("created_at").Asc()))
}

func (p *PgSQL) StoreTransactions(ctx context.Context,
	transactions ...domain.Transaction) ([]domain.Transaction, error) {
	return insertRows[domain.Transaction, PgTransaction](ctx, p.Builder, transactionsTable, transactions)
}

func (p *PgSQL) TransactionsByFunding(ctx context.Context, fundingID domain.FundingID) ([]domain.Transaction, error) {
	return selectRows[domain.Transaction, PgTransaction](ctx, p.Builder.From(transactionsTable).
		Where(goqu.I("funding_id").Eq(uuid.UUID(fundingID))).
		Order(goqu.I("settled_at").Asc()))
}
