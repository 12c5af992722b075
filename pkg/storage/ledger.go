package storage

import (
	"context"

	"mca/pkg/domain"
)

// LedgerStorage persists the money movements around a funding: fees,
// expenses, intents and settled transactions.
type LedgerStorage interface {
	StoreFees(ctx context.Context, fees ...domain.Fee) ([]domain.Fee, error)
	FeesByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Fee, error)

	StoreExpenses(ctx context.Context, expenses ...domain.Expense) ([]domain.Expense, error)
	ExpensesByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Expense, error)

	StoreIntents(ctx context.Context, intents ...domain.Intent) ([]domain.Intent, error)
	IntentsByFundings(ctx context.Context, fundingIDs ...domain.FundingID) ([]domain.Intent, error)

	StoreTransactions(ctx context.Context, transactions ...domain.Transaction) ([]domain.Transaction, error)
	TransactionsByFunding(ctx context.Context, fundingID domain.FundingID) ([]domain.Transaction, error)
}
