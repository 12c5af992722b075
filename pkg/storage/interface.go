// Package storage defines the persistence interfaces of the payback and stats
// services. Reads that find nothing return a nil entity and a nil error; the
// services decide whether that is a NOT_FOUND.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is every capability available both inside and outside a transaction.
type AllStorage interface {
	FundingStorage
	PaybackPlanStorage
	PaybackStorage
	LedgerStorage
	SyndicationStorage
	StatsStorage
	JobStorage
}

// TxStorage is a storage handle bound to a transaction.
// It must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root storage handle.
type Storage interface {
	AllStorage

	// Ping checks connectivity with the backend.
	Ping(ctx context.Context) error
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
