package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"

	"mca/pkg/storage/postgres"
)

type refreshArgs struct {
	FundingID string `json:"fundingId"`
}

func (refreshArgs) Kind() string { return "test_refresh" }

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob_InTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, refreshArgs{FundingID: "a"}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&refreshArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, refreshArgs{FundingID: "b"}, &river.InsertOpts{})
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&refreshArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniqueSkipsDuplicate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}

	inserted, err := pg.AddJob(ctx, refreshArgs{FundingID: "c"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, refreshArgs{FundingID: "c"}, opts)
	require.NoError(t, err)
	require.False(t, inserted)
}
