package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

// insertRows inserts items into table and returns the stored rows.
func insertRows[D any, P any, PP interface {
	*P
	model[D]
}](ctx context.Context, b Builder, table string, items []D) ([]D, error) {
	if len(items) == 0 {
		return nil, nil
	}

	var rows []P
	if err := b.Insert(table).
		Rows(toPg[D, P, PP](items)).
		Returning(new(P)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not insert into %s: %w", table, err)
	}

	return toDomain[D, P, PP](rows), nil
}

func selectRows[D any, P any, PP interface {
	*P
	model[D]
}](ctx context.Context, ds *goqu.SelectDataset) ([]D, error) {
	var rows []P
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not select rows: %w", err)
	}

	return toDomain[D, P, PP](rows), nil
}

// selectRow returns nil when ds matches no row.
func selectRow[D any, P any, PP interface {
	*P
	model[D]
}](ctx context.Context, ds *goqu.SelectDataset) (*D, error) {
	var row P
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not select row: %w", err)
	}
	if !found {
		return nil, nil
	}
	d := PP(&row).ToDomain()

	return &d, nil
}

// updateRow returns nil when the update matched no row.
func updateRow[D any, P any, PP interface {
	*P
	model[D]
}](ctx context.Context, ds *goqu.UpdateDataset) (*D, error) {
	var row P
	found, err := ds.Returning(new(P)).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update row: %w", err)
	}
	if !found {
		return nil, nil
	}
	d := PP(&row).ToDomain()

	return &d, nil
}
