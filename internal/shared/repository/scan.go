package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// CollectOne scans a single row into T by column name. Absence comes back as
// a nil record, matching the Base contract. Entity repositories use this for
// their custom single-row statements.
func CollectOne[T any](rows pgx.Rows) (*T, error) {
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}
	return rec, nil
}

// CollectMany scans all rows into a slice of T by column name.
func CollectMany[T any](rows pgx.Rows) ([]T, error) {
	records, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, wrapDBError(err)
	}
	return records, nil
}
