package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// List pagination bounds for the limit parameter.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx,
// so every Base operation can run standalone or inside a transaction scope.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Table names a table and its identifier column explicitly. No singularize
// convention: every entity declares its own id column.
type Table struct {
	Name     string
	IDColumn string
}

// Base is the table-agnostic CRUD repository all entity repositories build on.
// Absence is always reported as a nil record (or false for Delete), never as
// an error; constraint failures surface as *ConstraintViolation.
type Base[T any] struct {
	pool  *pgxpool.Pool
	table Table
}

func NewBase[T any](pool *pgxpool.Pool, table Table) *Base[T] {
	return &Base[T]{pool: pool, table: table}
}

// Table returns the table descriptor.
func (b *Base[T]) Table() Table {
	return b.table
}

// Create inserts the supplied field set and returns the stored row including
// server-assigned defaults.
func (b *Base[T]) Create(ctx context.Context, fields Fields) (*T, error) {
	return b.CreateIn(ctx, b.pool, fields)
}

// CreateIn is Create against an explicit querier (pool or transaction).
func (b *Base[T]) CreateIn(ctx context.Context, q Querier, fields Fields) (*T, error) {
	if fields.IsEmpty() {
		return nil, fmt.Errorf("create %s: no fields supplied", b.table.Name)
	}

	query, args := insertStatement(b.table.Name, fields)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}

	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, wrapDBError(err)
	}
	return rec, nil
}

// Get returns the row for id, or nil when absent.
func (b *Base[T]) Get(ctx context.Context, id int64) (*T, error) {
	return b.GetIn(ctx, b.pool, id)
}

// GetIn is Get against an explicit querier.
func (b *Base[T]) GetIn(ctx context.Context, q Querier, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", b.table.Name, b.table.IDColumn)

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, wrapDBError(err)
	}
	return CollectOne[T](rows)
}

// List returns rows ordered by id ascending. The limit is clamped to
// [1, MaxListLimit] and a negative offset is treated as zero.
func (b *Base[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	offset, limit = ClampPage(offset, limit)

	query := fmt.Sprintf(
		"SELECT * FROM %s ORDER BY %s LIMIT $1 OFFSET $2",
		b.table.Name, b.table.IDColumn,
	)

	rows, err := b.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapDBError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, wrapDBError(err)
	}
	return records, nil
}

// Update applies a partial update and returns the new row state, or nil when
// id does not exist. An empty field set behaves as Get.
func (b *Base[T]) Update(ctx context.Context, id int64, fields Fields) (*T, error) {
	return b.UpdateIn(ctx, b.pool, id, fields)
}

// UpdateIn is Update against an explicit querier.
func (b *Base[T]) UpdateIn(ctx context.Context, q Querier, id int64, fields Fields) (*T, error) {
	if fields.IsEmpty() {
		return b.GetIn(ctx, q, id)
	}

	query, args := updateStatement(b.table.Name, b.table.IDColumn, id, fields)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	return CollectOne[T](rows)
}

// Delete hard-deletes the row and reports whether one was removed.
func (b *Base[T]) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", b.table.Name, b.table.IDColumn)

	tag, err := b.pool.Exec(ctx, query, id)
	if err != nil {
		return false, wrapDBError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count returns the total row count for the table.
func (b *Base[T]) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", b.table.Name)

	var count int64
	if err := b.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, wrapDBError(err)
	}
	return count, nil
}

// ClampPage normalizes pagination arguments to the enforced ranges.
func ClampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return offset, limit
}
