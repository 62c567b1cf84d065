package repository

import (
	"fmt"
	"strings"
)

// Field binds one table column to a value. Entities build Fields lists from
// their request DTOs so column names stay compile-time constants instead of
// caller-supplied strings.
type Field struct {
	Column string
	Value  interface{}
}

// Fields is an ordered list of column/value bindings for one statement.
type Fields []Field

// Append adds a binding and returns the extended list.
func (f Fields) Append(column string, value interface{}) Fields {
	return append(f, Field{Column: column, Value: value})
}

// Columns returns the column names in binding order.
func (f Fields) Columns() []string {
	cols := make([]string, len(f))
	for i, field := range f {
		cols[i] = field.Column
	}
	return cols
}

// Values returns the bound values in binding order.
func (f Fields) Values() []interface{} {
	vals := make([]interface{}, len(f))
	for i, field := range f {
		vals[i] = field.Value
	}
	return vals
}

// IsEmpty reports whether no bindings were supplied.
func (f Fields) IsEmpty() bool {
	return len(f) == 0
}

// placeholders renders "$start, $start+1, ..." for n parameters.
func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}

// insertStatement builds "INSERT INTO t (...) VALUES (...) RETURNING *".
func insertStatement(table string, fields Fields) (string, []interface{}) {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table,
		strings.Join(fields.Columns(), ", "),
		placeholders(1, len(fields)),
	)
	return query, fields.Values()
}

// UpsertStatement builds an insert that overwrites the existing row on a
// conflict of conflictColumns. Every non-conflict column is replaced from
// EXCLUDED, so a repeated insert behaves like a full update of the old row.
func UpsertStatement(table string, conflictColumns []string, fields Fields) (string, []interface{}) {
	conflict := make(map[string]bool, len(conflictColumns))
	for _, col := range conflictColumns {
		conflict[col] = true
	}

	var set []string
	for _, field := range fields {
		if !conflict[field.Column] {
			set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", field.Column, field.Column))
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s RETURNING *",
		table,
		strings.Join(fields.Columns(), ", "),
		placeholders(1, len(fields)),
		strings.Join(conflictColumns, ", "),
		strings.Join(set, ", "),
	)
	return query, fields.Values()
}

// updateStatement builds a partial "UPDATE t SET ... WHERE id = $n RETURNING *".
func updateStatement(table, idColumn string, id int64, fields Fields) (string, []interface{}) {
	set := make([]string, len(fields))
	for i, field := range fields {
		set[i] = fmt.Sprintf("%s = $%d", field.Column, i+1)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING *",
		table,
		strings.Join(set, ", "),
		idColumn,
		len(fields)+1,
	)
	return query, append(fields.Values(), id)
}
