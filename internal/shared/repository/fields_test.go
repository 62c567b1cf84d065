package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertStatement(t *testing.T) {
	fields := Fields{}.
		Append("genre_name", "Fantasy").
		Append("description", "Dragons and such").
		Append("parent_genre_id", int64(3))

	query, args := insertStatement("genres", fields)

	assert.Equal(t,
		"INSERT INTO genres (genre_name, description, parent_genre_id) VALUES ($1, $2, $3) RETURNING *",
		query,
	)
	assert.Equal(t, []interface{}{"Fantasy", "Dragons and such", int64(3)}, args)
}

func TestUpdateStatement(t *testing.T) {
	fields := Fields{}.
		Append("title", "Dune").
		Append("publication_year", 1965)

	query, args := updateStatement("books", "book_id", 42, fields)

	assert.Equal(t,
		"UPDATE books SET title = $1, publication_year = $2 WHERE book_id = $3 RETURNING *",
		query,
	)
	assert.Equal(t, []interface{}{"Dune", 1965, int64(42)}, args)
}

func TestUpdateStatementSingleField(t *testing.T) {
	query, args := updateStatement("readers", "reader_id", 7, Fields{{Column: "is_active", Value: false}})

	assert.Equal(t, "UPDATE readers SET is_active = $1 WHERE reader_id = $2 RETURNING *", query)
	assert.Equal(t, []interface{}{false, int64(7)}, args)
}

func TestUpsertStatement(t *testing.T) {
	fields := Fields{}.
		Append("book_id", int64(7)).
		Append("reader_id", int64(42)).
		Append("rating", 5)

	query, args := UpsertStatement("reviews", []string{"book_id", "reader_id"}, fields)

	assert.Equal(t,
		"INSERT INTO reviews (book_id, reader_id, rating) VALUES ($1, $2, $3) "+
			"ON CONFLICT (book_id, reader_id) DO UPDATE SET rating = EXCLUDED.rating RETURNING *",
		query,
	)
	assert.Equal(t, []interface{}{int64(7), int64(42), 5}, args)
}

func TestFieldsOrderPreserved(t *testing.T) {
	fields := Fields{}.Append("a", 1).Append("b", 2).Append("c", 3)

	assert.Equal(t, []string{"a", "b", "c"}, fields.Columns())
	assert.Equal(t, []interface{}{1, 2, 3}, fields.Values())
	assert.False(t, fields.IsEmpty())
	assert.True(t, Fields{}.IsEmpty())
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		name                 string
		offset, limit        int
		wantOffset, wantWant int
	}{
		{"defaults applied", -5, 0, 0, DefaultListLimit},
		{"in range untouched", 20, 50, 20, 50},
		{"limit capped", 0, 5000, 0, MaxListLimit},
		{"limit floor", 0, -1, 0, DefaultListLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := ClampPage(tc.offset, tc.limit)
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantWant, limit)
		})
	}
}
