package repository

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-library-backend/internal/domains/series"
)

// The select list must line up with SeriesBook's db tags, or scanning
// fails at runtime with an undefined-column error.
func TestBooksQueryColumnsMatchProjection(t *testing.T) {
	start := strings.Index(booksQuery, "SELECT")
	end := strings.Index(booksQuery, "FROM")
	require.NotEqual(t, -1, start)
	require.NotEqual(t, -1, end)

	var columns []string
	for _, col := range strings.Split(booksQuery[start+len("SELECT"):end], ",") {
		columns = append(columns, strings.TrimSpace(col))
	}

	typ := reflect.TypeOf(series.SeriesBook{})
	var tags []string
	for i := 0; i < typ.NumField(); i++ {
		tags = append(tags, typ.Field(i).Tag.Get("db"))
	}

	assert.Equal(t, tags, columns)
}

func TestBooksQueryUsesBookStatusColumn(t *testing.T) {
	assert.NotContains(t, booksQuery, "reading_status",
		"books carry status; reading_status lives on reviews")
}
