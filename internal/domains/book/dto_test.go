package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateBookRequestValidate(t *testing.T) {
	req := CreateBookRequest{Title: "The Dispossessed"}
	assert.NoError(t, req.Validate())

	req.Title = ""
	assert.Error(t, req.Validate(), "title is required")
}

func TestCreateBookRequestPublicationYearRange(t *testing.T) {
	for year, valid := range map[int]bool{999: false, 1000: true, 1974: true, 2100: true, 2101: false} {
		req := CreateBookRequest{Title: "x", PublicationYear: intPtr(year)}
		if valid {
			assert.NoError(t, req.Validate(), "year %d", year)
		} else {
			assert.Error(t, req.Validate(), "year %d", year)
		}
	}
}

func TestCreateBookRequestEnums(t *testing.T) {
	req := CreateBookRequest{Title: "x", Condition: strPtr("mint")}
	assert.Error(t, req.Validate())

	req = CreateBookRequest{Title: "x", Condition: strPtr(ConditionGood)}
	assert.NoError(t, req.Validate())

	req = CreateBookRequest{Title: "x", Format: strPtr("audiobook")}
	assert.Error(t, req.Validate())

	req = CreateBookRequest{Title: "x", Status: strPtr("borrowed")}
	assert.Error(t, req.Validate())

	req = CreateBookRequest{Title: "x", Status: strPtr(StatusLentOut)}
	assert.NoError(t, req.Validate())
}

func TestCreateBookRequestFieldsDefaults(t *testing.T) {
	req := CreateBookRequest{Title: "Roadside Picnic"}
	fields := req.Fields()

	cols := fields.Columns()
	vals := fields.Values()
	assert.Equal(t, []string{"title", "language", "status"}, cols)
	assert.Equal(t, "English", vals[1])
	assert.Equal(t, StatusInLibrary, vals[2])
}

func TestUpdateBookRequestFieldsOnlyProvided(t *testing.T) {
	req := UpdateBookRequest{Status: strPtr(StatusLost)}
	fields := req.Fields()

	assert.Equal(t, []string{"status"}, fields.Columns())

	req = UpdateBookRequest{}
	assert.True(t, req.Fields().IsEmpty(), "empty update produces no bindings")
}

func TestSearchFilterIsZero(t *testing.T) {
	assert.True(t, SearchFilter{}.IsZero())
	assert.False(t, SearchFilter{Query: "dune"}.IsZero())

	id := int64(3)
	assert.False(t, SearchFilter{GenreID: &id}.IsZero())

	year := 1990
	assert.False(t, SearchFilter{YearFrom: &year}.IsZero())
}
