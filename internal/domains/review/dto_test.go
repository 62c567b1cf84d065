package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreateReviewRequestRatingBounds(t *testing.T) {
	for rating, valid := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false} {
		req := CreateReviewRequest{BookID: 1, Rating: rating}
		if valid {
			assert.NoError(t, req.Validate(), "rating %d", rating)
		} else {
			assert.Error(t, req.Validate(), "rating %d", rating)
		}
	}
}

func TestCreateReviewRequestReadingDates(t *testing.T) {
	req := CreateReviewRequest{
		BookID:    1,
		Rating:    4,
		StartDate: date(2026, 1, 10),
		EndDate:   date(2026, 1, 20),
	}
	assert.NoError(t, req.Validate())

	// A book read in one day is fine.
	req.EndDate = req.StartDate
	assert.NoError(t, req.Validate())

	req.EndDate = date(2026, 1, 5)
	assert.Error(t, req.Validate())
}

func TestCreateReviewRequestReadingStatus(t *testing.T) {
	bad := "paused"
	req := CreateReviewRequest{BookID: 1, Rating: 4, ReadingStatus: &bad}
	assert.Error(t, req.Validate())

	good := StatusAbandoned
	req.ReadingStatus = &good
	assert.NoError(t, req.Validate())
}

func TestCreateReviewRequestFields(t *testing.T) {
	req := CreateReviewRequest{BookID: 7, Rating: 5}
	fields := req.Fields(42)

	require.Equal(t, []string{"book_id", "reader_id", "rating", "reading_status"}, fields.Columns())
	values := fields.Values()
	assert.Equal(t, int64(7), values[0])
	assert.Equal(t, int64(42), values[1], "reader id must come from the caller, not the body")
	assert.Equal(t, StatusFinished, values[3], "reading status defaults to finished")
}

func TestUpdateReviewRequestFieldsOnlyProvided(t *testing.T) {
	rating := 2
	req := UpdateReviewRequest{Rating: &rating}

	fields := req.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"rating"}, fields.Columns())
}
