package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSeriesRequestValidate(t *testing.T) {
	req := CreateSeriesRequest{SeriesName: "Earthsea Cycle"}
	assert.NoError(t, req.Validate())

	req = CreateSeriesRequest{}
	assert.Error(t, req.Validate(), "series name is required")
}

func TestCreateSeriesRequestFieldsWithPublisher(t *testing.T) {
	publisherID := int64(3)
	req := CreateSeriesRequest{SeriesName: "Culture", PublisherID: &publisherID}

	fields := req.Fields()
	assert.Equal(t, []string{"series_name", "publisher_id"}, fields.Columns())
	assert.Equal(t, []interface{}{"Culture", int64(3)}, fields.Values())
}

func TestUpdateSeriesRequestFieldsOnlyProvided(t *testing.T) {
	publisherID := int64(7)
	req := UpdateSeriesRequest{PublisherID: &publisherID}

	fields := req.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"publisher_id"}, fields.Columns())
}
