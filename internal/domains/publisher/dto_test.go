package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePublisherRequestValidate(t *testing.T) {
	country := "United Kingdom"
	contacts := "editorial@gollancz.co.uk"
	req := CreatePublisherRequest{
		PublisherName: "Gollancz",
		Country:       &country,
		Contacts:      &contacts,
	}
	assert.NoError(t, req.Validate())

	req = CreatePublisherRequest{}
	assert.Error(t, req.Validate(), "publisher name is required")
}

func TestCreatePublisherRequestFieldsOrder(t *testing.T) {
	country := "France"
	city := "Paris"
	contacts := "+33 1 23 45 67 89"
	req := CreatePublisherRequest{
		PublisherName: "Gallimard",
		Country:       &country,
		City:          &city,
		Contacts:      &contacts,
	}

	fields := req.Fields()
	assert.Equal(t, []string{"publisher_name", "country", "city", "contacts"}, fields.Columns())
}

func TestUpdatePublisherRequestFieldsOnlyProvided(t *testing.T) {
	country := "Germany"
	req := UpdatePublisherRequest{Country: &country}

	fields := req.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"country"}, fields.Columns())
	assert.Equal(t, []interface{}{"Germany"}, fields.Values())
}
