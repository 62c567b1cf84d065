package author

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

func TestCreateAuthorRequestValidate(t *testing.T) {
	req := CreateAuthorRequest{FirstName: "Ursula", LastName: "Le Guin"}
	assert.NoError(t, req.Validate())

	req = CreateAuthorRequest{LastName: "Le Guin"}
	assert.Error(t, req.Validate(), "first name is required")
}

func TestCreateAuthorRequestLifespan(t *testing.T) {
	req := CreateAuthorRequest{
		FirstName: "Franz",
		LastName:  "Kafka",
		BirthDate: date(1883, 7, 3),
		DeathDate: date(1924, 6, 3),
	}
	assert.NoError(t, req.Validate())

	req.DeathDate = date(1880, 1, 1)
	assert.Error(t, req.Validate(), "death before birth must be rejected")

	req.DeathDate = req.BirthDate
	assert.Error(t, req.Validate(), "death equal to birth must be rejected")
}

func TestUpdateAuthorRequestFieldsOnlyProvided(t *testing.T) {
	country := "Czech Republic"
	req := UpdateAuthorRequest{Country: &country}

	fields := req.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"country"}, fields.Columns())
	assert.Equal(t, []interface{}{"Czech Republic"}, fields.Values())
}

func TestCreateAuthorRequestFieldsOrder(t *testing.T) {
	pseudonym := "George Orwell"
	req := CreateAuthorRequest{
		FirstName: "Eric",
		LastName:  "Blair",
		Pseudonym: &pseudonym,
	}

	fields := req.Fields()
	assert.Equal(t, []string{"first_name", "last_name", "pseudonym"}, fields.Columns())
}
