package author

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"personal-library-backend/internal/shared/repository"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Pseudonym   *string    `json:"pseudonym,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	DeathDate   *time.Time `json:"death_date,omitempty"`
	Country     *string    `json:"country,omitempty"`
	Biography   *string    `json:"biography,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Pseudonym, validation.Length(1, 100)),
		validation.Field(&r.Country, validation.Length(1, 100)),
	); err != nil {
		return err
	}
	return validateLifespan(r.BirthDate, r.DeathDate)
}

func (r CreateAuthorRequest) Fields() repository.Fields {
	f := repository.Fields{}.
		Append("first_name", r.FirstName).
		Append("last_name", r.LastName)
	if r.Pseudonym != nil {
		f = f.Append("pseudonym", *r.Pseudonym)
	}
	if r.BirthDate != nil {
		f = f.Append("birth_date", *r.BirthDate)
	}
	if r.DeathDate != nil {
		f = f.Append("death_date", *r.DeathDate)
	}
	if r.Country != nil {
		f = f.Append("country", *r.Country)
	}
	if r.Biography != nil {
		f = f.Append("biography", *r.Biography)
	}
	return f
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id (partial update)
type UpdateAuthorRequest struct {
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	Pseudonym   *string    `json:"pseudonym,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	DeathDate   *time.Time `json:"death_date,omitempty"`
	Country     *string    `json:"country,omitempty"`
	Biography   *string    `json:"biography,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Length(1, 100)),
		validation.Field(&r.Pseudonym, validation.Length(1, 100)),
		validation.Field(&r.Country, validation.Length(1, 100)),
	); err != nil {
		return err
	}
	return validateLifespan(r.BirthDate, r.DeathDate)
}

func (r UpdateAuthorRequest) Fields() repository.Fields {
	f := repository.Fields{}
	if r.FirstName != nil {
		f = f.Append("first_name", *r.FirstName)
	}
	if r.LastName != nil {
		f = f.Append("last_name", *r.LastName)
	}
	if r.Pseudonym != nil {
		f = f.Append("pseudonym", *r.Pseudonym)
	}
	if r.BirthDate != nil {
		f = f.Append("birth_date", *r.BirthDate)
	}
	if r.DeathDate != nil {
		f = f.Append("death_date", *r.DeathDate)
	}
	if r.Country != nil {
		f = f.Append("country", *r.Country)
	}
	if r.Biography != nil {
		f = f.Append("biography", *r.Biography)
	}
	return f
}

func validateLifespan(birth, death *time.Time) error {
	if birth != nil && death != nil && !death.After(*birth) {
		return errors.New("death_date must be after birth_date")
	}
	return nil
}
