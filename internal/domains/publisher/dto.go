package publisher

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"personal-library-backend/internal/shared/repository"
)

// CreatePublisherRequest - POST /api/v1/publishers
type CreatePublisherRequest struct {
	PublisherName string  `json:"publisher_name"`
	Country       *string `json:"country,omitempty"`
	City          *string `json:"city,omitempty"`
	FoundedYear   *int    `json:"founded_year,omitempty"`
	Website       *string `json:"website,omitempty"`
	Contacts      *string `json:"contacts,omitempty"`
}

func (r CreatePublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PublisherName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Country, validation.Length(0, 100)),
		validation.Field(&r.City, validation.Length(0, 100)),
		validation.Field(&r.FoundedYear, validation.Min(1400), validation.Max(2100)),
		validation.Field(&r.Website, is.URL),
		validation.Field(&r.Contacts, validation.Length(0, 2000)),
	)
}

func (r CreatePublisherRequest) Fields() repository.Fields {
	f := repository.Fields{}.Append("publisher_name", r.PublisherName)
	if r.Country != nil {
		f = f.Append("country", *r.Country)
	}
	if r.City != nil {
		f = f.Append("city", *r.City)
	}
	if r.FoundedYear != nil {
		f = f.Append("founded_year", *r.FoundedYear)
	}
	if r.Website != nil {
		f = f.Append("website", *r.Website)
	}
	if r.Contacts != nil {
		f = f.Append("contacts", *r.Contacts)
	}
	return f
}

// UpdatePublisherRequest - PUT /api/v1/publishers/:id (partial update)
type UpdatePublisherRequest struct {
	PublisherName *string `json:"publisher_name,omitempty"`
	Country       *string `json:"country,omitempty"`
	City          *string `json:"city,omitempty"`
	FoundedYear   *int    `json:"founded_year,omitempty"`
	Website       *string `json:"website,omitempty"`
	Contacts      *string `json:"contacts,omitempty"`
}

func (r UpdatePublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PublisherName, validation.Length(1, 200)),
		validation.Field(&r.Country, validation.Length(0, 100)),
		validation.Field(&r.City, validation.Length(0, 100)),
		validation.Field(&r.FoundedYear, validation.Min(1400), validation.Max(2100)),
		validation.Field(&r.Website, is.URL),
		validation.Field(&r.Contacts, validation.Length(0, 2000)),
	)
}

func (r UpdatePublisherRequest) Fields() repository.Fields {
	f := repository.Fields{}
	if r.PublisherName != nil {
		f = f.Append("publisher_name", *r.PublisherName)
	}
	if r.Country != nil {
		f = f.Append("country", *r.Country)
	}
	if r.City != nil {
		f = f.Append("city", *r.City)
	}
	if r.FoundedYear != nil {
		f = f.Append("founded_year", *r.FoundedYear)
	}
	if r.Website != nil {
		f = f.Append("website", *r.Website)
	}
	if r.Contacts != nil {
		f = f.Append("contacts", *r.Contacts)
	}
	return f
}
