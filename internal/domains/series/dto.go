package series

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"personal-library-backend/internal/shared/repository"
)

// CreateSeriesRequest - POST /api/v1/series
type CreateSeriesRequest struct {
	SeriesName  string  `json:"series_name"`
	Description *string `json:"description,omitempty"`
	PublisherID *int64  `json:"publisher_id,omitempty"`
}

func (r CreateSeriesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SeriesName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.PublisherID, validation.Min(int64(1))),
	)
}

func (r CreateSeriesRequest) Fields() repository.Fields {
	f := repository.Fields{}.Append("series_name", r.SeriesName)
	if r.Description != nil {
		f = f.Append("description", *r.Description)
	}
	if r.PublisherID != nil {
		f = f.Append("publisher_id", *r.PublisherID)
	}
	return f
}

// UpdateSeriesRequest - PUT /api/v1/series/:id (partial update)
type UpdateSeriesRequest struct {
	SeriesName  *string `json:"series_name,omitempty"`
	Description *string `json:"description,omitempty"`
	PublisherID *int64  `json:"publisher_id,omitempty"`
}

func (r UpdateSeriesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SeriesName, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.PublisherID, validation.Min(int64(1))),
	)
}

func (r UpdateSeriesRequest) Fields() repository.Fields {
	f := repository.Fields{}
	if r.SeriesName != nil {
		f = f.Append("series_name", *r.SeriesName)
	}
	if r.Description != nil {
		f = f.Append("description", *r.Description)
	}
	if r.PublisherID != nil {
		f = f.Append("publisher_id", *r.PublisherID)
	}
	return f
}
