package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"personal-library-backend/internal/shared/repository"
)

// CreateGenreRequest - POST /api/v1/genres
type CreateGenreRequest struct {
	GenreName     string  `json:"genre_name"`
	Description   *string `json:"description,omitempty"`
	ParentGenreID *int64  `json:"parent_genre_id,omitempty"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GenreName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.ParentGenreID, validation.Min(int64(1))),
	)
}

// Fields maps the request onto insert bindings. Optional fields are omitted
// so the store assigns NULL.
func (r CreateGenreRequest) Fields() repository.Fields {
	f := repository.Fields{}.Append("genre_name", r.GenreName)
	if r.Description != nil {
		f = f.Append("description", *r.Description)
	}
	if r.ParentGenreID != nil {
		f = f.Append("parent_genre_id", *r.ParentGenreID)
	}
	return f
}

// UpdateGenreRequest - PUT /api/v1/genres/:id (partial update)
type UpdateGenreRequest struct {
	GenreName     *string `json:"genre_name,omitempty"`
	Description   *string `json:"description,omitempty"`
	ParentGenreID *int64  `json:"parent_genre_id,omitempty"`
}

func (r UpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.GenreName, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.ParentGenreID, validation.Min(int64(1))),
	)
}

func (r UpdateGenreRequest) Fields() repository.Fields {
	f := repository.Fields{}
	if r.GenreName != nil {
		f = f.Append("genre_name", *r.GenreName)
	}
	if r.Description != nil {
		f = f.Append("description", *r.Description)
	}
	if r.ParentGenreID != nil {
		f = f.Append("parent_genre_id", *r.ParentGenreID)
	}
	return f
}
