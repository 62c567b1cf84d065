package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"personal-library-backend/internal/shared/repository"
)

var (
	conditions = []interface{}{ConditionNew, ConditionGood, ConditionFair}
	formats    = []interface{}{FormatHardcover, FormatPaperback, FormatEbook}
	statuses   = []interface{}{StatusInLibrary, StatusLentOut, StatusLost}
)

// CreateBookRequest - POST /api/v1/books. AuthorIDs are unordered credits;
// GenreIDs are ordered, the first one becomes the primary genre.
type CreateBookRequest struct {
	Title           string           `json:"title"`
	ISBN            *string          `json:"isbn,omitempty"`
	PublisherID     *int64           `json:"publisher_id,omitempty"`
	PublicationYear *int             `json:"publication_year,omitempty"`
	PagesCount      *int             `json:"pages_count,omitempty"`
	Language        *string          `json:"language,omitempty"`
	Description     *string          `json:"description,omitempty"`
	StorageLocation *string          `json:"storage_location,omitempty"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Condition       *string          `json:"condition,omitempty"`
	Format          *string          `json:"format,omitempty"`
	Status          *string          `json:"status,omitempty"`
	SeriesID        *int64           `json:"series_id,omitempty"`
	SeriesNumber    *int             `json:"series_number,omitempty"`
	AuthorIDs       []int64          `json:"author_ids"`
	GenreIDs        []int64          `json:"genre_ids"`
}

func (r CreateBookRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.ISBN, validation.Length(10, 17)),
		validation.Field(&r.PublicationYear, validation.Min(1000), validation.Max(2100)),
		validation.Field(&r.PagesCount, validation.Min(1)),
		validation.Field(&r.Language, validation.Length(1, 50)),
		validation.Field(&r.Condition, validation.In(conditions...)),
		validation.Field(&r.Format, validation.In(formats...)),
		validation.Field(&r.Status, validation.In(statuses...)),
		validation.Field(&r.SeriesNumber, validation.Min(1)),
	); err != nil {
		return err
	}
	return validatePrice(r.Price)
}

func (r CreateBookRequest) Fields() repository.Fields {
	f := repository.Fields{}.Append("title", r.Title)
	f = appendOptional(f, r)

	language := "English"
	if r.Language != nil {
		language = *r.Language
	}
	f = f.Append("language", language)

	status := StatusInLibrary
	if r.Status != nil {
		status = *r.Status
	}
	return f.Append("status", status)
}

// UpdateBookRequest - PUT /api/v1/books/:id (partial update). A nil
// AuthorIDs/GenreIDs leaves the links untouched; an empty slice clears them.
type UpdateBookRequest struct {
	Title           *string          `json:"title,omitempty"`
	ISBN            *string          `json:"isbn,omitempty"`
	PublisherID     *int64           `json:"publisher_id,omitempty"`
	PublicationYear *int             `json:"publication_year,omitempty"`
	PagesCount      *int             `json:"pages_count,omitempty"`
	Language        *string          `json:"language,omitempty"`
	Description     *string          `json:"description,omitempty"`
	StorageLocation *string          `json:"storage_location,omitempty"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Condition       *string          `json:"condition,omitempty"`
	Format          *string          `json:"format,omitempty"`
	Status          *string          `json:"status,omitempty"`
	SeriesID        *int64           `json:"series_id,omitempty"`
	SeriesNumber    *int             `json:"series_number,omitempty"`
	AuthorIDs       []int64          `json:"author_ids,omitempty"`
	GenreIDs        []int64          `json:"genre_ids,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 500)),
		validation.Field(&r.ISBN, validation.Length(10, 17)),
		validation.Field(&r.PublicationYear, validation.Min(1000), validation.Max(2100)),
		validation.Field(&r.PagesCount, validation.Min(1)),
		validation.Field(&r.Language, validation.Length(1, 50)),
		validation.Field(&r.Condition, validation.In(conditions...)),
		validation.Field(&r.Format, validation.In(formats...)),
		validation.Field(&r.Status, validation.In(statuses...)),
		validation.Field(&r.SeriesNumber, validation.Min(1)),
	); err != nil {
		return err
	}
	return validatePrice(r.Price)
}

func (r UpdateBookRequest) Fields() repository.Fields {
	f := repository.Fields{}
	if r.Title != nil {
		f = f.Append("title", *r.Title)
	}
	f = appendOptional(f, CreateBookRequest{
		ISBN:            r.ISBN,
		PublisherID:     r.PublisherID,
		PublicationYear: r.PublicationYear,
		PagesCount:      r.PagesCount,
		Description:     r.Description,
		StorageLocation: r.StorageLocation,
		AcquisitionDate: r.AcquisitionDate,
		Price:           r.Price,
		Condition:       r.Condition,
		Format:          r.Format,
		SeriesID:        r.SeriesID,
		SeriesNumber:    r.SeriesNumber,
	})
	if r.Language != nil {
		f = f.Append("language", *r.Language)
	}
	if r.Status != nil {
		f = f.Append("status", *r.Status)
	}
	return f
}

func appendOptional(f repository.Fields, r CreateBookRequest) repository.Fields {
	if r.ISBN != nil {
		f = f.Append("isbn", *r.ISBN)
	}
	if r.PublisherID != nil {
		f = f.Append("publisher_id", *r.PublisherID)
	}
	if r.PublicationYear != nil {
		f = f.Append("publication_year", *r.PublicationYear)
	}
	if r.PagesCount != nil {
		f = f.Append("pages_count", *r.PagesCount)
	}
	if r.Description != nil {
		f = f.Append("description", *r.Description)
	}
	if r.StorageLocation != nil {
		f = f.Append("storage_location", *r.StorageLocation)
	}
	if r.AcquisitionDate != nil {
		f = f.Append("acquisition_date", *r.AcquisitionDate)
	}
	if r.Price != nil {
		f = f.Append("price", *r.Price)
	}
	if r.Condition != nil {
		f = f.Append("condition", *r.Condition)
	}
	if r.Format != nil {
		f = f.Append("format", *r.Format)
	}
	if r.SeriesID != nil {
		f = f.Append("series_id", *r.SeriesID)
	}
	if r.SeriesNumber != nil {
		f = f.Append("series_number", *r.SeriesNumber)
	}
	return f
}

func validatePrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return validation.NewError("validation_price_negative", "price must not be negative")
	}
	return nil
}
