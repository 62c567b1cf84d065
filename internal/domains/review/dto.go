package review

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"personal-library-backend/internal/shared/repository"
)

var readingStatuses = []interface{}{StatusReading, StatusFinished, StatusAbandoned}

// CreateReviewRequest - POST /api/v1/reviews. The reader comes from the
// access token, never from the body.
type CreateReviewRequest struct {
	BookID         int64      `json:"book_id"`
	Rating         int        `json:"rating"`
	ReviewText     *string    `json:"review_text,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	FavoriteQuotes *string    `json:"favorite_quotes,omitempty"`
	ReadingStatus  *string    `json:"reading_status,omitempty"`
}

func (r CreateReviewRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.ReadingStatus, validation.In(readingStatuses...)),
	); err != nil {
		return err
	}
	return validateReadingDates(r.StartDate, r.EndDate)
}

func (r CreateReviewRequest) Fields(readerID int64) repository.Fields {
	f := repository.Fields{}.
		Append("book_id", r.BookID).
		Append("reader_id", readerID).
		Append("rating", r.Rating)
	if r.ReviewText != nil {
		f = f.Append("review_text", *r.ReviewText)
	}
	if r.StartDate != nil {
		f = f.Append("start_date", *r.StartDate)
	}
	if r.EndDate != nil {
		f = f.Append("end_date", *r.EndDate)
	}
	if r.Notes != nil {
		f = f.Append("notes", *r.Notes)
	}
	if r.FavoriteQuotes != nil {
		f = f.Append("favorite_quotes", *r.FavoriteQuotes)
	}
	status := StatusFinished
	if r.ReadingStatus != nil {
		status = *r.ReadingStatus
	}
	return f.Append("reading_status", status)
}

// UpdateReviewRequest - PUT /api/v1/reviews/:id (partial update)
type UpdateReviewRequest struct {
	Rating         *int       `json:"rating,omitempty"`
	ReviewText     *string    `json:"review_text,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	FavoriteQuotes *string    `json:"favorite_quotes,omitempty"`
	ReadingStatus  *string    `json:"reading_status,omitempty"`
}

func (r UpdateReviewRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Min(1), validation.Max(5)),
		validation.Field(&r.ReadingStatus, validation.In(readingStatuses...)),
	); err != nil {
		return err
	}
	return validateReadingDates(r.StartDate, r.EndDate)
}

func (r UpdateReviewRequest) Fields() repository.Fields {
	f := repository.Fields{}
	if r.Rating != nil {
		f = f.Append("rating", *r.Rating)
	}
	if r.ReviewText != nil {
		f = f.Append("review_text", *r.ReviewText)
	}
	if r.StartDate != nil {
		f = f.Append("start_date", *r.StartDate)
	}
	if r.EndDate != nil {
		f = f.Append("end_date", *r.EndDate)
	}
	if r.Notes != nil {
		f = f.Append("notes", *r.Notes)
	}
	if r.FavoriteQuotes != nil {
		f = f.Append("favorite_quotes", *r.FavoriteQuotes)
	}
	if r.ReadingStatus != nil {
		f = f.Append("reading_status", *r.ReadingStatus)
	}
	return f
}

// End date may equal the start date (a book read in one day).
func validateReadingDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.New("end_date must not be before start_date")
	}
	return nil
}
