package series

import (
	"time"

	"personal-library-backend/internal/shared/repository"
)

var Table = repository.Table{Name: "series", IDColumn: "series_id"}

type Series struct {
	SeriesID    int64     `json:"series_id" db:"series_id"`
	SeriesName  string    `json:"series_name" db:"series_name"`
	Description *string   `json:"description,omitempty" db:"description"`
	PublisherID *int64    `json:"publisher_id,omitempty" db:"publisher_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SeriesBook is the projection used when listing the books of a series,
// ordered by their position.
type SeriesBook struct {
	BookID          int64  `json:"book_id" db:"book_id"`
	Title           string `json:"title" db:"title"`
	SeriesNumber    *int   `json:"series_number,omitempty" db:"series_number"`
	PublicationYear *int   `json:"publication_year,omitempty" db:"publication_year"`
	Status          string `json:"status" db:"status"`
}
