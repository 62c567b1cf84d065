package book

import (
	"time"

	"github.com/shopspring/decimal"

	"personal-library-backend/internal/domains/author"
	"personal-library-backend/internal/domains/genre"
	"personal-library-backend/internal/shared/repository"
)

var Table = repository.Table{Name: "books", IDColumn: "book_id"}

// Physical condition of a copy.
const (
	ConditionNew  = "new"
	ConditionGood = "good"
	ConditionFair = "fair"
)

// Binding format.
const (
	FormatHardcover = "hardcover"
	FormatPaperback = "paperback"
	FormatEbook     = "ebook"
)

// Where the copy currently is.
const (
	StatusInLibrary = "in-library"
	StatusLentOut   = "lent-out"
	StatusLost      = "lost"
)

// Book is one copy in the library.
type Book struct {
	BookID          int64               `json:"book_id" db:"book_id"`
	Title           string              `json:"title" db:"title"`
	ISBN            *string             `json:"isbn,omitempty" db:"isbn"`
	PublisherID     *int64              `json:"publisher_id,omitempty" db:"publisher_id"`
	PublicationYear *int                `json:"publication_year,omitempty" db:"publication_year"`
	PagesCount      *int                `json:"pages_count,omitempty" db:"pages_count"`
	Language        string              `json:"language" db:"language"`
	Description     *string             `json:"description,omitempty" db:"description"`
	StorageLocation *string             `json:"storage_location,omitempty" db:"storage_location"`
	AcquisitionDate *time.Time          `json:"acquisition_date,omitempty" db:"acquisition_date"`
	Price           decimal.NullDecimal `json:"price,omitempty" db:"price"`
	Condition       *string             `json:"condition,omitempty" db:"condition"`
	Format          *string             `json:"format,omitempty" db:"format"`
	Status          string              `json:"status" db:"status"`
	SeriesID        *int64              `json:"series_id,omitempty" db:"series_id"`
	SeriesNumber    *int                `json:"series_number,omitempty" db:"series_number"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" db:"updated_at"`
}

// BookDetail is the single-book read: joined names, review aggregates and
// the full author/genre lists. Genres come primary-first.
type BookDetail struct {
	Book
	PublisherName *string         `json:"publisher_name,omitempty" db:"publisher_name"`
	SeriesName    *string         `json:"series_name,omitempty" db:"series_name"`
	AvgRating     float64         `json:"avg_rating" db:"avg_rating"`
	ReviewCount   int64           `json:"review_count" db:"review_count"`
	Authors       []author.Author `json:"authors" db:"-"`
	Genres        []genre.Genre   `json:"genres" db:"-"`
}

// BookSearchRow is one search hit with its review aggregates.
type BookSearchRow struct {
	Book
	AvgRating   float64 `json:"avg_rating" db:"avg_rating"`
	ReviewCount int64   `json:"review_count" db:"review_count"`
}

// SearchFilter is the conjunctive book search. Zero values mean the
// dimension is unconstrained.
type SearchFilter struct {
	Query    string
	AuthorID *int64
	GenreID  *int64
	YearFrom *int
	YearTo   *int
}

// IsZero reports whether no dimension is constrained.
func (f SearchFilter) IsZero() bool {
	return f.Query == "" && f.AuthorID == nil && f.GenreID == nil &&
		f.YearFrom == nil && f.YearTo == nil
}

// NamedCount is one (name, count) row in the statistics summary.
type NamedCount struct {
	Name  string `json:"name" db:"name"`
	Count int64  `json:"count" db:"count"`
}

// Statistics is the library-wide summary.
type Statistics struct {
	TotalBooks    int64            `json:"total_books"`
	BooksByStatus map[string]int64 `json:"books_by_status"`
	TopGenres     []NamedCount     `json:"top_genres"`
	TopAuthors    []NamedCount     `json:"top_authors"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int64            `json:"total_reviews"`
}
