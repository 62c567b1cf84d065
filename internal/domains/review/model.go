package review

import (
	"time"

	"personal-library-backend/internal/shared/repository"
)

var Table = repository.Table{Name: "reviews", IDColumn: "review_id"}

// Reading status values for a review.
const (
	StatusReading   = "reading"
	StatusFinished  = "finished"
	StatusAbandoned = "abandoned"
)

// Review is one reader's take on one book. At most one review exists per
// (book, reader) pair; creating a second one overwrites the first.
type Review struct {
	ReviewID       int64      `json:"review_id" db:"review_id"`
	BookID         int64      `json:"book_id" db:"book_id"`
	ReaderID       int64      `json:"reader_id" db:"reader_id"`
	Rating         int        `json:"rating" db:"rating"`
	ReviewText     *string    `json:"review_text,omitempty" db:"review_text"`
	StartDate      *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty" db:"end_date"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	FavoriteQuotes *string    `json:"favorite_quotes,omitempty" db:"favorite_quotes"`
	ReadingStatus  string     `json:"reading_status" db:"reading_status"`
	ReviewDate     time.Time  `json:"review_date" db:"review_date"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// ReviewDetail joins in the book title and reader display name.
type ReviewDetail struct {
	Review
	BookTitle  string `json:"book_title" db:"book_title"`
	ReaderName string `json:"reader_name" db:"reader_name"`
}

// ReviewWithBook is a review in a per-reader listing.
type ReviewWithBook struct {
	Review
	BookTitle string `json:"book_title" db:"book_title"`
}

// ReviewWithReader is a review in a per-book listing.
type ReviewWithReader struct {
	Review
	ReaderName string `json:"reader_name" db:"reader_name"`
}

// ProgressBucket is one month of finished books.
type ProgressBucket struct {
	Year      int     `json:"year" db:"year"`
	Month     int     `json:"month" db:"month"`
	BooksRead int64   `json:"books_read" db:"books_read"`
	PagesRead int64   `json:"pages_read" db:"pages_read"`
	AvgRating float64 `json:"avg_rating" db:"avg_rating"`
}
