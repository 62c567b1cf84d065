package publisher

import (
	"time"

	"personal-library-backend/internal/shared/repository"
)

var Table = repository.Table{Name: "publishers", IDColumn: "publisher_id"}

type Publisher struct {
	PublisherID   int64     `json:"publisher_id" db:"publisher_id"`
	PublisherName string    `json:"publisher_name" db:"publisher_name"`
	Country       *string   `json:"country,omitempty" db:"country"`
	City          *string   `json:"city,omitempty" db:"city"`
	FoundedYear   *int      `json:"founded_year,omitempty" db:"founded_year"`
	Website       *string   `json:"website,omitempty" db:"website"`
	Contacts      *string   `json:"contacts,omitempty" db:"contacts"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PublisherWithCount is a publisher annotated with how many books it published.
type PublisherWithCount struct {
	Publisher
	BooksCount int64 `json:"books_count" db:"books_count"`
}
