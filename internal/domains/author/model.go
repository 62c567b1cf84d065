package author

import (
	"time"

	"personal-library-backend/internal/shared/repository"
)

var Table = repository.Table{Name: "authors", IDColumn: "author_id"}

type Author struct {
	AuthorID    int64      `json:"author_id" db:"author_id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	LastName    string     `json:"last_name" db:"last_name"`
	Pseudonym   *string    `json:"pseudonym,omitempty" db:"pseudonym"`
	BirthDate   *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	DeathDate   *time.Time `json:"death_date,omitempty" db:"death_date"`
	Country     *string    `json:"country,omitempty" db:"country"`
	Biography   *string    `json:"biography,omitempty" db:"biography"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// AuthorWithCount is an author annotated with how many books they are
// credited on.
type AuthorWithCount struct {
	Author
	BooksCount int64 `json:"books_count" db:"books_count"`
}

// AuthorBook is the projection used when listing an author's books,
// newest first.
type AuthorBook struct {
	BookID          int64  `json:"book_id" db:"book_id"`
	Title           string `json:"title" db:"title"`
	PublicationYear *int   `json:"publication_year,omitempty" db:"publication_year"`
	Status          string `json:"status" db:"status"`
}
