package genre

import (
	"time"

	"personal-library-backend/internal/shared/repository"
)

// Table is the explicit descriptor for the genres table.
var Table = repository.Table{Name: "genres", IDColumn: "genre_id"}

// Genre is a catalog genre. Genres form a tree via ParentGenreID; the tree is
// acyclic by construction (a genre can only reference an existing parent).
type Genre struct {
	GenreID       int64     `json:"genre_id" db:"genre_id"`
	GenreName     string    `json:"genre_name" db:"genre_name"`
	Description   *string   `json:"description,omitempty" db:"description"`
	ParentGenreID *int64    `json:"parent_genre_id,omitempty" db:"parent_genre_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// GenreWithCount is a genre annotated with the number of books linked to it.
type GenreWithCount struct {
	Genre
	BooksCount int64 `json:"books_count" db:"books_count"`
}

// GenreNode is a genre inside the hierarchy, annotated with its depth.
type GenreNode struct {
	Genre
	Level int `json:"level" db:"level"`
}
