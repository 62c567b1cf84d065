package reader

import (
	"time"

	"personal-library-backend/internal/shared/repository"
)

var Table = repository.Table{Name: "readers", IDColumn: "reader_id"}

// Reader is a library member. PasswordHash never leaves the service layer:
// it is excluded from JSON and stripped from every response DTO.
type Reader struct {
	ReaderID         int64     `json:"reader_id" db:"reader_id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	LastName         string    `json:"last_name" db:"last_name"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	Preferences      *string   `json:"preferences,omitempty" db:"preferences"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// FavoriteEntry is one row of a reader's top genres or authors.
type FavoriteEntry struct {
	Name      string  `json:"name" db:"name"`
	Count     int64   `json:"count" db:"count"`
	AvgRating float64 `json:"avg_rating" db:"avg_rating"`
}

// Statistics aggregates a reader's finished books.
type Statistics struct {
	BooksRead       int64           `json:"books_read"`
	AvgRating       float64         `json:"avg_rating"`
	YearsActive     int64           `json:"years_active"`
	GenresRead      int64           `json:"genres_read"`
	TotalPages      int64           `json:"total_pages"`
	FavoriteGenres  []FavoriteEntry `json:"favorite_genres"`
	FavoriteAuthors []FavoriteEntry `json:"favorite_authors"`
}

// LoginResult carries the issued token together with the authenticated reader.
type LoginResult struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	Reader      *Reader `json:"reader"`
}
