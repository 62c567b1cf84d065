package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/reader"
	"personal-library-backend/internal/shared/repository"
)

type postgresRepository struct {
	*repository.Base[reader.Reader]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) reader.Repository {
	return &postgresRepository{
		Base: repository.NewBase[reader.Reader](pool, reader.Table),
		pool: pool,
	}
}

// GetByEmail returns the active reader for the email, or nil. Deactivated
// accounts are invisible to authentication.
func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*reader.Reader, error) {
	query := "SELECT * FROM readers WHERE email = $1 AND is_active = true"

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	return repository.CollectOne[reader.Reader](rows)
}

// Deactivate soft-deletes the account. The row and its reviews stay.
func (r *postgresRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	query := "UPDATE readers SET is_active = false WHERE reader_id = $1 AND is_active = true"

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Statistics aggregates the reader's finished books (end_date set) plus
// their five most-reviewed genres and authors.
func (r *postgresRepository) Statistics(ctx context.Context, readerID int64) (*reader.Statistics, error) {
	totalsQuery := `
		SELECT
			COUNT(DISTINCT rv.book_id) AS books_read,
			COALESCE(AVG(rv.rating), 0) AS avg_rating,
			COUNT(DISTINCT EXTRACT(YEAR FROM rv.end_date)) AS years_active,
			COUNT(DISTINCT bg.genre_id) AS genres_read,
			COALESCE(SUM(b.pages_count), 0) AS total_pages
		FROM reviews rv
		JOIN books b ON b.book_id = rv.book_id
		LEFT JOIN books_genres bg ON bg.book_id = b.book_id
		WHERE rv.reader_id = $1 AND rv.end_date IS NOT NULL`

	stats := &reader.Statistics{}
	err := r.pool.QueryRow(ctx, totalsQuery, readerID).Scan(
		&stats.BooksRead,
		&stats.AvgRating,
		&stats.YearsActive,
		&stats.GenresRead,
		&stats.TotalPages,
	)
	if err != nil {
		return nil, err
	}

	genresQuery := `
		SELECT g.genre_name AS name, COUNT(*) AS count, COALESCE(AVG(rv.rating), 0) AS avg_rating
		FROM reviews rv
		JOIN books_genres bg ON bg.book_id = rv.book_id
		JOIN genres g ON g.genre_id = bg.genre_id
		WHERE rv.reader_id = $1
		GROUP BY g.genre_id, g.genre_name
		ORDER BY count DESC, avg_rating DESC
		LIMIT 5`

	rows, err := r.pool.Query(ctx, genresQuery, readerID)
	if err != nil {
		return nil, err
	}
	if stats.FavoriteGenres, err = repository.CollectMany[reader.FavoriteEntry](rows); err != nil {
		return nil, err
	}

	authorsQuery := `
		SELECT a.first_name || ' ' || a.last_name AS name,
		       COUNT(*) AS count, COALESCE(AVG(rv.rating), 0) AS avg_rating
		FROM reviews rv
		JOIN books_authors ba ON ba.book_id = rv.book_id
		JOIN authors a ON a.author_id = ba.author_id
		WHERE rv.reader_id = $1
		GROUP BY a.author_id, a.first_name, a.last_name
		ORDER BY count DESC, avg_rating DESC
		LIMIT 5`

	rows, err = r.pool.Query(ctx, authorsQuery, readerID)
	if err != nil {
		return nil, err
	}
	if stats.FavoriteAuthors, err = repository.CollectMany[reader.FavoriteEntry](rows); err != nil {
		return nil, err
	}

	return stats, nil
}
