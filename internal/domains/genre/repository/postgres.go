package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/genre"
	"personal-library-backend/internal/shared/repository"
)

type postgresRepository struct {
	*repository.Base[genre.Genre]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{
		Base: repository.NewBase[genre.Genre](pool, genre.Table),
		pool: pool,
	}
}

// GetWithBooksCount returns the genre together with the number of books
// linked to it.
func (r *postgresRepository) GetWithBooksCount(ctx context.Context, id int64) (*genre.GenreWithCount, error) {
	query := `
		SELECT g.*, COUNT(bg.book_id) AS books_count
		FROM genres g
		LEFT JOIN books_genres bg ON bg.genre_id = g.genre_id
		WHERE g.genre_id = $1
		GROUP BY g.genre_id`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return repository.CollectOne[genre.GenreWithCount](rows)
}

// Hierarchy walks the whole genre tree top-down. Roots are level 0; rows come
// back breadth-first, alphabetical within each level.
func (r *postgresRepository) Hierarchy(ctx context.Context) ([]genre.GenreNode, error) {
	query := `
		WITH RECURSIVE genre_tree AS (
			SELECT g.*, 0 AS level
			FROM genres g
			WHERE g.parent_genre_id IS NULL

			UNION ALL

			SELECT g.*, gt.level + 1
			FROM genres g
			JOIN genre_tree gt ON g.parent_genre_id = gt.genre_id
		)
		SELECT * FROM genre_tree ORDER BY level, genre_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[genre.GenreNode](rows)
}
