package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/series"
	"personal-library-backend/internal/shared/repository"
)

// booksQuery lists the books of a series in reading order. Unnumbered
// volumes sort last, then by publication year.
const booksQuery = `
	SELECT book_id, title, series_number, publication_year, status
	FROM books
	WHERE series_id = $1
	ORDER BY series_number NULLS LAST, publication_year`

type postgresRepository struct {
	*repository.Base[series.Series]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) series.Repository {
	return &postgresRepository{
		Base: repository.NewBase[series.Series](pool, series.Table),
		pool: pool,
	}
}

func (r *postgresRepository) Books(ctx context.Context, seriesID int64) ([]series.SeriesBook, error) {
	rows, err := r.pool.Query(ctx, booksQuery, seriesID)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[series.SeriesBook](rows)
}
