package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/publisher"
	"personal-library-backend/internal/shared/repository"
)

type postgresRepository struct {
	*repository.Base[publisher.Publisher]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) publisher.Repository {
	return &postgresRepository{
		Base: repository.NewBase[publisher.Publisher](pool, publisher.Table),
		pool: pool,
	}
}

func (r *postgresRepository) GetWithBooksCount(ctx context.Context, id int64) (*publisher.PublisherWithCount, error) {
	query := `
		SELECT p.*, COUNT(b.book_id) AS books_count
		FROM publishers p
		LEFT JOIN books b ON b.publisher_id = p.publisher_id
		WHERE p.publisher_id = $1
		GROUP BY p.publisher_id`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return repository.CollectOne[publisher.PublisherWithCount](rows)
}
