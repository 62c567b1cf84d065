package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/review"
	"personal-library-backend/internal/shared/repository"
)

var conflictColumns = []string{"book_id", "reader_id"}

type postgresRepository struct {
	*repository.Base[review.Review]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{
		Base: repository.NewBase[review.Review](pool, review.Table),
		pool: pool,
	}
}

// Upsert keeps the one-review-per-(book, reader) rule in the statement
// itself: a second insert for the same pair overwrites the first review and
// stamps a fresh review_date.
func (r *postgresRepository) Upsert(ctx context.Context, fields repository.Fields) (*review.Review, error) {
	fields = fields.Append("review_date", time.Now())
	query, args := repository.UpsertStatement("reviews", conflictColumns, fields)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return repository.CollectOne[review.Review](rows)
}

func (r *postgresRepository) GetWithDetails(ctx context.Context, id int64) (*review.ReviewDetail, error) {
	query := `
		SELECT rv.*,
		       b.title AS book_title,
		       rd.first_name || ' ' || rd.last_name AS reader_name
		FROM reviews rv
		JOIN books b ON b.book_id = rv.book_id
		JOIN readers rd ON rd.reader_id = rv.reader_id
		WHERE rv.review_id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return repository.CollectOne[review.ReviewDetail](rows)
}

func (r *postgresRepository) ListByReader(ctx context.Context, readerID int64, offset, limit int) ([]review.ReviewWithBook, error) {
	offset, limit = repository.ClampPage(offset, limit)

	query := `
		SELECT rv.*, b.title AS book_title
		FROM reviews rv
		JOIN books b ON b.book_id = rv.book_id
		WHERE rv.reader_id = $1
		ORDER BY rv.review_date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, readerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[review.ReviewWithBook](rows)
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID int64, offset, limit int) ([]review.ReviewWithReader, error) {
	offset, limit = repository.ClampPage(offset, limit)

	query := `
		SELECT rv.*, rd.first_name || ' ' || rd.last_name AS reader_name
		FROM reviews rv
		JOIN readers rd ON rd.reader_id = rv.reader_id
		WHERE rv.book_id = $1
		ORDER BY rv.review_date DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, bookID, limit, offset)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[review.ReviewWithReader](rows)
}

// ReadingProgress buckets finished books (end_date set) by month, newest
// first, at most twelve buckets. A nil readerID covers the whole library.
func (r *postgresRepository) ReadingProgress(ctx context.Context, readerID *int64) ([]review.ProgressBucket, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM rv.end_date)::int AS year,
			EXTRACT(MONTH FROM rv.end_date)::int AS month,
			COUNT(*) AS books_read,
			COALESCE(SUM(b.pages_count), 0) AS pages_read,
			COALESCE(AVG(rv.rating), 0) AS avg_rating
		FROM reviews rv
		JOIN books b ON b.book_id = rv.book_id
		WHERE rv.end_date IS NOT NULL AND ($1::bigint IS NULL OR rv.reader_id = $1)
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT 12`

	rows, err := r.pool.Query(ctx, query, readerID)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[review.ProgressBucket](rows)
}
