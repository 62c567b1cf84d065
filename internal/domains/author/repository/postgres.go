package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/author"
	"personal-library-backend/internal/shared/repository"
)

type postgresRepository struct {
	*repository.Base[author.Author]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{
		Base: repository.NewBase[author.Author](pool, author.Table),
		pool: pool,
	}
}

func (r *postgresRepository) GetWithBooksCount(ctx context.Context, id int64) (*author.AuthorWithCount, error) {
	query := `
		SELECT a.*, COUNT(ba.book_id) AS books_count
		FROM authors a
		LEFT JOIN books_authors ba ON ba.author_id = a.author_id
		WHERE a.author_id = $1
		GROUP BY a.author_id`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return repository.CollectOne[author.AuthorWithCount](rows)
}

// Search matches the term case-insensitively against first name, last name
// and pseudonym. Hits carry their books_count.
func (r *postgresRepository) Search(ctx context.Context, term string, offset, limit int) ([]author.AuthorWithCount, error) {
	offset, limit = repository.ClampPage(offset, limit)

	query := `
		SELECT a.*, COUNT(DISTINCT ba.book_id) AS books_count
		FROM authors a
		LEFT JOIN books_authors ba ON ba.author_id = a.author_id
		WHERE a.first_name ILIKE $1 OR a.last_name ILIKE $1 OR a.pseudonym ILIKE $1
		GROUP BY a.author_id
		ORDER BY a.last_name, a.first_name
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, "%"+term+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[author.AuthorWithCount](rows)
}

// Books lists the books the author is credited on, newest first.
func (r *postgresRepository) Books(ctx context.Context, authorID int64) ([]author.AuthorBook, error) {
	query := `
		SELECT b.book_id, b.title, b.publication_year, b.status
		FROM books b
		JOIN books_authors ba ON ba.book_id = b.book_id
		WHERE ba.author_id = $1
		ORDER BY b.publication_year DESC NULLS LAST, b.title`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[author.AuthorBook](rows)
}
