package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"personal-library-backend/internal/domains/author"
	"personal-library-backend/internal/domains/book"
	"personal-library-backend/internal/domains/genre"
	"personal-library-backend/internal/shared/repository"
	"personal-library-backend/pkg/database"
)

type postgresRepository struct {
	*repository.Base[book.Book]
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{
		Base: repository.NewBase[book.Book](pool, book.Table),
		pool: pool,
	}
}

// CreateWithRelations inserts the book row and its links atomically. Author
// links are unordered credits; genre links keep the request order and mark
// the first genre as primary.
func (r *postgresRepository) CreateWithRelations(ctx context.Context, fields repository.Fields, authorIDs, genreIDs []int64) (*book.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		created, err := r.CreateIn(ctx, tx, fields)
		if err != nil {
			return nil, err
		}

		if err := insertAuthorLinks(ctx, tx, created.BookID, authorIDs); err != nil {
			return nil, err
		}
		if err := insertGenreLinks(ctx, tx, created.BookID, genreIDs); err != nil {
			return nil, err
		}
		return created, nil
	})
}

// UpdateWithRelations applies the partial update and replaces links where a
// slice was supplied. nil = keep, empty = clear.
func (r *postgresRepository) UpdateWithRelations(ctx context.Context, id int64, fields repository.Fields, authorIDs, genreIDs []int64) (*book.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		updated, err := r.UpdateIn(ctx, tx, id, fields)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, nil
		}

		if authorIDs != nil {
			if _, err := tx.Exec(ctx, "DELETE FROM books_authors WHERE book_id = $1", id); err != nil {
				return nil, err
			}
			if err := insertAuthorLinks(ctx, tx, id, authorIDs); err != nil {
				return nil, err
			}
		}

		if genreIDs != nil {
			if _, err := tx.Exec(ctx, "DELETE FROM books_genres WHERE book_id = $1", id); err != nil {
				return nil, err
			}
			if err := insertGenreLinks(ctx, tx, id, genreIDs); err != nil {
				return nil, err
			}
		}
		return updated, nil
	})
}

func insertAuthorLinks(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) error {
	for _, authorID := range authorIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO books_authors (book_id, author_id) VALUES ($1, $2)",
			bookID, authorID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertGenreLinks(ctx context.Context, tx pgx.Tx, bookID int64, genreIDs []int64) error {
	for i, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO books_genres (book_id, genre_id, is_primary) VALUES ($1, $2, $3)",
			bookID, genreID, i == 0,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetWithDetails returns the book with publisher/series names, review
// aggregates and the hydrated author and genre lists (primary genre first).
func (r *postgresRepository) GetWithDetails(ctx context.Context, id int64) (*book.BookDetail, error) {
	query := `
		SELECT b.*,
		       p.publisher_name,
		       s.series_name,
		       COALESCE(AVG(rv.rating), 0) AS avg_rating,
		       COUNT(DISTINCT rv.review_id) AS review_count
		FROM books b
		LEFT JOIN publishers p ON p.publisher_id = b.publisher_id
		LEFT JOIN series s ON s.series_id = b.series_id
		LEFT JOIN reviews rv ON rv.book_id = b.book_id
		WHERE b.book_id = $1
		GROUP BY b.book_id, p.publisher_name, s.series_name`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	detail, err := repository.CollectOne[book.BookDetail](rows)
	if err != nil || detail == nil {
		return detail, err
	}

	authorsQuery := `
		SELECT a.* FROM authors a
		JOIN books_authors ba ON ba.author_id = a.author_id
		WHERE ba.book_id = $1
		ORDER BY a.last_name, a.first_name`

	rows, err = r.pool.Query(ctx, authorsQuery, id)
	if err != nil {
		return nil, err
	}
	if detail.Authors, err = repository.CollectMany[author.Author](rows); err != nil {
		return nil, err
	}

	genresQuery := `
		SELECT g.* FROM genres g
		JOIN books_genres bg ON bg.genre_id = g.genre_id
		WHERE bg.book_id = $1
		ORDER BY bg.is_primary DESC, g.genre_name`

	rows, err = r.pool.Query(ctx, genresQuery, id)
	if err != nil {
		return nil, err
	}
	if detail.Genres, err = repository.CollectMany[genre.Genre](rows); err != nil {
		return nil, err
	}

	return detail, nil
}

// Search combines all supplied filters conjunctively and orders hits by
// title. Review aggregates ride along on every row.
func (r *postgresRepository) Search(ctx context.Context, filter book.SearchFilter, offset, limit int) ([]book.BookSearchRow, error) {
	offset, limit = repository.ClampPage(offset, limit)

	var where []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Query != "" {
		p := arg("%" + filter.Query + "%")
		where = append(where, fmt.Sprintf("(b.title ILIKE %s OR b.description ILIKE %s)", p, p))
	}
	if filter.AuthorID != nil {
		p := arg(*filter.AuthorID)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM books_authors ba WHERE ba.book_id = b.book_id AND ba.author_id = %s)", p))
	}
	if filter.GenreID != nil {
		p := arg(*filter.GenreID)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM books_genres bg WHERE bg.book_id = b.book_id AND bg.genre_id = %s)", p))
	}
	if filter.YearFrom != nil {
		where = append(where, fmt.Sprintf("b.publication_year >= %s", arg(*filter.YearFrom)))
	}
	if filter.YearTo != nil {
		where = append(where, fmt.Sprintf("b.publication_year <= %s", arg(*filter.YearTo)))
	}

	whereClause := "1=1"
	if len(where) > 0 {
		whereClause = strings.Join(where, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT b.*,
		       COALESCE(AVG(rv.rating), 0) AS avg_rating,
		       COUNT(DISTINCT rv.review_id) AS review_count
		FROM books b
		LEFT JOIN reviews rv ON rv.book_id = b.book_id
		WHERE %s
		GROUP BY b.book_id
		ORDER BY b.title
		LIMIT %s OFFSET %s`,
		whereClause, arg(limit), arg(offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return repository.CollectMany[book.BookSearchRow](rows)
}

// Statistics summarizes the whole library.
func (r *postgresRepository) Statistics(ctx context.Context) (*book.Statistics, error) {
	stats := &book.Statistics{BooksByStatus: map[string]int64{}}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalBooks = total

	rows, err := r.pool.Query(ctx, "SELECT status, COUNT(*) FROM books GROUP BY status")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, err
		}
		stats.BooksByStatus[status] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	genresQuery := `
		SELECT g.genre_name AS name, COUNT(DISTINCT bg.book_id) AS count
		FROM genres g
		JOIN books_genres bg ON bg.genre_id = g.genre_id
		GROUP BY g.genre_id, g.genre_name
		ORDER BY count DESC
		LIMIT 10`

	rows, err = r.pool.Query(ctx, genresQuery)
	if err != nil {
		return nil, err
	}
	if stats.TopGenres, err = repository.CollectMany[book.NamedCount](rows); err != nil {
		return nil, err
	}

	authorsQuery := `
		SELECT a.first_name || ' ' || a.last_name AS name, COUNT(DISTINCT ba.book_id) AS count
		FROM authors a
		JOIN books_authors ba ON ba.author_id = a.author_id
		GROUP BY a.author_id, a.first_name, a.last_name
		ORDER BY count DESC
		LIMIT 10`

	rows, err = r.pool.Query(ctx, authorsQuery)
	if err != nil {
		return nil, err
	}
	if stats.TopAuthors, err = repository.CollectMany[book.NamedCount](rows); err != nil {
		return nil, err
	}

	ratingQuery := "SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews"
	if err := r.pool.QueryRow(ctx, ratingQuery).Scan(&stats.AverageRating, &stats.TotalReviews); err != nil {
		return nil, err
	}

	return stats, nil
}
