package book

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

type Repository interface {
	// CreateWithRelations inserts the book and its author/genre links in one
	// transaction. The first genre id becomes the primary genre.
	CreateWithRelations(ctx context.Context, fields repository.Fields, authorIDs, genreIDs []int64) (*Book, error)
	// UpdateWithRelations applies a partial update; nil id slices leave the
	// links untouched, empty slices clear them.
	UpdateWithRelations(ctx context.Context, id int64, fields repository.Fields, authorIDs, genreIDs []int64) (*Book, error)
	Get(ctx context.Context, id int64) (*Book, error)
	GetWithDetails(ctx context.Context, id int64) (*BookDetail, error)
	List(ctx context.Context, offset, limit int) ([]Book, error)
	Search(ctx context.Context, filter SearchFilter, offset, limit int) ([]BookSearchRow, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Statistics(ctx context.Context) (*Statistics, error)
}
