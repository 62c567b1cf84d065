package review

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

type Repository interface {
	// Upsert inserts the review or, when the (book, reader) pair already has
	// one, overwrites it in place.
	Upsert(ctx context.Context, fields repository.Fields) (*Review, error)
	Get(ctx context.Context, id int64) (*Review, error)
	GetWithDetails(ctx context.Context, id int64) (*ReviewDetail, error)
	List(ctx context.Context, offset, limit int) ([]Review, error)
	ListByReader(ctx context.Context, readerID int64, offset, limit int) ([]ReviewWithBook, error)
	ListByBook(ctx context.Context, bookID int64, offset, limit int) ([]ReviewWithReader, error)
	Update(ctx context.Context, id int64, fields repository.Fields) (*Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	ReadingProgress(ctx context.Context, readerID *int64) ([]ProgressBucket, error)
}
