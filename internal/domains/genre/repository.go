package genre

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

// Repository is the genre data-access contract. Absent rows come back as nil
// records, never as errors.
type Repository interface {
	Create(ctx context.Context, fields repository.Fields) (*Genre, error)
	Get(ctx context.Context, id int64) (*Genre, error)
	GetWithBooksCount(ctx context.Context, id int64) (*GenreWithCount, error)
	List(ctx context.Context, offset, limit int) ([]Genre, error)
	Update(ctx context.Context, id int64, fields repository.Fields) (*Genre, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Hierarchy(ctx context.Context) ([]GenreNode, error)
}
