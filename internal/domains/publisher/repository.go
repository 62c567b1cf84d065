package publisher

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

type Repository interface {
	Create(ctx context.Context, fields repository.Fields) (*Publisher, error)
	Get(ctx context.Context, id int64) (*Publisher, error)
	GetWithBooksCount(ctx context.Context, id int64) (*PublisherWithCount, error)
	List(ctx context.Context, offset, limit int) ([]Publisher, error)
	Update(ctx context.Context, id int64, fields repository.Fields) (*Publisher, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
