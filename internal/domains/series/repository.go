package series

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

type Repository interface {
	Create(ctx context.Context, fields repository.Fields) (*Series, error)
	Get(ctx context.Context, id int64) (*Series, error)
	List(ctx context.Context, offset, limit int) ([]Series, error)
	Update(ctx context.Context, id int64, fields repository.Fields) (*Series, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Books(ctx context.Context, seriesID int64) ([]SeriesBook, error)
}
