package reader

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

type Repository interface {
	Create(ctx context.Context, fields repository.Fields) (*Reader, error)
	Get(ctx context.Context, id int64) (*Reader, error)
	GetByEmail(ctx context.Context, email string) (*Reader, error)
	List(ctx context.Context, offset, limit int) ([]Reader, error)
	Update(ctx context.Context, id int64, fields repository.Fields) (*Reader, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Statistics(ctx context.Context, readerID int64) (*Statistics, error)
}
