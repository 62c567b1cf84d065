package author

import (
	"context"

	"personal-library-backend/internal/shared/repository"
)

type Repository interface {
	Create(ctx context.Context, fields repository.Fields) (*Author, error)
	Get(ctx context.Context, id int64) (*Author, error)
	GetWithBooksCount(ctx context.Context, id int64) (*AuthorWithCount, error)
	List(ctx context.Context, offset, limit int) ([]Author, error)
	Update(ctx context.Context, id int64, fields repository.Fields) (*Author, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string, offset, limit int) ([]AuthorWithCount, error)
	Books(ctx context.Context, authorID int64) ([]AuthorBook, error)
}
