package service

import (
	"context"

	"personal-library-backend/internal/domains/book"
)

type Service struct {
	repo book.Repository
}

func NewService(repo book.Repository) *Service {
	return &Service{repo: repo}
}

// Create stores the book with its author and genre links and returns the
// detail view of the new record.
func (s *Service) Create(ctx context.Context, req book.CreateBookRequest) (*book.BookDetail, error) {
	created, err := s.repo.CreateWithRelations(ctx, req.Fields(), req.AuthorIDs, req.GenreIDs)
	if err != nil {
		return nil, err
	}
	return s.repo.GetWithDetails(ctx, created.BookID)
}

func (s *Service) Get(ctx context.Context, id int64) (*book.BookDetail, error) {
	return s.repo.GetWithDetails(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]book.Book, int64, error) {
	books, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (s *Service) Search(ctx context.Context, filter book.SearchFilter, offset, limit int) ([]book.BookSearchRow, error) {
	return s.repo.Search(ctx, filter, offset, limit)
}

// Update applies the partial update and returns the fresh detail view, or
// nil when the book does not exist.
func (s *Service) Update(ctx context.Context, id int64, req book.UpdateBookRequest) (*book.BookDetail, error) {
	updated, err := s.repo.UpdateWithRelations(ctx, id, req.Fields(), req.AuthorIDs, req.GenreIDs)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return s.repo.GetWithDetails(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Statistics(ctx context.Context) (*book.Statistics, error) {
	return s.repo.Statistics(ctx)
}
