package service

import (
	"context"
	"strings"

	"personal-library-backend/internal/domains/author"
)

type Service struct {
	repo author.Repository
}

func NewService(repo author.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.Author, error) {
	return s.repo.Create(ctx, req.Fields())
}

func (s *Service) Get(ctx context.Context, id int64) (*author.AuthorWithCount, error) {
	return s.repo.GetWithBooksCount(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]author.Author, int64, error) {
	authors, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// Search matches against first name, last name and pseudonym. A blank term
// matches everything.
func (s *Service) Search(ctx context.Context, term string, offset, limit int) ([]author.AuthorWithCount, error) {
	return s.repo.Search(ctx, strings.TrimSpace(term), offset, limit)
}

func (s *Service) Update(ctx context.Context, id int64, req author.UpdateAuthorRequest) (*author.Author, error) {
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Books(ctx context.Context, id int64) ([]author.AuthorBook, bool, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, nil
	}
	books, err := s.repo.Books(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return books, true, nil
}
