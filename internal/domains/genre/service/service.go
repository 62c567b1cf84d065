package service

import (
	"context"

	"personal-library-backend/internal/domains/genre"
)

// Service wraps genre business rules over the repository.
type Service struct {
	repo genre.Repository
}

func NewService(repo genre.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req genre.CreateGenreRequest) (*genre.Genre, error) {
	if req.ParentGenreID != nil {
		parent, err := s.repo.Get(ctx, *req.ParentGenreID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, genre.ErrParentNotFound
		}
	}
	return s.repo.Create(ctx, req.Fields())
}

func (s *Service) Get(ctx context.Context, id int64) (*genre.GenreWithCount, error) {
	return s.repo.GetWithBooksCount(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]genre.Genre, int64, error) {
	genres, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

func (s *Service) Hierarchy(ctx context.Context) ([]genre.GenreNode, error) {
	return s.repo.Hierarchy(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req genre.UpdateGenreRequest) (*genre.Genre, error) {
	if req.ParentGenreID != nil {
		if *req.ParentGenreID == id {
			return nil, genre.ErrSelfParent
		}
		parent, err := s.repo.Get(ctx, *req.ParentGenreID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, genre.ErrParentNotFound
		}
	}
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
