package service

import (
	"context"

	"personal-library-backend/internal/domains/series"
)

type Service struct {
	repo series.Repository
}

func NewService(repo series.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req series.CreateSeriesRequest) (*series.Series, error) {
	return s.repo.Create(ctx, req.Fields())
}

func (s *Service) Get(ctx context.Context, id int64) (*series.Series, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]series.Series, int64, error) {
	records, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *Service) Update(ctx context.Context, id int64, req series.UpdateSeriesRequest) (*series.Series, error) {
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Books lists the books of a series in reading order. The caller gets a nil
// slice (not an error) when the series itself is missing but NotFound is the
// right signal, so existence is checked first.
func (s *Service) Books(ctx context.Context, id int64) ([]series.SeriesBook, bool, error) {
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
