package service

import (
	"context"

	"personal-library-backend/internal/domains/publisher"
)

type Service struct {
	repo publisher.Repository
}

func NewService(repo publisher.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req publisher.CreatePublisherRequest) (*publisher.Publisher, error) {
	return s.repo.Create(ctx, req.Fields())
}

func (s *Service) Get(ctx context.Context, id int64) (*publisher.PublisherWithCount, error) {
	return s.repo.GetWithBooksCount(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]publisher.Publisher, int64, error) {
	publishers, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return publishers, total, nil
}

func (s *Service) Update(ctx context.Context, id int64, req publisher.UpdatePublisherRequest) (*publisher.Publisher, error) {
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
