package service

import (
	"context"

	"personal-library-backend/internal/domains/review"
)

// Service enforces ownership on review mutations: only the authoring reader
// may change or remove a review.
type Service struct {
	repo review.Repository
}

func NewService(repo review.Repository) *Service {
	return &Service{repo: repo}
}

// Create upserts the reader's review of a book.
func (s *Service) Create(ctx context.Context, readerID int64, req review.CreateReviewRequest) (*review.Review, error) {
	return s.repo.Upsert(ctx, req.Fields(readerID))
}

func (s *Service) Get(ctx context.Context, id int64) (*review.ReviewDetail, error) {
	return s.repo.GetWithDetails(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]review.Review, int64, error) {
	reviews, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *Service) ListByReader(ctx context.Context, readerID int64, offset, limit int) ([]review.ReviewWithBook, error) {
	return s.repo.ListByReader(ctx, readerID, offset, limit)
}

func (s *Service) ListByBook(ctx context.Context, bookID int64, offset, limit int) ([]review.ReviewWithReader, error) {
	return s.repo.ListByBook(ctx, bookID, offset, limit)
}

func (s *Service) Update(ctx context.Context, id, readerID int64, req review.UpdateReviewRequest) (*review.Review, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if existing.ReaderID != readerID {
		return nil, review.ErrNotOwner
	}
	return s.repo.Update(ctx, id, req.Fields())
}

func (s *Service) Delete(ctx context.Context, id, readerID int64) (bool, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if existing.ReaderID != readerID {
		return false, review.ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ReadingProgress(ctx context.Context, readerID *int64) ([]review.ProgressBucket, error) {
	return s.repo.ReadingProgress(ctx, readerID)
}
