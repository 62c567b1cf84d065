package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-library-backend/internal/domains/review"
	"personal-library-backend/internal/shared/repository"
)

type pairKey struct {
	bookID, readerID int64
}

// fakeRepo is an in-memory review.Repository with the same
// one-review-per-(book, reader) rule as the real store.
type fakeRepo struct {
	nextID  int64
	reviews map[int64]*review.Review
	byPair  map[pairKey]int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:  1,
		reviews: map[int64]*review.Review{},
		byPair:  map[pairKey]int64{},
	}
}

func (f *fakeRepo) Upsert(_ context.Context, fields repository.Fields) (*review.Review, error) {
	rec := &review.Review{ReadingStatus: review.StatusFinished}
	applyFields(rec, fields)

	key := pairKey{rec.BookID, rec.ReaderID}
	if id, ok := f.byPair[key]; ok {
		existing := f.reviews[id]
		applyFields(existing, fields)
		existing.ReviewDate = time.Now()
		copied := *existing
		return &copied, nil
	}

	rec.ReviewID = f.nextID
	rec.ReviewDate = time.Now()
	rec.CreatedAt = time.Now()
	f.reviews[f.nextID] = rec
	f.byPair[key] = f.nextID
	f.nextID++
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (*review.Review, error) {
	rec, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) GetWithDetails(_ context.Context, id int64) (*review.ReviewDetail, error) {
	rec, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review.ReviewDetail{Review: *rec}, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]review.Review, error) {
	var out []review.Review
	for _, rec := range f.reviews {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeRepo) ListByReader(_ context.Context, readerID int64, _, _ int) ([]review.ReviewWithBook, error) {
	var out []review.ReviewWithBook
	for _, rec := range f.reviews {
		if rec.ReaderID == readerID {
			out = append(out, review.ReviewWithBook{Review: *rec})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByBook(_ context.Context, bookID int64, _, _ int) ([]review.ReviewWithReader, error) {
	var out []review.ReviewWithReader
	for _, rec := range f.reviews {
		if rec.BookID == bookID {
			out = append(out, review.ReviewWithReader{Review: *rec})
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, fields repository.Fields) (*review.Review, error) {
	rec, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	applyFields(rec, fields)
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	rec, ok := f.reviews[id]
	if !ok {
		return false, nil
	}
	delete(f.byPair, pairKey{rec.BookID, rec.ReaderID})
	delete(f.reviews, id)
	return true, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.reviews)), nil
}

func (f *fakeRepo) ReadingProgress(_ context.Context, _ *int64) ([]review.ProgressBucket, error) {
	return nil, nil
}

func applyFields(rec *review.Review, fields repository.Fields) {
	for _, field := range fields {
		switch field.Column {
		case "book_id":
			rec.BookID = field.Value.(int64)
		case "reader_id":
			rec.ReaderID = field.Value.(int64)
		case "rating":
			rec.Rating = field.Value.(int)
		case "review_text":
			v := field.Value.(string)
			rec.ReviewText = &v
		case "reading_status":
			rec.ReadingStatus = field.Value.(string)
		}
	}
}

func TestCreateTwiceKeepsOneReview(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, 42, review.CreateReviewRequest{BookID: 7, Rating: 3})
	require.NoError(t, err)

	second, err := svc.Create(ctx, 42, review.CreateReviewRequest{BookID: 7, Rating: 5})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "re-reviewing the same book must not add a row")
	assert.Equal(t, first.ReviewID, second.ReviewID)
	assert.Equal(t, 5, second.Rating, "second review overwrites the first")
}

func TestCreateSameBookDifferentReaders(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, review.CreateReviewRequest{BookID: 7, Rating: 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, review.CreateReviewRequest{BookID: 7, Rating: 4})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUpdateRejectsForeignReview(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, 42, review.CreateReviewRequest{BookID: 7, Rating: 3})
	require.NoError(t, err)

	rating := 1
	_, err = svc.Update(ctx, created.ReviewID, 99, review.UpdateReviewRequest{Rating: &rating})
	assert.ErrorIs(t, err, review.ErrNotOwner)

	updated, err := svc.Update(ctx, created.ReviewID, 42, review.UpdateReviewRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Rating)
}

func TestUpdateMissingReviewReturnsNil(t *testing.T) {
	svc := NewService(newFakeRepo())

	rating := 2
	updated, err := svc.Update(context.Background(), 123, 42, review.UpdateReviewRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteRejectsForeignReview(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, 42, review.CreateReviewRequest{BookID: 7, Rating: 3})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, created.ReviewID, 99)
	assert.ErrorIs(t, err, review.ErrNotOwner)

	deleted, err := svc.Delete(ctx, created.ReviewID, 42)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, created.ReviewID, 42)
	require.NoError(t, err)
	assert.False(t, deleted, "deleting an absent review is not an error")
}
