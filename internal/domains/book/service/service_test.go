package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-library-backend/internal/domains/book"
	"personal-library-backend/internal/shared/repository"
)

// fakeRepo records the relation slices each call receives so tests can
// tell a nil slice (links untouched) apart from an empty one (links cleared).
type fakeRepo struct {
	stored *book.Book

	updateCalled    bool
	updateAuthorIDs []int64
	updateGenreIDs  []int64
	createAuthorIDs []int64
	createGenreIDs  []int64
}

func (f *fakeRepo) CreateWithRelations(_ context.Context, fields repository.Fields, authorIDs, genreIDs []int64) (*book.Book, error) {
	f.createAuthorIDs = authorIDs
	f.createGenreIDs = genreIDs
	rec := &book.Book{BookID: 1}
	for _, field := range fields {
		if field.Column == "title" {
			rec.Title = field.Value.(string)
		}
	}
	f.stored = rec
	return rec, nil
}

func (f *fakeRepo) UpdateWithRelations(_ context.Context, id int64, _ repository.Fields, authorIDs, genreIDs []int64) (*book.Book, error) {
	f.updateCalled = true
	f.updateAuthorIDs = authorIDs
	f.updateGenreIDs = genreIDs
	if f.stored == nil || f.stored.BookID != id {
		return nil, nil
	}
	return f.stored, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (*book.Book, error) {
	if f.stored == nil || f.stored.BookID != id {
		return nil, nil
	}
	return f.stored, nil
}

func (f *fakeRepo) GetWithDetails(_ context.Context, id int64) (*book.BookDetail, error) {
	if f.stored == nil || f.stored.BookID != id {
		return nil, nil
	}
	return &book.BookDetail{Book: *f.stored}, nil
}

func (f *fakeRepo) List(context.Context, int, int) ([]book.Book, error) {
	if f.stored == nil {
		return nil, nil
	}
	return []book.Book{*f.stored}, nil
}

func (f *fakeRepo) Search(context.Context, book.SearchFilter, int, int) ([]book.BookSearchRow, error) {
	return nil, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if f.stored == nil || f.stored.BookID != id {
		return false, nil
	}
	f.stored = nil
	return true, nil
}

func (f *fakeRepo) Count(context.Context) (int64, error) {
	if f.stored == nil {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeRepo) Statistics(context.Context) (*book.Statistics, error) {
	return &book.Statistics{}, nil
}

func seedBook(t *testing.T, svc *Service) *book.BookDetail {
	t.Helper()
	created, err := svc.Create(context.Background(), book.CreateBookRequest{
		Title:     "The Dispossessed",
		AuthorIDs: []int64{10},
		GenreIDs:  []int64{20},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func TestUpdateOmittedRelationsLeaveLinksUntouched(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	created := seedBook(t, svc)

	title := "The Dispossessed: An Ambiguous Utopia"
	updated, err := svc.Update(context.Background(), created.BookID, book.UpdateBookRequest{
		Title: &title,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.True(t, repo.updateCalled)
	assert.Nil(t, repo.updateAuthorIDs, "omitted author_ids must pass through as nil")
	assert.Nil(t, repo.updateGenreIDs, "omitted genre_ids must pass through as nil")
}

func TestUpdateEmptyRelationsClearLinks(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	created := seedBook(t, svc)

	updated, err := svc.Update(context.Background(), created.BookID, book.UpdateBookRequest{
		AuthorIDs: []int64{},
		GenreIDs:  []int64{},
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.NotNil(t, repo.updateAuthorIDs, "empty author_ids must stay distinct from nil")
	require.NotNil(t, repo.updateGenreIDs, "empty genre_ids must stay distinct from nil")
	assert.Empty(t, repo.updateAuthorIDs)
	assert.Empty(t, repo.updateGenreIDs)
}

func TestUpdateReplacesRelations(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	created := seedBook(t, svc)

	_, err := svc.Update(context.Background(), created.BookID, book.UpdateBookRequest{
		AuthorIDs: []int64{11, 12},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{11, 12}, repo.updateAuthorIDs)
	assert.Nil(t, repo.updateGenreIDs)
}

func TestUpdateMissingBookReturnsNil(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), 404, book.UpdateBookRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCreatePassesRelationIDs(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	seedBook(t, svc)

	assert.Equal(t, []int64{10}, repo.createAuthorIDs)
	assert.Equal(t, []int64{20}, repo.createGenreIDs)
}
