package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-library-backend/internal/domains/genre"
	"personal-library-backend/internal/shared/repository"
)

type fakeRepo struct {
	nextID int64
	genres map[int64]*genre.Genre
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, genres: map[int64]*genre.Genre{}}
}

func (f *fakeRepo) Create(_ context.Context, fields repository.Fields) (*genre.Genre, error) {
	rec := &genre.Genre{GenreID: f.nextID}
	applyFields(rec, fields)
	f.genres[f.nextID] = rec
	f.nextID++
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (*genre.Genre, error) {
	rec, ok := f.genres[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) GetWithBooksCount(_ context.Context, id int64) (*genre.GenreWithCount, error) {
	rec, ok := f.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre.GenreWithCount{Genre: *rec}, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]genre.Genre, error) {
	var out []genre.Genre
	for _, rec := range f.genres {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, fields repository.Fields) (*genre.Genre, error) {
	rec, ok := f.genres[id]
	if !ok {
		return nil, nil
	}
	applyFields(rec, fields)
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.genres[id]; !ok {
		return false, nil
	}
	delete(f.genres, id)
	return true, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.genres)), nil
}

func (f *fakeRepo) Hierarchy(_ context.Context) ([]genre.GenreNode, error) {
	return nil, nil
}

func applyFields(rec *genre.Genre, fields repository.Fields) {
	for _, field := range fields {
		switch field.Column {
		case "genre_name":
			rec.GenreName = field.Value.(string)
		case "parent_genre_id":
			v := field.Value.(int64)
			rec.ParentGenreID = &v
		}
	}
}

func TestCreateRejectsUnknownParent(t *testing.T) {
	svc := NewService(newFakeRepo())

	missing := int64(99)
	_, err := svc.Create(context.Background(), genre.CreateGenreRequest{
		GenreName:     "Hard SF",
		ParentGenreID: &missing,
	})
	assert.ErrorIs(t, err, genre.ErrParentNotFound)
}

func TestCreateWithExistingParent(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	parent, err := svc.Create(ctx, genre.CreateGenreRequest{GenreName: "Science Fiction"})
	require.NoError(t, err)

	child, err := svc.Create(ctx, genre.CreateGenreRequest{
		GenreName:     "Hard SF",
		ParentGenreID: &parent.GenreID,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentGenreID)
	assert.Equal(t, parent.GenreID, *child.ParentGenreID)
}

func TestUpdateRejectsSelfParent(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, genre.CreateGenreRequest{GenreName: "Fantasy"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.GenreID, genre.UpdateGenreRequest{
		ParentGenreID: &created.GenreID,
	})
	assert.ErrorIs(t, err, genre.ErrSelfParent)
}

func TestDeleteMissingGenre(t *testing.T) {
	svc := NewService(newFakeRepo())

	deleted, err := svc.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}
