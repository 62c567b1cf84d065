package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"personal-library-backend/internal/domains/reader"
	"personal-library-backend/internal/shared/repository"
	"personal-library-backend/pkg/token"
)

// fakeRepo is an in-memory reader.Repository.
type fakeRepo struct {
	nextID  int64
	readers map[int64]*reader.Reader
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, readers: map[int64]*reader.Reader{}}
}

func (f *fakeRepo) Create(_ context.Context, fields repository.Fields) (*reader.Reader, error) {
	rec := &reader.Reader{
		ReaderID:         f.nextID,
		RegistrationDate: time.Now(),
		IsActive:         true,
		CreatedAt:        time.Now(),
	}
	applyFields(rec, fields)
	f.readers[f.nextID] = rec
	f.nextID++
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (*reader.Reader, error) {
	rec, ok := f.readers[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*reader.Reader, error) {
	for _, rec := range f.readers {
		if rec.Email == email && rec.IsActive {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]reader.Reader, error) {
	var out []reader.Reader
	for _, rec := range f.readers {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, fields repository.Fields) (*reader.Reader, error) {
	rec, ok := f.readers[id]
	if !ok {
		return nil, nil
	}
	applyFields(rec, fields)
	copied := *rec
	return &copied, nil
}

func (f *fakeRepo) Deactivate(_ context.Context, id int64) (bool, error) {
	rec, ok := f.readers[id]
	if !ok || !rec.IsActive {
		return false, nil
	}
	rec.IsActive = false
	return true, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.readers)), nil
}

func (f *fakeRepo) Statistics(_ context.Context, _ int64) (*reader.Statistics, error) {
	return &reader.Statistics{}, nil
}

func applyFields(rec *reader.Reader, fields repository.Fields) {
	for _, field := range fields {
		switch field.Column {
		case "first_name":
			rec.FirstName = field.Value.(string)
		case "last_name":
			rec.LastName = field.Value.(string)
		case "email":
			rec.Email = field.Value.(string)
		case "password_hash":
			rec.PasswordHash = field.Value.(string)
		case "preferences":
			v := field.Value.(string)
			rec.Preferences = &v
		}
	}
}

func newService(repo reader.Repository) *Service {
	tokens := token.NewManager("test-secret", "HS256", 30*time.Minute)
	return NewService(repo, tokens)
}

func registerRequest() reader.RegisterRequest {
	return reader.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct horse battery",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newService(newFakeRepo())

	rec, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery", rec.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(rec.PasswordHash), []byte("correct horse battery")))
}

func TestReaderJSONNeverCarriesHash(t *testing.T) {
	svc := newService(newFakeRepo())

	rec, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	payload, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), rec.PasswordHash)
	assert.NotContains(t, string(payload), "password")
}

func TestAuthenticateCollapsesFailures(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, reader.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ada@example.com", "wrong password")
	assert.ErrorIs(t, err, reader.ErrInvalidCredentials)

	rec, err := svc.Authenticate(ctx, "ada@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", rec.Email)
}

func TestLoginIssuesValidToken(t *testing.T) {
	repo := newFakeRepo()
	tokens := token.NewManager("test-secret", "HS256", 30*time.Minute)
	svc := NewService(repo, tokens)
	ctx := context.Background()

	created, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	result, err := svc.Login(ctx, reader.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)

	claims, err := tokens.Validate(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ReaderID, claims.ReaderID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	newPassword := "a brand new passphrase"
	updated, err := svc.Update(ctx, created.ReaderID, reader.UpdateReaderRequest{Password: &newPassword})
	require.NoError(t, err)

	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(updated.PasswordHash), []byte(newPassword)))

	_, err = svc.Authenticate(ctx, "ada@example.com", newPassword)
	assert.NoError(t, err)
}

func TestDeactivateHidesReaderFromLogin(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	ok, err := svc.Deactivate(ctx, created.ReaderID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Authenticate(ctx, "ada@example.com", "correct horse battery")
	assert.ErrorIs(t, err, reader.ErrInvalidCredentials)

	// Second deactivate reports nothing to do.
	ok, err = svc.Deactivate(ctx, created.ReaderID)
	require.NoError(t, err)
	assert.False(t, ok)
}
