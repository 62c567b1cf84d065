package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"personal-library-backend/internal/domains/reader"
	"personal-library-backend/pkg/token"
)

const bcryptCost = 12

// Service owns registration, authentication and account lifecycle.
type Service struct {
	repo   reader.Repository
	tokens *token.Manager
}

func NewService(repo reader.Repository, tokens *token.Manager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register hashes the password and stores the new account. Duplicate emails
// surface as a constraint violation from the store.
func (s *Service) Register(ctx context.Context, req reader.RegisterRequest) (*reader.Reader, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req.Fields(string(hash)))
}

// Authenticate resolves the account by email and compares the password.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*reader.Reader, error) {
	rec, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, reader.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, reader.ErrInvalidCredentials
	}
	return rec, nil
}

// Login authenticates and issues an access token.
func (s *Service) Login(ctx context.Context, req reader.LoginRequest) (*reader.LoginResult, error) {
	rec, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.Generate(rec.ReaderID, rec.Email)
	if err != nil {
		return nil, err
	}
	return &reader.LoginResult{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Reader:      rec,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*reader.Reader, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]reader.Reader, int64, error) {
	readers, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return readers, total, nil
}

// Update applies profile changes; a supplied password is rehashed before it
// touches the store.
func (s *Service) Update(ctx context.Context, id int64, req reader.UpdateReaderRequest) (*reader.Reader, error) {
	var hash string
	if req.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	return s.repo.Update(ctx, id, req.Fields(hash))
}

// Deactivate soft-deletes the account.
func (s *Service) Deactivate(ctx context.Context, id int64) (bool, error) {
	return s.repo.Deactivate(ctx, id)
}

// Statistics returns reading aggregates, or nil when the reader is unknown.
func (s *Service) Statistics(ctx context.Context, id int64) (*reader.Statistics, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return s.repo.Statistics(ctx, id)
}
