package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token.
type Claims struct {
	ReaderID int64  `json:"reader_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies reader access tokens.
type Manager struct {
	secret    string
	algorithm string
	lifetime  time.Duration
}

// NewManager creates a token manager. Only HMAC algorithms are supported;
// anything other than HS256/HS384/HS512 falls back to HS256.
func NewManager(secret, algorithm string, lifetime time.Duration) *Manager {
	switch algorithm {
	case "HS256", "HS384", "HS512":
	default:
		algorithm = "HS256"
	}
	return &Manager{secret: secret, algorithm: algorithm, lifetime: lifetime}
}

// Generate issues a signed access token for a reader.
func (m *Manager) Generate(readerID int64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		ReaderID: readerID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.GetSigningMethod(m.algorithm), claims)
	return t.SignedString([]byte(m.secret))
}

// Validate parses and verifies a token string.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
