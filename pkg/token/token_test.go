package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	m := NewManager("test-secret", "HS256", 30*time.Minute)

	signed, err := m.Generate(42, "reader@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ReaderID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", "HS256", time.Hour).Generate(1, "a@b.c")
	require.NoError(t, err)

	_, err = NewManager("secret-b", "HS256", time.Hour).Validate(signed)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	signed, err := NewManager("secret", "HS256", -time.Minute).Generate(1, "a@b.c")
	require.NoError(t, err)

	_, err = NewManager("secret", "HS256", time.Hour).Validate(signed)
	assert.Error(t, err)
}

func TestUnknownAlgorithmFallsBackToHS256(t *testing.T) {
	m := NewManager("secret", "RS256", time.Hour)

	signed, err := m.Generate(7, "x@y.z")
	require.NoError(t, err)

	claims, err := m.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ReaderID)
}
