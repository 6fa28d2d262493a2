package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)

	token, exp, err := m.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestJWTExpiry(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	m := NewJWTManager("testsecret", 30*time.Minute).WithClock(func() time.Time { return clock })

	token, _, err := m.GenerateToken("user-123")
	require.NoError(t, err)

	// still valid just before expiry
	clock = issued.Add(29 * time.Minute)
	_, err = m.ParseToken(token)
	require.NoError(t, err)

	// expired once the TTL elapses
	clock = issued.Add(31 * time.Minute)
	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTWrongSecret(t *testing.T) {
	m1 := NewJWTManager("secret-one", time.Hour)
	m2 := NewJWTManager("secret-two", time.Hour)

	token, _, err := m1.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = m2.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTMalformedToken(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.ParseToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
