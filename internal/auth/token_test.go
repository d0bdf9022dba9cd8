package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenExpired(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", -time.Minute)

	signed, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	signed, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrTokenSignature)
}

func TestTokenMalformed(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed, "raw=%q", raw)
	}
}

func TestTokenTampered(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	signed, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = tokens.Verify(tampered)
	assert.Error(t, err)
}
