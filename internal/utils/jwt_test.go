package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	tok, err := NewAuthToken("secret", "user-1", "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := VerifyAuthToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "doctor", claims.Role)
}

func TestVerifyAuthTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthToken("secret", "user-1", "patient")
	require.NoError(t, err)

	_, err = VerifyAuthToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAuthTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyAuthToken("secret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyAuthToken("secret", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
