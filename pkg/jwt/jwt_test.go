package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "13800000000", TypeAccess, DefaultExpire)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "13800000000", claims.Phone)
	assert.False(t, ShouldRotate(claims, 24*time.Hour))
	assert.True(t, ShouldRotate(claims, 8*24*time.Hour))
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "", TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseRejectsWrongSecretAndType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "", "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), "refresh", token)
	assert.Error(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, ErrTokenType)
}
