package encrypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, VerifyPassword(hash, "secret123"))
	assert.False(t, VerifyPassword(hash, "secret124"))
	assert.False(t, VerifyPassword("", "secret123"))
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)

	hash, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	assert.Error(t, err)
	assert.Empty(t, hash)
}
