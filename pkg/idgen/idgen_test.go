package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteCode(t *testing.T) {
	g, err := New("test-salt")
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, id := range []uint64{1, 2, 3, 99, 100000, 123456789} {
		code, err := g.InviteCode(id)
		require.NoError(t, err)
		assert.Len(t, code, 8)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(InviteAlphabet, ch), "unexpected char %q", ch)
		}
		_, dup := seen[code]
		assert.False(t, dup)
		seen[code] = struct{}{}
	}

	first, err := g.InviteCode(99)
	require.NoError(t, err)
	second, err := g.InviteCode(99)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOrderID(t *testing.T) {
	g, err := New("test-salt")
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := g.OrderID(now)
	b := g.OrderID(now)
	assert.True(t, strings.HasPrefix(a, "20260301"))
	assert.NotEqual(t, a, b)
	assert.LessOrEqual(t, len(a), 32)
}
