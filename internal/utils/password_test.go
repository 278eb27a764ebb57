package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("abcdef")
	require.NoError(t, err)
	require.NotEqual(t, "abcdef", hashed)

	require.True(t, CheckPassword("abcdef", hashed))
	require.False(t, CheckPassword("abcdeg", hashed))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("abcdef")
	require.NoError(t, err)
	second, err := HashPassword("abcdef")
	require.NoError(t, err)

	// Distinct salts produce distinct hashes; only CheckPassword may compare.
	require.NotEqual(t, first, second)
	require.True(t, CheckPassword("abcdef", first))
	require.True(t, CheckPassword("abcdef", second))
}
