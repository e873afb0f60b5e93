package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"movie-browse-server/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	require.True(t, auth.CheckPassword(hash, "hunter2"))
	require.False(t, auth.CheckPassword(hash, "hunter3"))
	require.False(t, auth.CheckPassword(hash, ""))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := auth.HashPassword("same-password")
	require.NoError(t, err)
	second, err := auth.HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
