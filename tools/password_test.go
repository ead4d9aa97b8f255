package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := PasswordHash("secreto123")
	require.NoError(t, err)
	require.NotEqual(t, "secreto123", hash)

	require.True(t, PasswordCompare("secreto123", hash))
	require.False(t, PasswordCompare("equivocada", hash))
}
