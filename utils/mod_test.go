package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	moves := []string{"A2", "B1", "B2"}

	require.Equal(t, 1, FindIndex(moves, "B1"))
	require.Equal(t, -1, FindIndex(moves, "H8"))
	require.Equal(t, -1, FindIndex([]string(nil), "A1"))
	require.True(t, Contains(moves, "B2"))
	require.False(t, Contains(moves, "C3"))
}
