package container_test

import (
	"slices"
	"testing"

	"github.com/larynjahor/lifo/container"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := container.SetOf("linux", "amd64", "linux")

	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("linux"))
	require.False(t, s.Contains("darwin"))

	s.Delete("linux")
	require.False(t, s.Contains("linux"))

	s.Add("cgo")
	require.ElementsMatch(t, []string{"amd64", "cgo"}, s.Slice())
	require.ElementsMatch(t, []string{"amd64", "cgo"}, slices.Collect(s.All()))
}

func TestSet_zeroValue(t *testing.T) {
	var s container.Set[int]

	require.False(t, s.Contains(1))
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Slice())
	s.Delete(1)

	s.Add(1)
	require.True(t, s.Contains(1))
	require.Equal(t, []int{1}, slices.Collect(s.All()))
}
