package container_test

import (
	"slices"
	"testing"

	"github.com/larynjahor/lifo/container"
	"github.com/stretchr/testify/require"
)

func TestList_Empty(t *testing.T) {
	l := container.NewList[int]()
	require.True(t, l.Empty())

	l.Prepend(32)
	require.False(t, l.Empty())
}

func TestList_Len(t *testing.T) {
	l := container.NewList[int]()
	require.Equal(t, 0, l.Len())

	l.Prepend(32)
	require.Equal(t, 1, l.Len())

	l.Prepend(64)
	require.Equal(t, 2, l.Len())
}

func TestList_Append(t *testing.T) {
	l := container.NewList[int]()
	l.Append(32)
	l.Append(64)
	l.Prepend(0)

	require.Equal(t, 3, l.Len())
	require.Equal(t, []int{0, 32, 64}, slices.Collect(l.All()))
	require.Equal(t, "[03264]", l.String())
}

func TestList_String(t *testing.T) {
	var l container.List[string]
	require.Equal(t, "[]", l.String())

	l.Append("b")
	l.Prepend("a")
	require.Equal(t, "[ab]", l.String())
}
