package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetPreservesInsertionOrder(t *testing.T) {
	m := New[string]()
	m.Set("b", "1")
	m.Set("a", "2")
	m.Set("c", "3")

	require.Equal(t, []string{"b", "a", "c"}, m.Keys())
	require.Equal(t, 3, m.Len())
}

func TestOverwriteKeepsPosition(t *testing.T) {
	m := New[int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("x", 3)

	require.Equal(t, []string{"x", "y"}, m.Keys())

	v, ok := m.Get("x")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestGetMissing(t *testing.T) {
	m := New[string]()
	m.Set("present", "yes")

	_, ok := m.Get("absent")
	require.False(t, ok)
	require.False(t, m.Has("absent"))
	require.True(t, m.Has("present"))
}

func TestKeysReturnsCopy(t *testing.T) {
	m := New[string]()
	m.Set("a", "1")
	m.Set("b", "2")

	keys := m.Keys()
	keys[0] = "mutated"

	require.Equal(t, []string{"a", "b"}, m.Keys())
}
