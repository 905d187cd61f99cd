package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_AddRemove(t *testing.T) {
	s := NewSet[string]()
	require.True(t, s.IsEmpty())

	require.True(t, s.Add("hello"))
	require.False(t, s.Add("hello"))
	require.False(t, s.IsEmpty())
	require.True(t, s.Contains("hello"))

	s.Remove("hello", "unknown")
	require.True(t, s.IsEmpty())
	require.False(t, s.Contains("hello"))
}

func TestSet_order(t *testing.T) {
	s := NewSet(3, 1, 2, 1)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{3, 1, 2}, s.Values())

	s.Remove(1)
	s.Add(1)
	require.Equal(t, []int{3, 2, 1}, s.Values())
	require.Equal(t, "[3 2 1]", s.String())
}

func TestSet_values_is_a_copy(t *testing.T) {
	s := NewSet("a", "b")
	v := s.Values()
	v[0] = "z"
	require.Equal(t, []string{"a", "b"}, s.Values())
}
