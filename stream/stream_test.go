package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// naturals returns the infinite stream 1, 2, 3, ...
func naturals() Stream[int] {
	n := 0
	return Func[int](func() (int, bool) {
		n++
		return n, true
	})
}

func collect[T any](s Stream[T]) []T {
	result := make([]T, 0)
	for {
		v, ok := s.Next()
		if !ok {
			return result
		}
		result = append(result, v)
	}
}

func TestOf(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, collect(Of(1, 2, 3)))
	require.Empty(t, collect(Of[int]()))
}

func TestMap(t *testing.T) {
	doubled := Map(Of(1, 2, 3), func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, collect(doubled))
}

func TestTake(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, Take(naturals(), 4))
	require.Equal(t, []int{1, 2}, Take(Of(1, 2), 10))
}

func TestBufferedReplay(t *testing.T) {
	pulls := 0
	src := Func[int](func() (int, bool) {
		if pulls >= 3 {
			return 0, false
		}
		pulls++
		return pulls * 10, true
	})

	b := NewBuffered[int](src)
	expected := []int{10, 20, 30}
	require.Equal(t, expected, collect(b.Iter()))
	require.Equal(t, expected, collect(b.Iter()), "second replay must see the same values")
	require.Equal(t, 3, pulls, "source must be pulled once per value")
}

func TestBufferedIndependentIterators(t *testing.T) {
	b := NewBuffered[int](Of(1, 2, 3))
	first := b.Iter()
	second := b.Iter()

	v, ok := first.Next()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = first.Next()
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = second.Next()
	require.True(t, ok)
	require.Equal(t, 1, v, "iterators advance independently")

	require.Equal(t, []int{3}, collect(first))
	require.Equal(t, []int{2, 3}, collect(second))
}

func TestBufferedGet(t *testing.T) {
	b := NewBuffered[int](Of(5, 6))
	v, ok := b.Get(1)
	require.True(t, ok)
	require.Equal(t, 6, v)
	_, ok = b.Get(2)
	require.False(t, ok)
	v, ok = b.Get(0)
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.Equal(t, 2, b.Known())
}
