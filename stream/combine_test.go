package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pairs(items ...int) []Pair[int, int] {
	result := make([]Pair[int, int], 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		result = append(result, Pair[int, int]{items[i], items[i+1]})
	}
	return result
}

func TestEveryCombinationInfinite(t *testing.T) {
	c := EveryCombination(naturals(), naturals())
	expected := pairs(
		1, 1,
		2, 1,
		1, 2,
		2, 2,
		3, 1,
		3, 2,
		1, 3,
		2, 3,
		3, 3,
		4, 1,
	)
	require.Equal(t, expected, Take[Pair[int, int]](c, 10))
}

func TestEveryCombinationFinite(t *testing.T) {
	abc := func() Stream[string] { return Of("a", "b", "c") }
	c := EveryCombination(abc(), abc())
	expected := []Pair[string, string]{
		{"a", "a"},
		{"b", "a"},
		{"a", "b"},
		{"b", "b"},
		{"c", "a"},
		{"c", "b"},
		{"a", "c"},
		{"b", "c"},
		{"c", "c"},
	}
	require.Equal(t, expected, collect(c))
}

func TestEveryCombinationFiniteLeft(t *testing.T) {
	c := EveryCombination(Of(1, 2), naturals())
	got := Take[Pair[int, int]](c, 12)

	seen := make(map[Pair[int, int]]int)
	for _, p := range got {
		seen[p]++
	}
	require.Len(t, seen, 12, "every pair appears exactly once")
	for j := 1; j <= 5; j++ {
		require.Contains(t, seen, Pair[int, int]{1, j})
	}
	require.Contains(t, seen, Pair[int, int]{2, 1})
	require.Contains(t, seen, Pair[int, int]{2, 4})
}

func TestEveryCombinationEmpty(t *testing.T) {
	require.Empty(t, collect(EveryCombination(Of[int](), naturals())))
	require.Empty(t, collect(EveryCombination(naturals(), Of[int]())))
	require.Empty(t, collect(EveryCombination(Of[int](), Of[int]())))
}

func TestEveryCombinationMany(t *testing.T) {
	empty := EveryCombinationMany[int](nil)
	require.Equal(t, [][]int{{}}, collect(empty), "empty stream list yields one empty tuple")

	single := EveryCombinationMany([]Stream[int]{Of(1, 2)})
	require.Equal(t, [][]int{{1}, {2}}, collect(single))

	three := EveryCombinationMany([]Stream[int]{Of(0, 1), Of(0, 1), Of(0, 1)})
	tuples := collect(three)
	require.Len(t, tuples, 8)
	seen := make(map[[3]int]bool)
	for _, tuple := range tuples {
		require.Len(t, tuple, 3)
		seen[[3]int{tuple[0], tuple[1], tuple[2]}] = true
	}
	require.Len(t, seen, 8, "all 2x2x2 tuples appear exactly once")
	require.Equal(t, []int{0, 0, 0}, tuples[0])
}

func TestEveryCombinationManyFair(t *testing.T) {
	streams := []Stream[int]{naturals(), naturals()}
	tuples := Take[[]int](EveryCombinationMany(streams), 10)
	require.Equal(t, [][]int{
		{1, 1},
		{2, 1},
		{1, 2},
		{2, 2},
		{3, 1},
		{3, 2},
		{1, 3},
		{2, 3},
		{3, 3},
		{4, 1},
	}, tuples)
}
