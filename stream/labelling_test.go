package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryLabellingExamples(t *testing.T) {
	got := collect(EveryLabelling([]string{"a", "b"}, 2))
	require.Equal(t, [][]string{
		{"a", "a"},
		{"a", "b"},
	}, got)

	got = collect(EveryLabelling([]string{"a", "b", "c"}, 3))
	require.Equal(t, [][]string{
		{"a", "a", "a"},
		{"a", "a", "b"},
		{"a", "b", "a"},
		{"a", "b", "b"},
		{"a", "b", "c"},
	}, got)

	require.Empty(t, collect(EveryLabelling([]string{}, 5)))

	got = collect(EveryLabelling([]string{"a", "b"}, 1))
	require.Equal(t, [][]string{{"a"}}, got)
}

// partitionsUpTo returns the number of set partitions of k elements into at
// most m blocks, via the Stirling recurrence S(k,j) = j*S(k-1,j) + S(k-1,j-1).
func partitionsUpTo(k, m int) int {
	stirling := make([][]int, k+1)
	for n := range stirling {
		stirling[n] = make([]int, k+1)
	}
	stirling[0][0] = 1
	for n := 1; n <= k; n++ {
		for j := 1; j <= n; j++ {
			stirling[n][j] = j*stirling[n-1][j] + stirling[n-1][j-1]
		}
	}

	total := 0
	for j := 0; j <= m && j <= k; j++ {
		total += stirling[k][j]
	}
	return total
}

func TestEveryLabellingCounts(t *testing.T) {
	alphabet := []string{"a", "b", "c", "d"}
	for m := 1; m <= len(alphabet); m++ {
		for k := 0; k <= 6; k++ {
			got := collect(EveryLabelling(alphabet[:m], k))
			require.Len(t, got, partitionsUpTo(k, m), "m=%d k=%d", m, k)

			if len(got) > 0 && k > 0 {
				first := got[0]
				for _, v := range first {
					require.Equal(t, "a", v, "first labelling uses a single block")
				}
			}

			seen := make(map[string]bool)
			for _, l := range got {
				key := ""
				for _, v := range l {
					key += v
				}
				require.False(t, seen[key], "duplicate labelling %q (m=%d k=%d)", key, m, k)
				seen[key] = true
			}
		}
	}
}
