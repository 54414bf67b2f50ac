package cluster

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/poiesic/elscan/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hits(term string, starts ...int) []core.Match {
	out := make([]core.Match, len(starts))
	for i, s := range starts {
		out[i] = core.Match{Term: term, Start: s, Skip: 1}
	}
	return out
}

// crossProduct is the quadratic reference join.
func crossProduct(sets map[string][]core.Match, threshold int) []core.ClusterPair {
	labels := make([]string, 0, len(sets))
	for l := range sets {
		labels = append(labels, l)
	}
	slices.Sort(labels)

	var out []core.ClusterPair
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			for _, a := range sets[labels[i]] {
				for _, b := range sets[labels[j]] {
					if d := distance(a.Start, b.Start); d < threshold {
						out = append(out, core.ClusterPair{First: a, Second: b, Distance: d})
					}
				}
			}
		}
	}
	return out
}

func canonical(pairs []core.ClusterPair) []core.ClusterPair {
	out := slices.Clone(pairs)
	slices.SortFunc(out, func(x, y core.ClusterPair) int {
		if c := compareMatch(x.First, y.First); c != 0 {
			return c
		}
		return compareMatch(x.Second, y.Second)
	})
	return out
}

func TestFindPairs_SingleNearbyPair(t *testing.T) {
	sets := map[string][]core.Match{
		"term1": hits("term1", 10, 500),
		"term2": hits("term2", 15, 800),
	}

	pairs, err := FindPairs(sets, 10)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, 10, pairs[0].First.Start)
	assert.Equal(t, 15, pairs[0].Second.Start)
	assert.Equal(t, 5, pairs[0].Distance)
	assert.Equal(t, "term1", pairs[0].First.Term)
	assert.Equal(t, "term2", pairs[0].Second.Term)
}

func TestFindPairs_ThresholdIsExclusive(t *testing.T) {
	sets := map[string][]core.Match{
		"term1": hits("term1", 100),
		"term2": hits("term2", 105, 95),
	}

	pairs, err := FindPairs(sets, 5)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	pairs, err = FindPairs(sets, 6)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
}

func TestFindPairs_InvalidThreshold(t *testing.T) {
	sets := map[string][]core.Match{"a": hits("a", 1), "b": hits("b", 2)}
	for _, threshold := range []int{0, -1} {
		pairs, err := FindPairs(sets, threshold)
		assert.ErrorIs(t, err, core.ErrInvalidThreshold)
		assert.Nil(t, pairs)
	}
}

func TestFindPairs_FewerThanTwoLabels(t *testing.T) {
	tests := []struct {
		name string
		sets map[string][]core.Match
	}{
		{"nil", nil},
		{"empty", map[string][]core.Match{}},
		{"one label", map[string][]core.Match{"a": hits("a", 1, 2, 3)}},
		{"second label empty", map[string][]core.Match{"a": hits("a", 1), "b": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := FindPairs(tt.sets, 10)
			require.NoError(t, err)
			assert.Empty(t, pairs)
		})
	}
}

func TestFindPairs_SameLabelNeverPaired(t *testing.T) {
	sets := map[string][]core.Match{"a": hits("a", 1, 2, 3), "b": hits("b", 1000)}
	pairs, err := FindPairs(sets, 10)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFindPairs_DuplicatesReportedOnce(t *testing.T) {
	sets := map[string][]core.Match{
		"a": append(hits("a", 10), hits("a", 10)...),
		"b": hits("b", 12),
	}
	pairs, err := FindPairs(sets, 5)
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestFindPairs_LabelOverridesMatchTerm(t *testing.T) {
	sets := map[string][]core.Match{
		"ATOM": hits("אטום", 10),
		"DNA":  hits("דנא", 12),
	}
	pairs, err := FindPairs(sets, 5)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "ATOM", pairs[0].First.Term)
	assert.Equal(t, "DNA", pairs[0].Second.Term)
}

func TestFindPairs_DoesNotMutateInput(t *testing.T) {
	a := hits("a", 50, 10, 30)
	sets := map[string][]core.Match{"a": a, "b": hits("b", 12)}
	_, err := FindPairs(sets, 5)
	require.NoError(t, err)
	assert.Equal(t, hits("a", 50, 10, 30), a)
}

func TestFindPairs_MatchesCrossProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for round := 0; round < 30; round++ {
		sets := map[string][]core.Match{}
		for _, label := range []string{"a", "b", "c", "d"} {
			n := rng.Intn(40)
			seen := map[core.Match]bool{}
			for i := 0; i < n; i++ {
				m := core.Match{Term: label, Start: rng.Intn(500), Skip: rng.Intn(9) - 4}
				if m.Skip == 0 || seen[m] {
					continue
				}
				seen[m] = true
				sets[label] = append(sets[label], m)
			}
		}
		threshold := 1 + rng.Intn(30)

		got, err := FindPairs(sets, threshold)
		require.NoError(t, err)
		want := crossProduct(sets, threshold)
		assert.Equal(t, canonical(want), canonical(got), "round %d", round)

		for _, p := range got {
			assert.Less(t, p.Distance, threshold)
			assert.Less(t, p.First.Term, p.Second.Term)
		}
	}
}
