package cluster

import (
	"cmp"
	"slices"

	"github.com/poiesic/elscan/core"
)

// FindPairs returns every pair of matches from distinct term labels whose
// start indices differ by less than threshold. The threshold is exclusive.
//
// Sets are keyed by term label; the label overrides Match.Term in the output.
// Labels with empty sets are ignored and fewer than two non-empty labels
// yield no pairs. Duplicate matches within a set are reported once.
//
// Output is ordered by (First label, Second label), then First start, then
// Second start. First always carries the smaller label.
func FindPairs(sets map[string][]core.Match, threshold int) ([]core.ClusterPair, error) {
	if err := core.ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	labels, prepared := prepare(sets)
	var pairs []core.ClusterPair
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			pairs = sweep(pairs, prepared[labels[i]], prepared[labels[j]], threshold)
		}
	}
	return pairs, nil
}

// prepare returns the sorted non-empty labels and, per label, its matches
// relabelled, sorted by (Start, Skip) and de-duplicated.
func prepare(sets map[string][]core.Match) ([]string, map[string][]core.Match) {
	labels := make([]string, 0, len(sets))
	prepared := make(map[string][]core.Match, len(sets))
	for label, matches := range sets {
		if len(matches) == 0 {
			continue
		}
		sorted := make([]core.Match, len(matches))
		for i, m := range matches {
			m.Term = label
			sorted[i] = m
		}
		slices.SortFunc(sorted, compareMatch)
		prepared[label] = slices.Compact(sorted)
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels, prepared
}

// sweep appends the pairs between sorted sets a and b. For each a in
// ascending order, the window of b with start in (a-threshold, a+threshold)
// only moves forward.
func sweep(out []core.ClusterPair, a, b []core.Match, threshold int) []core.ClusterPair {
	lo := 0
	for _, ma := range a {
		for lo < len(b) && ma.Start-b[lo].Start >= threshold {
			lo++
		}
		for j := lo; j < len(b) && b[j].Start-ma.Start < threshold; j++ {
			out = append(out, core.ClusterPair{
				First:    ma,
				Second:   b[j],
				Distance: distance(ma.Start, b[j].Start),
			})
		}
	}
	return out
}

func compareMatch(x, y core.Match) int {
	if c := cmp.Compare(x.Start, y.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Skip, y.Skip); c != 0 {
		return c
	}
	return cmp.Compare(x.Term, y.Term)
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
