package cluster

import (
	"cmp"
	"slices"

	"github.com/poiesic/elscan/core"
)

// Group merges pairs that share a match into clusters. Every cluster spans at
// least two term labels. Clusters are ordered by Low, then High; members are
// ordered by start index.
func Group(pairs []core.ClusterPair) []core.Cluster {
	if len(pairs) == 0 {
		return nil
	}

	ids := make(map[core.Match]int)
	var nodes []core.Match
	id := func(m core.Match) int {
		if i, ok := ids[m]; ok {
			return i
		}
		ids[m] = len(nodes)
		nodes = append(nodes, m)
		return len(nodes) - 1
	}

	uf := newUnionFind(2 * len(pairs))
	for _, p := range pairs {
		uf.union(id(p.First), id(p.Second))
	}

	components := make(map[int][]core.Match)
	for i, m := range nodes {
		root := uf.find(i)
		components[root] = append(components[root], m)
	}

	clusters := make([]core.Cluster, 0, len(components))
	for _, members := range components {
		slices.SortFunc(members, compareMatch)
		terms := make([]string, 0, len(members))
		for _, m := range members {
			terms = append(terms, m.Term)
		}
		slices.Sort(terms)
		clusters = append(clusters, core.Cluster{
			Members: members,
			Terms:   slices.Compact(terms),
			Low:     members[0].Start,
			High:    members[len(members)-1].Start,
		})
	}

	slices.SortFunc(clusters, func(a, b core.Cluster) int {
		if c := cmp.Compare(a.Low, b.Low); c != 0 {
			return c
		}
		if c := cmp.Compare(a.High, b.High); c != 0 {
			return c
		}
		return compareMatch(a.Members[0], b.Members[0])
	})
	return clusters
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(capacity int) *unionFind {
	return &unionFind{
		parent: make([]int, 0, capacity),
		rank:   make([]int, 0, capacity),
	}
}

func (u *unionFind) grow(n int) {
	for len(u.parent) <= n {
		u.parent = append(u.parent, len(u.parent))
		u.rank = append(u.rank, 0)
	}
}

func (u *unionFind) find(x int) int {
	u.grow(x)
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
