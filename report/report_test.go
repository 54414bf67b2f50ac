package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/poiesic/elscan/core"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureReport() *core.Report {
	a1 := core.Match{Term: "A", Start: 10, Skip: 2}
	a2 := core.Match{Term: "A", Start: 40, Skip: -3}
	b := core.Match{Term: "B", Start: 15, Skip: -3}
	return &core.Report{
		RunId:     "run-1",
		StreamId:  core.ID(0xabc),
		StreamLen: 1000,
		Windows:   core.Bidirectional(1, 200),
		Threshold: 20,
		Hits: []core.TermHits{
			{Term: core.NewTerm("A", "אב"), Matches: []core.Match{a1, a2}},
			{Term: core.NewTerm("B", "גד"), Matches: []core.Match{b}},
			{Term: core.NewTerm("C", "הו")},
		},
		Pairs: []core.ClusterPair{{First: a1, Second: b, Distance: 5}},
		Clusters: []core.Cluster{
			{Members: []core.Match{a1, b}, Terms: []string{"A", "B"}, Low: 10, High: 15},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func assertGolden(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, fixtureReport()))
	assertGolden(t, "full", buf.Bytes())
}

func TestWrite_Empty(t *testing.T) {
	r := &core.Report{
		RunId:     "run-empty",
		StreamLen: 6,
		Windows:   []core.SkipWindow{core.Forward(1, 3)},
		Threshold: 10,
		Hits:      []core.TermHits{{Term: core.NewTerm("X", "אב")}},
	}
	assertGolden(t, "empty", []byte(String(r)))
}

func TestWrite_Options(t *testing.T) {
	r := fixtureReport()
	second := core.ClusterPair{First: r.Hits[0].Matches[1], Second: r.Hits[1].Matches[0], Distance: 25}
	r.Pairs = append(r.Pairs, second)

	stream := core.NewStreamFromString("ABCDEFGHIJKLMNOPQRSTUVWXYZABCD")
	out := String(r,
		WithMaxPairs(1),
		WithLocator(func(i int) string {
			if i < 12 {
				return "genesis"
			}
			return ""
		}),
		WithContext(stream, 2),
	)
	assertGolden(t, "options", []byte(out))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "run-1  2025-03-01T12:00:00Z  3 terms  3 hits  1 pairs  1 clusters", Summary(fixtureReport()))
	assert.Equal(t, "r  -  0 terms  0 hits  0 pairs  0 clusters", Summary(&core.Report{RunId: "r"}))
}
