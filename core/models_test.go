package core

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent_Deterministic(t *testing.T) {
	assert.Equal(t, IDFromContent("בראשית"), IDFromContent("בראשית"))
	assert.NotEqual(t, IDFromContent("בראשית"), IDFromContent("ברא"))
}

func TestNewStream_CopiesInput(t *testing.T) {
	symbols := SymbolsFromString("ABC")
	stream := NewStream(symbols)
	symbols[0] = 'Z'

	assert.Equal(t, Symbol('A'), stream.At(0))
	assert.Equal(t, 3, stream.Len())

	out := stream.Symbols()
	out[1] = 'Z'
	assert.Equal(t, Symbol('B'), stream.At(1))
}

func TestStream_ID(t *testing.T) {
	a := NewStreamFromString("ABCABC")
	b := NewStreamFromString("ABCABC")
	c := NewStreamFromString("ABCABD")

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}

func TestStream_Nil(t *testing.T) {
	var s *Stream
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Symbols())
	assert.Equal(t, IDFromContent(""), s.ID())
}

func TestStream_Slice(t *testing.T) {
	s := NewStreamFromString("ABCDEF")
	assert.Equal(t, "BCD", s.Slice(1, 4))
	assert.Equal(t, "ABC", s.Slice(-5, 3))
	assert.Equal(t, "EF", s.Slice(4, 99))
	assert.Equal(t, "", s.Slice(4, 2))
}

func TestTerm_Identity(t *testing.T) {
	a := NewTerm("ATOM", "אטום")
	b := NewTerm("ATOM", "אטום")
	c := NewTerm("ATOM2", "אטום")

	assert.Equal(t, "(ATOM,אטום)", a.Tuple())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
}

func TestSkipWindow_Skips(t *testing.T) {
	tests := []struct {
		name   string
		window SkipWindow
		want   []int
	}{
		{"forward", Forward(1, 3), []int{1, 2, 3}},
		{"backward", Backward(1, 3), []int{-3, -2, -1}},
		{"magnitude form", SkipWindow{Min: -1, Max: -3}, []int{-3, -2, -1}},
		{"inverted positive", SkipWindow{Min: 5, Max: 2}, nil},
		{"top of range", SkipWindow{Min: math.MaxInt - 1, Max: math.MaxInt}, []int{math.MaxInt - 1, math.MaxInt}},
		{"bottom of range", SkipWindow{Min: math.MinInt, Max: math.MinInt + 1}, []int{math.MinInt, math.MinInt + 1}},
		{"single max", SkipWindow{Min: math.MaxInt, Max: math.MaxInt}, []int{math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.window.Skips())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), tt.window.Size())
			assert.Equal(t, len(tt.want) == 0, tt.window.Empty())
		})
	}
}

func TestSkipWindow_SizeSaturates(t *testing.T) {
	tests := []struct {
		name   string
		window SkipWindow
		want   int
	}{
		{"all positive", Forward(1, math.MaxInt), math.MaxInt},
		{"all negative", SkipWindow{Min: math.MinInt, Max: -1}, math.MaxInt},
		{"whole int range", SkipWindow{Min: math.MinInt, Max: math.MaxInt}, math.MaxInt},
		{"small", Forward(3, 7), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Size())
		})
	}
}

func TestBidirectional(t *testing.T) {
	windows := Bidirectional(2, 10)
	require.Len(t, windows, 2)
	assert.Equal(t, SkipWindow{Min: 2, Max: 10}, windows[0])
	assert.Equal(t, SkipWindow{Min: -10, Max: -2}, windows[1])
}

func TestMatch_Indices(t *testing.T) {
	m := Match{Term: "X", Start: 10, Skip: -3}
	assert.Equal(t, []int{10, 7, 4, 1}, slices.Collect(m.Indices(4)))
	assert.Equal(t, 1, m.End(4))
	assert.Equal(t, 10, m.End(0))
}

func TestReport_HitSets(t *testing.T) {
	r := &Report{
		Hits: []TermHits{
			{Term: NewTerm("A", "א"), Matches: []Match{{Term: "A", Start: 1, Skip: 1}}},
			{Term: NewTerm("B", "ב")},
		},
	}
	sets := r.HitSets()
	assert.Len(t, sets, 2)
	assert.Len(t, sets["A"], 1)
	assert.Empty(t, sets["B"])
}
