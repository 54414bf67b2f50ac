package els

import (
	"iter"
	"slices"

	"github.com/poiesic/elscan/core"
)

// Index holds the sorted positions of every symbol in a stream.
// It lets a skip scan visit only the positions where the rarest symbol of
// the term occurs instead of every start index. An Index is read-only after
// construction and safe for concurrent use.
type Index struct {
	stream    *core.Stream
	positions map[core.Symbol][]int
}

// NewIndex builds the position index for stream.
func NewIndex(stream *core.Stream) *Index {
	positions := make(map[core.Symbol][]int)
	for i := 0; i < stream.Len(); i++ {
		sym := stream.At(i)
		positions[sym] = append(positions[sym], i)
	}
	return &Index{stream: stream, positions: positions}
}

// Stream returns the indexed stream.
func (ix *Index) Stream() *core.Stream {
	return ix.stream
}

// Count returns how many times sym occurs in the stream.
func (ix *Index) Count(sym core.Symbol) int {
	return len(ix.positions[sym])
}

// Search behaves like the package-level Search but uses the index.
func (ix *Index) Search(term core.Term, window core.SkipWindow) (iter.Seq[core.Match], error) {
	if err := core.ValidateSkipWindow(window); err != nil {
		return nil, err
	}
	return func(yield func(core.Match) bool) {
		if term.Len() == 0 || ix.stream.Len() == 0 {
			return
		}
		anchor := ix.anchor(term)
		for d := range reachable(window, ix.stream.Len(), term.Len()).Skips() {
			if !ix.scanSkip(term, anchor, d, yield) {
				return
			}
		}
	}, nil
}

// scanRange collects the matches for skips from..to inclusive. The range must
// not contain zero.
func (ix *Index) scanRange(term core.Term, from, to int) []core.Match {
	if term.Len() == 0 || ix.stream.Len() == 0 || from > to {
		return nil
	}
	anchor := ix.anchor(term)
	var out []core.Match
	for d := from; ; d++ {
		ix.scanSkip(term, anchor, d, func(m core.Match) bool {
			out = append(out, m)
			return true
		})
		if d == to {
			break
		}
	}
	return out
}

// anchor picks the term position whose symbol is rarest in the stream.
func (ix *Index) anchor(term core.Term) int {
	best, bestCount := 0, -1
	for k, sym := range term.Symbols {
		c := len(ix.positions[sym])
		if bestCount < 0 || c < bestCount {
			best, bestCount = k, c
		}
	}
	return best
}

// scanSkip walks the positions p of the anchor symbol. The start for p is
// p - k*d, which grows with p for either sign of d, so matches come out in
// increasing start order.
func (ix *Index) scanSkip(term core.Term, k, d int, yield func(core.Match) bool) bool {
	lo, hi := StartRange(ix.stream.Len(), term.Len(), d)
	if lo >= hi {
		return true
	}
	pos := ix.positions[term.Symbols[k]]
	offset := k * d
	i, _ := slices.BinarySearch(pos, lo+offset)
	for ; i < len(pos) && pos[i] < hi+offset; i++ {
		n := pos[i] - offset
		if !matchesAt(ix.stream, term.Symbols, n, d, k) {
			continue
		}
		if !yield(core.Match{Term: term.Name, Start: n, Skip: d}) {
			return false
		}
	}
	return true
}
