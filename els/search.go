package els

import (
	"fmt"
	"iter"

	"github.com/poiesic/elscan/core"
)

// Search returns the lazy sequence of all matches of term in stream for every
// skip in window. The window is validated before the sequence is returned.
// An empty term or stream yields an empty sequence.
func Search(stream *core.Stream, term core.Term, window core.SkipWindow) (iter.Seq[core.Match], error) {
	if err := core.ValidateSkipWindow(window); err != nil {
		return nil, err
	}
	return func(yield func(core.Match) bool) {
		if term.Len() == 0 || stream.Len() == 0 {
			return
		}
		for d := range reachable(window, stream.Len(), term.Len()).Skips() {
			if !scanSkip(stream, term, d, yield) {
				return
			}
		}
	}, nil
}

// ScanSkip returns the matches of term for the single skip d, in increasing
// start order.
func ScanSkip(stream *core.Stream, term core.Term, d int) ([]core.Match, error) {
	if d == 0 {
		return nil, fmt.Errorf("%w: skip 0", core.ErrInvalidSkip)
	}
	if term.Len() == 0 || stream.Len() == 0 {
		return nil, nil
	}
	var out []core.Match
	scanSkip(stream, term, d, func(m core.Match) bool {
		out = append(out, m)
		return true
	})
	return out, nil
}

// StartRange returns the half-open range [lo, hi) of start indices for which
// every sampled index of a term of length termLen at skip d lies in
// [0, streamLen). lo == hi when no start is possible.
func StartRange(streamLen, termLen, d int) (lo, hi int) {
	if streamLen <= 0 || termLen <= 0 || d == 0 {
		return 0, 0
	}
	span := termLen - 1
	if span == 0 {
		return 0, streamLen
	}
	// span*|d| must not exceed streamLen-1. The bound is checked on d itself,
	// dividing first, so neither the product nor -d can overflow.
	limit := (streamLen - 1) / span
	if d > limit || d < -limit {
		return 0, 0
	}
	if d > 0 {
		return 0, streamLen - span*d
	}
	return span * -d, streamLen
}

// reachable narrows window to the skips at which a term of length termLen
// fits in a stream of length streamLen. The result is in ascending order and
// empty when no skip fits.
func reachable(window core.SkipWindow, streamLen, termLen int) core.SkipWindow {
	w := window.Normalize()
	if termLen < 2 {
		return w
	}
	empty := core.SkipWindow{Min: 1, Max: 0}
	limit := (streamLen - 1) / (termLen - 1)
	if limit < 1 || w.Min > w.Max {
		return empty
	}
	if w.Min > 0 {
		w.Max = min(w.Max, limit)
	} else {
		w.Min = max(w.Min, -limit)
	}
	if w.Min > w.Max {
		return empty
	}
	return w
}

func scanSkip(stream *core.Stream, term core.Term, d int, yield func(core.Match) bool) bool {
	lo, hi := StartRange(stream.Len(), term.Len(), d)
	first := term.Symbols[0]
	for n := lo; n < hi; n++ {
		if stream.At(n) != first {
			continue
		}
		if !matchesAt(stream, term.Symbols, n, d, 0) {
			continue
		}
		if !yield(core.Match{Term: term.Name, Start: n, Skip: d}) {
			return false
		}
	}
	return true
}

// matchesAt compares term symbols against the stream at start n and skip d,
// stopping at the first mismatch. Position skipK is assumed already equal.
func matchesAt(stream *core.Stream, symbols []core.Symbol, n, d, skipK int) bool {
	idx := n
	for k, want := range symbols {
		if k != skipK && stream.At(idx) != want {
			return false
		}
		idx += d
	}
	return true
}
