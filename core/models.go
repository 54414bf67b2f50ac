package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"iter"
	"math"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Symbol is a single unit of the stream alphabet.
// Symbols are compared by equality only.
type Symbol rune

// SymbolsFromString converts text to symbols without any filtering.
func SymbolsFromString(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolsToString converts symbols back to text.
func SymbolsToString(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = rune(s)
	}
	return string(runes)
}

// Stream is an immutable, zero-indexed sequence of symbols.
// A Stream is safe for concurrent reads from any number of goroutines.
type Stream struct {
	symbols []Symbol
	id      ID
}

// NewStream creates a Stream holding a private copy of symbols.
func NewStream(symbols []Symbol) *Stream {
	owned := make([]Symbol, len(symbols))
	copy(owned, symbols)
	return &Stream{
		symbols: owned,
		id:      IDFromContent(SymbolsToString(owned)),
	}
}

// NewStreamFromString creates a Stream from already-normalized text.
func NewStreamFromString(text string) *Stream {
	return NewStream(SymbolsFromString(text))
}

// Len returns the number of symbols in the stream.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.symbols)
}

// At returns the symbol at index i. The caller must ensure 0 <= i < Len().
func (s *Stream) At(i int) Symbol {
	return s.symbols[i]
}

// ID returns the content fingerprint of the stream.
// Identical symbol content always yields the same ID.
func (s *Stream) ID() ID {
	if s == nil {
		return IDFromContent("")
	}
	return s.id
}

// Symbols returns a copy of the stream contents.
func (s *Stream) Symbols() []Symbol {
	out := make([]Symbol, s.Len())
	if s != nil {
		copy(out, s.symbols)
	}
	return out
}

// Slice returns the symbols in [from, to) as text, clamped to the stream bounds.
// It is intended for report context only.
func (s *Stream) Slice(from, to int) string {
	from = max(from, 0)
	to = min(to, s.Len())
	if from >= to {
		return ""
	}
	return SymbolsToString(s.symbols[from:to])
}

// Term is a labelled symbol sequence to search for.
type Term struct {
	Name    string
	Symbols []Symbol
}

// NewTerm creates a term from a label and its text.
func NewTerm(name, text string) Term {
	return Term{Name: name, Symbols: SymbolsFromString(text)}
}

// Len returns the number of symbols in the term.
func (t Term) Len() int {
	return len(t.Symbols)
}

// Text returns the term symbols as a string.
func (t Term) Text() string {
	return SymbolsToString(t.Symbols)
}

// Tuple returns a string representation of the term as "(Name,Text)".
// This is used for generating deterministic IDs.
func (t Term) Tuple() string {
	return "(" + t.Name + "," + t.Text() + ")"
}

// ID returns the content-based identifier of the term.
func (t Term) ID() ID {
	return IDFromContent(t.Tuple())
}

// SkipWindow is an inclusive range of signed skip values.
// Zero is never a valid skip.
type SkipWindow struct {
	Min int
	Max int
}

// Forward returns the positive window [minSkip, maxSkip].
func Forward(minSkip, maxSkip int) SkipWindow {
	return SkipWindow{Min: minSkip, Max: maxSkip}
}

// Backward returns the negative window [-maxSkip, -minSkip].
func Backward(minSkip, maxSkip int) SkipWindow {
	return SkipWindow{Min: -maxSkip, Max: -minSkip}
}

// Bidirectional returns the forward and backward windows for the same magnitudes.
func Bidirectional(minSkip, maxSkip int) []SkipWindow {
	return []SkipWindow{Forward(minSkip, maxSkip), Backward(minSkip, maxSkip)}
}

// Normalize returns the window in ascending order.
// A negative window written by magnitude, such as {-1, -50}, becomes {-50, -1}.
// Positive windows are returned unchanged.
func (w SkipWindow) Normalize() SkipWindow {
	if w.Min < 0 && w.Max < 0 && w.Min > w.Max {
		return SkipWindow{Min: w.Max, Max: w.Min}
	}
	return w
}

// Empty reports whether the window contains no skip values.
func (w SkipWindow) Empty() bool {
	n := w.Normalize()
	return n.Min > n.Max
}

// Size returns the number of values from Min to Max inclusive, saturating at
// math.MaxInt.
func (w SkipWindow) Size() int {
	n := w.Normalize()
	if n.Min > n.Max {
		return 0
	}
	span := uint64(n.Max) - uint64(n.Min)
	if span >= math.MaxInt {
		return math.MaxInt
	}
	return int(span) + 1
}

// Skips yields every skip value in the window in ascending order.
func (w SkipWindow) Skips() iter.Seq[int] {
	n := w.Normalize()
	return func(yield func(int) bool) {
		if n.Min > n.Max {
			return
		}
		// Stop on Max itself; d++ past math.MaxInt would wrap.
		for d := n.Min; ; d++ {
			if d != 0 && !yield(d) {
				return
			}
			if d == n.Max {
				return
			}
		}
	}
}

// Match is an equidistant occurrence of a term in a stream.
// It holds no reference to the stream it was found in.
type Match struct {
	Term  string
	Start int
	Skip  int
}

// Indices yields the stream indices sampled by the match for a term of length termLen.
func (m Match) Indices(termLen int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := 0; k < termLen; k++ {
			if !yield(m.Start + k*m.Skip) {
				return
			}
		}
	}
}

// End returns the index of the last sampled symbol.
func (m Match) End(termLen int) int {
	if termLen == 0 {
		return m.Start
	}
	return m.Start + (termLen-1)*m.Skip
}

// ClusterPair is two matches of distinct terms whose start indices are
// closer than the proximity threshold. First always carries the
// lexicographically smaller term label.
type ClusterPair struct {
	First    Match
	Second   Match
	Distance int
}

// Cluster is a transitively connected group of matches spanning at least two terms.
type Cluster struct {
	Members []Match
	Terms   []string
	Low     int // Lowest member start index
	High    int // Highest member start index
}

// MatchSet is the result of searching one term over one skip window.
type MatchSet struct {
	StreamId ID
	Term     Term
	Window   SkipWindow
	Matches  []Match
}

// TermHits summarizes the matches for one term label in a run.
type TermHits struct {
	Term    Term
	Matches []Match
}

// Report is the outcome of a scan run: per-term hits plus proximity clusters.
type Report struct {
	RunId     string
	StreamId  ID
	StreamLen int
	Windows   []SkipWindow
	Threshold int
	Hits      []TermHits
	Pairs     []ClusterPair
	Clusters  []Cluster
	CreatedAt time.Time
}

// HitSets returns the report hits keyed by term label.
func (r *Report) HitSets() map[string][]Match {
	sets := make(map[string][]Match, len(r.Hits))
	for _, h := range r.Hits {
		sets[h.Term.Name] = h.Matches
	}
	return sets
}
