package normalize

import (
	"unicode"

	"github.com/poiesic/elscan/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer converts raw text into streams over one alphabet.
// A Normalizer is safe for concurrent use.
type Normalizer struct {
	alphabet *Alphabet
}

// New creates a normalizer for the alphabet. A nil alphabet selects Hebrew.
func New(alphabet *Alphabet) *Normalizer {
	if alphabet == nil {
		alphabet = Hebrew()
	}
	return &Normalizer{alphabet: alphabet}
}

// Alphabet returns the normalizer alphabet.
func (n *Normalizer) Alphabet() *Alphabet {
	return n.alphabet
}

// StripMarks removes nonspacing marks but keeps every other character,
// including spaces and punctuation.
func StripMarks(text string) string {
	// transform.Chain is stateful, so a fresh chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// Symbols returns the alphabet symbols of text in order.
func (n *Normalizer) Symbols(text string) []core.Symbol {
	stripped := StripMarks(text)
	if n.alphabet.upper {
		stripped = cases.Upper(language.Und).String(stripped)
	}
	out := make([]core.Symbol, 0, len(stripped)/2)
	for _, r := range stripped {
		if sym, ok := n.alphabet.Symbol(r); ok {
			out = append(out, sym)
		}
	}
	return out
}

// Normalize returns the alphabet symbols of text as a string with no separators.
func (n *Normalizer) Normalize(text string) string {
	return core.SymbolsToString(n.Symbols(text))
}

// Stream normalizes text into a stream.
func (n *Normalizer) Stream(text string) *core.Stream {
	return core.NewStream(n.Symbols(text))
}

// Term normalizes a term's text so it uses the same symbols as the stream.
func (n *Normalizer) Term(name, text string) core.Term {
	return core.Term{Name: name, Symbols: n.Symbols(text)}
}
