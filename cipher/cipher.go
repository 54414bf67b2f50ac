// Package cipher implements the classical Hebrew letter substitutions.
package cipher

import (
	"fmt"

	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/normalize"
)

// Cipher is a symbol substitution. Symbols outside the 22-letter alphabet,
// including final forms, pass through unchanged.
type Cipher struct {
	name    string
	mapping map[core.Symbol]core.Symbol
}

var (
	// Atbash maps the first letter to the last, the second to the second-last, and so on.
	Atbash = newCipher("atbash", func(i, n int) int { return n - 1 - i })

	// Albam maps each letter to the one eleven positions away.
	Albam = newCipher("albam", func(i, n int) int { return (i + n/2) % n })
)

func newCipher(name string, target func(i, n int) int) *Cipher {
	letters := []rune(normalize.HebrewLetters)
	mapping := make(map[core.Symbol]core.Symbol, len(letters))
	for i, r := range letters {
		mapping[core.Symbol(r)] = core.Symbol(letters[target(i, len(letters))])
	}
	return &Cipher{name: name, mapping: mapping}
}

// ByName returns a cipher by name.
func ByName(name string) (*Cipher, error) {
	switch name {
	case "atbash":
		return Atbash, nil
	case "albam":
		return Albam, nil
	default:
		return nil, fmt.Errorf("unknown cipher %q: must be one of atbash, albam", name)
	}
}

// Name returns the cipher name.
func (c *Cipher) Name() string {
	return c.name
}

// Apply substitutes every symbol.
func (c *Cipher) Apply(symbols []core.Symbol) []core.Symbol {
	out := make([]core.Symbol, len(symbols))
	for i, sym := range symbols {
		if mapped, ok := c.mapping[sym]; ok {
			out[i] = mapped
		} else {
			out[i] = sym
		}
	}
	return out
}

// ApplyString substitutes every rune of text.
func (c *Cipher) ApplyString(text string) string {
	return core.SymbolsToString(c.Apply(core.SymbolsFromString(text)))
}

// Term returns the enciphered variant of term, labelled "<name>/<cipher>".
func (c *Cipher) Term(term core.Term) core.Term {
	return core.Term{
		Name:    term.Name + "/" + c.name,
		Symbols: c.Apply(term.Symbols),
	}
}
