package normalize

import (
	"github.com/poiesic/elscan/core"
)

// Alphabet is the fixed symbol set a stream is drawn from.
type Alphabet struct {
	Name    string
	letters []rune
	index   map[rune]bool
	fold    map[rune]rune
	upper   bool // input is upper-cased before lookup
}

// HebrewLetters are the 22 base letters in order, Aleph to Tav.
const HebrewLetters = "אבגדהוזחטיכלמנסעפצקרשת"

// hebrewFinals maps the five final forms to their base letters.
var hebrewFinals = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// Hebrew returns the alphabet U+05D0..U+05EA. Final forms are distinct symbols.
func Hebrew() *Alphabet {
	letters := make([]rune, 0, 27)
	for r := rune(0x05D0); r <= 0x05EA; r++ {
		letters = append(letters, r)
	}
	return newAlphabet("hebrew", letters, nil)
}

// HebrewFolded returns the 22-letter Hebrew alphabet where each final form is
// read as its base letter.
func HebrewFolded() *Alphabet {
	return newAlphabet("hebrew-folded", []rune(HebrewLetters), hebrewFinals)
}

// Latin returns the alphabet A..Z. Input is upper-cased before filtering.
func Latin() *Alphabet {
	letters := make([]rune, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, r)
	}
	a := newAlphabet("latin", letters, nil)
	a.upper = true
	return a
}

// ByName returns a predefined alphabet.
func ByName(name string) (*Alphabet, error) {
	switch name {
	case "", "hebrew":
		return Hebrew(), nil
	case "hebrew-folded":
		return HebrewFolded(), nil
	case "latin":
		return Latin(), nil
	default:
		return nil, &UnknownAlphabetError{Name: name}
	}
}

func newAlphabet(name string, letters []rune, fold map[rune]rune) *Alphabet {
	index := make(map[rune]bool, len(letters))
	for _, r := range letters {
		index[r] = true
	}
	return &Alphabet{Name: name, letters: letters, index: index, fold: fold}
}

// Size returns the number of distinct symbols.
func (a *Alphabet) Size() int {
	return len(a.letters)
}

// Letters returns the symbols of the alphabet in order.
func (a *Alphabet) Letters() []core.Symbol {
	out := make([]core.Symbol, len(a.letters))
	for i, r := range a.letters {
		out[i] = core.Symbol(r)
	}
	return out
}

// Symbol maps a rune to its alphabet symbol. ok is false for runes outside
// the alphabet.
func (a *Alphabet) Symbol(r rune) (core.Symbol, bool) {
	if base, folded := a.fold[r]; folded {
		r = base
	}
	if !a.index[r] {
		return 0, false
	}
	return core.Symbol(r), true
}
