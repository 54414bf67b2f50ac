// Package gematria assigns numeric letter values to Hebrew symbol sequences.
package gematria

import (
	"fmt"
	"strings"

	"github.com/poiesic/elscan/core"
)

// Method selects a letter-value table.
type Method int

const (
	// Standard is Mispar Ragil: Aleph=1 through Tav=400.
	Standard Method = iota + 1
	// Ordinal is Mispar Siduri: the letter position 1..22.
	Ordinal
	// Reduced is Mispar Katan: the digit sum of the standard value.
	Reduced
)

// Methods lists every method in display order.
var Methods = []Method{Standard, Ordinal, Reduced}

func (m Method) String() string {
	switch m {
	case Standard:
		return "standard"
	case Ordinal:
		return "ordinal"
	case Reduced:
		return "reduced"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses a method name.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "standard", "ragil":
		return Standard, nil
	case "ordinal", "siduri":
		return Ordinal, nil
	case "reduced", "katan":
		return Reduced, nil
	default:
		return 0, fmt.Errorf("unknown gematria method %q: must be one of standard, ordinal, reduced", name)
	}
}

var standardValues = map[core.Symbol]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50, 'ס': 60, 'ע': 70, 'פ': 80, 'צ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
	// Final forms share the value of their base letter.
	'ך': 20, 'ם': 40, 'ן': 50, 'ף': 80, 'ץ': 90,
}

var ordinalValues = func() map[core.Symbol]int {
	base := []rune("אבגדהוזחטיכלמנסעפצקרשת")
	values := make(map[core.Symbol]int, len(base)+5)
	for i, r := range base {
		values[core.Symbol(r)] = i + 1
	}
	for final, r := range map[rune]rune{'ך': 'כ', 'ם': 'מ', 'ן': 'נ', 'ף': 'פ', 'ץ': 'צ'} {
		values[core.Symbol(final)] = values[core.Symbol(r)]
	}
	return values
}()

// Value returns the value of a single symbol. Symbols outside the Hebrew
// alphabet are worth zero.
func Value(sym core.Symbol, method Method) int {
	switch method {
	case Ordinal:
		return ordinalValues[sym]
	case Reduced:
		return digitSum(standardValues[sym])
	default:
		return standardValues[sym]
	}
}

// Calculate sums the symbol values of symbols.
func Calculate(symbols []core.Symbol, method Method) int {
	total := 0
	for _, sym := range symbols {
		total += Value(sym, method)
	}
	return total
}

// CalculateString sums the values of the runes of text.
func CalculateString(text string, method Method) int {
	return Calculate(core.SymbolsFromString(strings.TrimSpace(text)), method)
}

// LetterValue is one entry of a breakdown.
type LetterValue struct {
	Symbol core.Symbol
	Value  int
}

// Breakdown returns the standard value of each valued symbol in text.
func Breakdown(symbols []core.Symbol) []LetterValue {
	var out []LetterValue
	for _, sym := range symbols {
		if v, ok := standardValues[sym]; ok {
			out = append(out, LetterValue{Symbol: sym, Value: v})
		}
	}
	return out
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
