package alphabet

import (
	"fmt"
	"unicode"
)

// Alphabet is an immutable, ordered symbol table for one language.
// The zero value is not usable; build one with New or MustNew.
type Alphabet struct {
	lang      string
	symbols   []rune
	index     map[rune]int // lower-cased symbol -> position
	separator rune
}

// New builds an Alphabet for lang from symbols in the given order.
// Symbols are lower-cased before indexing so that lookups can fold the case
// of incoming text. The separator must be one of the symbols.
//
// Errors: ErrEmptyLanguage, ErrEmptyAlphabet, ErrDuplicateSymbol,
// ErrMissingSeparator.
//
// Complexity: O(n).
func New(lang string, symbols []rune, separator rune) (*Alphabet, error) {
	lang = foldLanguage(lang)
	if lang == "" {
		return nil, ErrEmptyLanguage
	}
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		lang:      lang,
		symbols:   make([]rune, len(symbols)),
		index:     make(map[rune]int, len(symbols)),
		separator: unicode.ToLower(separator),
	}
	for i, r := range symbols {
		r = unicode.ToLower(r)
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateSymbol, r, lang)
		}
		a.symbols[i] = r
		a.index[r] = i
	}
	if _, ok := a.index[a.separator]; !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingSeparator, separator, lang)
	}

	return a, nil
}

// MustNew is like New but panics on error. Use it only for static tables.
func MustNew(lang string, symbols []rune, separator rune) *Alphabet {
	a, err := New(lang, symbols, separator)
	if err != nil {
		panic(err)
	}

	return a
}

// Language returns the folded language identifier.
func (a *Alphabet) Language() string { return a.lang }

// Len returns the number of symbols, the modulus of every shift.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Separator returns the designated separator symbol.
func (a *Alphabet) Separator() rune { return a.separator }

// First returns the symbol at position 0.
func (a *Alphabet) First() rune { return a.symbols[0] }

// At returns the symbol at position i. It panics if i is out of range,
// like a slice index.
func (a *Alphabet) At(i int) rune { return a.symbols[i] }

// Symbols returns a copy of the ordered symbol list.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// Index reports the position of r, ignoring case.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[unicode.ToLower(r)]

	return i, ok
}

// Contains reports whether r (case-insensitively) belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[unicode.ToLower(r)]

	return ok
}

// String returns the symbols concatenated in order.
func (a *Alphabet) String() string { return string(a.symbols) }
