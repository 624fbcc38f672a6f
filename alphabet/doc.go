// Package alphabet defines the ordered symbol tables that every cipher and
// analysis routine in polycipher is indexed by, plus a small registry that
// resolves a language identifier to its Alphabet.
//
// What:
//
//   - Alphabet: an immutable, ordered, deduplicated sequence of lower-case
//     symbols (runes) for one language. Exactly one symbol is designated as
//     the separator (usually ' '); it participates in shifting like any other
//     symbol. The position of a symbol in the sequence is its numeric index.
//   - Registry: a concurrency-safe language→Alphabet map implementing the
//     Resolver interface consumed by the cipher and analysis packages.
//   - English and Hebrew: the two built-in 27-symbol alphabets.
//
// Why:
//
//   - Every shift is computed modulo Len(), so the symbol order must never
//     change once an Alphabet is built. Index lookups go through a map built
//     once at construction time (O(1) per symbol, case-folded).
//
// Key Types & Functions:
//
//   - New(lang, symbols, separator) (*Alphabet, error)
//   - MustNew(...) *Alphabet     panics; only for static tables
//   - (*Alphabet).Index(r) (int, bool)
//   - NewRegistry(), Default(), (*Registry).Resolve(lang)
//
// Errors:
//
//   - ErrEmptyAlphabet        no symbols supplied
//   - ErrDuplicateSymbol      a symbol occurs twice (after lower-casing)
//   - ErrMissingSeparator     separator is not one of the symbols
//   - ErrEmptyLanguage        blank language identifier
//   - ErrNilAlphabet          nil *Alphabet passed to Register
//   - ErrAlreadyRegistered    language registered twice
//   - ErrUnsupportedLanguage  Resolve found nothing
//
// Complexity:
//
//   - New:     O(n) time and memory, n = number of symbols
//   - Index:   O(1)
//   - Resolve: O(len(lang)) for folding + O(1) lookup
package alphabet
