package cipher

import (
	"unicode"

	"github.com/katalvlaran/polycipher/alphabet"
)

// Normalize maps any shift amount, negative or larger than n, into [0, n).
// For n <= 0 it returns 0.
//
// Normalize(s, n) + Normalize(-s, n) ≡ 0 (mod n), which makes a shift by
// -s the exact inverse of a shift by s.
func Normalize(amount, n int) int {
	if n <= 0 {
		return 0
	}

	return ((amount % n) + n) % n
}

// ShiftSymbol shifts r by amount positions within a.
//
// r is located case-insensitively. A symbol outside the alphabet is returned
// unchanged. An upper-case input yields the upper-cased target symbol; the
// separator and caseless scripts come back as stored. A nil alphabet is a
// pass-through.
//
// Complexity: O(1).
func ShiftSymbol(a *alphabet.Alphabet, r rune, amount int) rune {
	if a == nil {
		return r
	}
	i, ok := a.Index(r)
	if !ok {
		return r
	}

	n := a.Len()
	out := a.At((i + Normalize(amount, n)) % n)
	if unicode.IsUpper(r) {
		return unicode.ToUpper(out)
	}

	return out
}

// ShiftText applies ShiftSymbol to every rune of text. The result has the
// same number of runes in the same order.
//
// Complexity: O(len(text)).
func ShiftText(a *alphabet.Alphabet, text string, amount int) string {
	if a == nil {
		return text
	}

	out := make([]rune, 0, len(text))
	for _, r := range text {
		out = append(out, ShiftSymbol(a, r, amount))
	}

	return string(out)
}

// UnshiftText reverses ShiftText: UnshiftText(a, ShiftText(a, t, s), s) == t.
func UnshiftText(a *alphabet.Alphabet, text string, amount int) string {
	return ShiftText(a, text, -amount)
}

// CaesarEncrypt resolves lang through res and shifts text by amount.
// An unknown language (or a nil resolver) yields the input unchanged with
// Status UnsupportedLanguage.
func CaesarEncrypt(res alphabet.Resolver, lang, text string, amount int) Result {
	a, ok := resolve(res, lang)
	if !ok {
		return Result{Text: text, Status: UnsupportedLanguage}
	}

	return Result{Text: ShiftText(a, text, amount), Status: Applied}
}

// CaesarDecrypt is CaesarEncrypt with the shift negated.
func CaesarDecrypt(res alphabet.Resolver, lang, text string, amount int) Result {
	return CaesarEncrypt(res, lang, text, -amount)
}

// resolve looks lang up, treating a nil resolver like an unknown language.
func resolve(res alphabet.Resolver, lang string) (*alphabet.Alphabet, bool) {
	if res == nil {
		return nil, false
	}
	a, err := res.Resolve(lang)
	if err != nil || a == nil {
		return nil, false
	}

	return a, true
}
