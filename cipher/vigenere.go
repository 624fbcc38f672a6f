package cipher

import (
	"github.com/katalvlaran/polycipher/alphabet"
)

// CleanKey keeps the runes of raw that belong to a (case-insensitively) and
// returns their positions in order. An empty result turns the keyed cipher
// into the identity transform.
//
// Complexity: O(len(raw)).
func CleanKey(a *alphabet.Alphabet, raw string) []int {
	if a == nil {
		return nil
	}

	shifts := make([]int, 0, len(raw))
	for _, r := range raw {
		if i, ok := a.Index(r); ok {
			shifts = append(shifts, i)
		}
	}

	return shifts
}

// KeyString returns the cleaned key as lower-case alphabet symbols.
func KeyString(a *alphabet.Alphabet, raw string) string {
	shifts := CleanKey(a, raw)
	out := make([]rune, len(shifts))
	for i, s := range shifts {
		out[i] = a.At(s)
	}

	return string(out)
}

// EncryptText applies the repeating key raw to text.
//
// Each alphabet symbol of text is shifted by the key position under the
// cursor and the cursor advances; any other rune is copied and the cursor
// stays put. The separator is an alphabet symbol, so it is shifted and it
// consumes a key position.
//
// A nil alphabet or a key without alphabet symbols returns text unchanged.
//
// Complexity: O(len(text) + len(raw)).
func EncryptText(a *alphabet.Alphabet, text, raw string) string {
	return applyKey(a, text, raw, 1)
}

// DecryptText inverts EncryptText for the same key.
func DecryptText(a *alphabet.Alphabet, text, raw string) string {
	return applyKey(a, text, raw, -1)
}

// VigenereEncrypt resolves lang through res and applies EncryptText.
// It reports UnsupportedLanguage or EmptyKey instead of failing.
func VigenereEncrypt(res alphabet.Resolver, lang, text, key string) Result {
	return vigenere(res, lang, text, key, 1)
}

// VigenereDecrypt resolves lang through res and applies DecryptText.
func VigenereDecrypt(res alphabet.Resolver, lang, text, key string) Result {
	return vigenere(res, lang, text, key, -1)
}

func vigenere(res alphabet.Resolver, lang, text, key string, sign int) Result {
	a, ok := resolve(res, lang)
	if !ok {
		return Result{Text: text, Status: UnsupportedLanguage}
	}
	shifts := CleanKey(a, key)
	if len(shifts) == 0 {
		return Result{Text: text, Status: EmptyKey}
	}

	return Result{Text: fold(a, text, shifts, sign), Status: Applied}
}

func applyKey(a *alphabet.Alphabet, text, raw string, sign int) string {
	shifts := CleanKey(a, raw)
	if len(shifts) == 0 {
		return text
	}

	return fold(a, text, shifts, sign)
}

// keyState is the accumulator carried through a left-to-right pass.
type keyState struct {
	cursor int    // key positions consumed so far
	out    []rune // output produced so far
}

// step is the per-rune transition of the keyed cipher.
func (st keyState) step(a *alphabet.Alphabet, shifts []int, sign int, r rune) keyState {
	if !a.Contains(r) {
		st.out = append(st.out, r)
		return st
	}
	st.out = append(st.out, ShiftSymbol(a, r, sign*shifts[st.cursor%len(shifts)]))
	st.cursor++

	return st
}

// fold runs step over every rune of text. shifts must be non-empty.
func fold(a *alphabet.Alphabet, text string, shifts []int, sign int) string {
	st := keyState{out: make([]rune, 0, len(text))}
	for _, r := range text {
		st = st.step(a, shifts, sign, r)
	}

	return string(st.out)
}
