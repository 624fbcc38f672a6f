// Package cipher implements the classical shift (Caesar) and keyed
// polyalphabetic (Vigenère-style) substitution ciphers over an arbitrary
// alphabet.Alphabet.
//
// What:
//
//   - ShiftSymbol / ShiftText: move every alphabet symbol by a fixed amount
//     modulo the alphabet size. Case is preserved; characters outside the
//     alphabet (digits, punctuation, symbols of other scripts) pass through
//     verbatim and keep their position.
//   - CleanKey / EncryptText / DecryptText: apply one shift per alphabet
//     symbol, the amount taken from a cleaned, repeating key. Only alphabet
//     symbols consume a key position. The separator (space) is an ordinary
//     alphabet member here: it is shifted and it consumes a key position,
//     unlike the textbook cipher.
//   - Caesar / Vigenere: language-level entry points that resolve the
//     alphabet through an alphabet.Resolver and report the outcome as a
//     tagged Result.
//
// Pass-through contract:
//
//	An unsupported language or a key with no alphabet symbols never fails:
//	the input text is returned unchanged. Result.Status records why, so a
//	caller can tell "shift of zero" from "language not found".
//
// Invariants:
//
//   - len([]rune(out)) == len([]rune(in)) for every transform.
//   - DecryptText(a, EncryptText(a, t, k), k) == t for every t and k.
//   - ShiftText(a, t, s) == ShiftText(a, t, s+a.Len()).
//
// Complexity:
//
//   - ShiftSymbol O(1); ShiftText, EncryptText, DecryptText O(len(text)).
//   - CleanKey O(len(key)).
//
// All functions are pure and safe for concurrent use.
package cipher
