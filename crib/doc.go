// Package crib implements crib dragging against additive polyalphabetic
// ciphertext.
//
// A crib is a guessed plaintext fragment. Search slides it across the
// ciphertext and, at every offset where each aligned pair of runes belongs
// to the alphabet, derives the key fragment that would have produced the
// window:
//
//	key[j] = A[(index(window[j]) - index(crib[j])) mod |A|]
//
// At a correct alignment the derived fragment equals the repeating key at
// that cyclic position, so true fragments recur at offsets congruent modulo
// the key length while wrong alignments give noise. Analyze groups matches
// by fragment to surface those recurrences.
//
// Offsets are rune offsets and both inputs are lower-cased. An alignment
// touching a non-member rune on either side is skipped silently.
//
// SearchAll runs one Search per crib concurrently (errgroup) and returns the
// results concatenated in crib order, so the output is deterministic.
//
// Complexity: Search is O(|ciphertext|·|crib|).
package crib
