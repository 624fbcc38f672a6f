// Package recovery reconstructs a repeating Vigenère key from ciphertext by
// voting over crib-dragging results.
//
// What:
//
//	Recover(ctx, a, ciphertext, cribs, opts...) lower-cases the ciphertext and
//	drops every non-alphabet rune (unless WithRawCiphertext), so offsets equal
//	key positions. It then runs crib.SearchAll for every crib, pools the matches, and for every candidate key length L in
//	[MinKeyLen, MaxKeyLen]:
//	  1. VoteKey: L independent per-column counters; symbol fragment[j] of a
//	     match at position p votes for column (p+j) mod L. Each column takes
//	     its most frequent symbol, ties going to the symbol seen first; an
//	     empty column falls back to the alphabet's first symbol.
//	  2. Score: decrypt the first SampleSize runes with the voted key and
//	     count occurrences of the expected words.
//	Candidates are ranked by score (desc), then key length (asc), then key
//	(lexical), and the best TopN are returned.
//
// Why:
//
//	At a correct alignment a crib yields the true key fragment, and the same
//	fragment recurs at every offset congruent modulo the key length. Wrong
//	alignments spread their votes over the whole alphabet.
//
// Caveat: this is a statistical heuristic. It only works when the true key
// length is inside the searched range and the cribs really occur in the
// plaintext, and even then it finds the key in expectation, not always.
//
// Concurrency: one goroutine per candidate length (errgroup, bounded by
// Options.Workers); per-length counters are never shared.
//
// Complexity: O(|cribs|·|ciphertext|·|crib|) for the search plus
// O(ΣL·matches + (MaxKeyLen-MinKeyLen+1)·SampleSize·|words|) for voting and scoring.
package recovery
