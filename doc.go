// Package polycipher is a small toolkit for classical substitution ciphers
// over alphabets that carry their own separator symbol, plus the
// cryptanalysis needed to break the keyed variant.
//
// 🚀 What is in the box?
//
//	• Alphabets: ordered, case-folded symbol tables (English, Hebrew) behind
//	  a concurrent-safe registry
//	• Caesar: fixed shift modulo the alphabet size, case preserving
//	• Vigenère: repeating key, only alphabet symbols advance the key
//	• Frequency analysis: per-symbol counts plus a text bar chart
//	• Crib dragging: key fragments implied by a known plaintext word
//	• Key recovery: per-column voting over candidate key lengths, scored by
//	  expected plaintext words
//
// ✨ Contracts worth knowing
//
//   - Unsupported languages and keys without alphabet symbols never fail:
//     the text passes through unchanged and cipher.Result.Status says why.
//   - Runes outside the alphabet (digits, punctuation, newlines) are copied
//     as-is and do not consume key positions. The separator is a full
//     member: it shifts and consumes a key position.
//   - Key recovery is a heuristic. It finds the key in expectation, given
//     cribs that really occur in the plaintext.
//
// Layout:
//
//	alphabet/        - Alphabet, Registry, built-in English and Hebrew
//	cipher/          - shift and Vigenère transforms, tagged Result
//	frequency/       - frequency Table, Renderer, BarChart
//	crib/            - Search, SearchAll, Analyze
//	recovery/        - VoteKey, Score, Rank, Recover
//	internal/config/ - YAML + environment configuration for the CLI
//	cmd/polycipher/  - command-line front end
//
// Quick example:
//
//	ct := cipher.EncryptText(alphabet.English, "attack at dawn", "lemon")
//	// ct == "lxeopvdmgmoeha"
//
//	go install github.com/katalvlaran/polycipher/cmd/polycipher@latest
package polycipher
