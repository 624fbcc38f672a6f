package recovery

import (
	"sort"
	"strings"

	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/cipher"
)

// Score decrypts the first sampleSize runes of ciphertext with key and
// returns the total number of non-overlapping, case-insensitive
// occurrences of words in the result. Empty words are ignored.
func Score(a *alphabet.Alphabet, ciphertext, key string, words []string, sampleSize int) int {
	sample := prefix(ciphertext, sampleSize)
	plain := strings.ToLower(cipher.DecryptText(a, sample, key))

	total := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		total += strings.Count(plain, strings.ToLower(w))
	}

	return total
}

// Rank sorts candidates in place: higher score first, then shorter key,
// then lexical key order.
func Rank(cands []Candidate) {
	sort.Slice(cands, func(i, j int) bool {
		ci, cj := cands[i], cands[j]
		if ci.Score != cj.Score {
			return ci.Score > cj.Score
		}
		if ci.Length != cj.Length {
			return ci.Length < cj.Length
		}

		return ci.Key < cj.Key
	})
}

// prefix returns the first n runes of s (all of s when shorter).
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}

	return s
}
