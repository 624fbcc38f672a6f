package recovery

import (
	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/crib"
)

// column is an insertion-ordered symbol counter.
type column struct {
	order  []rune
	counts map[rune]int
}

func (c *column) add(r rune) {
	if c.counts == nil {
		c.counts = make(map[rune]int)
	}
	if _, ok := c.counts[r]; !ok {
		c.order = append(c.order, r)
	}
	c.counts[r]++
}

// top returns the most frequent symbol, the first seen among equals.
func (c *column) top() (rune, bool) {
	var (
		best  rune
		count int
	)
	for _, r := range c.order {
		if n := c.counts[r]; n > count {
			best, count = r, n
		}
	}

	return best, count > 0
}

// VoteKey reconstructs a key of keyLen symbols from crib matches. Every
// fragment symbol at offset j of a match at position p votes for column
// (p+j) mod keyLen. It returns "" for keyLen < 1 or a nil alphabet.
func VoteKey(a *alphabet.Alphabet, matches []crib.Match, keyLen int) string {
	if a == nil || keyLen < 1 {
		return ""
	}

	cols := make([]column, keyLen)
	for _, m := range matches {
		j := 0
		for _, r := range m.Fragment {
			cols[(m.Position+j)%keyLen].add(r)
			j++
		}
	}

	key := make([]rune, keyLen)
	for i := range cols {
		r, ok := cols[i].top()
		if !ok {
			r = a.First()
		}
		key[i] = r
	}

	return string(key)
}
