package frequency

import (
	"errors"
	"unicode"
)

// ErrNoSymbols is returned by renderers when the table total is zero.
var ErrNoSymbols = errors.New("frequency: no alphabet symbols in text")

// Entry is one row of a Table.
type Entry struct {
	Symbol rune
	Count  int
}

// Table is an ordered symbol→count mapping. The zero value is an empty
// table, which is what an unsupported language produces.
type Table struct {
	entries []Entry
	pos     map[rune]int // symbol -> index into entries
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.entries) }

// Empty reports whether the table has no entries at all. This differs from
// a table of zeros, which Analyze returns for a text without alphabet symbols.
func (t *Table) Empty() bool { return len(t.entries) == 0 }

// Count returns the count for r (case-insensitive) and whether r has an
// entry in the table.
func (t *Table) Count(r rune) (int, bool) {
	i, ok := t.pos[unicode.ToLower(r)]
	if !ok {
		return 0, false
	}

	return t.entries[i].Count, true
}

// Has reports whether r has an entry.
func (t *Table) Has(r rune) bool {
	_, ok := t.pos[unicode.ToLower(r)]

	return ok
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}

	return total
}

// Entries returns a copy of the rows in alphabet order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Map returns the counts as a plain map.
func (t *Table) Map() map[rune]int {
	out := make(map[rune]int, len(t.entries))
	for _, e := range t.entries {
		out[e.Symbol] = e.Count
	}

	return out
}

// Percentages returns each entry's share of Total() in percent, aligned
// with Entries(). All zeros when Total() is zero.
func (t *Table) Percentages() []float64 {
	out := make([]float64, len(t.entries))
	total := t.Total()
	if total == 0 {
		return out
	}
	for i, e := range t.entries {
		out[i] = float64(e.Count) / float64(total) * 100
	}

	return out
}

// Option configures Analyze.
type Option func(*Options)

// Options holds the Analyze settings.
type Options struct {
	// ExcludeSeparator removes the separator entry from the result.
	ExcludeSeparator bool
}

// DefaultOptions keeps the separator in the table.
func DefaultOptions() Options {
	return Options{ExcludeSeparator: false}
}

// WithExcludeSeparator sets whether the separator entry is removed.
func WithExcludeSeparator(exclude bool) Option {
	return func(o *Options) {
		o.ExcludeSeparator = exclude
	}
}
