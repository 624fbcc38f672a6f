package frequency

import (
	"unicode"

	"github.com/katalvlaran/polycipher/alphabet"
)

// Analyze counts the alphabet symbols of text. A nil alphabet yields an
// empty Table.
//
// Complexity: O(|A| + len(text)).
func Analyze(a *alphabet.Alphabet, text string, opts ...Option) *Table {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if a == nil {
		return &Table{}
	}

	counts := make([]int, a.Len())
	for _, r := range text {
		if i, ok := a.Index(unicode.ToLower(r)); ok {
			counts[i]++
		}
	}

	t := &Table{
		entries: make([]Entry, 0, a.Len()),
		pos:     make(map[rune]int, a.Len()),
	}
	for i, n := range counts {
		sym := a.At(i)
		if o.ExcludeSeparator && sym == a.Separator() {
			continue
		}
		t.pos[sym] = len(t.entries)
		t.entries = append(t.entries, Entry{Symbol: sym, Count: n})
	}

	return t
}

// AnalyzeLanguage resolves lang through res and calls Analyze. For an
// unknown language it returns an empty Table and the resolver's error.
func AnalyzeLanguage(res alphabet.Resolver, lang, text string, opts ...Option) (*Table, error) {
	if res == nil {
		return &Table{}, alphabet.ErrUnsupportedLanguage
	}
	a, err := res.Resolve(lang)
	if err != nil {
		return &Table{}, err
	}

	return Analyze(a, text, opts...), nil
}
