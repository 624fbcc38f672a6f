// Package frequency counts how often each alphabet symbol occurs in a text
// and renders the resulting table.
//
// What:
//
//   - Analyze(a, text, opts...) builds a Table with one entry per alphabet
//     symbol, in alphabet order, starting from zero. Every rune of the
//     lower-cased text that is an alphabet symbol increments its entry;
//     everything else is ignored.
//   - WithExcludeSeparator drops the separator entry from the table
//     entirely (it is absent, not zero).
//   - AnalyzeLanguage resolves the alphabet first. An unknown language
//     yields an empty Table (no entries at all) together with
//     alphabet.ErrUnsupportedLanguage; callers that only want the
//     pass-through behavior may ignore the error and test Table.Empty.
//   - Renderer is the output hook for tables; BarChart is a plain-text
//     horizontal bar chart.
//
// Invariants:
//
//   - Total() equals the number of runes of text whose lower-cased form is
//     an alphabet symbol (minus separators when excluded).
//   - A Caesar shift permutes the counts but keeps Total() unchanged.
//
// Complexity: Analyze is O(|A| + len(text)).
package frequency
