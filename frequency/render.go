package frequency

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Renderer writes a table in some human-readable form.
type Renderer interface {
	Render(w io.Writer, title string, t *Table) error
}

// DefaultBarWidth is the bar length, in cells, of the most frequent symbol.
const DefaultBarWidth = 50

const ruleWidth = 70

// BarChart renders a table as one horizontal bar per symbol, scaled so the
// most frequent symbol gets Width cells. Whitespace symbols are labelled
// 'space'.
type BarChart struct {
	// Width of the longest bar; DefaultBarWidth when <= 0.
	Width int
}

var _ Renderer = BarChart{}

// Render implements Renderer. It returns ErrNoSymbols when the table
// total is zero and writes nothing in that case.
func (b BarChart) Render(w io.Writer, title string, t *Table) error {
	total := t.Total()
	if total == 0 {
		return ErrNoSymbols
	}
	width := b.Width
	if width <= 0 {
		width = DefaultBarWidth
	}

	maxCount := 0
	for _, e := range t.entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	var sb strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(&sb, "\n%s\n%s\n", title, rule)
	pcts := t.Percentages()
	for i, e := range t.entries {
		bar := strings.Repeat("█", e.Count*width/maxCount)
		fmt.Fprintf(&sb, "%7s | %s %6.2f%% (%d chars)\n", label(e.Symbol), bar, pcts[i], e.Count)
	}
	fmt.Fprintf(&sb, "%s\nTotal characters: %d\n\n", rule, total)

	_, err := io.WriteString(w, sb.String())

	return err
}

func label(r rune) string {
	if unicode.IsSpace(r) {
		return "'space'"
	}

	return string(r)
}
