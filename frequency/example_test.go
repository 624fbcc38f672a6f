package frequency_test

import (
	"fmt"

	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/frequency"
)

// ExampleAnalyze counts letters only, leaving the space out of the table.
func ExampleAnalyze() {
	tbl := frequency.Analyze(alphabet.English, "Hello World", frequency.WithExcludeSeparator(true))

	l, _ := tbl.Count('l')
	fmt.Println(tbl.Len(), tbl.Total(), l, tbl.Has(' '))

	// Output:
	// 26 10 3 false
}
