package width_test

import (
	"fmt"

	"github.com/matzehuels/multicolumn/pkg/width"
)

func ExampleStyleFor() {
	for _, raw := range []string{"50", "0", "150", "abc", ""} {
		s, ok := width.StyleFor(raw)
		if !ok {
			fmt.Printf("%q: no style\n", raw)
			continue
		}
		fmt.Printf("%q: %s\n", raw, width.FormatInline(s.Declarations()))
	}
	// Output:
	// "50": flex: 0 0 50%; min-width: 0
	// "0": no style
	// "150": no style
	// "abc": no style
	// "": no style
}
