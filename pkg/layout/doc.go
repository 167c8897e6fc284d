// Package layout generates multi-column callout blocks for markdown documents.
//
// A multi-column block is a blockquote-based callout: a single ">" level marks
// the outer "multi-column" container and a nested ">>" level marks each column.
// Renderers that understand nested admonitions recognise the structure without
// a custom parser.
//
// # Block Shape
//
// Generating two columns with ratios 30/70 and the "bordered" flag:
//
//	> [!multi-column|bordered]
//	>
//	>> [!col|30]
//	>>
//	>
//	>> [!col|70]
//	>>
//
// Every column content line is written as ">> " (one trailing space) so the
// cursor can land directly after the marker. A block for n columns always has
// 3n+1 lines.
//
// # Core Types
//
//   - [Request]: column count, optional ratios, and metadata [Flags]
//   - [Block]: the generated lines, joined by [Block.String]
//   - [Preset]: the named layouts offered by menus and pickers
//
// # Ratios
//
// [Generate] renders whatever ratios it is given and never checks that they
// sum to 100; presets are trusted and custom input goes through [ParseRatios]
// first, which rejects anything that does not add up.
//
//	ratios, err := layout.ParseRatios("30/70")
//	if err != nil {
//	    // MALFORMED_RATIO_INPUT: report it and insert nothing
//	}
//	block, _ := layout.Generate(len(ratios), ratios, "bordered")
//	fmt.Print(block)
package layout
