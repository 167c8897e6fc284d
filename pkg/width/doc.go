// Package width maps declared column widths to CSS.
//
// Each rendered column carries its ratio as callout metadata (the "30" in
// "[!col|30]"). [StyleFor] turns that string into a [Style] when it is a
// percentage in (0, 100]. Any other value (empty, non-numeric, zero, negative,
// over 100) yields no style and the column keeps its default flex sizing.
// Values are never clamped.
//
// A style sets the flex shorthand with the percentage as basis and forces
// min-width to 0 so wide content such as code blocks can shrink below its
// natural size.
//
// # Render Pass
//
// [Apply] runs the mapping over an [ElementSource], writing the declarations to
// every qualifying column. It is idempotent: a second pass writes the same
// values again. Package htmldoc provides an [ElementSource] over parsed HTML.
//
//	doc, _ := htmldoc.Parse(r)
//	n := width.Apply(doc)
//	doc.Render(w)
package width
