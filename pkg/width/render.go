package width

// Element is a rendered column that may declare a width.
type Element interface {
	// Metadata returns the column's metadata attribute and whether it is set.
	Metadata() (string, bool)
	// SetStyle writes a CSS property on the element.
	SetStyle(property, value string)
}

// ElementSource yields the columns of one render pass.
type ElementSource interface {
	Columns() []Element
}

// ApplyTo writes the style for e's metadata, if any. It reports whether a
// style was written.
func ApplyTo(e Element) bool {
	raw, ok := e.Metadata()
	if !ok {
		return false
	}
	s, ok := StyleFor(raw)
	if !ok {
		return false
	}
	for _, d := range s.Declarations() {
		e.SetStyle(d.Property, d.Value)
	}
	return true
}

// Apply styles every qualifying column from src and returns how many were
// styled.
func Apply(src ElementSource) int {
	n := 0
	for _, e := range src.Columns() {
		if ApplyTo(e) {
			n++
		}
	}
	return n
}
