// Package htmldoc exposes the callout columns of an HTML document for the
// width render pass.
//
// Columns are the elements a callout-aware markdown renderer emits for
// "[!col|N]" blocks:
//
//	<div class="callout" data-callout="col" data-callout-metadata="30">
//
// The document is edited in place and written back with [Document.Render].
package htmldoc

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/multicolumn/pkg/layout"
	"github.com/matzehuels/multicolumn/pkg/width"
)

// Callout attributes.
const (
	AttrCallout  = "data-callout"
	AttrMetadata = "data-callout-metadata"
	AttrStyle    = "style"
	calloutClass = "callout"
)

// Document is a parsed HTML document or fragment.
type Document struct {
	nodes    []*html.Node // top-level nodes, rendered in order
	fragment bool
}

// Parse reads HTML from r. Input that starts with a doctype or <html> element
// is parsed as a full document; anything else as a body fragment, so
// rendering does not add wrapper elements.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if isFullDocument(data) {
		root, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &Document{nodes: []*html.Node{root}}, nil
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(data), body)
	if err != nil {
		return nil, err
	}
	return &Document{nodes: nodes, fragment: true}, nil
}

func isFullDocument(data []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(data[:min(len(data), 512)])))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// Fragment reports whether the document was parsed as a fragment.
func (d *Document) Fragment() bool {
	return d.fragment
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Columns returns the callout columns in document order.
func (d *Document) Columns() []width.Element {
	var cols []width.Element
	d.walk(func(n *html.Node) {
		if isCallout(n, layout.ColumnType) && hasAttr(n, AttrMetadata) {
			cols = append(cols, Element{n})
		}
	})
	return cols
}

// Containers returns the multi-column callouts in document order.
func (d *Document) Containers() []Element {
	var out []Element
	d.walk(func(n *html.Node) {
		if isCallout(n, layout.ContainerType) {
			out = append(out, Element{n})
		}
	})
	return out
}

// StyleContainers merges decls into the style of every multi-column
// container and returns how many were styled.
func (d *Document) StyleContainers(decls []width.Declaration) int {
	if len(decls) == 0 {
		return 0
	}
	containers := d.Containers()
	for _, c := range containers {
		for _, decl := range decls {
			c.SetStyle(decl.Property, decl.Value)
		}
	}
	return len(containers)
}

func (d *Document) walk(fn func(*html.Node)) {
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			fn(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, n := range d.nodes {
		visit(n)
	}
}

// Element is a callout element of the document.
type Element struct {
	n *html.Node
}

// Metadata returns the callout metadata attribute.
func (e Element) Metadata() (string, bool) {
	return attr(e.n, AttrMetadata)
}

// Style returns the element's style attribute.
func (e Element) Style() string {
	s, _ := attr(e.n, AttrStyle)
	return s
}

// SetStyle sets one CSS property, keeping the other declarations.
func (e Element) SetStyle(property, value string) {
	style := width.MergeInline(e.Style(), []width.Declaration{{Property: property, Value: value}})
	setAttr(e.n, AttrStyle, style)
}

func isCallout(n *html.Node, kind string) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Div {
		return false
	}
	if v, ok := attr(n, AttrCallout); !ok || v != kind {
		return false
	}
	class, _ := attr(n, "class")
	return slices.Contains(strings.Fields(class), calloutClass)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
