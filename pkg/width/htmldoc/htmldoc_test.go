package htmldoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/multicolumn/pkg/width"
)

const fragment = `<div class="callout" data-callout="multi-column">` +
	`<div class="callout" data-callout="col" data-callout-metadata="30"><p>a</p></div>` +
	`<div class="callout is-collapsible" data-callout="col" data-callout-metadata="70" style="color: red"><p>b</p></div>` +
	`<div class="callout" data-callout="col" data-callout-metadata="abc"></div>` +
	`<div class="callout" data-callout="col"></div>` +
	`<div class="note" data-callout="col" data-callout-metadata="50"></div>` +
	`</div>`

func parse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func render(t *testing.T, doc *Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestColumns(t *testing.T) {
	doc := parse(t, fragment)
	cols := doc.Columns()
	if len(cols) != 3 {
		t.Fatalf("Columns() = %d, want 3 (callout class, col type, metadata present)", len(cols))
	}
	var metas []string
	for _, c := range cols {
		m, _ := c.Metadata()
		metas = append(metas, m)
	}
	if got := strings.Join(metas, ","); got != "30,70,abc" {
		t.Errorf("metadata = %s", got)
	}
}

func TestApplyWidths(t *testing.T) {
	doc := parse(t, fragment)
	if n := width.Apply(doc); n != 2 {
		t.Fatalf("Apply() = %d, want 2", n)
	}

	out := render(t, doc)
	for _, want := range []string{
		`data-callout-metadata="30" style="flex: 0 0 30%; min-width: 0"`,
		`data-callout-metadata="70" style="color: red; flex: 0 0 70%; min-width: 0"`,
		`data-callout-metadata="abc"></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<body>") || strings.Contains(out, "<html>") {
		t.Errorf("fragment rendering added wrappers:\n%s", out)
	}

	// Second pass is a no-op on the output.
	width.Apply(doc)
	if again := render(t, doc); again != out {
		t.Errorf("second pass changed output:\n%s\n%s", out, again)
	}
}

func TestFullDocument(t *testing.T) {
	doc := parse(t, `<!DOCTYPE html><html><body>`+fragment+`</body></html>`)
	if doc.Fragment() {
		t.Fatal("doctype input should parse as a full document")
	}
	width.Apply(doc)
	out := render(t, doc)
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("doctype lost:\n%s", out)
	}
	if !strings.Contains(out, "flex: 0 0 30%") {
		t.Errorf("widths not applied:\n%s", out)
	}
}

func TestStyleContainers(t *testing.T) {
	doc := parse(t, fragment+fragment)
	decls := []width.Declaration{{Property: "--multi-column-divider-width", Value: "2px"}}
	if n := doc.StyleContainers(decls); n != 2 {
		t.Errorf("StyleContainers() = %d, want 2", n)
	}
	if got := doc.Containers()[0].Style(); got != "--multi-column-divider-width: 2px" {
		t.Errorf("container style = %q", got)
	}
	if n := doc.StyleContainers(nil); n != 0 {
		t.Errorf("StyleContainers(nil) = %d, want 0", n)
	}
}

func TestNoColumns(t *testing.T) {
	doc := parse(t, `<p>plain</p>`)
	if n := width.Apply(doc); n != 0 {
		t.Errorf("Apply() = %d, want 0", n)
	}
	if out := render(t, doc); out != `<p>plain</p>` {
		t.Errorf("Render() = %q", out)
	}
}
