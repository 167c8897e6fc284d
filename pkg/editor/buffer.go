package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/multicolumn/pkg/errors"
)

// Buffer is an in-memory text document implementing [Target].
//
// Character offsets count runes. A trailing newline yields a final empty line,
// so the position just after the last newline is addressable.
type Buffer struct {
	lines   []string
	anchor  Position
	head    Position
	focused bool
}

// NewBuffer creates a buffer holding text with the cursor at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// String returns the document text.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Focused reports whether Focus has been called.
func (b *Buffer) Focused() bool {
	return b.focused
}

// Cursor returns the selection head.
func (b *Buffer) Cursor() Position {
	return b.head
}

// Selection returns the selection anchor and head.
func (b *Buffer) Selection() (anchor, head Position) {
	return b.anchor, b.head
}

// Select sets the selection. Both ends must lie inside the document.
func (b *Buffer) Select(anchor, head Position) error {
	if err := b.check(anchor); err != nil {
		return err
	}
	if err := b.check(head); err != nil {
		return err
	}
	b.anchor, b.head = anchor, head
	return nil
}

// SetCursor moves the cursor, clamped to the document, and collapses the
// selection.
func (b *Buffer) SetCursor(p Position) {
	p = b.clamp(p)
	b.anchor, b.head = p, p
}

// Focus marks the buffer focused.
func (b *Buffer) Focus() {
	b.focused = true
}

// ReplaceSelection replaces the selected range with text and leaves the cursor
// after the inserted text. The buffer is unchanged when the selection lies
// outside the document.
func (b *Buffer) ReplaceSelection(text string) error {
	from, to := b.anchor, b.head
	if after(from, to) {
		from, to = to, from
	}
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}

	prefix := runePrefix(b.lines[from.Line], from.Ch)
	suffix := runeSuffix(b.lines[to.Line], to.Ch)
	inserted := strings.Split(text, "\n")

	end := Position{Line: from.Line + len(inserted) - 1}
	if len(inserted) == 1 {
		end.Ch = from.Ch + utf8.RuneCountInString(text)
	} else {
		end.Ch = utf8.RuneCountInString(inserted[len(inserted)-1])
	}

	inserted[0] = prefix + inserted[0]
	inserted[len(inserted)-1] += suffix

	lines := make([]string, 0, len(b.lines)-(to.Line-from.Line)+len(inserted)-1)
	lines = append(lines, b.lines[:from.Line]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[to.Line+1:]...)
	b.lines = lines

	b.anchor, b.head = end, end
	return nil
}

func (b *Buffer) check(p Position) error {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return errors.New(errors.ErrCodeInvalidPosition, "line %d is outside the document (%d lines)", p.Line+1, len(b.lines))
	}
	if n := utf8.RuneCountInString(b.lines[p.Line]); p.Ch < 0 || p.Ch > n {
		return errors.New(errors.ErrCodeInvalidPosition, "column %d is outside line %d (%d characters)", p.Ch+1, p.Line+1, n)
	}
	return nil
}

func (b *Buffer) clamp(p Position) Position {
	p.Line = min(max(p.Line, 0), len(b.lines)-1)
	p.Ch = min(max(p.Ch, 0), utf8.RuneCountInString(b.lines[p.Line]))
	return p
}

func after(a, b Position) bool {
	return a.Line > b.Line || (a.Line == b.Line && a.Ch > b.Ch)
}

func runePrefix(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

func runeSuffix(s string, n int) string {
	return s[len(runePrefix(s, n)):]
}
