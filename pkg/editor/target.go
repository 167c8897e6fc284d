package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/multicolumn/pkg/errors"
	"github.com/matzehuels/multicolumn/pkg/layout"
)

// Position is a zero-based line and character offset in a document.
type Position struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// String formats the position for humans, one-based ("12:1").
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Ch+1)
}

// ParsePosition parses a one-based "line" or "line:ch" string.
func ParsePosition(s string) (Position, error) {
	lineStr, chStr, hasCh := strings.Cut(strings.TrimSpace(s), ":")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return Position{}, errors.New(errors.ErrCodeInvalidPosition, "invalid line in position %q", s)
	}
	ch := 1
	if hasCh {
		if ch, err = strconv.Atoi(chStr); err != nil || ch < 1 {
			return Position{}, errors.New(errors.ErrCodeInvalidPosition, "invalid column in position %q", s)
		}
	}
	return Position{Line: line - 1, Ch: ch - 1}, nil
}

// Target is an editable document with a cursor.
type Target interface {
	// Cursor returns the current cursor position.
	Cursor() Position
	// ReplaceSelection replaces the selected text (or inserts at the cursor
	// when nothing is selected).
	ReplaceSelection(text string) error
	// SetCursor moves the cursor, collapsing any selection.
	SetCursor(Position)
	// Focus gives the target input focus.
	Focus()
}

// Resolve returns the first non-nil target, so callers can prefer the active
// view's editor and fall back to the one the action was invoked on.
func Resolve(targets ...Target) Target {
	for _, t := range targets {
		if t != nil {
			return t
		}
	}
	return nil
}

// Insert writes block at the target's cursor and moves the cursor to the
// first column's content line. It returns the new cursor position.
func Insert(t Target, block layout.Block) (Position, error) {
	if t == nil {
		return Position{}, errors.New(errors.ErrCodeNoActiveTarget, "no active editor to insert into")
	}

	cur := t.Cursor()
	if err := t.ReplaceSelection(block.String()); err != nil {
		if errors.GetCode(err) != "" {
			return Position{}, err
		}
		return Position{}, errors.Wrap(errors.ErrCodeNoActiveTarget, err, "insert block")
	}

	dl, ch := block.CursorOffset()
	next := Position{Line: cur.Line + dl, Ch: ch}
	t.SetCursor(next)
	t.Focus()
	return next, nil
}

// InsertLayout generates the block for req and inserts it. Generation errors
// are returned before the target is touched.
func InsertLayout(t Target, req layout.Request) (Position, error) {
	if t == nil {
		return Position{}, errors.New(errors.ErrCodeNoActiveTarget, "no active editor to insert into")
	}
	block, err := layout.GenerateRequest(req)
	if err != nil {
		return Position{}, err
	}
	return Insert(t, block)
}
