package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/multicolumn/pkg/errors"
)

// Callout markers written into generated blocks.
const (
	ContainerType = "multi-column" // outer callout type
	ColumnType    = "col"          // per-column callout type

	containerPrefix = ">"
	columnPrefix    = ">>"
	contentLine     = ">> "
)

// Cursor placement relative to the insertion point: the content line of the
// first column, just past the ">> " marker.
const (
	CursorLineOffset = 3
	CursorColumn     = 3
)

// MaxColumns is the largest column count a block may have.
const MaxColumns = 64

// Request describes a block to generate.
type Request struct {
	Columns int       // number of columns, at least 1
	Ratios  []float64 // optional per-column widths, read by index
	Flags   Flags     // metadata flags for the container header
}

// Block is a generated multi-column callout.
type Block struct {
	Lines []string
}

// String returns the block text: lines joined by newlines with a single
// trailing newline.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n") + "\n"
}

// Len returns the number of lines in the block.
func (b Block) Len() int {
	return len(b.Lines)
}

// CursorOffset returns where the cursor goes after inserting the block: a line
// offset from the insertion line and an absolute column.
func (b Block) CursorOffset() (line, ch int) {
	return CursorLineOffset, CursorColumn
}

// Generate builds a block with the given column count, optional ratios and
// metadata flags. Flags are rendered as given, in order.
func Generate(columns int, ratios []float64, flags ...string) (Block, error) {
	return GenerateRequest(Request{Columns: columns, Ratios: ratios, Flags: flags})
}

// GenerateRequest builds the block described by req.
//
// It returns an INVALID_COLUMN_COUNT error when req.Columns is below 1 or
// above [MaxColumns]. Ratios
// that are missing, NaN or infinite leave the column without a ratio tag.
func GenerateRequest(req Request) (Block, error) {
	if req.Columns < 1 {
		return Block{}, errors.New(errors.ErrCodeInvalidColumnCount,
			"column count must be at least 1, got %d", req.Columns)
	}
	if req.Columns > MaxColumns {
		return Block{}, errors.New(errors.ErrCodeInvalidColumnCount,
			"column count must be at most %d, got %d", MaxColumns, req.Columns)
	}

	lines := make([]string, 0, 3*req.Columns+1)
	lines = append(lines, containerPrefix+" "+header(ContainerType, req.Flags...), containerPrefix)

	for i := 0; i < req.Columns; i++ {
		if r, ok := ratioAt(req.Ratios, i); ok {
			lines = append(lines, columnPrefix+" "+header(ColumnType, formatRatio(r)))
		} else {
			lines = append(lines, columnPrefix+" "+header(ColumnType))
		}
		lines = append(lines, contentLine)
		if i != req.Columns-1 {
			lines = append(lines, containerPrefix)
		}
	}

	return Block{Lines: lines}, nil
}

// header renders a callout header such as "[!col|30]".
func header(kind string, meta ...string) string {
	var b strings.Builder
	b.WriteString("[!")
	b.WriteString(kind)
	for _, m := range meta {
		b.WriteByte('|')
		b.WriteString(m)
	}
	b.WriteByte(']')
	return b.String()
}

func ratioAt(ratios []float64, i int) (float64, bool) {
	if i >= len(ratios) {
		return 0, false
	}
	r := ratios[i]
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

// formatRatio prints integral ratios without a fraction ("33", not "33.0").
func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
