// Package textpos converts byte offsets in a document to line and column
// positions.
package textpos

import (
	"fmt"
	"sort"
)

// Line is the line number of some text in a document.
type Line struct {
	value int
}

// LineFromOffset returns a Line from a zero-based offset.
func LineFromOffset(o int) Line { return LineFromOrdinal(o + 1) }

// LineFromOrdinal returns a Line from a one-based value.
func LineFromOrdinal(o int) Line { return Line{o} }

// Offset returns the line number where 0 indicates the first line.
func (n Line) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the line number where 1 indicates the first line.
func (n Line) Ordinal() int { return n.value }

// String returns the ordinal value encoded as a base 10 string.
func (n Line) String() string { return fmt.Sprintf("%d", n.Ordinal()) }

// IsValid reports if the line value is valid (ordinal >= 1).
func (n Line) IsValid() bool { return n.Ordinal() > 0 }

// Column is a byte offset within a line of text.
type Column struct {
	value int
}

// ColumnFromOffset returns a Column from a zero-based offset.
func ColumnFromOffset(o int) Column { return ColumnFromOrdinal(o + 1) }

// ColumnFromOrdinal returns a Column from a one-based value.
func ColumnFromOrdinal(o int) Column { return Column{o} }

// Offset returns the column number where 0 indicates the first column.
func (n Column) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the column number where 1 indicates the first column.
func (n Column) Ordinal() int { return n.value }

// String returns the ordinal value encoded as a base 10 string.
func (n Column) String() string { return fmt.Sprintf("%d", n.Ordinal()) }

// IsValid reports if the column value is valid (ordinal >= 1).
func (n Column) IsValid() bool { return n.Ordinal() > 0 }

// LineColumn is a two dimensional textual position (line, column).
type LineColumn struct {
	line Line
	col  Column
}

// MakeLineColumn returns a new LineColumn tuple.
func MakeLineColumn(line Line, col Column) LineColumn {
	return LineColumn{line, col}
}

// Line returns the line for the tuple.
func (p LineColumn) Line() Line { return p.line }

// Column returns the column for the tuple.
func (p LineColumn) Column() Column { return p.col }

// IsValid reports whether both the line and the column are valid.
func (p LineColumn) IsValid() bool { return p.line.IsValid() && p.col.IsValid() }

// String returns "line:column" using ordinals, with "-" for an invalid part.
func (p LineColumn) String() string {
	l, c := "-", "-"
	if p.Line().IsValid() {
		l = p.Line().String()
	}
	if p.Column().IsValid() {
		c = p.Column().String()
	}
	return fmt.Sprintf("%s:%s", l, c)
}

// Index maps byte offsets of a document to line and column positions.
type Index struct {
	size  int
	lines []int // offset of the first byte of each line
}

// NewIndex returns an Index for content.
func NewIndex(content []byte) *Index {
	lines := []int{0}
	for i, b := range content {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Index{size: len(content), lines: lines}
}

// LineCount returns the number of lines in the document. A trailing newline
// starts a final, empty line.
func (x *Index) LineCount() int { return len(x.lines) }

// LineStart returns the offset of the first byte of line.
func (x *Index) LineStart(line Line) (int, error) {
	if !line.IsValid() || line.Offset() >= len(x.lines) {
		return 0, fmt.Errorf("line %s out of range [1, %d]", line, len(x.lines))
	}
	return x.lines[line.Offset()], nil
}

// Position returns the line and column of offset. Offsets equal to the
// document size are allowed and refer to the end of the last line.
func (x *Index) Position(offset int) (LineColumn, error) {
	if offset < 0 || offset > x.size {
		return LineColumn{}, fmt.Errorf("offset %d out of range [0, %d]", offset, x.size)
	}
	i := sort.Search(len(x.lines), func(i int) bool { return x.lines[i] > offset }) - 1
	return MakeLineColumn(LineFromOffset(i), ColumnFromOffset(offset-x.lines[i])), nil
}
