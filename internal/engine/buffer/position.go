package buffer

import "fmt"

// Point represents a line and column position in a document.
// Both Line and Column are 0-indexed. Column is measured in characters
// (Unicode code points) from the start of the line.
//
// Points produced while stepping through a document may temporarily hold
// negative or past-the-end values; Document.ValidatePosition clamps them
// back onto a legal position.
type Point struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed column (character offset within line)
}

// Pt is shorthand for constructing a Point.
func Pt(line, column int) Point {
	return Point{Line: line, Column: column}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Points are ordered lexicographically by (Line, Column).
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Translate returns a point moved by the given line and column deltas.
// The result is not validated.
func (p Point) Translate(lineDelta, columnDelta int) Point {
	return Point{Line: p.Line + lineDelta, Column: p.Column + columnDelta}
}

// WithColumn returns a copy of p with the column replaced.
func (p Point) WithColumn(column int) Point {
	return Point{Line: p.Line, Column: column}
}
