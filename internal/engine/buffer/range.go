package buffer

import "fmt"

// Range represents a span between two points in a document.
// Start is inclusive, End is exclusive: [Start, End).
// A Range built with NewRange always satisfies Start <= End.
type Range struct {
	Start Point // Inclusive start position
	End   Point // Exclusive end position
}

// NewRange creates a Range from two points given in any order.
// The earlier point becomes Start.
func NewRange(a, b Point) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start.String(), r.End.String())
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Contains returns true if the given point is within the range.
func (r Range) Contains(p Point) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}
