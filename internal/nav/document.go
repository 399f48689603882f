package nav

import "github.com/dshills/textnav/internal/engine/buffer"

// Document is the read-only view of a text snapshot the resolvers need.
// Offsets and columns count characters. *buffer.Document implements it.
type Document interface {
	// Text returns the full document content.
	Text() string

	// LineCount returns the number of lines (at least one).
	LineCount() int

	// WordClass returns a regular-expression character class matching the
	// same characters WordRangeAt treats as word characters.
	WordClass() string

	// OffsetAt converts a position to a character offset.
	OffsetAt(p buffer.Point) int

	// PositionAt converts a character offset to a position.
	PositionAt(offset int) buffer.Point

	// WordRangeAt returns the word containing or touching p.
	WordRangeAt(p buffer.Point) (buffer.Range, bool)

	// ValidatePosition clamps p to the nearest legal position and returns
	// legal positions unchanged.
	ValidatePosition(p buffer.Point) buffer.Point
}

var _ Document = (*buffer.Document)(nil)
