// Package buffer provides the document model used by the navigation engine:
// immutable text snapshots addressed by character offsets or line/column
// points.
//
// The buffer package provides:
//
//   - Point and Range value types with lexicographic ordering
//   - Coordinate conversion between offsets and line/column positions
//   - Position validation that clamps out-of-bounds points
//   - A word oracle returning the word range under a position
//   - Line ending normalization
//
// Basic usage:
//
//	doc := buffer.NewDocument("func main() {\n\tprintln(\"hi\")\n}")
//
//	// Convert between coordinate systems
//	off := doc.OffsetAt(buffer.Pt(1, 3))
//	pos := doc.PositionAt(off)
//
//	// Find the word under a position
//	if r, ok := doc.WordRangeAt(buffer.Pt(0, 2)); ok {
//	    fmt.Println(r) // [(0:0):(0:4))
//	}
//
// Position Types:
//
//   - offset (int): character index into the full text
//   - Point: line and column, 0-indexed, column in characters
//
// Thread Safety:
//
// A Document never changes after NewDocument returns. It may be read from
// any number of goroutines without synchronization.
package buffer
