package buffer

import (
	"sort"
	"strings"
)

// Document is an immutable text snapshot with a line index.
// It answers position queries for navigation code and is never modified
// after construction, so a single Document may be shared between goroutines.
//
// All offsets and columns count characters (runes), not bytes.
type Document struct {
	text       []rune
	lineStarts []int // offset of the first character of each line
	isWord     WordClassifier
	wordClass  string
}

// NewDocument creates a document from s.
// CRLF and lone CR line endings are normalized to LF.
func NewDocument(s string, opts ...Option) *Document {
	d := &Document{
		text:   []rune(normalizeLineEndings(s)),
		isWord:    ASCIIWord,
		wordClass: ASCIIWordClass,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.lineStarts = computeLineStarts(d.text)
	return d
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// computeLineStarts records the offset at which every line begins.
// There is always at least one line, even for empty text.
func computeLineStarts(text []rune) []int {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Text returns the full document content.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the number of characters in the document.
func (d *Document) Len() int {
	return len(d.text)
}

// RuneAt returns the character at offset.
func (d *Document) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(d.text) {
		return 0, false
	}
	return d.text[offset], true
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

// lineBounds returns the start and end offsets of a line, excluding the
// newline. The line must exist.
func (d *Document) lineBounds(line int) (int, int) {
	start := d.lineStarts[line]
	if line+1 < len(d.lineStarts) {
		return start, d.lineStarts[line+1] - 1
	}
	return start, len(d.text)
}

// LineLen returns the length of a line in characters (without newline).
// Returns 0 for lines that do not exist.
func (d *Document) LineLen(line int) int {
	if line < 0 || line >= len(d.lineStarts) {
		return 0
	}
	start, end := d.lineBounds(line)
	return end - start
}

// LineText returns the text of a line (without newline).
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.lineStarts) {
		return ""
	}
	start, end := d.lineBounds(line)
	return string(d.text[start:end])
}

// LineRange returns the range spanning a line's content.
// The line number is clamped into the document.
func (d *Document) LineRange(line int) Range {
	line = d.clampLine(line)
	return Range{
		Start: Point{Line: line, Column: 0},
		End:   Point{Line: line, Column: d.LineLen(line)},
	}
}

func (d *Document) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.lineStarts) - 1
	}
	return line
}

// ValidatePosition clamps p to the nearest legal position.
// A line before the document maps to (0:0); a line past the end maps to the
// end of the last line. Columns are clamped into [0, LineLen].
// A legal point is returned unchanged, so callers can compare the result
// with p to learn whether it was out of bounds.
func (d *Document) ValidatePosition(p Point) Point {
	if p.Line < 0 {
		return Point{}
	}
	if p.Line >= len(d.lineStarts) {
		last := len(d.lineStarts) - 1
		return Point{Line: last, Column: d.LineLen(last)}
	}
	if p.Column < 0 {
		return Point{Line: p.Line, Column: 0}
	}
	if n := d.LineLen(p.Line); p.Column > n {
		return Point{Line: p.Line, Column: n}
	}
	return p
}

// OffsetAt converts a position to a character offset.
// The position is validated first.
func (d *Document) OffsetAt(p Point) int {
	p = d.ValidatePosition(p)
	return d.lineStarts[p.Line] + p.Column
}

// PositionAt converts a character offset to a position.
// Offsets outside [0, Len] are clamped.
func (d *Document) PositionAt(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}

	// Index of the last line starting at or before offset.
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1

	return Point{Line: line, Column: offset - d.lineStarts[line]}
}

// WordRangeAt returns the maximal run of word characters containing p.
// A position directly after the last character of a word counts as inside
// it. Returns false when p touches no word.
func (d *Document) WordRangeAt(p Point) (Range, bool) {
	p = d.ValidatePosition(p)
	lineStart, lineEnd := d.lineBounds(p.Line)
	pos := lineStart + p.Column

	start := pos
	for start > lineStart && d.isWord(d.text[start-1]) {
		start--
	}
	end := pos
	for end < lineEnd && d.isWord(d.text[end]) {
		end++
	}

	if start == end {
		return Range{}, false
	}

	return Range{
		Start: Point{Line: p.Line, Column: start - lineStart},
		End:   Point{Line: p.Line, Column: end - lineStart},
	}, true
}

// WordClass returns the regular-expression character class matching this
// document's word characters.
func (d *Document) WordClass() string {
	return d.wordClass
}

// TextRange returns the text covered by r. The range is validated first.
func (d *Document) TextRange(r Range) string {
	start := d.OffsetAt(r.Start)
	end := d.OffsetAt(r.End)
	if end < start {
		start, end = end, start
	}
	return string(d.text[start:end])
}
