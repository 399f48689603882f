package nav

import "github.com/dshills/textnav/internal/engine/buffer"

// bracketCounters counts unmatched delimiters per kind while scanning.
// The kinds are independent: a scan stops as soon as any one of them turns
// positive, even if a different kind is still unbalanced.
type bracketCounters struct {
	round  int
	square int
	curly  int
}

func (c *bracketCounters) unmatched() bool {
	return c.round > 0 || c.square > 0 || c.curly > 0
}

// quoteChars lists the tracked quote styles in override priority order.
var quoteChars = [...]rune{'"', '\'', '`'}

// quoteTracker counts occurrences of one quote style.
// first is -1 until the style has been seen.
type quoteTracker struct {
	count int
	first int
}

// quoteState tracks every quote style during a single scan.
type quoteState [len(quoteChars)]quoteTracker

func newQuoteState() quoteState {
	var q quoteState
	for i := range q {
		q[i].first = -1
	}
	return q
}

// observe records r if it is a quote. boundary is the offset remembered for
// the first occurrence of the style.
func (q *quoteState) observe(r rune, boundary int) {
	for i, c := range quoteChars {
		if r != c {
			continue
		}
		q[i].count++
		if q[i].first == -1 {
			q[i].first = boundary
		}
		return
	}
}

// resolve returns the first recorded offset of the highest priority quote
// style seen an odd number of times, or fallback if every count is even.
func (q *quoteState) resolve(fallback int) int {
	for _, t := range q {
		if t.count%2 == 1 {
			return t.first
		}
	}
	return fallback
}

func clampOffset(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}

// ScopeStart scans backward from offset and returns the offset just after
// the opening delimiter of the enclosing scope, or 0 when there is none.
// The character at offset itself is included in the scan.
//
// If a quote style was seen an odd number of times before the scan stopped,
// the cursor is inside a string of that style and the offset just after its
// nearest quote is returned instead.
func ScopeStart(doc Document, offset int) int {
	text := []rune(doc.Text())
	offset = clampOffset(offset, len(text))

	var brackets bracketCounters
	quotes := newQuoteState()
	boundary := 0

	for i := offset; i >= 0; i-- {
		if i == len(text) {
			continue
		}

		r := text[i]
		switch r {
		case ')':
			brackets.round--
		case ']':
			brackets.square--
		case '}':
			brackets.curly--
		case '(':
			brackets.round++
		case '[':
			brackets.square++
		case '{':
			brackets.curly++
		}
		quotes.observe(r, i+1)

		if brackets.unmatched() {
			boundary = i + 1
			break
		}
	}

	return quotes.resolve(boundary)
}

// ScopeEnd scans forward from offset and returns the offset of the closing
// delimiter of the enclosing scope, so the delimiter is excluded from a
// [ScopeStart, ScopeEnd) range. Without a closer it returns the offset of
// the last character (0 for an empty document).
//
// Quotes override the result the same way as in ScopeStart, yielding the
// offset of the nearest quote ahead.
func ScopeEnd(doc Document, offset int) int {
	text := []rune(doc.Text())
	offset = clampOffset(offset, len(text))

	var brackets bracketCounters
	quotes := newQuoteState()
	boundary := max(len(text)-1, 0)

	for i := offset; i < len(text); i++ {
		r := text[i]
		switch r {
		case '(':
			brackets.round--
		case '[':
			brackets.square--
		case '{':
			brackets.curly--
		case ')':
			brackets.round++
		case ']':
			brackets.square++
		case '}':
			brackets.curly++
		}
		quotes.observe(r, i)

		if brackets.unmatched() {
			boundary = i
			break
		}
	}

	return quotes.resolve(boundary)
}

// Scope returns the delimiter-exclusive range of the scope enclosing pos.
func Scope(doc Document, pos buffer.Point) buffer.Range {
	offset := doc.OffsetAt(pos)
	return buffer.NewRange(
		doc.PositionAt(ScopeStart(doc, offset)),
		doc.PositionAt(ScopeEnd(doc, offset)),
	)
}
