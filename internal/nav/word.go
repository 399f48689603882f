package nav

import (
	"math"

	"github.com/dshills/textnav/internal/engine/buffer"
)

// NextWord returns the first word strictly after pos, or strictly before it
// when backwards is set. A word the cursor is already in (or touching) is
// skipped. Lines are crossed as needed; false is returned once the scan
// runs off either end of the document.
func NextWord(doc Document, pos buffer.Point, backwards bool) (buffer.Range, bool) {
	step := 1
	if backwards {
		step = -1
	}

	pos = doc.ValidatePosition(pos)
	cur := pos
	if word, ok := doc.WordRangeAt(pos); ok {
		if backwards {
			cur = word.Start
		} else {
			cur = word.End
		}
	}

	for {
		next, ok := stepPosition(doc, cur, step)
		if !ok {
			return buffer.Range{}, false
		}
		cur = next

		if word, ok := doc.WordRangeAt(cur); ok {
			return word, true
		}
	}
}

// stepPosition moves p one character in the direction of step.
//
// Moving left of column 0 lands on the end of the previous line. Moving past
// the end of a line fails validation and lands on column 0 of the next line.
// Never more than one line is crossed. Returns false when the move would
// leave the document.
func stepPosition(doc Document, p buffer.Point, step int) (buffer.Point, bool) {
	next := p.Translate(0, step)

	if next.Column < 0 {
		prev := p.Translate(step, 0)
		if prev.Line < 0 {
			return buffer.Point{}, false
		}
		next = doc.ValidatePosition(prev.WithColumn(math.MaxInt))
	}

	if doc.ValidatePosition(next) != next {
		next = next.Translate(step, 0).WithColumn(0)
		if doc.ValidatePosition(next) != next {
			return buffer.Point{}, false
		}
	}

	return next, true
}
