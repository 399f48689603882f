package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textnav/internal/engine/buffer"
)

func TestNextWord(t *testing.T) {
	doc := buffer.NewDocument("foo bar\nbaz")

	tests := []struct {
		name      string
		pos       buffer.Point
		backwards bool
		want      buffer.Range
		found     bool
	}{
		{"forward same line", buffer.Pt(0, 0), false, buffer.NewRange(buffer.Pt(0, 4), buffer.Pt(0, 7)), true},
		{"forward across line", buffer.Pt(0, 5), false, buffer.NewRange(buffer.Pt(1, 0), buffer.Pt(1, 3)), true},
		{"forward from last word", buffer.Pt(1, 1), false, buffer.Range{}, false},
		{"backward same line", buffer.Pt(0, 5), true, buffer.NewRange(buffer.Pt(0, 0), buffer.Pt(0, 3)), true},
		{"backward across line", buffer.Pt(1, 1), true, buffer.NewRange(buffer.Pt(0, 4), buffer.Pt(0, 7)), true},
		{"backward from first word", buffer.Pt(0, 1), true, buffer.Range{}, false},
		{"out of bounds start", buffer.Pt(9, 9), true, buffer.NewRange(buffer.Pt(0, 4), buffer.Pt(0, 7)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextWord(doc, tt.pos, tt.backwards)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextWordLineBoundary(t *testing.T) {
	doc := buffer.NewDocument("abc\ndef")

	got, ok := NextWord(doc, buffer.Pt(0, 3), false)
	require.True(t, ok)
	assert.Equal(t, "def", doc.LineText(got.Start.Line)[got.Start.Column:got.End.Column])
}

func TestNextWordFromWhitespace(t *testing.T) {
	doc := buffer.NewDocument("a   b")

	got, ok := NextWord(doc, buffer.Pt(0, 2), false)
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(buffer.Pt(0, 4), buffer.Pt(0, 5)), got)

	got, ok = NextWord(doc, buffer.Pt(0, 2), true)
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(buffer.Pt(0, 0), buffer.Pt(0, 1)), got)
}

func TestNextWordSkipsBlankLines(t *testing.T) {
	doc := buffer.NewDocument("one\n\n\ntwo")

	got, ok := NextWord(doc, buffer.Pt(0, 1), false)
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(buffer.Pt(3, 0), buffer.Pt(3, 3)), got)

	got, ok = NextWord(doc, buffer.Pt(3, 1), true)
	require.True(t, ok)
	assert.Equal(t, buffer.NewRange(buffer.Pt(0, 0), buffer.Pt(0, 3)), got)
}

func TestNextWordEmptyDocument(t *testing.T) {
	doc := buffer.NewDocument("")

	_, ok := NextWord(doc, buffer.Pt(0, 0), false)
	assert.False(t, ok)
	_, ok = NextWord(doc, buffer.Pt(0, 0), true)
	assert.False(t, ok)
}

func TestNextWordRoundTrip(t *testing.T) {
	doc := buffer.NewDocument("alpha beta\ngamma delta")

	for line := 0; line < doc.LineCount(); line++ {
		for col := 0; col <= doc.LineLen(line); col++ {
			pos := buffer.Pt(line, col)
			current, inWord := doc.WordRangeAt(pos)
			if !inWord {
				continue
			}

			fwd, ok := NextWord(doc, pos, false)
			if !ok {
				continue
			}
			back, ok := NextWord(doc, fwd.Start, true)
			require.True(t, ok, "back from %s", fwd.Start)
			assert.Equal(t, current, back, "round trip from %s", pos)
		}
	}
}
