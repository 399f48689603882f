package nav

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/dshills/textnav/internal/engine/buffer"
)

// wordGroup is the capture group holding the enclosed word.
const wordGroup = 1

// LocateOption configures EnclosedWord.
type LocateOption func(*locateConfig)

type locateConfig struct {
	multiChar bool
}

// AllowMultiCharMarkers permits markers longer than one character.
// Without it such markers yield no result.
func AllowMultiCharMarkers() LocateOption {
	return func(c *locateConfig) {
		c.multiChar = true
	}
}

// EnclosedWord finds the nearest word wrapped as first+word+last.
//
// With forward set the text from pos to the end of the document is searched;
// otherwise the text from the start of the document to pos, nearest match
// first. Word characters are the document's own (see Document.WordClass).
// A marker pair only matches when it is not glued to surrounding word
// characters. Markers are matched case-insensitively. The returned range is
// the document's word range at the matched word, markers excluded.
//
// Empty markers, or multi-character markers without AllowMultiCharMarkers,
// produce no result.
func EnclosedWord(doc Document, pos buffer.Point, first, last string, forward bool, opts ...LocateOption) (buffer.Range, bool) {
	var cfg locateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !validMarker(first, cfg.multiChar) || !validMarker(last, cfg.multiChar) {
		return buffer.Range{}, false
	}

	text := []rune(doc.Text())
	cursor := doc.OffsetAt(pos)
	class := doc.WordClass()

	var target int
	if forward {
		idx, ok := matchWord(text[cursor:], class, first, last)
		if !ok {
			return buffer.Range{}, false
		}
		target = cursor + idx
	} else {
		// Search the reversed head so the match nearest the cursor is found
		// first. Marker roles swap and each marker is reversed as well.
		head := reverseRunes(text[:cursor])
		idx, ok := matchWord(head, class, reverseString(last), reverseString(first))
		if !ok {
			return buffer.Range{}, false
		}
		// The word's start in reversed text is its exclusive end going forward.
		target = cursor - idx
	}

	return doc.WordRangeAt(doc.PositionAt(target))
}

func validMarker(marker string, multiChar bool) bool {
	n := utf8.RuneCountInString(marker)
	if n == 0 {
		return false
	}
	return n == 1 || multiChar
}

// markerPattern matches openMarker, a run of word characters and closeMarker,
// with no word character directly before openMarker or after closeMarker.
// class is the character class defining word characters.
func markerPattern(class, openMarker, closeMarker string) string {
	return `(?<!` + class + `)` + regexp2.Escape(openMarker) +
		`(` + class + `+)` +
		regexp2.Escape(closeMarker) + `(?!` + class + `)`
}

// matchWord returns the rune index of the enclosed word in the first marker
// match in text.
func matchWord(text []rune, class, openMarker, closeMarker string) (int, bool) {
	re, err := regexp2.Compile(markerPattern(class, openMarker, closeMarker), regexp2.IgnoreCase)
	if err != nil {
		return 0, false
	}

	m, err := re.FindRunesMatch(text)
	if err != nil || m == nil {
		return 0, false
	}

	g := m.GroupByNumber(wordGroup)
	if g == nil || g.Length == 0 {
		return 0, false
	}
	return g.Index, true
}

func reverseRunes(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

func reverseString(s string) string {
	return string(reverseRunes([]rune(s)))
}
