package buffer

import "unicode"

// WordClassifier reports whether r is a word character.
type WordClassifier func(r rune) bool

// Regular-expression character classes matching the built-in classifiers.
const (
	ASCIIWordClass   = `[A-Za-z0-9_]`
	UnicodeWordClass = `[\p{L}\p{Nd}_]`
)

// ASCIIWord matches [A-Za-z0-9_].
func ASCIIWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// UnicodeWord matches letters and decimal digits of any script, plus
// underscore.
func UnicodeWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
