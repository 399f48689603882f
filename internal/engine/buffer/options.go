package buffer

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithWordClassifier sets the predicate deciding which characters form words.
// class is a regular-expression character class matching the same
// characters; pattern-based searches use it in place of fn.
func WithWordClassifier(fn WordClassifier, class string) Option {
	return func(d *Document) {
		if fn != nil && class != "" {
			d.isWord = fn
			d.wordClass = class
		}
	}
}

// WithUnicodeWords treats any Unicode letter or digit as a word character.
func WithUnicodeWords() Option {
	return WithWordClassifier(UnicodeWord, UnicodeWordClass)
}
