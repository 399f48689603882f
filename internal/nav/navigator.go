package nav

import (
	"github.com/dshills/textnav/internal/engine/buffer"
	"github.com/dshills/textnav/internal/logging"
)

// Result is the outcome of a navigation query.
// Found is false when no range exists; Range is then the zero value.
type Result struct {
	Range buffer.Range
	Found bool
}

// Navigator runs navigation queries with a shared configuration and logs
// each query at debug level. A Navigator holds no per-query state and is
// safe for concurrent use.
type Navigator struct {
	logger           *logging.Logger
	multiCharMarkers bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for query tracing.
func WithLogger(l *logging.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMultiCharMarkers allows EnclosedWord markers longer than one character.
func WithMultiCharMarkers(enabled bool) Option {
	return func(n *Navigator) {
		n.multiCharMarkers = enabled
	}
}

// NewNavigator creates a Navigator.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{logger: logging.Nop()}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.WithComponent("nav")
	return n
}

// Scope resolves the scope enclosing pos. A scope always exists, falling
// back to the document bounds.
func (n *Navigator) Scope(doc Document, pos buffer.Point) Result {
	r := Scope(doc, pos)
	n.logger.Debug("scope at %s -> %s", pos, r)
	return Result{Range: r, Found: true}
}

// NextWord resolves the next word before or after pos.
func (n *Navigator) NextWord(doc Document, pos buffer.Point, backwards bool) Result {
	r, ok := NextWord(doc, pos, backwards)
	n.trace("next word", pos, r, ok, "backwards", backwards)
	return Result{Range: r, Found: ok}
}

// EnclosedWord resolves the nearest word wrapped in first and last.
func (n *Navigator) EnclosedWord(doc Document, pos buffer.Point, first, last string, forward bool) Result {
	var opts []LocateOption
	if n.multiCharMarkers {
		opts = append(opts, AllowMultiCharMarkers())
	}

	r, ok := EnclosedWord(doc, pos, first, last, forward, opts...)
	n.trace("enclosed word", pos, r, ok, "markers", first+"…"+last, "forward", forward)
	return Result{Range: r, Found: ok}
}

func (n *Navigator) trace(op string, pos buffer.Point, r buffer.Range, ok bool, kv ...any) {
	l := n.logger
	for i := 0; i+1 < len(kv); i += 2 {
		if k, isString := kv[i].(string); isString {
			l = l.WithField(k, kv[i+1])
		}
	}
	if !ok {
		l.Debug("%s at %s -> no match", op, pos)
		return
	}
	l.Debug("%s at %s -> %s", op, pos, r)
}
