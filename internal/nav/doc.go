// Package nav resolves navigation ranges over a document snapshot.
//
// Three resolvers are provided:
//
//   - Scope: the interior of the innermost bracket, brace or parenthesis pair
//     enclosing a cursor, or of the quoted string the cursor sits in
//   - NextWord: the next word range before or after a cursor, crossing lines
//   - EnclosedWord: the nearest word wrapped in a caller-chosen marker pair
//
// The resolvers are lexical. They do not parse any language: bracket kinds
// are counted independently and quotes are tracked by parity, with no
// escape handling.
//
// All resolvers are pure functions of their inputs. They never mutate the
// Document, keep no state between calls, and are safe to call concurrently
// as long as each Document is not modified during a call. A missing result
// is reported as a false second return value, never as an error.
package nav
