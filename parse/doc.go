// Package parse provides character-level parser combinators.
//
// # Overview
//
// Parsers are assembled by composing typed combinators (Grouped, ListOf,
// Many, Count, Seq2, Indented, OneOf) over a handful of leaf parsers
// (Ident, Num, Str, Literal). All state threads through a Cursor, a
// cheap-to-copy read position over immutable input text:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Cursor    │────▶│   Parsers   │
//	│  (string)   │     │ (position)  │     │  (nodes)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// # Backtracking
//
// Speculative parsing works by cloning the Cursor, attempting the parse on
// the clone, and committing the clone's position back on success. OneOf and
// Attempt encapsulate this copy-then-commit discipline; combinators that
// sequence sub-parsers simply thread one cursor forward and stop at the
// first failure.
//
// # Failure kinds
//
// Every failure is a *ParseError carrying a position and one of two kinds.
// NotFound means "this alternative did not match here" and is always safe
// to discard in favor of another alternative. Fatal means the input
// committed to a construct and then turned out to be malformed (an opened
// string that never closes, for example); combinators propagate it
// immediately and never retry past it. No combinator downgrades a fatal
// failure to NotFound. Count is the one place a NotFound escalates: coming
// up short of a fixed arity is a new fatal error, not a retryable one.
package parse
