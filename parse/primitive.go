package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Identifier is a run of alphanumeric characters starting with a letter.
type Identifier struct {
	Name string
	span Span
}

func (id *Identifier) Span() Span { return id.span }

// Ident parses an identifier. The tentative scan runs on a KeepAll clone
// so whitespace between characters ends the identifier instead of being
// swallowed mid-word.
func Ident(cs *Cursor) (*Identifier, error) {
	look := cs.Clone()
	look.skip()
	look.SetMode(KeepAll)
	start := look.Position()

	first, ok := look.Peek()
	if !ok || !unicode.IsLetter(first) {
		return nil, NotFoundAt("did not find identifier", start)
	}

	var b strings.Builder
	for {
		r, ok := look.Peek()
		if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		look.Next()
		b.WriteRune(r)
	}

	end := look.Position()
	cs.commit(look)
	return &Identifier{Name: b.String(), span: Span{Start: start, End: end}}, nil
}

// Keyword parses an identifier and requires it to equal word, failing soft
// otherwise. Keywords parse like any identifier so that "letter" never
// half-matches "let".
func Keyword(word string) Parser[*Identifier] {
	return func(cs *Cursor) (*Identifier, error) {
		look := cs.Clone()
		id, err := Ident(look)
		if err != nil {
			return nil, err
		}
		if id.Name != word {
			return nil, NotFoundAt(fmt.Sprintf("expected keyword %q", word), id.span.Start)
		}
		cs.commit(look)
		return id, nil
	}
}

// Number is a run of decimal digits. No sign, decimal point, or exponent.
type Number struct {
	Text string
	span Span
}

func (n *Number) Span() Span { return n.span }

// Int returns the numeric value. The text is digits-only by construction.
func (n *Number) Int() int {
	v, _ := strconv.Atoi(n.Text)
	return v
}

// Num parses an integer literal.
func Num(cs *Cursor) (*Number, error) {
	look := cs.Clone()
	look.skip()
	look.SetMode(KeepAll)
	start := look.Position()

	var b strings.Builder
	for {
		r, ok := look.Peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		look.Next()
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return nil, NotFoundAt("did not find number", start)
	}

	end := look.Position()
	cs.commit(look)
	return &Number{Text: b.String(), span: Span{Start: start, End: end}}, nil
}

// StringValue is a double-quoted string. The interior is taken verbatim,
// whitespace included. There are no escape sequences.
type StringValue struct {
	Value string
	span  Span
}

func (s *StringValue) Span() Span { return s.span }

// Str parses a quoted string. A missing opening quote fails soft; once the
// opening quote has matched, running out of input before the closing quote
// is a hard failure.
func Str(cs *Cursor) (*StringValue, error) {
	look := cs.Clone()
	open, err := Literal(Quote.Open)(look)
	if err != nil {
		return nil, err
	}

	look.SetMode(KeepAll)
	var b strings.Builder
	for {
		r, ok := look.Peek()
		if !ok {
			return nil, FatalAt("could not find end of string", look.Position())
		}
		if r == '"' {
			break
		}
		look.Next()
		b.WriteRune(r)
	}

	closing, err := Literal(Quote.Close)(look)
	if err != nil {
		return nil, err
	}

	cs.commit(look)
	return &StringValue{
		Value: b.String(),
		span:  Span{Start: open.span.Start, End: closing.span.End},
	}, nil
}
