package parse

import "fmt"

// Token is the result of matching a fixed literal.
type Token struct {
	Text string
	span Span
}

func (t *Token) Span() Span { return t.span }

// Literal returns a parser that matches text exactly. Whitespace before
// the literal is handled by the cursor's mode; the literal itself is
// compared character by character with no skipping in between. Any
// mismatch or early end of input is a soft failure positioned at the
// start of the attempt.
func Literal(text string) Parser[*Token] {
	return func(cs *Cursor) (*Token, error) {
		look := cs.Clone()
		look.skip()
		start := look.Position()
		look.SetMode(KeepAll)
		for _, want := range text {
			got, ok := look.Peek()
			if !ok || got != want {
				return nil, NotFoundAt(fmt.Sprintf("could not find token %q", text), start)
			}
			look.Next()
		}
		end := look.Position()
		cs.commit(look)
		return &Token{Text: text, span: Span{Start: start, End: end}}, nil
	}
}

// The punctuation the engine ships with. Grammars needing other literals
// call Literal directly.
var (
	Comma      = Literal(",")
	Period     = Literal(".")
	Bang       = Literal("!")
	Hash       = Literal("#")
	Equal      = Literal("=")
	EqualEqual = Literal("==")
	Colon      = Literal(":")
	ColonColon = Literal("::")
	Semicolon  = Literal(";")
	Less       = Literal("<")
	Greater    = Literal(">")
	Slash      = Literal("/")
	Ampersand  = Literal("&")
)

// Delimiter pairs the opening and closing literals bracketing a Group.
type Delimiter struct {
	Open  string
	Close string
}

var (
	Paren   = Delimiter{Open: "(", Close: ")"}
	Brace   = Delimiter{Open: "{", Close: "}"}
	Bracket = Delimiter{Open: "[", Close: "]"}
	Quote   = Delimiter{Open: `"`, Close: `"`}
)
