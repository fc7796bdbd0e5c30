package parse

import "testing"

func TestOneOfPicksFirstMatch(t *testing.T) {
	cs := NewCursor("hello")
	p := OneOf[Node](
		Map[*Number, Node](Num, func(n *Number) Node { return n }),
		Map[*Identifier, Node](Ident, func(id *Identifier) Node { return id }),
	)
	v, err := p(cs)
	if err != nil {
		t.Fatalf("OneOf() = %v", err)
	}
	id, ok := v.(*Identifier)
	if !ok {
		t.Fatalf("result is %T, want *Identifier", v)
	}
	if id.Name != "hello" {
		t.Errorf("Name = %q, want %q", id.Name, "hello")
	}
}

func TestOneOfAllSoftFailsSoft(t *testing.T) {
	cs := NewCursor(",")
	p := OneOf[Node](
		Map[*Number, Node](Num, func(n *Number) Node { return n }),
		Map[*Identifier, Node](Ident, func(id *Identifier) Node { return id }),
	)
	_, err := p(cs)
	if !IsNotFound(err) {
		t.Errorf("OneOf() = %v, want NotFound", err)
	}
	if cs.Position().Offset != 0 {
		t.Errorf("cursor moved to offset %d on failure", cs.Position().Offset)
	}
}

func TestOneOfFatalStopsAlternatives(t *testing.T) {
	// The string variant fails hard on unterminated input; the identifier
	// variant must not be tried even though it would match "unterminated".
	cs := NewCursor(`"unterminated`)
	p := OneOf[Node](
		Map[*StringValue, Node](Str, func(s *StringValue) Node { return s }),
		Map[*Identifier, Node](Ident, func(id *Identifier) Node { return id }),
	)
	_, err := p(cs)
	if !IsFatal(err) {
		t.Fatalf("OneOf() = %v, want the string's fatal error surfaced", err)
	}
}

func TestAttemptRestoresOnFailure(t *testing.T) {
	cs := NewCursor("(a")
	_, err := Attempt(Grouped[*Identifier](Paren, Ident))(cs)
	if err == nil {
		t.Fatal("Attempt() succeeded on unclosed group")
	}
	if cs.Position().Offset != 0 {
		t.Errorf("cursor at offset %d after failed attempt, want 0", cs.Position().Offset)
	}
}

func TestAttemptCommitsOnSuccess(t *testing.T) {
	cs := NewCursor("(a)")
	g, err := Attempt(Grouped[*Identifier](Paren, Ident))(cs)
	if err != nil {
		t.Fatalf("Attempt() = %v", err)
	}
	if g.Item.Name != "a" {
		t.Errorf("Item.Name = %q, want %q", g.Item.Name, "a")
	}
	if cs.Position() != g.Span().End {
		t.Errorf("cursor at %+v, want %+v", cs.Position(), g.Span().End)
	}
}

func TestSeq2(t *testing.T) {
	cs := NewCursor("x = ")
	pair, err := Seq2[*Identifier, *Token](Ident, Equal)(cs)
	if err != nil {
		t.Fatalf("Seq2() = %v", err)
	}
	if pair.First.Name != "x" {
		t.Errorf("First.Name = %q, want %q", pair.First.Name, "x")
	}
	if pair.Span().Start.Offset != 0 || pair.Span().End.Offset != 3 {
		t.Errorf("Span = %v, want offsets 0-3", pair.Span())
	}
}

func TestSeq3ShortCircuits(t *testing.T) {
	cs := NewCursor("x y")
	_, err := Seq3[*Identifier, *Token, *Identifier](Ident, Equal, Ident)(cs)
	if !IsNotFound(err) {
		t.Errorf("Seq3() = %v, want the missing token's NotFound", err)
	}
}

func TestSeq3(t *testing.T) {
	cs := NewCursor("x = y")
	tr, err := Seq3[*Identifier, *Token, *Identifier](Ident, Equal, Ident)(cs)
	if err != nil {
		t.Fatalf("Seq3() = %v", err)
	}
	if tr.Third.Name != "y" {
		t.Errorf("Third.Name = %q, want %q", tr.Third.Name, "y")
	}
	if tr.Span().End != cs.Position() {
		t.Errorf("Span.End = %+v, cursor at %+v", tr.Span().End, cs.Position())
	}
}

func TestOpt(t *testing.T) {
	cs := NewCursor("x")
	m, err := Opt[*Number](Num)(cs)
	if err != nil {
		t.Fatalf("Opt() = %v", err)
	}
	if m.Present {
		t.Error("Present = true on non-matching input")
	}
	if cs.Position().Offset != 0 {
		t.Errorf("absent Opt consumed input, cursor at offset %d", cs.Position().Offset)
	}

	cs = NewCursor("5")
	m, err = Opt[*Number](Num)(cs)
	if err != nil {
		t.Fatalf("Opt() = %v", err)
	}
	if !m.Present || m.Value.Int() != 5 {
		t.Errorf("Opt() = %+v, want present 5", m)
	}
}

func TestOptFatalPropagates(t *testing.T) {
	cs := NewCursor(`"oops`)
	_, err := Opt[*StringValue](Str)(cs)
	if !IsFatal(err) {
		t.Errorf("Opt() = %v, want fatal", err)
	}
}
