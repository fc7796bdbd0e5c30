package parse

// Node is anything produced by a successful parse. A composite node's span
// runs from its first child's start to its last child's end.
type Node interface {
	Span() Span
}

// Parser consumes input from a cursor and produces a node. On success the
// cursor has advanced exactly past the consumed input and the node's span
// equals [position before, position after]. On failure the cursor position
// is unspecified; callers that want to retry elsewhere wrap the parser in
// Attempt or clone the cursor themselves.
type Parser[T Node] func(*Cursor) (T, error)

// Attempt runs p on a clone of the cursor and commits the clone's position
// only on success, leaving the caller's cursor untouched on any failure.
func Attempt[T Node](p Parser[T]) Parser[T] {
	return func(cs *Cursor) (T, error) {
		look := cs.Clone()
		v, err := p(look)
		if err != nil {
			var zero T
			return zero, err
		}
		cs.commit(look)
		return v, nil
	}
}

// OneOf tries each alternative in order on a speculative clone and accepts
// the first success. A soft failure moves on to the next alternative; a
// hard failure propagates immediately without trying later alternatives.
// If every alternative fails soft, OneOf fails soft.
func OneOf[T Node](alts ...Parser[T]) Parser[T] {
	return func(cs *Cursor) (T, error) {
		var zero T
		start := cs.Position()
		for _, alt := range alts {
			look := cs.Clone()
			v, err := alt(look)
			if err == nil {
				cs.commit(look)
				return v, nil
			}
			if IsFatal(err) {
				return zero, err
			}
		}
		return zero, NotFoundAt("no alternative matched", start)
	}
}

// Map adapts the result of p with f, forwarding failures unchanged. It is
// the glue that lets concrete alternatives share a grammar-level interface
// type in OneOf.
func Map[A Node, B Node](p Parser[A], f func(A) B) Parser[B] {
	return func(cs *Cursor) (B, error) {
		v, err := p(cs)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v), nil
	}
}

// Maybe holds the result of an optional parse. When nothing matched, the
// span is empty at the position that was probed.
type Maybe[T Node] struct {
	Value   T
	Present bool
	span    Span
}

func (m *Maybe[T]) Span() Span { return m.span }

// Opt makes p optional: a soft failure yields an absent Maybe, a hard
// failure still propagates.
func Opt[T Node](p Parser[T]) Parser[*Maybe[T]] {
	return func(cs *Cursor) (*Maybe[T], error) {
		look := cs.Clone()
		v, err := p(look)
		if err != nil {
			if IsFatal(err) {
				return nil, err
			}
			at := cs.Position()
			return &Maybe[T]{span: Span{Start: at, End: at}}, nil
		}
		cs.commit(look)
		return &Maybe[T]{Value: v, Present: true, span: v.Span()}, nil
	}
}

// Pair sequences two parsers.
type Pair[A Node, B Node] struct {
	First  A
	Second B
	span   Span
}

func (p *Pair[A, B]) Span() Span { return p.span }

// Seq2 parses A then B in order, short-circuiting on the first failure
// with its kind unchanged.
func Seq2[A Node, B Node](pa Parser[A], pb Parser[B]) Parser[*Pair[A, B]] {
	return func(cs *Cursor) (*Pair[A, B], error) {
		a, err := pa(cs)
		if err != nil {
			return nil, err
		}
		b, err := pb(cs)
		if err != nil {
			return nil, err
		}
		return &Pair[A, B]{
			First:  a,
			Second: b,
			span:   Span{Start: a.Span().Start, End: b.Span().End},
		}, nil
	}
}

// Triple sequences three parsers.
type Triple[A Node, B Node, C Node] struct {
	First  A
	Second B
	Third  C
	span   Span
}

func (t *Triple[A, B, C]) Span() Span { return t.span }

// Seq3 parses A, B, then C in order, short-circuiting on the first failure.
func Seq3[A Node, B Node, C Node](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[*Triple[A, B, C]] {
	return func(cs *Cursor) (*Triple[A, B, C], error) {
		a, err := pa(cs)
		if err != nil {
			return nil, err
		}
		b, err := pb(cs)
		if err != nil {
			return nil, err
		}
		c, err := pc(cs)
		if err != nil {
			return nil, err
		}
		return &Triple[A, B, C]{
			First:  a,
			Second: b,
			Third:  c,
			span:   Span{Start: a.Span().Start, End: c.Span().End},
		}, nil
	}
}
