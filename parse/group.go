package parse

// Group is an item bracketed by a delimiter pair. Its span runs from the
// opening literal to the closing one.
type Group[T Node] struct {
	Open  *Token
	Item  T
	Close *Token
	span  Span
}

func (g *Group[T]) Span() Span { return g.span }

// Grouped parses d.Open, then item, then d.Close, in order. A failed
// opening literal fails the whole group soft with the caller's cursor
// untouched. Failures after the opening literal matched propagate exactly
// as the inner parser reported them.
func Grouped[T Node](d Delimiter, item Parser[T]) Parser[*Group[T]] {
	return func(cs *Cursor) (*Group[T], error) {
		look := cs.Clone()
		open, err := Literal(d.Open)(look)
		if err != nil {
			return nil, err
		}
		it, err := item(look)
		if err != nil {
			return nil, err
		}
		closing, err := Literal(d.Close)(look)
		if err != nil {
			return nil, err
		}
		cs.commit(look)
		return &Group[T]{
			Open:  open,
			Item:  it,
			Close: closing,
			span:  Span{Start: open.span.Start, End: closing.span.End},
		}, nil
	}
}
