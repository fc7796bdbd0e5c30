package parse

// Indent is a block of items sharing one indentation depth.
type Indent[T Node] struct {
	Items []T
	Depth int
	span  Span
}

func (b *Indent[T]) Span() Span { return b.span }

// Indented parses items in IndentSensitive mode. The depth observed before
// the first item fixes the block's depth; the block ends, without
// consuming, at the first item whose leading indentation differs. A block
// with zero items is a failure, propagated as the first item reported it.
func Indented[T Node](item Parser[T]) Parser[*Indent[T]] {
	return func(cs *Cursor) (*Indent[T], error) {
		look := cs.Clone()
		look.SetMode(IndentSensitive)
		look.skip()
		depth := look.IndentDepth()

		var items []T
		for {
			itemLook := look.Clone()
			itemLook.skip()
			if len(items) > 0 && itemLook.IndentDepth() != depth {
				break
			}
			it, err := item(itemLook)
			if err != nil {
				if len(items) == 0 || IsFatal(err) {
					return nil, err
				}
				break
			}
			look.commit(itemLook)
			items = append(items, it)
		}

		cs.commit(look)
		return &Indent[T]{
			Items: items,
			Depth: depth,
			span: Span{
				Start: items[0].Span().Start,
				End:   items[len(items)-1].Span().End,
			},
		}, nil
	}
}
