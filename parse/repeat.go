package parse

import (
	"errors"
	"fmt"
)

// Rep is a repetition of items.
type Rep[T Node] struct {
	Items []T
	span  Span
}

func (r *Rep[T]) Span() Span { return r.span }

func (r *Rep[T]) Len() int { return len(r.Items) }

// Many parses item repeatedly until a soft failure, which ends the
// repetition without consuming. Zero repetitions is a valid empty result;
// this engine applies that policy uniformly (List behaves the same way).
// A hard failure from the item propagates.
func Many[T Node](item Parser[T]) Parser[*Rep[T]] {
	return func(cs *Cursor) (*Rep[T], error) {
		at := cs.Position()
		rep := &Rep[T]{span: Span{Start: at, End: at}}
		for {
			look := cs.Clone()
			v, err := item(look)
			if err != nil {
				if IsFatal(err) {
					return nil, err
				}
				return rep, nil
			}
			// An item that consumed nothing would repeat forever.
			if look.pos.Offset == cs.pos.Offset {
				return rep, nil
			}
			cs.commit(look)
			if len(rep.Items) == 0 {
				rep.span.Start = v.Span().Start
			}
			rep.span.End = v.Span().End
			rep.Items = append(rep.Items, v)
		}
	}
}

// Count parses exactly n items, threading the cursor forward with no
// backtracking between them. Coming up short is a hard failure even when
// the item itself failed soft: the repetition committed to a fixed arity.
func Count[T Node](n int, item Parser[T]) Parser[*Rep[T]] {
	return func(cs *Cursor) (*Rep[T], error) {
		at := cs.Position()
		rep := &Rep[T]{span: Span{Start: at, End: at}}
		for i := 0; i < n; i++ {
			v, err := item(cs)
			if err != nil {
				if IsFatal(err) {
					return nil, err
				}
				pos := cs.Position()
				var perr *ParseError
				if errors.As(err, &perr) {
					pos = perr.Pos
				}
				return nil, FatalAt(fmt.Sprintf("expected %d items, found %d", n, i), pos)
			}
			if len(rep.Items) == 0 {
				rep.span.Start = v.Span().Start
			}
			rep.span.End = v.Span().End
			rep.Items = append(rep.Items, v)
		}
		return rep, nil
	}
}
