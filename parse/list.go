package parse

// ListEntry is one item of a List together with the separator that
// followed it, if any. Only the final entry may lack a separator.
type ListEntry[I Node, S Node] struct {
	Item   I
	Sep    S
	HasSep bool
}

// List is zero or more items separated by a separator token. An empty
// input is a valid empty list, never an error.
type List[I Node, S Node] struct {
	Entries []ListEntry[I, S]
	span    Span
}

func (l *List[I, S]) Span() Span { return l.span }

func (l *List[I, S]) Len() int { return len(l.Entries) }

// Items returns the items without their separators.
func (l *List[I, S]) Items() []I {
	out := make([]I, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Item
	}
	return out
}

// ListOf parses `(item, optional sep)` repeatedly. A soft failure on the
// very first item yields an empty list; a failure after at least one item
// has been collected propagates, because the stream is past the point
// where backtracking the whole list would be sound. A soft failure on the
// separator ends the list at the current item.
func ListOf[I Node, S Node](item Parser[I], sep Parser[S]) Parser[*List[I, S]] {
	return func(cs *Cursor) (*List[I, S], error) {
		at := cs.Position()
		l := &List[I, S]{span: Span{Start: at, End: at}}
		for {
			look := cs.Clone()
			it, err := item(look)
			if err != nil {
				if len(l.Entries) == 0 && !IsFatal(err) {
					return l, nil
				}
				return nil, err
			}
			cs.commit(look)
			if len(l.Entries) == 0 {
				l.span.Start = it.Span().Start
			}
			l.span.End = it.Span().End

			entry := ListEntry[I, S]{Item: it}
			sepLook := cs.Clone()
			s, err := sep(sepLook)
			if err != nil {
				if IsFatal(err) {
					return nil, err
				}
				l.Entries = append(l.Entries, entry)
				return l, nil
			}
			cs.commit(sepLook)
			entry.Sep = s
			entry.HasSep = true
			l.span.End = s.Span().End
			l.Entries = append(l.Entries, entry)
		}
	}
}
