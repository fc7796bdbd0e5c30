package parse

import "testing"

func TestListSeparators(t *testing.T) {
	cs := NewCursor("a, b, c")
	l, err := ListOf[*Identifier, *Token](Ident, Comma)(cs)
	if err != nil {
		t.Fatalf("ListOf() = %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	wantNames := []string{"a", "b", "c"}
	wantSep := []bool{true, true, false}
	for i, e := range l.Entries {
		if e.Item.Name != wantNames[i] {
			t.Errorf("Entries[%d].Item.Name = %q, want %q", i, e.Item.Name, wantNames[i])
		}
		if e.HasSep != wantSep[i] {
			t.Errorf("Entries[%d].HasSep = %v, want %v", i, e.HasSep, wantSep[i])
		}
	}
}

func TestListEmptyIsSuccess(t *testing.T) {
	cs := NewCursor(")")
	l, err := ListOf[*Identifier, *Token](Ident, Comma)(cs)
	if err != nil {
		t.Fatalf("ListOf() = %v, empty list must not be an error", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if cs.Position().Offset != 0 {
		t.Errorf("empty list consumed input, cursor at offset %d", cs.Position().Offset)
	}
}

func TestListFailsAfterSeparator(t *testing.T) {
	// Once a separator commits to another item, a missing item propagates.
	cs := NewCursor("a, b,")
	_, err := ListOf[*Identifier, *Token](Ident, Comma)(cs)
	if err == nil {
		t.Fatal("ListOf() succeeded with dangling separator")
	}
	if !IsNotFound(err) {
		t.Errorf("ListOf() = %v, want the item's NotFound forwarded", err)
	}
}

func TestListFatalItemPropagates(t *testing.T) {
	cs := NewCursor(`"oops`)
	_, err := ListOf[*StringValue, *Token](Str, Comma)(cs)
	if !IsFatal(err) {
		t.Errorf("ListOf() = %v, want fatal (never downgraded to empty list)", err)
	}
}

func TestListSpan(t *testing.T) {
	cs := NewCursor("  x, y  ")
	l, err := ListOf[*Identifier, *Token](Ident, Comma)(cs)
	if err != nil {
		t.Fatalf("ListOf() = %v", err)
	}
	if l.Span().Start.Offset != 2 {
		t.Errorf("Span.Start.Offset = %d, want 2", l.Span().Start.Offset)
	}
	if l.Span().End.Offset != 6 {
		t.Errorf("Span.End.Offset = %d, want 6", l.Span().End.Offset)
	}
}

func TestListItems(t *testing.T) {
	cs := NewCursor("1,2,3")
	l, err := ListOf[*Number, *Token](Num, Comma)(cs)
	if err != nil {
		t.Fatalf("ListOf() = %v", err)
	}
	items := l.Items()
	if len(items) != 3 {
		t.Fatalf("len(Items()) = %d, want 3", len(items))
	}
	for i, want := range []int{1, 2, 3} {
		if items[i].Int() != want {
			t.Errorf("Items()[%d] = %d, want %d", i, items[i].Int(), want)
		}
	}
}
