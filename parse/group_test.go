package parse

import "testing"

func TestGroupRoundTrip(t *testing.T) {
	cs := NewCursor("(42)")
	g, err := Grouped[*Number](Paren, Num)(cs)
	if err != nil {
		t.Fatalf("Grouped() = %v", err)
	}
	if g.Item.Text != "42" {
		t.Errorf("Item.Text = %q, want %q", g.Item.Text, "42")
	}
	if g.Span().Start.Offset != 0 || g.Span().End.Offset != 4 {
		t.Errorf("Span = %v, want offsets 0-4", g.Span())
	}
	if !cs.AtEnd() {
		t.Errorf("input not fully consumed, cursor at %+v", cs.Position())
	}
}

func TestGroupMissingOpenIsSoft(t *testing.T) {
	cs := NewCursor("42)")
	_, err := Grouped[*Number](Paren, Num)(cs)
	if !IsNotFound(err) {
		t.Fatalf("Grouped() = %v, want NotFound", err)
	}
	if cs.Position().Offset != 0 {
		t.Errorf("cursor moved to offset %d on failure", cs.Position().Offset)
	}
}

func TestGroupInnerFailureKeepsKind(t *testing.T) {
	// The item fails soft after the open delimiter matched; the group
	// forwards that kind instead of escalating.
	cs := NewCursor("(x)")
	_, err := Grouped[*Number](Paren, Num)(cs)
	if !IsNotFound(err) {
		t.Errorf("Grouped() = %v, want NotFound", err)
	}

	// A fatal inner failure stays fatal.
	cs = NewCursor(`("oops)`)
	_, err = Grouped[*StringValue](Paren, Str)(cs)
	if !IsFatal(err) {
		t.Errorf("Grouped() = %v, want fatal", err)
	}
}

func TestGroupMissingCloseIsSoft(t *testing.T) {
	cs := NewCursor("(42")
	_, err := Grouped[*Number](Paren, Num)(cs)
	if err == nil {
		t.Fatal("Grouped() succeeded without closing delimiter")
	}
	if !IsNotFound(err) {
		t.Errorf("Grouped() = %v, want the closing literal's NotFound", err)
	}
}

func TestGroupNested(t *testing.T) {
	cs := NewCursor("[ ( 7 ) ]")
	g, err := Grouped[*Group[*Number]](Bracket, Grouped[*Number](Paren, Num))(cs)
	if err != nil {
		t.Fatalf("Grouped() = %v", err)
	}
	if g.Item.Item.Int() != 7 {
		t.Errorf("inner value = %d, want 7", g.Item.Item.Int())
	}
	if g.Span().Start.Offset != 0 || g.Span().End.Offset != 9 {
		t.Errorf("Span = %v, want offsets 0-9", g.Span())
	}
}
