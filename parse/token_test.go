package parse

import "testing"

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"comma", ",x", ","},
		{"double colon", "::rest", "::"},
		{"padded", "   ==", "=="},
		{"across lines", "\n\n,", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCursor(tt.input)
			tok, err := Literal(tt.text)(cs)
			if err != nil {
				t.Fatalf("Literal(%q) = %v", tt.text, err)
			}
			if tok.Text != tt.text {
				t.Errorf("Text = %q, want %q", tok.Text, tt.text)
			}
		})
	}
}

func TestLiteralNotFound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"wrong char", "x", ","},
		{"half match", ":x", "::"},
		{"end of input", ":", "::"},
		{"empty input", "", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewCursor(tt.input)
			_, err := Literal(tt.text)(cs)
			if !IsNotFound(err) {
				t.Fatalf("Literal(%q) = %v, want NotFound", tt.text, err)
			}
			if cs.Position().Offset != 0 {
				t.Errorf("cursor moved to offset %d on failure", cs.Position().Offset)
			}
		})
	}
}

func TestLiteralNoWhitespaceInside(t *testing.T) {
	// Whitespace may precede a literal but never interrupt it.
	cs := NewCursor(": :")
	if _, err := ColonColon(cs); !IsNotFound(err) {
		t.Errorf("ColonColon on %q = %v, want NotFound", ": :", err)
	}
}

func TestLiteralSpan(t *testing.T) {
	cs := NewCursor("  ==")
	tok, err := EqualEqual(cs)
	if err != nil {
		t.Fatalf("EqualEqual() = %v", err)
	}
	if tok.Span().Start.Offset != 2 || tok.Span().End.Offset != 4 {
		t.Errorf("Span = %v, want offsets 2-4", tok.Span())
	}
	if cs.Position() != tok.Span().End {
		t.Errorf("cursor at %+v, span ends at %+v", cs.Position(), tok.Span().End)
	}
}

func TestLongestLiteralFirst(t *testing.T) {
	// Alternative order decides between overlapping literals.
	cs := NewCursor("==")
	tok, err := OneOf[*Token](EqualEqual, Equal)(cs)
	if err != nil {
		t.Fatalf("OneOf() = %v", err)
	}
	if tok.Text != "==" {
		t.Errorf("Text = %q, want %q", tok.Text, "==")
	}
}
