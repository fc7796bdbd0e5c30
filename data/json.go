// Package data contains example grammars built on the parse engine:
// JSON documents, CSV tables, and a small expression language. They double
// as integration coverage for the combinators and as the grammars behind
// the chomp CLI and language server.
package data

import "github.com/dhamidi/chomp/parse"

// JSONNode is any JSON value.
type JSONNode interface {
	parse.Node
	// Value converts the parse tree to plain Go values: map[string]any,
	// []any, string, int, bool, or nil.
	Value() any
}

// JSONString is a quoted string value.
type JSONString struct {
	Str *parse.StringValue
}

func (s *JSONString) Span() parse.Span { return s.Str.Span() }
func (s *JSONString) Value() any       { return s.Str.Value }

// JSONNumber is an integer value.
type JSONNumber struct {
	Num *parse.Number
}

func (n *JSONNumber) Span() parse.Span { return n.Num.Span() }
func (n *JSONNumber) Value() any       { return n.Num.Int() }

// JSONKeyword is one of the bare words true, false, and null.
type JSONKeyword struct {
	Word *parse.Identifier
}

func (k *JSONKeyword) Span() parse.Span { return k.Word.Span() }

func (k *JSONKeyword) Value() any {
	switch k.Word.Name {
	case "true":
		return true
	case "false":
		return false
	}
	return nil
}

// JSONList is a bracketed, comma-separated sequence of values.
type JSONList struct {
	Items *parse.Group[*parse.List[JSONNode, *parse.Token]]
}

func (l *JSONList) Span() parse.Span { return l.Items.Span() }

func (l *JSONList) Value() any {
	out := []any{}
	for _, item := range l.Items.Item.Items() {
		out = append(out, item.Value())
	}
	return out
}

// JSONMember is one `"name": value` entry of an object.
type JSONMember struct {
	Name  *parse.StringValue
	Colon *parse.Token
	Val   JSONNode
	span  parse.Span
}

func (m *JSONMember) Span() parse.Span { return m.span }

// JSONObject is a braced, comma-separated sequence of members.
type JSONObject struct {
	Members *parse.Group[*parse.List[*JSONMember, *parse.Token]]
}

func (o *JSONObject) Span() parse.Span { return o.Members.Span() }

func (o *JSONObject) Value() any {
	out := map[string]any{}
	for _, m := range o.Members.Item.Items() {
		out[m.Name.Value] = m.Val.Value()
	}
	return out
}

func ParseJSONString(cs *parse.Cursor) (*JSONString, error) {
	s, err := parse.Str(cs)
	if err != nil {
		return nil, err
	}
	return &JSONString{Str: s}, nil
}

func ParseJSONNumber(cs *parse.Cursor) (*JSONNumber, error) {
	n, err := parse.Num(cs)
	if err != nil {
		return nil, err
	}
	return &JSONNumber{Num: n}, nil
}

func ParseJSONKeyword(cs *parse.Cursor) (*JSONKeyword, error) {
	word, err := parse.OneOf[*parse.Identifier](
		parse.Keyword("true"),
		parse.Keyword("false"),
		parse.Keyword("null"),
	)(cs)
	if err != nil {
		return nil, err
	}
	return &JSONKeyword{Word: word}, nil
}

func ParseJSONList(cs *parse.Cursor) (*JSONList, error) {
	g, err := parse.Grouped[*parse.List[JSONNode, *parse.Token]](
		parse.Bracket,
		parse.ListOf[JSONNode, *parse.Token](ParseJSONNode, parse.Comma),
	)(cs)
	if err != nil {
		return nil, err
	}
	return &JSONList{Items: g}, nil
}

// ParseJSONMember parses the member's fields in declared order and spans
// from the name to the value.
func ParseJSONMember(cs *parse.Cursor) (*JSONMember, error) {
	m := &JSONMember{}
	var err error
	if m.Name, err = parse.Str(cs); err != nil {
		return nil, err
	}
	if m.Colon, err = parse.Colon(cs); err != nil {
		return nil, err
	}
	if m.Val, err = ParseJSONNode(cs); err != nil {
		return nil, err
	}
	m.span = parse.Span{Start: m.Name.Span().Start, End: m.Val.Span().End}
	return m, nil
}

func ParseJSONObject(cs *parse.Cursor) (*JSONObject, error) {
	g, err := parse.Grouped[*parse.List[*JSONMember, *parse.Token]](
		parse.Brace,
		parse.ListOf[*JSONMember, *parse.Token](ParseJSONMember, parse.Comma),
	)(cs)
	if err != nil {
		return nil, err
	}
	return &JSONObject{Members: g}, nil
}

// ParseJSONNode parses any JSON value, trying objects, lists, strings,
// numbers, and keywords in that order.
func ParseJSONNode(cs *parse.Cursor) (JSONNode, error) {
	return parse.OneOf[JSONNode](
		parse.Map[*JSONObject, JSONNode](ParseJSONObject, func(o *JSONObject) JSONNode { return o }),
		parse.Map[*JSONList, JSONNode](ParseJSONList, func(l *JSONList) JSONNode { return l }),
		parse.Map[*JSONString, JSONNode](ParseJSONString, func(s *JSONString) JSONNode { return s }),
		parse.Map[*JSONNumber, JSONNode](ParseJSONNumber, func(n *JSONNumber) JSONNode { return n }),
		parse.Map[*JSONKeyword, JSONNode](ParseJSONKeyword, func(k *JSONKeyword) JSONNode { return k }),
	)(cs)
}

// ParseJSON parses a complete JSON document and rejects trailing input.
func ParseJSON(input string) (JSONNode, error) {
	cs := parse.NewCursor(input)
	node, err := ParseJSONNode(cs)
	if err != nil {
		return nil, err
	}
	if !cs.AtEnd() {
		return nil, parse.FatalAt("unexpected input after document", cs.Position())
	}
	return node, nil
}
