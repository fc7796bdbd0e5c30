package data

import "github.com/dhamidi/chomp/parse"

// CSV grammar: rows of comma-separated values terminated by newlines.
// Whitespace is significant here, so the whole document parses in KeepAll
// mode; values are quoted strings, numbers, or bare words with no padding
// around them.

// CSVValue is a single cell.
type CSVValue interface {
	parse.Node
	Text() string
}

// CSVText is a quoted cell; the quotes allow embedded commas and spaces.
type CSVText struct {
	Str *parse.StringValue
}

func (c *CSVText) Span() parse.Span { return c.Str.Span() }
func (c *CSVText) Text() string     { return c.Str.Value }

// CSVNumber is an integer cell.
type CSVNumber struct {
	Num *parse.Number
}

func (c *CSVNumber) Span() parse.Span { return c.Num.Span() }
func (c *CSVNumber) Text() string     { return c.Num.Text }

// CSVWord is a bare-word cell.
type CSVWord struct {
	Word *parse.Identifier
}

func (c *CSVWord) Span() parse.Span { return c.Word.Span() }
func (c *CSVWord) Text() string     { return c.Word.Name }

// CSVRow is one line of cells.
type CSVRow struct {
	Values *parse.List[CSVValue, *parse.Token]
}

func (r *CSVRow) Span() parse.Span { return r.Values.Span() }

// Texts returns the row's cells as strings.
func (r *CSVRow) Texts() []string {
	out := make([]string, 0, r.Values.Len())
	for _, v := range r.Values.Items() {
		out = append(out, v.Text())
	}
	return out
}

// CSV is a whole document.
type CSV struct {
	Rows []*CSVRow
	span parse.Span
}

func (c *CSV) Span() parse.Span { return c.span }

// Records returns the document as plain string rows.
func (c *CSV) Records() [][]string {
	out := make([][]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		out = append(out, r.Texts())
	}
	return out
}

func ParseCSVValue(cs *parse.Cursor) (CSVValue, error) {
	return parse.OneOf[CSVValue](
		parse.Map[*parse.StringValue, CSVValue](parse.Str, func(s *parse.StringValue) CSVValue { return &CSVText{Str: s} }),
		parse.Map[*parse.Number, CSVValue](parse.Num, func(n *parse.Number) CSVValue { return &CSVNumber{Num: n} }),
		parse.Map[*parse.Identifier, CSVValue](parse.Ident, func(id *parse.Identifier) CSVValue { return &CSVWord{Word: id} }),
	)(cs)
}

func ParseCSVRow(cs *parse.Cursor) (*CSVRow, error) {
	values, err := parse.ListOf[CSVValue, *parse.Token](ParseCSVValue, parse.Comma)(cs)
	if err != nil {
		return nil, err
	}
	return &CSVRow{Values: values}, nil
}

var csvNewline = parse.OneOf[*parse.Token](parse.Literal("\r\n"), parse.Literal("\n"))

// ParseCSV parses a complete document. The final row may omit its
// trailing newline.
func ParseCSV(input string) (*CSV, error) {
	cs := parse.NewCursor(input)
	cs.SetMode(parse.KeepAll)

	doc := &CSV{}
	for !cs.AtEnd() {
		row, err := ParseCSVRow(cs)
		if err != nil {
			return nil, err
		}
		doc.Rows = append(doc.Rows, row)

		if _, err := csvNewline(cs); err != nil {
			if parse.IsFatal(err) {
				return nil, err
			}
			if !cs.AtEnd() {
				return nil, err
			}
			break
		}
	}

	if len(doc.Rows) > 0 {
		doc.span = parse.Span{
			Start: doc.Rows[0].Span().Start,
			End:   doc.Rows[len(doc.Rows)-1].Span().End,
		}
	}
	return doc, nil
}
