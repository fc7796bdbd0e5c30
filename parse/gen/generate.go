package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
)

const enginePath = "github.com/dhamidi/chomp/parse"

// Generate emits the Go source for a validated schema to w. The output is
// gofmt-formatted; a formatting failure means the generator produced
// invalid code and is reported as an error.
func Generate(w io.Writer, s *Schema) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by chomp gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", s.Package)
	fmt.Fprintf(&buf, "import %q\n\n", enginePath)

	kinds := map[string]string{}
	for _, t := range s.Types {
		kinds[t.Name] = t.Kind
	}

	for _, t := range s.Types {
		switch t.Kind {
		case "struct":
			emitStruct(&buf, t, kinds)
		case "enum":
			emitEnum(&buf, t, kinds)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// goType returns the Go type of the node a spec's parser produces.
func goType(sp *Spec, kinds map[string]string) string {
	switch sp.Parser {
	case "ident", "keyword":
		return "*parse.Identifier"
	case "number":
		return "*parse.Number"
	case "string":
		return "*parse.StringValue"
	case "literal":
		return "*parse.Token"
	case "list":
		return fmt.Sprintf("*parse.List[%s, *parse.Token]", goType(sp.Of, kinds))
	case "group":
		return fmt.Sprintf("*parse.Group[%s]", goType(sp.Of, kinds))
	case "opt":
		return fmt.Sprintf("*parse.Maybe[%s]", goType(sp.Of, kinds))
	case "type":
		if kinds[sp.Type] == "enum" {
			return sp.Type
		}
		return "*" + sp.Type
	}
	return ""
}

// parserExpr returns a Go expression of type parse.Parser over goType(sp).
func parserExpr(sp *Spec, kinds map[string]string) string {
	switch sp.Parser {
	case "ident":
		return "parse.Parser[*parse.Identifier](parse.Ident)"
	case "number":
		return "parse.Parser[*parse.Number](parse.Num)"
	case "string":
		return "parse.Parser[*parse.StringValue](parse.Str)"
	case "keyword":
		return fmt.Sprintf("parse.Keyword(%q)", sp.Text)
	case "literal":
		return fmt.Sprintf("parse.Literal(%q)", sp.Text)
	case "list":
		return fmt.Sprintf("parse.ListOf[%s, *parse.Token](%s, parse.Literal(%q))",
			goType(sp.Of, kinds), parserExpr(sp.Of, kinds), sp.Sep)
	case "group":
		return fmt.Sprintf("parse.Grouped[%s](%s, %s)",
			goType(sp.Of, kinds), delims[sp.Delim], parserExpr(sp.Of, kinds))
	case "opt":
		return fmt.Sprintf("parse.Opt[%s](%s)", goType(sp.Of, kinds), parserExpr(sp.Of, kinds))
	case "type":
		return fmt.Sprintf("parse.Parser[%s](Parse%s)", goType(sp, kinds), sp.Type)
	}
	return ""
}

func emitStruct(w io.Writer, t TypeDecl, kinds map[string]string) {
	fmt.Fprintf(w, "type %s struct {\n", t.Name)
	for _, f := range t.Fields {
		fmt.Fprintf(w, "\t%s %s\n", f.Name, goType(&f.Spec, kinds))
	}
	fmt.Fprintf(w, "\tspan parse.Span\n")
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func (v *%s) Span() parse.Span { return v.span }\n\n", t.Name)

	fmt.Fprintf(w, "func Parse%s(cs *parse.Cursor) (*%s, error) {\n", t.Name, t.Name)
	fmt.Fprintf(w, "\tv := &%s{}\n", t.Name)
	fmt.Fprintf(w, "\tvar err error\n")
	for _, f := range t.Fields {
		fmt.Fprintf(w, "\tv.%s, err = %s(cs)\n", f.Name, parserExpr(&f.Spec, kinds))
		fmt.Fprintf(w, "\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	}
	first := t.Fields[0].Name
	last := t.Fields[len(t.Fields)-1].Name
	fmt.Fprintf(w, "\tv.span = parse.Span{Start: v.%s.Span().Start, End: v.%s.Span().End}\n", first, last)
	fmt.Fprintf(w, "\treturn v, nil\n")
	fmt.Fprintf(w, "}\n\n")
}

func emitEnum(w io.Writer, t TypeDecl, kinds map[string]string) {
	fmt.Fprintf(w, "type %s interface {\n", t.Name)
	fmt.Fprintf(w, "\tparse.Node\n")
	fmt.Fprintf(w, "\tis%s()\n", t.Name)
	fmt.Fprintf(w, "}\n\n")

	for _, v := range t.Variants {
		wrapper := t.Name + v.Name
		fmt.Fprintf(w, "type %s struct {\n", wrapper)
		fmt.Fprintf(w, "\tValue %s\n", goType(&v.Spec, kinds))
		fmt.Fprintf(w, "}\n\n")
		fmt.Fprintf(w, "func (v *%s) Span() parse.Span { return v.Value.Span() }\n\n", wrapper)
		fmt.Fprintf(w, "func (v *%s) is%s() {}\n\n", wrapper, t.Name)
	}

	fmt.Fprintf(w, "func Parse%s(cs *parse.Cursor) (%s, error) {\n", t.Name, t.Name)
	fmt.Fprintf(w, "\treturn parse.OneOf[%s](\n", t.Name)
	for _, v := range t.Variants {
		wrapper := t.Name + v.Name
		elem := goType(&v.Spec, kinds)
		fmt.Fprintf(w, "\t\tparse.Map[%s, %s](%s, func(v %s) %s { return &%s{Value: v} }),\n",
			elem, t.Name, parserExpr(&v.Spec, kinds), elem, t.Name, wrapper)
	}
	fmt.Fprintf(w, "\t)(cs)\n")
	fmt.Fprintf(w, "}\n\n")
}
