// Package gen generates parser code from a schema description.
//
// A schema declares product types ("struct": fields parsed in declared
// order) and sum types ("enum": variants tried in declared order) over the
// primitives and combinators of the parse package. The generator emits a
// Go source file composing those combinators explicitly, so the generated
// code has no reflection and reads like hand-written grammar code.
package gen

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Schema is the root of a schema file.
type Schema struct {
	Package string     `yaml:"package"`
	Types   []TypeDecl `yaml:"types"`
}

// TypeDecl declares one generated type.
type TypeDecl struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"` // "struct" or "enum"
	Fields   []Field   `yaml:"fields,omitempty"`
	Variants []Variant `yaml:"variants,omitempty"`
}

// Field is one struct field, parsed in declared order.
type Field struct {
	Name string `yaml:"name"`
	Spec `yaml:",inline"`
}

// Variant is one enum alternative, tried in declared order.
type Variant struct {
	Name string `yaml:"name"`
	Spec `yaml:",inline"`
}

// Spec names the parser for a field or variant.
type Spec struct {
	Parser string `yaml:"parser"`          // ident, number, string, literal, keyword, list, group, opt, type
	Text   string `yaml:"text,omitempty"`  // literal and keyword text
	Type   string `yaml:"type,omitempty"`  // referenced type name
	Of     *Spec  `yaml:"of,omitempty"`    // element of list, group, and opt
	Sep    string `yaml:"sep,omitempty"`   // list separator literal
	Delim  string `yaml:"delim,omitempty"` // paren, brace, bracket, quote
}

// Load reads and validates a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var delims = map[string]string{
	"paren":   "parse.Paren",
	"brace":   "parse.Brace",
	"bracket": "parse.Bracket",
	"quote":   "parse.Quote",
}

// Validate checks the schema for problems the generator cannot work around.
func (s *Schema) Validate() error {
	if s.Package == "" {
		return fmt.Errorf("schema: missing package name")
	}
	declared := map[string]string{}
	for _, t := range s.Types {
		if t.Name == "" {
			return fmt.Errorf("schema: type with empty name")
		}
		if _, dup := declared[t.Name]; dup {
			return fmt.Errorf("schema: duplicate type %q", t.Name)
		}
		declared[t.Name] = t.Kind
	}
	for _, t := range s.Types {
		switch t.Kind {
		case "struct":
			if len(t.Fields) == 0 {
				return fmt.Errorf("schema: struct %q has no fields", t.Name)
			}
			for _, f := range t.Fields {
				if f.Name == "" {
					return fmt.Errorf("schema: struct %q has a field with no name", t.Name)
				}
				if err := f.Spec.validate(declared); err != nil {
					return fmt.Errorf("schema: %s.%s: %w", t.Name, f.Name, err)
				}
			}
		case "enum":
			if len(t.Variants) == 0 {
				return fmt.Errorf("schema: enum %q has no variants", t.Name)
			}
			for _, v := range t.Variants {
				if v.Name == "" {
					return fmt.Errorf("schema: enum %q has a variant with no name", t.Name)
				}
				if err := v.Spec.validate(declared); err != nil {
					return fmt.Errorf("schema: %s.%s: %w", t.Name, v.Name, err)
				}
			}
		default:
			return fmt.Errorf("schema: type %q has kind %q, want struct or enum", t.Name, t.Kind)
		}
	}
	return nil
}

func (sp *Spec) validate(declared map[string]string) error {
	switch sp.Parser {
	case "ident", "number", "string":
		return nil
	case "literal", "keyword":
		if sp.Text == "" {
			return fmt.Errorf("%s parser needs text", sp.Parser)
		}
		return nil
	case "list":
		if sp.Of == nil {
			return fmt.Errorf("list parser needs an element under 'of'")
		}
		if sp.Sep == "" {
			return fmt.Errorf("list parser needs a separator literal under 'sep'")
		}
		return sp.Of.validate(declared)
	case "group":
		if sp.Of == nil {
			return fmt.Errorf("group parser needs an element under 'of'")
		}
		if _, ok := delims[sp.Delim]; !ok {
			return fmt.Errorf("group parser needs delim paren, brace, bracket, or quote, got %q", sp.Delim)
		}
		return sp.Of.validate(declared)
	case "opt":
		if sp.Of == nil {
			return fmt.Errorf("opt parser needs an element under 'of'")
		}
		return sp.Of.validate(declared)
	case "type":
		if _, ok := declared[sp.Type]; !ok {
			return fmt.Errorf("reference to undeclared type %q", sp.Type)
		}
		return nil
	case "":
		return fmt.Errorf("missing parser")
	default:
		return fmt.Errorf("unknown parser %q", sp.Parser)
	}
}
