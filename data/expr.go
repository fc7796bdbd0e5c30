package data

import "github.com/dhamidi/chomp/parse"

// A small expression language, used as the engine's showcase for
// recursive grammars:
//
//	let mut greeting: std::String = greet("world");
//	log::info(greeting);
//	print(greeting.len());

// Statement is one statement of a script.
type Statement interface {
	parse.Node
	stmt()
}

// PathExpr is a `::`-separated name such as std::String or log::info.
type PathExpr struct {
	Head *parse.Identifier
	Tail *parse.Rep[*parse.Pair[*parse.Token, *parse.Identifier]]
	span parse.Span
}

func (p *PathExpr) Span() parse.Span { return p.span }

// Segments returns the path's identifiers in order.
func (p *PathExpr) Segments() []string {
	out := []string{p.Head.Name}
	for _, pair := range p.Tail.Items {
		out = append(out, pair.Second.Name)
	}
	return out
}

// Call is a path optionally invoked with arguments; a bang marks a macro
// invocation, as in log!("...").
type Call struct {
	Path *PathExpr
	Bang *parse.Maybe[*parse.Token]
	Args *parse.Maybe[*parse.Group[*parse.List[*Expression, *parse.Token]]]
	span parse.Span
}

func (c *Call) Span() parse.Span { return c.span }

// Term is the head of an expression.
type Term interface {
	parse.Node
	term()
}

// StringLit is a quoted string term.
type StringLit struct {
	Str *parse.StringValue
}

func (s *StringLit) Span() parse.Span { return s.Str.Span() }
func (s *StringLit) term()            {}

// NumberLit is an integer term.
type NumberLit struct {
	Num *parse.Number
}

func (n *NumberLit) Span() parse.Span { return n.Num.Span() }
func (n *NumberLit) term()            {}

func (c *Call) term() {}

// Expression is a term followed by zero or more `.call` chain links.
type Expression struct {
	Head  Term
	Chain *parse.Rep[*parse.Pair[*parse.Token, *Call]]
	span  parse.Span
}

func (e *Expression) Span() parse.Span { return e.span }

// LetStatement binds a name: `let [mut] name [: path] = expression ;`.
type LetStatement struct {
	Let   *parse.Identifier
	Mut   *parse.Maybe[*parse.Identifier]
	Name  *parse.Identifier
	Type  *parse.Maybe[*parse.Pair[*parse.Token, *PathExpr]]
	Eq    *parse.Token
	Value *Expression
	Semi  *parse.Token
	span  parse.Span
}

func (l *LetStatement) Span() parse.Span { return l.span }
func (l *LetStatement) stmt()            {}

// ReturnStatement is `return expression ;`.
type ReturnStatement struct {
	Return *parse.Identifier
	Value  *Expression
	Semi   *parse.Token
	span   parse.Span
}

func (r *ReturnStatement) Span() parse.Span { return r.span }
func (r *ReturnStatement) stmt()            {}

// ExprStatement is a bare `expression ;`.
type ExprStatement struct {
	Expr *Expression
	Semi *parse.Token
	span parse.Span
}

func (e *ExprStatement) Span() parse.Span { return e.span }
func (e *ExprStatement) stmt()            {}

// Script is a sequence of statements.
type Script struct {
	Statements *parse.Rep[Statement]
}

func (s *Script) Span() parse.Span { return s.Statements.Span() }

func ParsePathExpr(cs *parse.Cursor) (*PathExpr, error) {
	p := &PathExpr{}
	var err error
	if p.Head, err = parse.Ident(cs); err != nil {
		return nil, err
	}
	link := parse.Seq2[*parse.Token, *parse.Identifier](parse.ColonColon, parse.Ident)
	if p.Tail, err = parse.Many[*parse.Pair[*parse.Token, *parse.Identifier]](link)(cs); err != nil {
		return nil, err
	}
	p.span = p.Head.Span().Union(p.Tail.Span())
	return p, nil
}

func ParseCall(cs *parse.Cursor) (*Call, error) {
	c := &Call{}
	var err error
	if c.Path, err = ParsePathExpr(cs); err != nil {
		return nil, err
	}
	if c.Bang, err = parse.Opt[*parse.Token](parse.Bang)(cs); err != nil {
		return nil, err
	}
	args := parse.Grouped[*parse.List[*Expression, *parse.Token]](
		parse.Paren,
		parse.ListOf[*Expression, *parse.Token](ParseExpression, parse.Comma),
	)
	if c.Args, err = parse.Opt[*parse.Group[*parse.List[*Expression, *parse.Token]]](args)(cs); err != nil {
		return nil, err
	}
	c.span = c.Path.Span().Union(c.Bang.Span()).Union(c.Args.Span())
	return c, nil
}

func ParseTerm(cs *parse.Cursor) (Term, error) {
	return parse.OneOf[Term](
		parse.Map[*parse.StringValue, Term](parse.Str, func(s *parse.StringValue) Term { return &StringLit{Str: s} }),
		parse.Map[*parse.Number, Term](parse.Num, func(n *parse.Number) Term { return &NumberLit{Num: n} }),
		parse.Map[*Call, Term](ParseCall, func(c *Call) Term { return c }),
	)(cs)
}

func ParseExpression(cs *parse.Cursor) (*Expression, error) {
	e := &Expression{}
	var err error
	if e.Head, err = ParseTerm(cs); err != nil {
		return nil, err
	}
	link := parse.Seq2[*parse.Token, *Call](parse.Period, ParseCall)
	if e.Chain, err = parse.Many[*parse.Pair[*parse.Token, *Call]](link)(cs); err != nil {
		return nil, err
	}
	e.span = e.Head.Span().Union(e.Chain.Span())
	return e, nil
}

func ParseLetStatement(cs *parse.Cursor) (*LetStatement, error) {
	l := &LetStatement{}
	var err error
	if l.Let, err = parse.Keyword("let")(cs); err != nil {
		return nil, err
	}
	if l.Mut, err = parse.Opt[*parse.Identifier](parse.Keyword("mut"))(cs); err != nil {
		return nil, err
	}
	if l.Name, err = parse.Ident(cs); err != nil {
		return nil, err
	}
	typeClause := parse.Seq2[*parse.Token, *PathExpr](parse.Colon, ParsePathExpr)
	if l.Type, err = parse.Opt[*parse.Pair[*parse.Token, *PathExpr]](typeClause)(cs); err != nil {
		return nil, err
	}
	if l.Eq, err = parse.Equal(cs); err != nil {
		return nil, err
	}
	if l.Value, err = ParseExpression(cs); err != nil {
		return nil, err
	}
	if l.Semi, err = parse.Semicolon(cs); err != nil {
		return nil, err
	}
	l.span = parse.Span{Start: l.Let.Span().Start, End: l.Semi.Span().End}
	return l, nil
}

func ParseReturnStatement(cs *parse.Cursor) (*ReturnStatement, error) {
	r := &ReturnStatement{}
	var err error
	if r.Return, err = parse.Keyword("return")(cs); err != nil {
		return nil, err
	}
	if r.Value, err = ParseExpression(cs); err != nil {
		return nil, err
	}
	if r.Semi, err = parse.Semicolon(cs); err != nil {
		return nil, err
	}
	r.span = parse.Span{Start: r.Return.Span().Start, End: r.Semi.Span().End}
	return r, nil
}

func ParseExprStatement(cs *parse.Cursor) (*ExprStatement, error) {
	e := &ExprStatement{}
	var err error
	if e.Expr, err = ParseExpression(cs); err != nil {
		return nil, err
	}
	if e.Semi, err = parse.Semicolon(cs); err != nil {
		return nil, err
	}
	e.span = parse.Span{Start: e.Expr.Span().Start, End: e.Semi.Span().End}
	return e, nil
}

// ParseStatement tries let, return, then a bare expression statement.
func ParseStatement(cs *parse.Cursor) (Statement, error) {
	return parse.OneOf[Statement](
		parse.Map[*LetStatement, Statement](ParseLetStatement, func(l *LetStatement) Statement { return l }),
		parse.Map[*ReturnStatement, Statement](ParseReturnStatement, func(r *ReturnStatement) Statement { return r }),
		parse.Map[*ExprStatement, Statement](ParseExprStatement, func(e *ExprStatement) Statement { return e }),
	)(cs)
}

// ParseScript parses a whole script and rejects trailing input.
func ParseScript(input string) (*Script, error) {
	cs := parse.NewCursor(input)
	statements, err := parse.Many[Statement](ParseStatement)(cs)
	if err != nil {
		return nil, err
	}
	if !cs.AtEnd() {
		return nil, parse.FatalAt("unexpected input after script", cs.Position())
	}
	return &Script{Statements: statements}, nil
}
