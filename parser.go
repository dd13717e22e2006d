package predlogic

import "fmt"

// ParseError reports malformed input that is not simply an unexpected
// token: an attempt to apply a non-applicable head to a parenthesized
// argument list, for instance.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// UnexpectedTokenError reports a token that did not match what the
// parser expected, or the token stream ending early. Expected is
// nil when there was no single expected lexeme to report.
type UnexpectedTokenError struct {
	Token    string
	Expected []string
}

func (e *UnexpectedTokenError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error, unexpected token: %s", e.Token)
	}
	return fmt.Sprintf("parse error, unexpected token: %s. Expected token: %v", e.Token, e.Expected)
}

// Builder collects the factory functions the parser routes every AST
// construction through. A caller that wants
// to attach provenance, or otherwise substitute alternative constructors,
// can supply a Builder with some fields overridden; NewParser defaults to
// DefaultBuilder.
type Builder struct {
	Var    func(name string) Expression
	App    func(fun Expression, args []Expression) Expression
	Lambda func(v Var, body Expression) Expression
	Exists func(v Var, body Expression) Expression
	ForAll func(v Var, body Expression) Expression
	Not    func(body Expression) Expression
	And    func(left, right Expression) Expression
	Or     func(left, right Expression) Expression
	Imp    func(left, right Expression) Expression
	Iff    func(left, right Expression) Expression
	Eq     func(left, right Expression) Expression
}

// DefaultBuilder returns a Builder whose factories build the plain
// Expression variants with no extra bookkeeping.
func DefaultBuilder() *Builder {
	return &Builder{
		Var:    func(name string) Expression { return Var{Name: name} },
		App:    func(fun Expression, args []Expression) Expression { return App{Fun: fun, Args: args} },
		Lambda: func(v Var, body Expression) Expression { return Lambda{Var: v, Body: body} },
		Exists: func(v Var, body Expression) Expression { return Exists{Var: v, Body: body} },
		ForAll: func(v Var, body Expression) Expression { return ForAll{Var: v, Body: body} },
		Not:    func(body Expression) Expression { return Not{Body: body} },
		And:    func(left, right Expression) Expression { return NewAnd(left, right) },
		Or:     func(left, right Expression) Expression { return NewOr(left, right) },
		Imp:    func(left, right Expression) Expression { return NewImp(left, right) },
		Iff:    func(left, right Expression) Expression { return NewIff(left, right) },
		Eq:     func(left, right Expression) Expression { return NewEq(left, right) },
	}
}

// Parser is a recursive-descent parser over the token stream produced by
// Tokenize.
type Parser struct {
	tokens  []string
	pos     int
	builder *Builder
}

// NewParser returns a Parser using DefaultBuilder. Use
// NewParserWithBuilder to plug in alternative AST factories.
func NewParser() *Parser {
	return NewParserWithBuilder(DefaultBuilder())
}

// NewParserWithBuilder returns a Parser routing construction through b.
func NewParserWithBuilder(b *Builder) *Parser {
	return &Parser{builder: b}
}

// Parse tokenizes and parses data into a single top-level Expression.
// Trailing tokens after a complete expression are a parse error.
func (p *Parser) Parse(data string) (Expression, error) {
	p.tokens = Tokenize(data)
	p.pos = 0

	result, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.inRange(0) {
		return nil, &UnexpectedTokenError{Token: p.peek(0)}
	}
	return result, nil
}

// Parse is a package-level convenience equivalent to
// NewParser().Parse(data).
func Parse(data string) (Expression, error) {
	return NewParser().Parse(data)
}

func (p *Parser) inRange(offset int) bool {
	return p.pos+offset < len(p.tokens)
}

// token consumes and returns the next token.
func (p *Parser) token() (string, error) {
	if !p.inRange(0) {
		return "", &UnexpectedTokenError{Token: "<end of input>"}
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

// peek returns the token offset positions ahead without consuming it. It
// returns "" when out of range; callers check inRange first when the
// distinction matters.
func (p *Parser) peek(offset int) string {
	if !p.inRange(offset) {
		return ""
	}
	return p.tokens[p.pos+offset]
}

func (p *Parser) assertToken(tok string, expected ...string) error {
	for _, e := range expected {
		if tok == e {
			return nil
		}
	}
	return &UnexpectedTokenError{Token: tok, Expected: expected}
}

// parseExpression parses one complete Expression, the grammar's top
// nonterminal.
func (p *Parser) parseExpression() (Expression, error) {
	tok, err := p.token()
	if err != nil {
		return nil, err
	}

	switch {
	case IsVariable(tok):
		return p.handleVariable(tok)
	case tok == notTok[0] || tok == notTok[1]:
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return p.builder.Not(body), nil
	case tok == lambdaTok[0]:
		return p.handleLambda()
	case tok == existsTok[0] || tok == existsTok[1] || tok == allTok[0]:
		return p.handleQuant(tok)
	case tok == Tokens.Open:
		return p.handleOpen()
	default:
		return nil, &UnexpectedTokenError{Token: tok}
	}
}

// handleVariable parses the three forms a variable token can start: a
// solo variable, or (via a following '(') a predicate/application
// expression, optionally continued by a boolean operator.
func (p *Parser) handleVariable(tok string) (Expression, error) {
	if p.inRange(0) && p.peek(0) == Tokens.Open {
		p.token() // swallow '('

		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		expr := p.builder.App(p.builder.Var(tok), args)
		return p.attemptBoolean(expr)
	}
	return p.builder.Var(tok), nil
}

// parseArgList parses a comma-separated, possibly-empty argument list up
// to and including the closing paren.
func (p *Parser) parseArgList() ([]Expression, error) {
	var args []Expression
	if p.peek(0) != Tokens.Close {
		first, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.peek(0) == Tokens.Comma {
			p.token() // swallow ','
			next, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
		}
	}
	closeTok, err := p.token()
	if err != nil {
		return nil, err
	}
	if err := p.assertToken(closeTok, Tokens.Close); err != nil {
		return nil, err
	}
	return args, nil
}

// handleLambda parses "\v1 v2 ... .body", including the \x.\y.M == \x
// y.M juxtaposition sugar, then an optional application and an
// optional trailing boolean operator.
func (p *Parser) handleLambda() (Expression, error) {
	var vars []string
	first, err := p.token()
	if err != nil {
		return nil, err
	}
	vars = append(vars, first)

	for {
		for p.inRange(0) && IsVariable(p.peek(0)) {
			v, err := p.token()
			if err != nil {
				return nil, err
			}
			vars = append(vars, v)
		}
		dot, err := p.token()
		if err != nil {
			return nil, err
		}
		if err := p.assertToken(dot, dotTok[0], dotTok[1]); err != nil {
			return nil, err
		}
		if p.inRange(0) && p.peek(0) == lambdaTok[0] {
			p.token() // swallow chained '\', keeping \x.\y.M == \x y.M
			continue
		}
		break
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	accum := body
	for i := len(vars) - 1; i >= 0; i-- {
		accum = p.builder.Lambda(Var{Name: vars[i]}, accum)
	}

	accum, err = p.attemptApplication(accum)
	if err != nil {
		return nil, err
	}
	return p.attemptBoolean(accum)
}

// handleQuant parses "some v1 v2 ... .body" / "all v1 v2 ... .body",
// with the same variable-juxtaposition sugar as lambdas.
func (p *Parser) handleQuant(tok string) (Expression, error) {
	var factory func(v Var, body Expression) Expression
	switch {
	case tok == existsTok[0] || tok == existsTok[1]:
		factory = p.builder.Exists
	case tok == allTok[0]:
		factory = p.builder.ForAll
	default:
		return nil, &UnexpectedTokenError{Token: tok, Expected: []string{existsTok[0], existsTok[1], allTok[0]}}
	}

	var vars []string
	first, err := p.token()
	if err != nil {
		return nil, err
	}
	vars = append(vars, first)
	for p.inRange(0) && IsVariable(p.peek(0)) {
		v, err := p.token()
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	dot, err := p.token()
	if err != nil {
		return nil, err
	}
	if err := p.assertToken(dot, dotTok[0], dotTok[1]); err != nil {
		return nil, err
	}

	term, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	accum := term
	for i := len(vars) - 1; i >= 0; i-- {
		accum = factory(Var{Name: vars[i]}, accum)
	}
	return p.attemptBoolean(accum)
}

// handleOpen parses a parenthesized expression, which may itself be
// followed by further curried application groups.
func (p *Parser) handleOpen() (Expression, error) {
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	inner, err = p.attemptBoolean(inner)
	if err != nil {
		return nil, err
	}
	closeTok, err := p.token()
	if err != nil {
		return nil, err
	}
	if err := p.assertToken(closeTok, Tokens.Close); err != nil {
		return nil, err
	}
	return p.attemptApplication(inner)
}

// attemptBoolean consumes a trailing boolean/equality operator and its
// right-hand side if present. Booleans are right-associative by
// construction: the right-hand side is parsed as a full Expression, so
// there is no precedence disambiguation among distinct connectives;
// mixed operators require explicit parentheses.
func (p *Parser) attemptBoolean(expr Expression) (Expression, error) {
	if !p.inRange(0) {
		return expr, nil
	}
	factory := p.booleanFactory(p.peek(0))
	if factory == nil {
		return expr, nil
	}
	p.token() // swallow the operator
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return factory(expr, rhs), nil
}

func (p *Parser) booleanFactory(op string) func(left, right Expression) Expression {
	switch op {
	case andTok[0], andTok[1]:
		return p.builder.And
	case orTok[0], orTok[1]:
		return p.builder.Or
	case impTok[0], impTok[1]:
		return p.builder.Imp
	case iffTok[0], iffTok[1]:
		return p.builder.Iff
	case eqTok[0]:
		return p.builder.Eq
	default:
		return nil
	}
}

// attemptApplication consumes zero or more parenthesized argument groups
// applied to expr, chaining them as curried application.
//
// A Lambda, or an App whose function is not a bare Var (an application
// of a lambda, as in "((\P.\Q.M)(a))(b)"), may *start* a chain of
// postfix applications. Once a chain has started, each additional
// parenthesized group applies to the App the previous link just
// produced, which is how "(\x.\y.M)(a)(b)" curries correctly. A
// predicate application — an App whose function is a bare Var, e.g.
// man(x) sitting in redundant parens, as in "(man(x))(y)" — is not a
// valid head for a *new* chain and is rejected, which is why
// "\x.(P(x))(y)" is a parse error while "(\x.exists y.walks(x,y))(x)"
// is not.
func (p *Parser) attemptApplication(expr Expression) (Expression, error) {
	return p.attemptApplicationChain(expr, true)
}

func (p *Parser) attemptApplicationChain(expr Expression, chainStart bool) (Expression, error) {
	if !(p.inRange(0) && p.peek(0) == Tokens.Open) {
		return expr, nil
	}

	switch e := expr.(type) {
	case Lambda:
	case App:
		if _, predicate := e.Fun.(Var); chainStart && predicate {
			return nil, &ParseError{Message: fmt.Sprintf(
				"the expression %q is not a Lambda Expression or an Application Expression, so it may not take arguments", expr.String())}
		}
	default:
		return nil, &ParseError{Message: fmt.Sprintf(
			"the expression %q is not a Lambda Expression or an Application Expression, so it may not take arguments", expr.String())}
	}

	p.token() // swallow '('
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return p.attemptApplicationChain(p.builder.App(expr, args), false)
}
