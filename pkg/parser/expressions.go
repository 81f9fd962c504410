package parser

import (
	"github.com/lattice-lang/lattice/internal/ast"
	"github.com/lattice-lang/lattice/pkg/lexer"
)

// parseUnary parses unary expressions.
func (p *Parser) parseUnary(op ast.UnaryOp) ast.Expr {
	p.advance()
	expr := p.parseExpression(precedenceCall)

	return &ast.UnaryExpr{
		Op:   op,
		Expr: expr,
	}
}

// parseBinary parses binary expressions.
func (p *Parser) parseBinary(left ast.Expr, op ast.BinaryOp) ast.Expr {
	precedence := p.curPrecedence()
	p.advance()
	right := p.parseExpression(precedence)

	return &ast.BinaryExpr{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

// parseRange parses range construction: a..b (half-open) or a..=b (closed).
// The end bound is optional - "a.." with nothing that can start an
// expression after the operator yields an unbounded-from range.
func (p *Parser) parseRange(left ast.Expr, inclusive bool) ast.Expr {
	r := &ast.RangeExpr{Start: left, Inclusive: inclusive}

	if p.peekIs(lexer.TOKEN_SEMICOLON) || p.peekIs(lexer.TOKEN_EOF) ||
		p.peekIs(lexer.TOKEN_RPAREN) || p.peekIs(lexer.TOKEN_RBRACKET) ||
		p.peekIs(lexer.TOKEN_RBRACE) || p.peekIs(lexer.TOKEN_COMMA) {
		// No end bound follows: unbounded-from range.
		return r
	}

	p.advance()
	r.End = p.parseExpression(precedenceRange)

	return r
}

// parseIndex parses positional/range indexing: e[i], e[a..b].
func (p *Parser) parseIndex(left ast.Expr) ast.Expr {
	p.advance() // consume '['

	index := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_RBRACKET) {
		return nil
	}

	return &ast.IndexExpr{Expr: left, Index: index}
}

// parseClosure parses a pipe-delimited closure: |a, b| body.
func (p *Parser) parseClosure(async bool) ast.Expr {
	p.advance() // skip opening '|'

	var params []string
	for !p.curIs(lexer.TOKEN_PIPE) && !p.curIs(lexer.TOKEN_EOF) {
		if !p.curIs(lexer.TOKEN_IDENT) {
			p.errors.Addf(p.cur.Line, p.cur.Column,
				"expected closure parameter name, got %v", p.cur.Type)

			return nil
		}

		params = append(params, p.cur.Literal)
		p.advance()

		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
		}
	}

	if !p.curIs(lexer.TOKEN_PIPE) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected closing '|', got %v", p.cur.Type)

		return nil
	}

	p.advance() // skip closing '|'
	body := p.parseExpression(precedenceLowest)

	return &ast.ClosureExpr{Params: params, Async: async, Body: body}
}

// parseAsyncClosure parses "async" followed by either a zero-parameter
// closure written with "||" (lexed as a single OR_OP token) or a
// parameterized "|a, b|" closure.
func (p *Parser) parseAsyncClosure() ast.Expr {
	if p.peekIs(lexer.TOKEN_OR_OP) {
		p.advance() // land on '||'
		p.advance() // skip '||'
		body := p.parseExpression(precedenceLowest)

		return &ast.ClosureExpr{Async: true, Body: body}
	}

	if !p.expectPeek(lexer.TOKEN_PIPE) {
		return nil
	}

	closure := p.parseClosure(true)

	return closure
}

// parseGrouped parses parenthesized expressions and tuple literals.
// "(expr)" is a grouping that evaluates to expr itself; "(e1, e2, ...)"
// (a comma following the first element) is a fixed-arity TupleExpr.
func (p *Parser) parseGrouped() ast.Expr {
	p.advance() // skip '('

	if p.curIs(lexer.TOKEN_RPAREN) {
		return &ast.UnitExpr{}
	}

	first := p.parseExpression(precedenceLowest)

	if p.peekIs(lexer.TOKEN_COMMA) {
		tuple := &ast.TupleExpr{Elements: []ast.Expr{first}}

		for p.peekIs(lexer.TOKEN_COMMA) {
			p.advance() // consume ','
			p.advance() // land on next element
			tuple.Elements = append(tuple.Elements, p.parseExpression(precedenceLowest))
		}

		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil
		}

		return tuple
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return first
}

// parseFunction parses single-argument arrow function definitions: x: body.
func (p *Parser) parseFunction() ast.Expr {
	param := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}

	p.advance()
	body := p.parseExpression(precedenceLowest)

	return &ast.FunctionExpr{
		Param: param,
		Body:  body,
	}
}

// parseFunctionApplication parses function applications.
// A multi-argument call "f(a, b)" is parsed as one ApplyExpr of f to a
// single TupleExpr argument built by parseGrouped. No nested ApplyExpr
// nodes are built: at call time the evaluator either binds a tuple of
// matching arity to all parameters at once or curries one argument.
func (p *Parser) parseFunctionApplication(fn ast.Expr) ast.Expr {
	arg := p.parseExpression(precedenceCall)

	return &ast.ApplyExpr{
		Func: fn,
		Arg:  arg,
	}
}

// parseList parses vec literals.
func (p *Parser) parseList() ast.Expr {
	p.advance() // skip '['

	list := &ast.VecExpr{
		Elements: []ast.Expr{},
	}

	if p.curIs(lexer.TOKEN_RBRACKET) {
		return list
	}

	// Parse first element
	list.Elements = append(list.Elements, p.parseExpression(precedenceCall+1))

	// Parse remaining elements
	for !p.peekIs(lexer.TOKEN_RBRACKET) && !p.peekIs(lexer.TOKEN_EOF) {
		p.advance()
		if p.curIs(lexer.TOKEN_RBRACKET) {
			break
		}
		// Skip commas if present (for compatibility)
		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
		}
		if p.curIs(lexer.TOKEN_RBRACKET) {
			break
		}
		list.Elements = append(list.Elements, p.parseExpression(precedenceCall+1))
	}

	if !p.expectPeek(lexer.TOKEN_RBRACKET) {
		return nil
	}

	return list
}

// parseAttrSet parses object literals.
func (p *Parser) parseAttrSet() ast.Expr {
	p.advance() // skip '{'

	obj := &ast.ObjectExpr{
		Bindings: []ast.ObjectBinding{},
	}

	// Check for recursive object literal
	if p.curIs(lexer.TOKEN_REC) {
		obj.Recursive = true
		p.advance()
	}

	// Empty object literal
	if p.curIs(lexer.TOKEN_RBRACE) {
		return obj
	}

	// Parse bindings
	for !p.curIs(lexer.TOKEN_RBRACE) && !p.curIs(lexer.TOKEN_EOF) {
		if p.curIs(lexer.TOKEN_INHERIT) {
			p.parseInherit(obj)
		} else {
			binding := p.parseBinding()
			if binding != nil {
				obj.Bindings = append(obj.Bindings, *binding)
			}
		}

		if p.curIs(lexer.TOKEN_RBRACE) {
			break
		}
	}

	if !p.curIs(lexer.TOKEN_RBRACE) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected '}', got %v", p.cur.Type)

		return nil
	}

	return obj
}

// parseBinding parses a single attribute binding.
func (p *Parser) parseBinding() *ast.ObjectBinding {
	// Parse attribute path
	path := p.parseAttrPath()
	if path == nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_ASSIGN) {
		return nil
	}

	p.advance()
	value := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}

	p.advance() // position on next token

	return &ast.ObjectBinding{
		Path:  path,
		Value: value,
	}
}

// parseAttrPath parses an attribute path.
func (p *Parser) parseAttrPath() []string {
	var path []string

	if !p.curIs(lexer.TOKEN_IDENT) && !p.curIs(lexer.TOKEN_STRING) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected identifier or string, got %v", p.cur.Type)

		return nil
	}

	path = append(path, p.cur.Literal)

	for p.peekIs(lexer.TOKEN_DOT) {
		p.advance() // consume dot
		p.advance() // get next part

		if !p.curIs(lexer.TOKEN_IDENT) && !p.curIs(lexer.TOKEN_STRING) {
			p.errors.Addf(p.cur.Line, p.cur.Column,
				"expected identifier or string after dot, got %v", p.cur.Type)

			return nil
		}

		path = append(path, p.cur.Literal)
	}

	return path
}

// parseInherit parses an inherit clause within an object literal:
// "inherit a b;" pulls a/b from the enclosing scope, while
// "inherit (expr) a b;" pulls them from expr's fields instead.
func (p *Parser) parseInherit(obj *ast.ObjectExpr) {
	p.advance() // skip 'inherit'

	clause := ast.InheritClause{}

	if p.curIs(lexer.TOKEN_LPAREN) {
		p.advance() // skip '('
		clause.From = p.parseExpression(precedenceLowest)

		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return
		}

		p.advance() // move past ')'
	}

	for p.curIs(lexer.TOKEN_IDENT) {
		clause.Attrs = append(clause.Attrs, p.cur.Literal)
		p.advance()
	}

	obj.Inherits = append(obj.Inherits, clause)

	if p.curIs(lexer.TOKEN_SEMICOLON) {
		p.advance()
	}
}

// parseSelect parses attribute selection.
func (p *Parser) parseSelect(expr ast.Expr) ast.Expr {
	p.advance() // consume dot

	path := p.parseAttrPath()
	if path == nil {
		return nil
	}

	return &ast.SelectExpr{
		Expr:     expr,
		AttrPath: path,
	}
}

// parseHasAttr parses attribute existence test.
func (p *Parser) parseHasAttr(expr ast.Expr) ast.Expr {
	p.advance() // consume '?'

	path := p.parseAttrPath()
	if path == nil {
		return nil
	}

	return &ast.HasAttrExpr{
		Expr:     expr,
		AttrPath: path,
	}
}

// parseOrDefault parses 'or' default expressions.
func (p *Parser) parseOrDefault(expr ast.Expr) ast.Expr {
	selectExpr, ok := expr.(*ast.SelectExpr)
	if !ok {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"'or' can only be used with attribute selection")

		return nil
	}

	p.advance()
	selectExpr.Default = p.parseExpression(precedenceLowest)

	return selectExpr
}
