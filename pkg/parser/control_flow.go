package parser

import (
	"github.com/lattice-lang/lattice/internal/ast"
	"github.com/lattice-lang/lattice/pkg/lexer"
)

// parseIf parses if-then-else expressions.
func (p *Parser) parseIf() ast.Expr {
	p.advance() // skip 'if'

	cond := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_THEN) {
		return nil
	}

	p.advance()
	then := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_ELSE) {
		return nil
	}

	p.advance()
	elseExpr := p.parseExpression(precedenceLowest)

	return &ast.IfExpr{
		Cond: cond,
		Then: then,
		Else: elseExpr,
	}
}

// parseLet parses let expressions.
func (p *Parser) parseLet() ast.Expr {
	p.advance() // skip 'let'

	let := &ast.LetExpr{
		Bindings: []ast.Binding{},
	}

	// Parse bindings
	for !p.curIs(lexer.TOKEN_IN) && !p.curIs(lexer.TOKEN_EOF) {
		if !p.curIs(lexer.TOKEN_IDENT) {
			p.errors.Addf(p.cur.Line, p.cur.Column,
				"expected identifier in let binding, got %v", p.cur.Type)

			return nil
		}

		name := p.cur.Literal

		if !p.expectPeek(lexer.TOKEN_ASSIGN) {
			return nil
		}

		p.advance()
		value := p.parseExpression(precedenceLowest)

		let.Bindings = append(let.Bindings, ast.Binding{
			Name:  name,
			Value: value,
		})

		if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
			return nil
		}

		p.advance() // position on next token
	}

	if !p.curIs(lexer.TOKEN_IN) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected 'in' after let bindings, got %v", p.cur.Type)

		return nil
	}

	p.advance()
	let.Body = p.parseExpression(precedenceLowest)

	return let
}

// parseWith parses with expressions.
func (p *Parser) parseWith() ast.Expr {
	p.advance() // skip 'with'

	expr := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}

	p.advance()
	body := p.parseExpression(precedenceLowest)

	return &ast.WithExpr{
		Expr: expr,
		Body: body,
	}
}

// parseMatch parses pattern-match expressions over a Variant's cases:
// match x { A => 1, B(v) => v, C(x, y) => x } with a trailing comma after
// the final arm accepted but not required. The subject is parsed at
// application precedence, so the '{' after it opens the arms instead of
// being read as an object-literal argument; an application or binary
// expression as subject must be parenthesized.
func (p *Parser) parseMatch() ast.Expr {
	p.advance() // skip 'match'

	subject := p.parseExpression(precedenceCall)

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}

	p.advance() // land on first arm, or '}'

	m := &ast.MatchExpr{Subject: subject}

	for !p.curIs(lexer.TOKEN_RBRACE) && !p.curIs(lexer.TOKEN_EOF) {
		arm := p.parseMatchArm()
		if arm == nil {
			return nil
		}
		m.Arms = append(m.Arms, *arm)

		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
		}
	}

	if !p.curIs(lexer.TOKEN_RBRACE) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected '}' to close match expression, got %v", p.cur.Type)

		return nil
	}

	return m
}

// parseMatchArm parses a single "Case(bindings...) => body" arm, leaving
// the parser positioned on the token after body (a comma or the closing
// '}').
func (p *Parser) parseMatchArm() *ast.MatchArm {
	if !p.curIs(lexer.TOKEN_IDENT) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected match case name, got %v", p.cur.Type)

		return nil
	}

	pattern := &ast.MatchPattern{CaseName: p.cur.Literal}
	p.advance()

	if p.curIs(lexer.TOKEN_LPAREN) {
		p.advance() // skip '('

		for !p.curIs(lexer.TOKEN_RPAREN) && !p.curIs(lexer.TOKEN_EOF) {
			if !p.curIs(lexer.TOKEN_IDENT) {
				p.errors.Addf(p.cur.Line, p.cur.Column,
					"expected binding name in match pattern, got %v", p.cur.Type)

				return nil
			}

			pattern.Bindings = append(pattern.Bindings, p.cur.Literal)
			p.advance()

			if p.curIs(lexer.TOKEN_COMMA) {
				p.advance()
			}
		}

		if !p.curIs(lexer.TOKEN_RPAREN) {
			p.errors.Addf(p.cur.Line, p.cur.Column,
				"expected ')' to close match pattern, got %v", p.cur.Type)

			return nil
		}

		p.advance() // skip ')'
	}

	if !p.curIs(lexer.TOKEN_FATARROW) {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"expected '=>' after match pattern, got %v", p.cur.Type)

		return nil
	}

	p.advance() // skip '=>'
	body := p.parseExpression(precedenceLowest)
	p.advance() // land on ',' or '}'

	return &ast.MatchArm{Pattern: pattern, Body: body}
}

// parseAssert parses assert expressions.
func (p *Parser) parseAssert() ast.Expr {
	p.advance() // skip 'assert'

	cond := p.parseExpression(precedenceLowest)

	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}

	p.advance()
	body := p.parseExpression(precedenceLowest)

	return &ast.AssertExpr{
		Cond: cond,
		Body: body,
	}
}
