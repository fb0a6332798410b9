package parser

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/pkg/token"
)

// declaration → classDecl | funDecl | varDecl | statement
//
// Every production here always returns a non-nil node — expect() records an
// error and returns a zero Token on failure rather than signaling it to the
// caller — so panic-mode recovery can't key off a nil result the way a
// parser with fallible productions would. Instead, declaration() compares
// the error count before and after: if this declaration added one, it
// synchronizes before returning, exactly as if stmt had come back nil.
func (p *Parser) declaration() ast.Stmt {
	errCount := len(p.errors)

	var stmt ast.Stmt
	switch {
	case p.matchAny(token.CLASS):
		stmt = p.classDecl()
	case p.check(token.FUN) && p.checkNext(token.IDENT):
		p.advance()
		stmt = p.function("function")
	case p.matchAny(token.VAR):
		stmt = p.varDecl()
	default:
		stmt = p.statement()
	}

	if len(p.errors) > errCount {
		p.synchronize()
	}
	return stmt
}

// classDecl → "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *Parser) classDecl() ast.Stmt {
	name := p.expect(token.IDENT, "expected class name")

	var superclass *ast.Variable
	if p.matchAny(token.LESS) {
		superName := p.expect(token.IDENT, "expected superclass name")
		superclass = &ast.Variable{Name: superName}
	}

	p.expect(token.LEFT_BRACE, "expected '{' before class body")

	var methods []*ast.Function
	for !p.check(token.RIGHT_BRACE) && !p.check(token.EOF) {
		errCount := len(p.errors)
		methods = append(methods, p.function("method"))
		if len(p.errors) > errCount {
			p.synchronize()
		}
	}

	p.expect(token.RIGHT_BRACE, "expected '}' after class body")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

// function → IDENT "(" params? ")" block
func (p *Parser) function(kind string) *ast.Function {
	name := p.expect(token.IDENT, "expected "+kind+" name")
	p.expect(token.LEFT_PAREN, "expected '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent(p.errorf("can't have more than %d parameters", maxArgs))
			}
			params = append(params, p.expect(token.IDENT, "expected parameter name"))
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RIGHT_PAREN, "expected ')' after parameters")
	p.expect(token.LEFT_BRACE, "expected '{' before "+kind+" body")
	body := p.block()

	return &ast.Function{Name: name, Params: params, Body: body}
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDecl() ast.Stmt {
	name := p.expect(token.IDENT, "expected variable name")

	var init ast.Expr
	if p.matchAny(token.EQUAL) {
		init = p.expression()
	}

	p.expect(token.SEMICOLON, "expected ';' after variable declaration")
	return &ast.Var{Name: name, Init: init}
}
