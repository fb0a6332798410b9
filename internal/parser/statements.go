package parser

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/pkg/token"
)

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt
//           | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchAny(token.FOR):
		return p.forStatement()
	case p.matchAny(token.IF):
		return p.ifStatement()
	case p.matchAny(token.PRINT):
		return p.printStatement()
	case p.check(token.RETURN):
		keyword := p.advance()
		return p.returnStatement(keyword)
	case p.matchAny(token.WHILE):
		return p.whileStatement()
	case p.matchAny(token.LEFT_BRACE):
		return &ast.Block{Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block → "{" declaration* "}" ; the opening brace has already been
// consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RIGHT_BRACE, "expected '}' after block")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "expected ';' after expression")
	return &ast.Expression{Expr: expr}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//             expression? ";" expression? ")" statement
//
// Desugared immediately into a Block wrapping a While, per spec.md §3/§4.2.
func (p *Parser) forStatement() ast.Stmt {
	p.expect(token.LEFT_PAREN, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.matchAny(token.SEMICOLON):
		initializer = nil
	case p.matchAny(token.VAR):
		initializer = p.varDecl()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.expect(token.SEMICOLON, "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.expect(token.RIGHT_PAREN, "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Stmts: []ast.Stmt{initializer, body}}
	}

	return body
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.expect(token.LEFT_PAREN, "expected '(' after 'if'")
	condition := p.expression()
	p.expect(token.RIGHT_PAREN, "expected ')' after if condition")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.matchAny(token.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.If{Condition: condition, Then: then, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "expected ';' after value")
	return &ast.Print{Expr: expr}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement(keyword token.Token) ast.Stmt {
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "expected ';' after return value")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.expect(token.LEFT_PAREN, "expected '(' after 'while'")
	condition := p.expression()
	p.expect(token.RIGHT_PAREN, "expected ')' after while condition")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}
