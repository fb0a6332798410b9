package parser

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/pkg/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( call "." )? IDENT "=" assignment | logic_or
//
// The left-hand side is parsed as a normal expression first; if an "="
// follows, it is retroactively reinterpreted as an assignment target
// (spec.md §4.2's "Assignment target validity").
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.check(token.EQUAL) {
		equals := p.advance()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "invalid assignment target")
		}
	}

	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.check(token.OR) {
		op := p.advance()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(token.BANG_EQUAL) || p.check(token.EQUAL_EQUAL) {
		op := p.advance()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(token.GREATER) || p.check(token.GREATER_EQUAL) ||
		p.check(token.LESS) || p.check(token.LESS_EQUAL) {
		op := p.advance()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.advance()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.advance()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary → ( "!" | "-" ) unary | call
func (p *Parser) unary() ast.Expr {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.matchAny(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.matchAny(token.DOT):
			name := p.expect(token.IDENT, "expected property name after '.'")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent(p.errorf("can't have more than %d arguments", maxArgs))
			}
			args = append(args, p.expression())
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RIGHT_PAREN, "expected ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary → "true" | "false" | "nil" | "this"
//         | NUMBER | STRING | IDENT | "(" expression ")"
//         | "super" "." IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.check(token.TRUE), p.check(token.FALSE), p.check(token.NIL),
		p.check(token.NUMBER), p.check(token.STRING):
		tok := p.advance()
		return &ast.Literal{Value: tok.Literal}
	case p.matchAny(token.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.check(token.IDENT):
		return &ast.Variable{Name: p.advance()}
	case p.matchAny(token.LEFT_PAREN):
		expr := p.expression()
		p.expect(token.RIGHT_PAREN, "expected ')' after expression")
		return &ast.Grouping{Inner: expr}
	case p.matchAny(token.SUPER):
		keyword := p.previous()
		p.expect(token.DOT, "expected '.' after 'super'")
		method := p.expect(token.IDENT, "expected superclass method name")
		return &ast.Super{Keyword: keyword, Method: method}
	default:
		p.errorAtCurrent("expected expression")
		p.advance()
		return &ast.Literal{Value: nil}
	}
}

// previous returns the token just consumed by the most recent matchAny or
// advance call. Since Parser tracks only current+peek (no history buffer),
// callers that need "the token just matched" call this immediately after
// matching it, before anything else advances the cursor again.
func (p *Parser) previous() token.Token {
	return p.lastConsumed
}
