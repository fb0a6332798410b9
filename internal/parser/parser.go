// Package parser implements Lumen's recursive-descent parser (spec.md §4.2),
// grounded on go-dws's internal/parser (a Parser struct carrying the token
// cursor and an error list, with panic-mode recovery) but following
// spec.md's own grammar rather than DWScript's, and a plain recursive
// descent instead of go-dws's Pratt-style prefix/infix function tables —
// spec.md's grammar is already precedence-ordered by production, so a
// table adds indirection without buying anything.
package parser

import (
	"fmt"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/errs"
	"github.com/lumenlang/lumen/internal/lexer"
	"github.com/lumenlang/lumen/pkg/token"
)

const maxArgs = 255

// Parser turns a token stream into a statement list. Construct with New
// and drive with Parse.
type Parser struct {
	lex *lexer.Lexer

	current      token.Token
	peek         token.Token
	lastConsumed token.Token

	errors []errs.Diagnostic
}

// New creates a Parser reading from l. It primes current/peek with the
// first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.advance()
	p.advance()
	return p
}

// Errors returns the parse errors accumulated so far.
func (p *Parser) Errors() []errs.Diagnostic {
	return p.errors
}

// Parse parses the whole program: declaration* EOF.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) advance() token.Token {
	prev := p.current
	p.lastConsumed = prev
	p.current = p.peek
	if p.lex != nil {
		p.peek = p.lex.NextToken()
	}
	return prev
}

func (p *Parser) check(t token.Type) bool {
	return p.current.Type == t
}

func (p *Parser) checkNext(t token.Type) bool {
	return p.peek.Type == t
}

func (p *Parser) matchAny(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type t, else records a parse
// error and returns the zero Token without advancing.
func (p *Parser) expect(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return token.Token{}
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.current, message)
}

func (p *Parser) errorAt(tok token.Token, message string) {
	lexeme := tok.Lexeme
	if tok.Type == token.EOF {
		lexeme = ""
	}
	p.errors = append(p.errors, errs.Diagnostic{
		Kind:    errs.ParseError,
		Pos:     tok.Pos,
		Lexeme:  lexeme,
		Message: message,
	})
}

// atSyncBoundary reports whether current already sits where synchronize
// would stop: EOF, a '}' closing the enclosing block/class body, or a
// token that starts a new declaration. A failed production can return with
// the cursor already here — e.g. a nested block() resyncing to the token
// right after it — so synchronize checks this before discarding anything,
// or callers higher up (declaration(), classDecl()'s method loop) that also
// observe an error would eat the very declaration that already-successful
// recovery left ready to parse.
func (p *Parser) atSyncBoundary() bool {
	switch p.current.Type {
	case token.EOF, token.RIGHT_BRACE, token.CLASS, token.FUN, token.VAR,
		token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
		return true
	}
	return false
}

// synchronize does nothing when the cursor already sits on a sync boundary;
// otherwise it discards the token that caused the current error and keeps
// discarding until the one just consumed was a ';' or the cursor reaches a
// sync boundary, per spec.md §4.2's panic-mode recovery.
func (p *Parser) synchronize() {
	if p.atSyncBoundary() {
		return
	}
	p.advance()
	for !p.check(token.EOF) {
		if p.lastConsumed.Type == token.SEMICOLON {
			return
		}
		if p.atSyncBoundary() {
			return
		}
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
