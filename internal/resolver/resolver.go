// Package resolver implements the static scope-resolution pass of spec.md
// §4.3: a single AST walk that assigns each variable reference a lexical
// scope distance and validates scope-sensitive constructs (self-referential
// initializers, top-level return, this/super outside a class, and so on).
//
// Grounded on go-dws's internal/semantic.Analyzer (a single-pass walker
// carrying a scope stack and a running error list) but scaled to spec.md's
// much smaller surface: one pass, one side table, no type system.
package resolver

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/errs"
	"github.com/lumenlang/lumen/pkg/token"
)

// functionKind distinguishes ordinary functions from methods and
// initializers, needed to validate `return` and `this` usage (spec.md
// §4.3).
type functionKind int

const (
	noFunction functionKind = iota
	function
	method
	initializer
)

// classKind distinguishes being inside no class, a base class, or a
// subclass, needed to validate `super` usage.
type classKind int

const (
	noClass classKind = iota
	class
	subclass
)

// Locals maps a resolved AST node to the number of enclosing scopes between
// the reference and its binding (spec.md §3, "Identity" / §4.3). Nodes not
// present here are unresolved: the interpreter looks them up in the global
// environment instead (spec.md §4.7).
type Locals map[ast.Node]int

// Resolver walks a parsed program once, producing Locals and a Reporter of
// any scope-sensitive errors found along the way.
type Resolver struct {
	scopes []map[string]bool
	locals Locals

	currentFunction functionKind
	currentClass    classKind

	reporter errs.Reporter
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve walks stmts, populating and returning the Locals side table. Call
// Errors() afterward to check whether the pass succeeded.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

// Errors returns the resolve errors accumulated during Resolve.
func (r *Resolver) Errors() []errs.Diagnostic {
	return r.reporter.Diagnostics()
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet defined"; a
// reference to it before define is an error (spec.md §4.3, §4.4).
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.Report(errs.ResolveError, name.Pos, name.Lexeme,
			"already a variable with this name in this scope")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal finds the innermost scope that defines name and records the
// distance from the current scope; leaves the node unresolved (global) if
// no scope defines it.
func (r *Resolver) resolveLocal(node ast.Node, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[node.Id()] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: left to runtime global lookup.
}
