package resolver

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/errs"
)

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Grouping:
		r.resolveExpr(n.Inner)
	case *ast.Literal:
		// nothing to resolve
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	case *ast.Super:
		r.resolveSuper(n)
	case *ast.This:
		r.resolveThis(n)
	case *ast.Unary:
		r.resolveExpr(n.Right)
	case *ast.Variable:
		r.resolveVariable(n)
	}
}

func (r *Resolver) resolveVariable(n *ast.Variable) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !defined {
			r.reporter.Report(errs.ResolveError, n.Name.Pos, n.Name.Lexeme,
				"can't read local variable in its own initializer")
		}
	}
	r.resolveLocal(n, n.Name)
}

func (r *Resolver) resolveThis(n *ast.This) {
	if r.currentClass == noClass {
		r.reporter.Report(errs.ResolveError, n.Keyword.Pos, n.Keyword.Lexeme,
			"can't use 'this' outside of a class")
		return
	}
	r.resolveLocal(n, n.Keyword)
}

func (r *Resolver) resolveSuper(n *ast.Super) {
	switch r.currentClass {
	case noClass:
		r.reporter.Report(errs.ResolveError, n.Keyword.Pos, n.Keyword.Lexeme,
			"can't use 'super' outside of a class")
	case class:
		r.reporter.Report(errs.ResolveError, n.Keyword.Pos, n.Keyword.Lexeme,
			"can't use 'super' in a class with no superclass")
	}
	r.resolveLocal(n, n.Keyword)
}
