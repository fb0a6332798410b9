package resolver

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/errs"
)

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Stmts)
		r.endScope()
	case *ast.Class:
		r.resolveClass(n)
	case *ast.Expression:
		r.resolveExpr(n.Expr)
	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, function)
	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *ast.Print:
		r.resolveExpr(n.Expr)
	case *ast.Return:
		if r.currentFunction == noFunction {
			r.reporter.Report(errs.ResolveError, n.Keyword.Pos, n.Keyword.Lexeme,
				"can't return from top-level code")
		}
		if n.Value != nil {
			if r.currentFunction == initializer {
				r.reporter.Report(errs.ResolveError, n.Keyword.Pos, n.Keyword.Lexeme,
					"can't return a value from an initializer")
			}
			r.resolveExpr(n.Value)
		}
	case *ast.Var:
		r.declare(n.Name)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Name)
	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)
	}
}

// resolveClass handles class declarations: declares the class name, pushes
// the "super" and "this" scopes around method bodies, and resolves each
// method with the appropriate functionKind so `init` can be special-cased
// (spec.md §4.3, §4.6).
func (r *Resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = class

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Name.Lexeme == n.Name.Lexeme {
			r.reporter.Report(errs.ResolveError, n.Superclass.Name.Pos, n.Superclass.Name.Lexeme,
				"a class can't inherit from itself")
		} else {
			r.currentClass = subclass
			r.resolveExpr(n.Superclass)
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range n.Methods {
		kind := method
		if m.Name.Lexeme == "init" {
			kind = initializer
		}
		r.resolveFunction(m, kind)
	}

	r.endScope() // "this"

	if n.Superclass != nil {
		r.endScope() // "super"
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
