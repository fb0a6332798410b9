package ast

import (
	"fmt"
	"strings"
)

// Print renders a statement list as a parenthesized s-expression, used by
// the `lumen run --dump-ast` and `lumen parse` debug commands. Grounded on
// go-dws's pkg/printer (an AST-driven pretty-printer), scaled down from a
// source-formatter to a debugging dump since spec.md's scope never asks for
// round-trip source formatting.
func Print(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(printStmt(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

func printStmt(s Stmt) string {
	switch n := s.(type) {
	case *Block:
		parts := make([]string, len(n.Stmts))
		for i, st := range n.Stmts {
			parts[i] = printStmt(st)
		}
		return paren("block", parts...)
	case *Class:
		parts := []string{n.Name.Lexeme}
		if n.Superclass != nil {
			parts = append(parts, "<"+n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			parts = append(parts, printStmt(m))
		}
		return paren("class", parts...)
	case *Expression:
		return paren("expr", printExpr(n.Expr))
	case *Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		body := make([]string, len(n.Body))
		for i, st := range n.Body {
			body[i] = printStmt(st)
		}
		return paren("fun "+n.Name.Lexeme+"("+strings.Join(params, " ")+")", body...)
	case *If:
		parts := []string{printExpr(n.Condition), printStmt(n.Then)}
		if n.Else != nil {
			parts = append(parts, printStmt(n.Else))
		}
		return paren("if", parts...)
	case *Print:
		return paren("print", printExpr(n.Expr))
	case *Return:
		if n.Value == nil {
			return paren("return")
		}
		return paren("return", printExpr(n.Value))
	case *Var:
		if n.Init == nil {
			return paren("var " + n.Name.Lexeme)
		}
		return paren("var "+n.Name.Lexeme, printExpr(n.Init))
	case *While:
		return paren("while", printExpr(n.Condition), printStmt(n.Body))
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Assign:
		return paren("= "+n.Name.Lexeme, printExpr(n.Value))
	case *Binary:
		return paren(n.Operator.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Call:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = printExpr(a)
		}
		return paren("call "+printExpr(n.Callee), parts...)
	case *Get:
		return paren("get ."+n.Name.Lexeme, printExpr(n.Object))
	case *Grouping:
		return paren("group", printExpr(n.Inner))
	case *Literal:
		return fmt.Sprintf("%v", n.Value)
	case *Logical:
		return paren(n.Operator.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Set:
		return paren("set ."+n.Name.Lexeme, printExpr(n.Object), printExpr(n.Value))
	case *Super:
		return "super." + n.Method.Lexeme
	case *This:
		return "this"
	case *Unary:
		return paren(n.Operator.Lexeme, printExpr(n.Right))
	case *Variable:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func paren(name string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + name + ")"
	}
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}
