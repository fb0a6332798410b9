package ast

import "github.com/lumenlang/lumen/pkg/token"

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Binary is `left op right` for arithmetic, concatenation and comparison.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Call is `callee(args...)`. Paren is the closing `)`, used to locate
// arity-mismatch errors (spec.md §4.7).
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Get is `object.name`, a field or bound-method read.
type Get struct {
	Object Expr
	Name   token.Token
}

// Grouping is a parenthesized expression, kept as its own node so printers
// can round-trip explicit parens.
type Grouping struct {
	Inner Expr
}

// Literal wraps a compile-time constant: a number, string, bool, or nil.
// Value holds the scanning token's raw literal (float64, string, bool, or
// nil), set by the parser; the interpreter converts it to a runtime Value.
type Literal struct {
	Value any
}

// Logical is `left and right` / `left or right`, kept distinct from Binary
// because its operands short-circuit (spec.md §4.7).
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Set is `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

// This is the `this` keyword used as an expression.
type This struct {
	Keyword token.Token
}

// Unary is `-right` or `!right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

func (e *Assign) Id() Node   { return e }
func (e *Binary) Id() Node   { return e }
func (e *Call) Id() Node     { return e }
func (e *Get) Id() Node      { return e }
func (e *Grouping) Id() Node { return e }
func (e *Literal) Id() Node  { return e }
func (e *Logical) Id() Node  { return e }
func (e *Set) Id() Node      { return e }
func (e *Super) Id() Node    { return e }
func (e *This) Id() Node     { return e }
func (e *Unary) Id() Node    { return e }
func (e *Variable) Id() Node { return e }

func (*Assign) node()   {}
func (*Binary) node()   {}
func (*Call) node()     {}
func (*Get) node()      {}
func (*Grouping) node() {}
func (*Literal) node()  {}
func (*Logical) node()  {}
func (*Set) node()      {}
func (*Super) node()    {}
func (*This) node()     {}
func (*Unary) node()    {}
func (*Variable) node() {}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Set) exprNode()      {}
func (*Super) exprNode()    {}
func (*This) exprNode()     {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}
