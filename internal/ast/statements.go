package ast

import "github.com/lumenlang/lumen/pkg/token"

// Block is `{ stmts... }`.
type Block struct {
	Stmts []Stmt
}

// Class declares a class, optionally extending Superclass, with a flat
// list of method declarations (each a *Function).
type Class struct {
	Name       token.Token
	Superclass *Variable // nil if there is no "< Base" clause
	Methods    []*Function
}

// Expression is a bare expression statement, its value discarded.
type Expression struct {
	Expr Expr
}

// Function is a function or method declaration: `fun name(params) { body }`.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// If is `if (cond) Then else Else`. Else is nil when there is no else
// clause.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// Print is `print expr;`.
type Print struct {
	Expr Expr
}

// Return is `return expr?;`. Value is nil for a bare `return;`.
type Return struct {
	Keyword token.Token
	Value   Expr
}

// Var is `var name = init?;`. Init is nil when the declaration has no
// initializer.
type Var struct {
	Name token.Token
	Init Expr
}

// While is `while (cond) body`. `for` loops are desugared into this at
// parse time (spec.md §3, §4.2).
type While struct {
	Condition Expr
	Body      Stmt
}

func (s *Block) Id() Node      { return s }
func (s *Class) Id() Node      { return s }
func (s *Expression) Id() Node { return s }
func (s *Function) Id() Node   { return s }
func (s *If) Id() Node         { return s }
func (s *Print) Id() Node      { return s }
func (s *Return) Id() Node     { return s }
func (s *Var) Id() Node        { return s }
func (s *While) Id() Node      { return s }

func (*Block) node()      {}
func (*Class) node()      {}
func (*Expression) node() {}
func (*Function) node()   {}
func (*If) node()         {}
func (*Print) node()      {}
func (*Return) node()     {}
func (*Var) node()        {}
func (*While) node()      {}

func (*Block) stmtNode()      {}
func (*Class) stmtNode()      {}
func (*Expression) stmtNode() {}
func (*Function) stmtNode()   {}
func (*If) stmtNode()         {}
func (*Print) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*Var) stmtNode()        {}
func (*While) stmtNode()      {}
