// Package ast defines the expression and statement node types produced by
// the parser, grounded on go-dws's internal/ast (immutable, shared nodes
// addressed by pointer identity) but generalized to spec.md §3's grammar
// rather than DWScript's.
package ast

import "github.com/lumenlang/lumen/pkg/token"

// Node is implemented by every expression and statement node. Id returns
// the node's own pointer reinterpreted as an opaque key: the resolver uses
// it to key its side table, and the interpreter looks up the same key at
// evaluation time (spec.md §3, "Identity"). Every concrete node type
// implements Id as `return n` so two structurally-identical nodes never
// collide.
type Node interface {
	Id() Node
	node()
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}
