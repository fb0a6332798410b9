package interp

import (
	"github.com/lumenlang/lumen/pkg/token"
)

// Environment is a lexical scope frame: a name→Value map with an optional
// parent, grounded on go-dws's internal/interp/runtime.Environment, minus
// the case-insensitive ident.Map (Lumen, unlike DWScript, is case-sensitive)
// and plus the distance-indexed accessors spec.md §4.4 requires for the
// resolver's scope distances.
type Environment struct {
	store  map[string]Value
	parent *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewChildEnvironment creates a new scope enclosed by parent.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{store: make(map[string]Value), parent: parent}
}

// Define inserts name into the current frame, shadowing any existing entry
// (spec.md §4.4).
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get walks the chain looking for name, raising an undefined-variable error
// located at tok on miss (spec.md §4.4).
func (e *Environment) Get(tok token.Token) (Value, *ErrorValue) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.store[tok.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, newError(tok.Pos, tok.Lexeme, "undefined variable '%s'", tok.Lexeme)
}

// Assign walks the chain and mutates the first frame containing name, else
// raises an undefined-variable error (spec.md §4.4).
func (e *Environment) Assign(tok token.Token, value Value) *ErrorValue {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.store[tok.Lexeme]; ok {
			env.store[tok.Lexeme] = value
			return nil
		}
	}
	return newError(tok.Pos, tok.Lexeme, "undefined variable '%s'", tok.Lexeme)
}

// ancestor walks up distance parent links from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt indexes distance frames up the chain and returns name's value; the
// resolver guarantees the name is present (spec.md §4.4).
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).store[name]
}

// AssignAt mutates name's value distance frames up the chain.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).store[name] = value
}
