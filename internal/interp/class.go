package interp

import "github.com/lumenlang/lumen/pkg/token"

// Class is callable (instantiation). It holds its own method table and an
// optional superclass link (spec.md §4.6).
type Class struct {
	Name       string
	Methods    map[string]*Function
	Superclass *Class
}

func (*Class) Type() string     { return "class" }
func (c *Class) String() string { return c.Name }

// FindMethod looks up name in c's own method table, recursing into the
// superclass on miss; first match wins (spec.md §4.6).
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of `init` if the class (or an ancestor) defines one,
// else 0 (spec.md §4.6).
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call creates a new Instance and, if an initializer is defined anywhere in
// the hierarchy, binds and invokes it with args. The instance is returned
// regardless of the initializer's return value (spec.md §4.6); a runtime
// error raised inside the initializer is returned instead.
func (c *Class) Call(in *Interpreter, args []Value) Value {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init := c.FindMethod("init"); init != nil {
		result := init.Bind(instance).Call(in, args)
		if isError(result) {
			return result
		}
	}
	return instance
}

// Instance is a mutable field container backed by a Class (spec.md §4.6).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (*Instance) Type() string     { return "instance" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get implements spec.md §4.6's instance field/method lookup: a field wins
// over a method of the same name, since field lookup is tried first.
func (i *Instance) Get(name token.Token) Value {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v
	}
	if m := i.Class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i)
	}
	return newError(name.Pos, name.Lexeme, "undefined property '%s'", name.Lexeme)
}

// Set always creates or updates a field; it never writes to a method
// (spec.md §4.6).
func (i *Instance) Set(name token.Token, value Value) {
	i.Fields[name.Lexeme] = value
}
