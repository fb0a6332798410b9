package interp

import "github.com/lumenlang/lumen/internal/ast"

// Function is a callable closure: the declaration's name/params/body, the
// environment captured at definition time, and whether it is a class
// initializer (spec.md §4.5).
type Function struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string     { return "function" }
func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }

// Arity is the function's parameter count.
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Bind produces a new Function identical to f but with a captured
// environment one frame deeper, binding `this` to instance (spec.md §4.5's
// "Method binding").
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call allocates a new frame over the captured environment, binds
// parameters to args in order, and executes the body as a block in that
// frame (spec.md §4.5).
//
// The return value is nil (spec.md's Nil) unless the body executes a
// `return`, in which case it is the return carrier's value — except for
// initializers, which always yield the bound `this` regardless of what (if
// anything) `return` carried, per spec.md §4.5/§4.6.
func (f *Function) Call(in *Interpreter, args []Value) Value {
	env := NewChildEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	result := in.executeBlock(f.Declaration.Body, env)

	if isError(result) {
		return result
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	if rv, ok := result.(*ReturnValue); ok {
		return rv.Value
	}
	return Nil
}
