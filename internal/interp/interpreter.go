package interp

import (
	"fmt"
	"io"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/errs"
	"github.com/lumenlang/lumen/internal/resolver"
	"github.com/lumenlang/lumen/pkg/token"
)

// DefaultMaxCallDepth bounds recursive Function.Call nesting so a runaway
// recursive program (spec.md §8.6's fib is the textbook example) fails with
// a RuntimeError instead of overflowing the host Go goroutine's stack.
// Grounded on go-dws's DefaultMaxRecursionDepth/MaxRecursionDepth option.
const DefaultMaxCallDepth = 255

// Interpreter walks a resolved program, evaluating expressions and
// executing statements against an environment chain rooted at Globals
// (spec.md §4.7).
type Interpreter struct {
	Globals *Environment

	env    *Environment
	locals resolver.Locals
	output io.Writer

	callDepth    int
	maxCallDepth int

	// callPos is the position of the call expression currently being
	// evaluated, used so native functions (which don't carry their own
	// token) can still report a located error.
	callPos token.Position
}

// New creates an Interpreter writing `print` output to output, with a
// fresh global environment carrying the builtins from spec.md §4.7.
func New(output io.Writer) *Interpreter {
	globals := NewEnvironment()
	registerBuiltins(globals)
	return &Interpreter{
		Globals:      globals,
		env:          globals,
		output:       output,
		maxCallDepth: DefaultMaxCallDepth,
	}
}

// SetMaxCallDepth overrides the recursion guard (see DefaultMaxCallDepth).
func (in *Interpreter) SetMaxCallDepth(n int) {
	if n > 0 {
		in.maxCallDepth = n
	}
}

// currentPos returns the position of the call expression currently being
// evaluated (see callPos), for use by natives that have no token of their
// own to report errors against.
func (in *Interpreter) currentPos() token.Position {
	return in.callPos
}

// Run executes stmts against in.Globals using locals for scope-distance
// lookups, returning the first runtime error encountered (spec.md §7:
// "RuntimeError is caught at the top-level run"; unlike scan/parse/resolve
// errors, a runtime error is not accumulated — the program stops at the
// first one).
func (in *Interpreter) Run(stmts []ast.Stmt, locals resolver.Locals) *errs.Diagnostic {
	in.locals = locals
	for _, stmt := range stmts {
		result := in.execute(stmt)
		if ev, ok := result.(*ErrorValue); ok {
			return &errs.Diagnostic{Kind: errs.RuntimeError, Pos: ev.Pos, Lexeme: ev.Lexeme, Message: ev.Message}
		}
	}
	return nil
}

// execute dispatches a single statement (spec.md §4.7's "Statement
// semantics"). The returned Value is Nil on normal completion, or a
// *ReturnValue/*ErrorValue signal to propagate upward.
func (in *Interpreter) execute(stmt ast.Stmt) Value {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.executeBlock(s.Stmts, NewChildEnvironment(in.env))
	case *ast.Class:
		return in.executeClass(s)
	case *ast.Expression:
		v := in.eval(s.Expr)
		if isSignal(v) {
			return v
		}
		return Nil
	case *ast.Function:
		fn := &Function{Declaration: s, Closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return Nil
	case *ast.If:
		return in.executeIf(s)
	case *ast.Print:
		v := in.eval(s.Expr)
		if isSignal(v) {
			return v
		}
		fmt.Fprintln(in.output, v.String())
		return Nil
	case *ast.Return:
		var value Value = Nil
		if s.Value != nil {
			value = in.eval(s.Value)
			if isSignal(value) {
				return value
			}
		}
		return &ReturnValue{Value: value}
	case *ast.Var:
		value := Value(Nil)
		if s.Init != nil {
			value = in.eval(s.Init)
			if isSignal(value) {
				return value
			}
		}
		in.env.Define(s.Name.Lexeme, value)
		return Nil
	case *ast.While:
		return in.executeWhile(s)
	default:
		return newError(token.Position{}, "", "unhandled statement type %T", stmt)
	}
}

// executeBlock executes stmts with env (a scope the caller has already
// created) as the current environment, restoring in.env to its previous value before returning by whatever
// path — normal completion, a return carrier, or a runtime error (spec.md
// §5's resource-safety invariant: "the current-environment pointer [must
// unwind] back to its pre-block value regardless of how a block exits").
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) Value {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	var result Value = Nil
	for _, stmt := range stmts {
		result = in.execute(stmt)
		if isSignal(result) {
			return result
		}
	}
	return result
}

func (in *Interpreter) executeIf(s *ast.If) Value {
	cond := in.eval(s.Condition)
	if isSignal(cond) {
		return cond
	}
	if IsTruthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return Nil
}

func (in *Interpreter) executeWhile(s *ast.While) Value {
	for {
		cond := in.eval(s.Condition)
		if isSignal(cond) {
			return cond
		}
		if !IsTruthy(cond) {
			return Nil
		}
		result := in.execute(s.Body)
		if isSignal(result) {
			return result
		}
	}
}

// executeClass implements spec.md §4.7's Class statement: define the name
// as nil first (so a method body referencing the class by name sees a
// binding, even before construction completes), evaluate and validate an
// optional superclass, build the method table, then bind the finished
// Class value to the declared name.
func (in *Interpreter) executeClass(s *ast.Class) Value {
	in.env.Define(s.Name.Lexeme, Nil)

	var superclass *Class
	if s.Superclass != nil {
		v := in.eval(s.Superclass)
		if isSignal(v) {
			return v
		}
		sc, ok := v.(*Class)
		if !ok {
			return newError(s.Superclass.Name.Pos, s.Superclass.Name.Lexeme, "superclass must be a class")
		}
		superclass = sc
	}

	classEnv := in.env
	if superclass != nil {
		classEnv = NewChildEnvironment(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Methods: methods, Superclass: superclass}
	in.env.Assign(s.Name, class)
	return Nil
}
