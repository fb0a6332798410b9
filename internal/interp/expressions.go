package interp

import (
	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/pkg/token"
)

// eval dispatches a single expression node (spec.md §4.7's "Expression
// semantics"). Every case either returns a genuine Value or a
// *ErrorValue/*ReturnValue signal (Return can only originate from a
// statement, but callers still check isSignal uniformly).
func (in *Interpreter) eval(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Literal:
		return literalValue(e.Value)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Set:
		return in.evalSet(e)
	case *ast.Super:
		return in.evalSuper(e)
	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	default:
		return newError(token.Position{}, "", "unhandled expression type %T", expr)
	}
}

// literalValue converts a raw scanned literal (float64, string, bool, or
// nil — see internal/ast.Literal) into its runtime Value.
func literalValue(v any) Value {
	switch lv := v.(type) {
	case float64:
		return &NumberValue{Value: lv}
	case string:
		return &StringValue{Value: lv}
	case bool:
		return boolOf(lv)
	case nil:
		return Nil
	default:
		return Nil
	}
}

// lookUpVariable resolves name either to a local slot (using the distance
// the resolver recorded for node) or, if node is unresolved, to a global
// (spec.md §4.4, §4.7).
func (in *Interpreter) lookUpVariable(name token.Token, node ast.Node) Value {
	if distance, ok := in.locals[node.Id()]; ok {
		return in.env.GetAt(distance, name.Lexeme)
	}
	v, err := in.Globals.Get(name)
	if err != nil {
		return err
	}
	return v
}

func (in *Interpreter) evalAssign(e *ast.Assign) Value {
	value := in.eval(e.Value)
	if isSignal(value) {
		return value
	}
	if distance, ok := in.locals[e.Id()]; ok {
		in.env.AssignAt(distance, e.Name.Lexeme, value)
		return value
	}
	if err := in.Globals.Assign(e.Name, value); err != nil {
		return err
	}
	return value
}

func (in *Interpreter) evalLogical(e *ast.Logical) Value {
	left := in.eval(e.Left)
	if isSignal(left) {
		return left
	}
	if e.Operator.Type == token.OR {
		if IsTruthy(left) {
			return left
		}
	} else if !IsTruthy(left) {
		return left
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalUnary(e *ast.Unary) Value {
	right := in.eval(e.Right)
	if isSignal(right) {
		return right
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(*NumberValue)
		if !ok {
			return newError(e.Operator.Pos, e.Operator.Lexeme, "operand must be a number")
		}
		return &NumberValue{Value: -n.Value}
	case token.BANG:
		return boolOf(!IsTruthy(right))
	default:
		return newError(e.Operator.Pos, e.Operator.Lexeme, "unknown unary operator '%s'", e.Operator.Lexeme)
	}
}

// evalBinary implements spec.md §4.7's arithmetic/comparison/equality
// table: `+` overloads to string concatenation when both operands are
// strings, number arithmetic otherwise requires both operands be numbers,
// division by zero is a runtime error, and `==`/`!=` use spec.md §3's
// equality rule (so they never themselves raise a type error).
func (in *Interpreter) evalBinary(e *ast.Binary) Value {
	left := in.eval(e.Left)
	if isSignal(left) {
		return left
	}
	right := in.eval(e.Right)
	if isSignal(right) {
		return right
	}

	switch e.Operator.Type {
	case token.EQUAL_EQUAL:
		return boolOf(Equal(left, right))
	case token.BANG_EQUAL:
		return boolOf(!Equal(left, right))
	case token.PLUS:
		if ls, ok := left.(*StringValue); ok {
			if rs, ok := right.(*StringValue); ok {
				return &StringValue{Value: ls.Value + rs.Value}
			}
			return newError(e.Operator.Pos, e.Operator.Lexeme, "operands must be two numbers or two strings")
		}
		ln, lok := left.(*NumberValue)
		rn, rok := right.(*NumberValue)
		if !lok || !rok {
			return newError(e.Operator.Pos, e.Operator.Lexeme, "operands must be two numbers or two strings")
		}
		return &NumberValue{Value: ln.Value + rn.Value}
	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(*NumberValue)
		rn, rok := right.(*NumberValue)
		if !lok || !rok {
			return newError(e.Operator.Pos, e.Operator.Lexeme, "operands must be numbers")
		}
		switch e.Operator.Type {
		case token.MINUS:
			return &NumberValue{Value: ln.Value - rn.Value}
		case token.STAR:
			return &NumberValue{Value: ln.Value * rn.Value}
		case token.SLASH:
			if rn.Value == 0 {
				return newError(e.Operator.Pos, e.Operator.Lexeme, "division by zero")
			}
			return &NumberValue{Value: ln.Value / rn.Value}
		case token.GREATER:
			return boolOf(ln.Value > rn.Value)
		case token.GREATER_EQUAL:
			return boolOf(ln.Value >= rn.Value)
		case token.LESS:
			return boolOf(ln.Value < rn.Value)
		case token.LESS_EQUAL:
			return boolOf(ln.Value <= rn.Value)
		}
	}
	return newError(e.Operator.Pos, e.Operator.Lexeme, "unknown binary operator '%s'", e.Operator.Lexeme)
}

// evalCall implements spec.md §4.7's Call semantics: the callee must
// evaluate to something Callable, arguments are evaluated left to right,
// and arity is checked against the closing paren's position so the
// diagnostic points at the call site rather than the callee's declaration.
func (in *Interpreter) evalCall(e *ast.Call) Value {
	callee := in.eval(e.Callee)
	if isSignal(callee) {
		return callee
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v := in.eval(a)
		if isSignal(v) {
			return v
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return newError(e.Paren.Pos, e.Paren.Lexeme, "can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return newError(e.Paren.Pos, e.Paren.Lexeme, "expected %d arguments but got %d", fn.Arity(), len(args))
	}

	if in.callDepth >= in.maxCallDepth {
		return newError(e.Paren.Pos, e.Paren.Lexeme, "call stack exceeded max depth of %d", in.maxCallDepth)
	}

	previousPos := in.callPos
	in.callPos = e.Paren.Pos
	in.callDepth++
	result := fn.Call(in, args)
	in.callDepth--
	in.callPos = previousPos

	return result
}

func (in *Interpreter) evalGet(e *ast.Get) Value {
	obj := in.eval(e.Object)
	if isSignal(obj) {
		return obj
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return newError(e.Name.Pos, e.Name.Lexeme, "only instances have properties")
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.Set) Value {
	obj := in.eval(e.Object)
	if isSignal(obj) {
		return obj
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return newError(e.Name.Pos, e.Name.Lexeme, "only instances have fields")
	}
	value := in.eval(e.Value)
	if isSignal(value) {
		return value
	}
	instance.Set(e.Name, value)
	return value
}

// evalSuper implements spec.md §4.6's `super.method` dispatch: the
// resolver records the distance to the scope holding `super`; `this` lives
// exactly one scope closer to the call site than `super` does (resolveClass
// pushes the two scopes in that order; at runtime executeClass creates the
// `super` frame and Function.Bind the `this` frame inside it).
func (in *Interpreter) evalSuper(e *ast.Super) Value {
	distance, ok := in.locals[e.Id()]
	if !ok {
		return newError(e.Keyword.Pos, e.Keyword.Lexeme, "'super' used outside a subclass")
	}
	superclass := in.env.GetAt(distance, "super").(*Class)
	object := in.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return newError(e.Method.Pos, e.Method.Lexeme, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(object)
}
