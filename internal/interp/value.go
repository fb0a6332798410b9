// Package interp is the tree-walking evaluator: environments, runtime
// values, functions, classes and instances, and the statement/expression
// evaluation that drives them (spec.md §3, §4.4–§4.7).
//
// Grounded on go-dws's internal/interp, in particular its Value interface
// (internal/interp/value.go: `Type() string; String() string` implemented
// by small concrete structs) and its Monkey-style control-flow idiom
// (internal/interp/statements_control.go, internal/interp/errors.go:
// Eval returns a single Value; *ErrorValue is a sentinel Value checked
// with isError rather than threaded through Go's (T, error) convention).
// Lumen reuses exactly that shape for its much smaller value set, and adds
// a *ReturnValue sentinel for spec.md §7's "return carrier" — the same
// propagation mechanism go-dws's ControlFlow signals use for DWScript's
// break/continue/exit.
package interp

import (
	"strconv"
)

// Value is implemented by every runtime value the interpreter produces.
type Value interface {
	// Type returns a short, stable type tag naming the value's kind.
	Type() string
	// String returns the display form used by `print` (spec.md §6).
	String() string
}

// NumberValue is an IEEE-754 double.
type NumberValue struct {
	Value float64
}

func (*NumberValue) Type() string { return "number" }

// String renders the shortest round-trip decimal, suppressing the trailing
// ".0" for integer-valued numbers (spec.md §6, resolved per SPEC_FULL.md §4
// against original_source/src/object.rs's bare `{x}` Display impl).
func (n *NumberValue) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// StringValue is a Lumen string.
type StringValue struct {
	Value string
}

func (*StringValue) Type() string     { return "string" }
func (s *StringValue) String() string { return s.Value }

// BoolValue is a Lumen boolean.
type BoolValue struct {
	Value bool
}

func (*BoolValue) Type() string { return "bool" }
func (b *BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NilValue is the single nil value.
type NilValue struct{}

func (*NilValue) Type() string   { return "nil" }
func (*NilValue) String() string { return "nil" }

// Nil is the shared nil singleton; every expression that produces nil
// returns this instance.
var Nil = &NilValue{}

// True and False are shared boolean singletons.
var (
	True  = &BoolValue{Value: true}
	False = &BoolValue{Value: false}
)

// boolOf returns the shared True/False singleton for b.
func boolOf(b bool) *BoolValue {
	if b {
		return True
	}
	return False
}

// IsTruthy implements spec.md §3's truthiness rule: false and nil are
// falsy, everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case *NilValue:
		return false
	case *BoolValue:
		return val.Value
	default:
		return true
	}
}

// Equal implements spec.md §3's equality rule: structural for numbers,
// strings, bools and nil; identity (shared-reference equality) for
// functions, classes, instances and natives.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *NumberValue:
		bv, ok := b.(*NumberValue)
		return ok && av.Value == bv.Value
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	case *BoolValue:
		bv, ok := b.(*BoolValue)
		return ok && av.Value == bv.Value
	case *NilValue:
		_, ok := b.(*NilValue)
		return ok
	default:
		return a == b
	}
}
