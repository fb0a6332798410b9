package interp

import (
	"fmt"

	"github.com/lumenlang/lumen/pkg/token"
)

// ReturnValue is the non-local control transfer spec.md §7 calls the
// "return carrier": it wraps the value a `return` statement produced and
// propagates up through block/statement evaluation exactly like an error
// would, but is caught exclusively by function-call machinery (Function.Call
// in function.go) rather than reported as a diagnostic.
type ReturnValue struct {
	Value Value
}

func (*ReturnValue) Type() string     { return "return" }
func (r *ReturnValue) String() string { return r.Value.String() }

// ErrorValue is a runtime-error sentinel, mirroring go-dws's
// internal/interp/errors.go ErrorValue + isError idiom: rather than
// threading (Value, error) through every Eval call, a runtime failure is
// just another Value that every statement/block boundary checks for and
// re-propagates unchanged.
type ErrorValue struct {
	Message string
	Pos     token.Position
	Lexeme  string
}

func (*ErrorValue) Type() string     { return "error" }
func (e *ErrorValue) String() string { return "error: " + e.Message }

func newError(pos token.Position, lexeme, format string, args ...any) *ErrorValue {
	return &ErrorValue{Message: fmt.Sprintf(format, args...), Pos: pos, Lexeme: lexeme}
}

// isError reports whether v is a runtime-error sentinel.
func isError(v Value) bool {
	_, ok := v.(*ErrorValue)
	return ok
}

// isReturn reports whether v is a return-carrier sentinel.
func isReturn(v Value) bool {
	_, ok := v.(*ReturnValue)
	return ok
}

// isSignal reports whether v is either sentinel kind; statement/block
// execution stops and propagates upward on either.
func isSignal(v Value) bool {
	return isError(v) || isReturn(v)
}
