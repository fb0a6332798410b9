package interp

import (
	"strconv"
	"time"
)

// registerBuiltins installs spec.md §4.7's two native globals into env:
// `clock()` and `num_to_str(x)`.
//
// clock() returns milliseconds, resolved against original_source/src/
// native_functions.rs's `t.as_millis() as f64` per SPEC_FULL.md §4 (the
// name alone is ambiguous between seconds and milliseconds; spec.md §9
// flags this as an open question the original source settles).
func registerBuiltins(env *Environment) {
	env.Define("clock", &Native{
		Name:   "clock",
		ArityN: 0,
		Fn: func(_ *Interpreter, _ []Value) Value {
			return &NumberValue{Value: float64(time.Now().UnixMilli())}
		},
	})

	env.Define("num_to_str", &Native{
		Name:   "num_to_str",
		ArityN: 1,
		Fn: func(in *Interpreter, args []Value) Value {
			n, ok := args[0].(*NumberValue)
			if !ok {
				return newError(in.currentPos(), "num_to_str", "num_to_str expects a number argument")
			}
			return &StringValue{Value: strconv.FormatFloat(n.Value, 'g', -1, 64)}
		},
	})
}
