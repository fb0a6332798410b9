package interp

// Callable is implemented by every Value that can appear as the callee of
// a Call expression: user functions/methods, classes (instantiation), and
// natives (spec.md §3, §4.7).
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) Value
}

var (
	_ Callable = (*Function)(nil)
	_ Callable = (*Class)(nil)
	_ Callable = (*Native)(nil)
)

// Native is a host-implemented function exposed as a Lumen global, e.g.
// `clock` and `num_to_str` (spec.md §3, §4.7).
type Native struct {
	Name   string
	ArityN int
	Fn     func(in *Interpreter, args []Value) Value
}

func (*Native) Type() string     { return "native" }
func (n *Native) String() string { return "<native fn " + n.Name + ">" }
func (n *Native) Arity() int     { return n.ArityN }
func (n *Native) Call(in *Interpreter, args []Value) Value {
	return n.Fn(in, args)
}
