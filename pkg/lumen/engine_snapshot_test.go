package lumen

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lumenlang/lumen/internal/interp"
)

// eval runs source through a fresh Engine and returns a single string
// combining its captured output and diagnostics, suitable for snapshotting.
func eval(t *testing.T, source string) string {
	t.Helper()
	engine := New()
	result, err := engine.Eval(source)
	if err != nil {
		t.Fatalf("unexpected system error: %v", err)
	}
	if result.Success {
		return result.Output
	}
	out := "FAILED:\n"
	for _, d := range result.Diagnostics {
		out += d.Error() + "\n"
	}
	return out
}

// TestEndToEndScenarios covers the canonical scenarios: arithmetic/string
// concatenation, closures over a mutable cell, scope shadowing, inheritance
// with super, initializers returning the instance, and recursive fibonacci.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{
			name:   "arithmetic_and_concat",
			source: `print 1 + 2; print "a" + "b";`,
		},
		{
			name: "closure_captures_mutable_cell",
			source: `
				fun makeCounter() {
					var i = 0;
					fun count() { i = i + 1; return i; }
					return count;
				}
				var c = makeCounter();
				print c(); print c(); print c();
			`,
		},
		{
			name: "scope_shadowing",
			source: `
				var a = "global";
				{
					fun show() { print a; }
					show();
					var a = "local";
					show();
				}
			`,
		},
		{
			name: "inheritance_with_super",
			source: `
				class A { greet() { print "A"; } }
				class B < A { greet() { super.greet(); print "B"; } }
				B().greet();
			`,
		},
		{
			name: "initializer_returns_this",
			source: `
				class P { init(x) { this.x = x; } }
				var p = P(42);
				print p.x;
			`,
		},
		{
			name:   "fibonacci",
			source: `fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } print fib(10);`,
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, s.name, eval(t, s.source))
		})
	}
}

func TestErrorPathScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{"undefined_variable", `print nope;`},
		{"division_by_zero", `print 1 / 0;`},
		{"arity_mismatch", `fun f(a, b) { return a + b; } f(1);`},
		{"init_returns_value", `class C { init() { return 1; } }`},
		{"self_referential_initializer", `var a = a;`},
		{"super_without_superclass", `class C { m() { super.m(); } }`},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, s.name, eval(t, s.source))
		})
	}
}

func TestReplLikeStatePersistsAcrossEvalCalls(t *testing.T) {
	engine := New()
	if _, err := engine.Eval(`var x = 1;`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := engine.Eval(`print x;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Output != "1\n" {
		t.Fatalf("expected 'x' to persist across Eval calls, got %+v", result)
	}
}

func TestWithGlobalRegistersANativeBeforeEval(t *testing.T) {
	// Exercises the WithGlobal option with a name that is not a builtin,
	// confirming host-registered globals are visible from Eval.
	engine := New(WithGlobal("answer", &interp.NumberValue{Value: 42}))
	result, err := engine.Eval(`print answer;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Output != "42\n" {
		t.Fatalf("expected host-registered global to be visible, got %+v", result)
	}
}
