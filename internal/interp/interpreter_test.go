package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumenlang/lumen/internal/lexer"
	"github.com/lumenlang/lumen/internal/parser"
	"github.com/lumenlang/lumen/internal/resolver"
)

// run scans, parses, resolves and interprets src, returning the captured
// `print` output and the diagnostic message of the first failure at any
// phase (empty string on success).
func run(t *testing.T, src string) (output string, errMsg string) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	stmts := p.Parse()
	if errs := l.Errors(); len(errs) > 0 {
		return "", errs[0].Message
	}
	if errs := p.Errors(); len(errs) > 0 {
		return "", errs[0].Message
	}

	r := resolver.New()
	locals := r.Resolve(stmts)
	if errs := r.Errors(); len(errs) > 0 {
		return "", errs[0].Message
	}

	var buf bytes.Buffer
	in := New(&buf)
	if diag := in.Run(stmts, locals); diag != nil {
		return buf.String(), diag.Message
	}
	return buf.String(), ""
}

func TestArithmeticAndPrint(t *testing.T) {
	out, errMsg := run(t, `print 1 + 2 * 3;`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, errMsg := run(t, `print "foo" + "bar";`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "foobar\n" {
		t.Fatalf("got %q, want %q", out, "foobar\n")
	}
}

func TestMixedPlusOperandsIsRuntimeError(t *testing.T) {
	_, errMsg := run(t, `print "foo" + 1;`)
	if errMsg == "" {
		t.Fatal("expected a runtime error mixing string and number with '+'")
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, errMsg := run(t, `print 1 / 0;`)
	if errMsg == "" {
		t.Fatal("expected a runtime error for division by zero")
	}
}

func TestNumberDisplaySuppressesTrailingZero(t *testing.T) {
	out, errMsg := run(t, `print 6 / 2;`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestClosureCapturesEnclosingVariable(t *testing.T) {
	out, errMsg := run(t, `
		fun makeCounter() {
			var i = 0;
			fun counter() {
				i = i + 1;
				print i;
			}
			return counter;
		}
		var c = makeCounter();
		c();
		c();
		c();
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestRecursiveFunction(t *testing.T) {
	out, errMsg := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "55\n" {
		t.Fatalf("got %q, want %q", out, "55\n")
	}
}

func TestExceedingMaxCallDepthIsRuntimeError(t *testing.T) {
	l := lexer.New(`
		fun recurse(n) {
			return recurse(n + 1);
		}
		recurse(0);
	`)
	p := parser.New(l)
	stmts := p.Parse()
	r := resolver.New()
	locals := r.Resolve(stmts)

	var buf bytes.Buffer
	in := New(&buf)
	in.SetMaxCallDepth(10)
	diag := in.Run(stmts, locals)
	if diag == nil {
		t.Fatal("expected a runtime error when exceeding max call depth")
	}
	if !strings.Contains(diag.Message, "max depth") {
		t.Fatalf("expected a max-depth error message, got %q", diag.Message)
	}
}

func TestClassFieldsAndMethods(t *testing.T) {
	out, errMsg := run(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}
			greet() {
				print "hello, " + this.name;
			}
		}
		var g = Greeter("world");
		g.greet();
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "hello, world\n" {
		t.Fatalf("got %q, want %q", out, "hello, world\n")
	}
}

func TestFieldLookupWinsOverMethod(t *testing.T) {
	out, errMsg := run(t, `
		class C {
			m() { return "method"; }
		}
		var c = C();
		c.m = "field";
		print c.m;
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "field\n" {
		t.Fatalf("got %q, want %q", out, "field\n")
	}
}

func TestInheritanceAndSuper(t *testing.T) {
	out, errMsg := run(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "woof";
			}
		}
		Dog().speak();
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "...\nwoof\n" {
		t.Fatalf("got %q, want %q", out, "...\nwoof\n")
	}
}

func TestInitializerAlwaysReturnsThis(t *testing.T) {
	out, errMsg := run(t, `
		class C {
			init() {
				return;
			}
		}
		var c = C();
		print c;
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "C instance\n" {
		t.Fatalf("got %q, want %q", out, "C instance\n")
	}
}

func TestErrorInsideInitializerHaltsConstruction(t *testing.T) {
	out, errMsg := run(t, `
		class C {
			init() {
				this.x = 1 / 0;
			}
		}
		var c = C();
		print "unreachable";
	`)
	if errMsg == "" {
		t.Fatalf("expected a runtime error from the failing initializer, got output %q", out)
	}
	if out != "" {
		t.Fatalf("expected no output once the initializer fails, got %q", out)
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, errMsg := run(t, `print nope;`)
	if errMsg == "" {
		t.Fatal("expected a runtime error for an undefined variable")
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, errMsg := run(t, `var x = 1; x();`)
	if errMsg == "" {
		t.Fatal("expected a runtime error calling a non-callable value")
	}
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, errMsg := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if errMsg == "" {
		t.Fatal("expected a runtime error for an arity mismatch")
	}
}

func TestNumToStrBuiltin(t *testing.T) {
	out, errMsg := run(t, `print num_to_str(3.5);`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "3.5\n" {
		t.Fatalf("got %q, want %q", out, "3.5\n")
	}
}

func TestClockBuiltinReturnsANumber(t *testing.T) {
	out, errMsg := run(t, `print clock() >= 0;`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "true\n" {
		t.Fatalf("got %q, want %q", out, "true\n")
	}
}

func TestWhileLoop(t *testing.T) {
	out, errMsg := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestForLoop(t *testing.T) {
	out, errMsg := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestBlockScopingDoesNotLeakOut(t *testing.T) {
	_, errMsg := run(t, `
		{
			var a = 1;
		}
		print a;
	`)
	if errMsg == "" {
		t.Fatal("expected an undefined-variable error for 'a' after its block ended")
	}
}
