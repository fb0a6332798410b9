// Package lumen is the public facade over the interpreter pipeline: the
// single boundary a host program (or the cmd/lumen CLI) uses to run
// source text without touching the internal scanner/parser/resolver/
// interp packages directly.
//
// Grounded on go-dws's pkg/dwscript facade (New(opts...) *Engine,
// functional options, engine.Eval(source) (*Result, error)) — go-dws's own
// copy of that package carries only its test suite in this snapshot, so
// the shape here is reconstructed from what those tests exercise
// (New(WithX(...)), engine.Eval returning a Result{Success, Output}),
// generalized to Lumen's smaller option set.
package lumen

import (
	"bytes"
	"io"

	"github.com/lumenlang/lumen/internal/errs"
	"github.com/lumenlang/lumen/internal/interp"
	"github.com/lumenlang/lumen/internal/lexer"
	"github.com/lumenlang/lumen/internal/parser"
	"github.com/lumenlang/lumen/internal/resolver"
)

// Result is the outcome of a single Engine.Eval call (spec.md §6/§7).
type Result struct {
	Success     bool
	Output      string
	Diagnostics []errs.Diagnostic
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithStdout directs `print` output to w instead of the default internal
// buffer (which is what makes Result.Output populated).
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithStderr is accepted for symmetry with go-dws's option set; Lumen's
// engine has no separate diagnostic stream of its own (diagnostics are
// returned via Result, not written). The Engine stores w but never writes
// to it and offers no accessor for it.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) { e.stderr = w }
}

// WithGlobal registers an additional native global once, when the first
// Eval creates the interpreter (later Evals share those globals),
// mirroring go-dws's RegisterFunction option scaled down to spec.md's
// single native-function surface (clock/num_to_str plus whatever a host
// program wants to add).
func WithGlobal(name string, value interp.Value) Option {
	return func(e *Engine) {
		e.extraGlobals = append(e.extraGlobals, namedGlobal{name, value})
	}
}

// WithMaxCallDepth overrides interp.DefaultMaxCallDepth (SPEC_FULL.md
// §2.4).
func WithMaxCallDepth(n int) Option {
	return func(e *Engine) { e.maxCallDepth = n }
}

type namedGlobal struct {
	name  string
	value interp.Value
}

// redirect is an io.Writer whose destination can be swapped between Eval
// calls, so a single long-lived interp.Interpreter (and its Globals) can
// be reused across calls — needed for the REPL to see variables declared
// on an earlier line — while each call still gets its own output capture
// when no WithStdout was given.
type redirect struct{ to io.Writer }

func (r *redirect) Write(p []byte) (int, error) { return r.to.Write(p) }

// Engine runs Lumen source through scan → parse → resolve → interpret,
// stopping at the first phase that reports errors (spec.md §7). A single
// Engine's Globals persist across Eval calls, so a REPL built on
// repeated calls behaves like spec.md §6's "read one line, execute,
// repeat" with variables and functions remaining visible to later lines.
type Engine struct {
	stdout       io.Writer
	stderr       io.Writer
	extraGlobals []namedGlobal
	maxCallDepth int

	out io.Writer
	in  *interp.Interpreter
}

// New creates an Engine. With no WithStdout option, `print` output is
// captured into an internal buffer per Eval call and surfaced via
// Result.Output.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) interpreter() *interp.Interpreter {
	if e.in != nil {
		return e.in
	}
	e.out = &redirect{to: io.Discard}
	e.in = interp.New(e.out)
	if e.maxCallDepth > 0 {
		e.in.SetMaxCallDepth(e.maxCallDepth)
	}
	for _, g := range e.extraGlobals {
		e.in.Globals.Define(g.name, g.value)
	}
	return e.in
}

// Eval runs source through the full pipeline and returns the outcome. The
// returned error is always nil: scan/parse/resolve/runtime failures are
// reported through Result.Diagnostics with Result.Success == false,
// matching spec.md §7's contract that every phase's failure is reportable
// rather than a Go error. Panics are not recovered.
func (e *Engine) Eval(source string) (*Result, error) {
	in := e.interpreter()

	var buf bytes.Buffer
	dest := io.Writer(&buf)
	if e.stdout != nil {
		dest = e.stdout
	}
	e.out.(*redirect).to = dest

	lx := lexer.New(source)
	p := parser.New(lx)
	stmts := p.Parse()

	if scanErrs := lx.Errors(); len(scanErrs) > 0 {
		return &Result{Diagnostics: scanErrs}, nil
	}
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		return &Result{Diagnostics: parseErrs}, nil
	}

	res := resolver.New()
	locals := res.Resolve(stmts)
	if resErrs := res.Errors(); len(resErrs) > 0 {
		return &Result{Diagnostics: resErrs}, nil
	}

	if diag := in.Run(stmts, locals); diag != nil {
		result := &Result{Diagnostics: []errs.Diagnostic{*diag}}
		if e.stdout == nil {
			result.Output = buf.String()
		}
		return result, nil
	}

	result := &Result{Success: true}
	if e.stdout == nil {
		result.Output = buf.String()
	}
	return result, nil
}
