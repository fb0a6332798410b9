// Package errs formats and accumulates the diagnostics produced by each
// phase of the pipeline (scan, parse, resolve, interpret), grounded on
// go-dws's internal/errors package: the same line-extraction-plus-caret
// rendering, generalized to the error taxonomy of spec.md §7.
package errs

import (
	"fmt"
	"strings"

	"github.com/lumenlang/lumen/pkg/token"
)

// Kind classifies a Diagnostic by which phase raised it. ReturnCarrier is
// deliberately not a Kind: spec.md §7 is explicit that it is a non-local
// control transfer, not an error, and it never reaches a Reporter.
type Kind int

const (
	ScanError Kind = iota
	ParseError
	ResolveError
	RuntimeError
	SystemError
)

func (k Kind) String() string {
	switch k {
	case ScanError:
		return "scan error"
	case ParseError:
		return "parse error"
	case ResolveError:
		return "resolve error"
	case RuntimeError:
		return "runtime error"
	case SystemError:
		return "system error"
	default:
		return "error"
	}
}

// Diagnostic is a single reportable failure, carrying enough context to
// render the "line, nearest lexeme, message" contract spec.md §6 requires
// of standard error output.
type Diagnostic struct {
	Kind    Kind
	Pos     token.Position
	Lexeme  string // nearest lexeme; empty when there is none (at EOF, scan errors), which Format renders as "end"
	Message string
}

// Error implements the error interface so a Diagnostic can be returned
// directly from interpreter evaluation paths.
func (d Diagnostic) Error() string {
	return d.Format("")
}

// Format renders the diagnostic. When source is non-empty, the offending
// line is quoted above a caret, mirroring go-dws's CompilerError.Format.
// Color is intentionally never applied here; a caller that wants ANSI
// color decides that itself, the same split go-dws's Format(color bool)
// makes.
func (d Diagnostic) Format(source string) string {
	var sb strings.Builder

	where := "end"
	if d.Lexeme != "" {
		where = fmt.Sprintf("%q", d.Lexeme)
	}
	fmt.Fprintf(&sb, "[line %d] %s at %s: %s", d.Pos.Line, d.Kind, where, d.Message)

	if source == "" {
		return sb.String()
	}
	lines := strings.Split(source, "\n")
	if d.Pos.Line < 1 || d.Pos.Line > len(lines) {
		return sb.String()
	}
	sourceLine := lines[d.Pos.Line-1]
	prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
	sb.WriteString("\n")
	sb.WriteString(prefix)
	sb.WriteString(sourceLine)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(prefix)))
	sb.WriteString("^")
	return sb.String()
}

// Reporter accumulates diagnostics across a single phase (or the whole
// pipeline) and reports success iff none occurred, matching spec.md §7:
// "A phase emits its diagnostics then reports success iff none occurred."
type Reporter struct {
	diagnostics []Diagnostic
}

// Add appends a diagnostic.
func (r *Reporter) Add(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Report is a convenience wrapper around Add for constructing the
// Diagnostic inline.
func (r *Reporter) Report(kind Kind, pos token.Position, lexeme, message string) {
	r.Add(Diagnostic{Kind: kind, Pos: pos, Lexeme: lexeme, Message: message})
}

// HasErrors reports whether any diagnostic has been recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}
