package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/lexer"
	"github.com/lumenlang/lumen/internal/parser"
	"github.com/lumenlang/lumen/internal/resolver"
	"github.com/lumenlang/lumen/pkg/lumen"
	"github.com/spf13/cobra"
)

var (
	runEval      string
	dumpAST      bool
	trace        bool
	maxCallDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lumen file or expression",
	Long: `Execute a Lumen program from a file or inline expression. With no
file and no -e, starts an interactive REPL.

Examples:
  lumen run script.lumen
  lumen run -e "print 1 + 2;"
  lumen run --dump-ast script.lumen
  lumen run --trace script.lumen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace phase timings to stderr")
	runCmd.Flags().IntVar(&maxCallDepth, "max-call-depth", 0, "override the call-depth guard (0 keeps the default)")
}

func runScript(_ *cobra.Command, args []string) error {
	if runEval == "" && len(args) == 0 {
		return runREPL()
	}

	input, filename, err := readSource(runEval, args)
	if err != nil {
		return err
	}
	return runSource(input, filename)
}

func runSource(input, filename string) error {
	opts := []lumen.Option{}
	if maxCallDepth > 0 {
		opts = append(opts, lumen.WithMaxCallDepth(maxCallDepth))
	}

	if dumpAST || trace {
		if err := dumpOrTrace(input, filename); err != nil {
			return err
		}
	}

	opts = append(opts, lumen.WithStdout(os.Stdout))
	engine := lumen.New(opts...)
	result, err := engine.Eval(input)
	if err != nil {
		return err
	}
	if !result.Success {
		for _, d := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, d.Format(input))
		}
		return fmt.Errorf("%s: failed with %d error(s)", filename, len(result.Diagnostics))
	}
	return nil
}

// dumpOrTrace re-runs scan/parse/resolve standalone (outside the engine
// facade) so --dump-ast can print the AST and --trace can report phase
// timings without the facade needing to expose those intermediate stages
// itself (SPEC_FULL.md §2.1, §2.5, grounded on go-dws run.go's --dump-ast
// and --trace handling).
func dumpOrTrace(input, filename string) error {
	start := time.Now()
	l := lexer.New(input)
	p := parser.New(l)
	stmts := p.Parse()
	parseDone := time.Now()

	if scanErrs := l.Errors(); len(scanErrs) > 0 {
		return reportDiagnostics(scanErrs, input, filename)
	}
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		return reportDiagnostics(parseErrs, input, filename)
	}

	if dumpAST {
		fmt.Println(ast.Print(stmts))
	}

	res := resolver.New()
	res.Resolve(stmts)
	resolveDone := time.Now()

	if resErrs := res.Errors(); len(resErrs) > 0 {
		return reportDiagnostics(resErrs, input, filename)
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace] parsed %d statement(s) in %s\n", len(stmts), parseDone.Sub(start))
		fmt.Fprintf(os.Stderr, "[trace] resolved in %s\n", resolveDone.Sub(parseDone))
	}
	return nil
}

// runREPL reads Lumen statements from stdin one line at a time, printing
// diagnostics on error without exiting (SPEC_FULL.md §2.1: "the REPL never
// exits on error").
func runREPL() error {
	engine := lumen.New(lumen.WithStdout(os.Stdout))
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			result, err := engine.Eval(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else if !result.Success {
				for _, d := range result.Diagnostics {
					fmt.Fprintln(os.Stderr, d.Format(line))
				}
			}
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return nil
}
