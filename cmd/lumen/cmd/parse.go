package cmd

import (
	"fmt"
	"os"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/errs"
	"github.com/lumenlang/lumen/internal/lexer"
	"github.com/lumenlang/lumen/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lumen file and print its AST",
	Long: `Parse a Lumen program and pretty-print the resulting AST as
s-expressions. Useful for debugging the parser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}
	if input == "" && parseEval == "" && len(args) == 0 {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	l := lexer.New(input)
	p := parser.New(l)
	stmts := p.Parse()

	if scanErrs := l.Errors(); len(scanErrs) > 0 {
		return reportDiagnostics(scanErrs, input, filename)
	}
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		return reportDiagnostics(parseErrs, input, filename)
	}

	fmt.Print(ast.Print(stmts))
	return nil
}

func reportDiagnostics(diags []errs.Diagnostic, input, filename string) error {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Format(input))
	}
	return fmt.Errorf("%s: %d error(s)", filename, len(diags))
}
