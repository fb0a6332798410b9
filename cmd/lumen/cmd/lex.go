package cmd

import (
	"fmt"
	"os"

	"github.com/lumenlang/lumen/internal/lexer"
	"github.com/lumenlang/lumen/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEval      string
	lexShowType  bool
	lexOnlyError bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lumen file or expression",
	Long: `Tokenize a Lumen program and print the resulting tokens, one per
line. Useful for debugging the scanner.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyError, "only-errors", false, "show only illegal tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	input, _, err := readSource(lexEval, args)
	if err != nil {
		return err
	}
	if input == "" && lexEval == "" && len(args) == 0 {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	l := lexer.New(input)
	errorCount := 0
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			errorCount++
		}
		if !lexOnlyError || tok.Type == token.ILLEGAL {
			printToken(tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}

	for _, d := range l.Errors() {
		fmt.Fprintln(os.Stderr, d.Format(input))
	}
	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	if lexShowType {
		fmt.Printf("[%-14s] %s\n", tok.Type, tok)
		return
	}
	fmt.Println(tok)
}

// readSource resolves the source text from either -e/--eval or a single
// file argument, matching go-dws's lex/run/parse commands' input handling.
func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", nil
}
