// Package cmd implements the lumen command-line tree, grounded on go-dws's
// cmd/dwscript/cmd (the same root/run/lex/parse/version command shape,
// scaled to Lumen's much smaller surface — no units, no type-checking
// flag, no compile modes).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags (-ldflags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen interpreter",
	Long: `lumen is a tree-walking interpreter for Lumen, a small dynamically
typed, class-based scripting language with closures and single
inheritance.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
