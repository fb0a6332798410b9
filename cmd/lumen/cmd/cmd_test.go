package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it. Needed because the lex/parse/run commands
// print straight to os.Stdout with fmt.Println rather than through
// cobra's own OutOrStdout (matching go-dws's cmd/dwscript commands).
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	return <-done
}

// runCLI invokes rootCmd with args and returns stdout plus any execution
// error, resetting the per-command flag state each call so tests don't
// leak flags set by an earlier one.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var execErr error
	out := captureStdout(t, func() {
		rootCmd.SetArgs(args)
		execErr = rootCmd.Execute()
	})
	return out, execErr
}

func resetFlags() {
	lexEval, lexShowType, lexOnlyError = "", false, false
	parseEval = ""
	runEval, dumpAST, trace, maxCallDepth = "", false, false, 0
}
