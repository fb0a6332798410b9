package cmd

import (
	"strings"
	"testing"
)

func TestParseEvalPrintsAST(t *testing.T) {
	out, err := runCLI(t, "parse", "-e", `print 1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(print (+ 1 2))\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestParseReportsSyntaxError(t *testing.T) {
	_, err := runCLI(t, "parse", "-e", `print 1`)
	if err == nil {
		t.Fatal("expected a parse error for a missing semicolon")
	}
	if !strings.Contains(err.Error(), "error(s)") {
		t.Fatalf("expected the error count summary, got %v", err)
	}
}

func TestParseWithNoInputIsError(t *testing.T) {
	_, err := runCLI(t, "parse")
	if err == nil {
		t.Fatal("expected an error when neither -e nor a file is given")
	}
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Fatalf("expected version output to contain %q, got %q", Version, out)
	}
}
