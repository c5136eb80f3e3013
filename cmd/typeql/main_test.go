package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it. The CLI commands print with plain fmt.Println,
// so this is the only way to observe their output without changing them.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("unexpected error creating pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestParseCmd_PrintsStructure(t *testing.T) {
	cmd := parseCmd()
	cmd.SetArgs([]string{`insert $x isa person;`})
	out := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(out, "insert") || !strings.Contains(out, "$x isa person") {
		t.Fatalf("unexpected CLI output: %q", out)
	}
}

func TestFmtCmd_CompactFlag(t *testing.T) {
	cmd := fmtCmd()
	cmd.SetArgs([]string{`insert $x isa person;`, "--compact"})
	out := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Fatalf("expected --compact output on a single line, got %q", out)
	}
}

func TestParseListCmd_PrintsEachQuery(t *testing.T) {
	cmd := parseListCmd()
	cmd.SetArgs([]string{`insert $x isa person; insert $y isa company;`})
	out := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(out, "query 1") || !strings.Contains(out, "query 2") {
		t.Fatalf("expected both queries numbered in output, got %q", out)
	}
}

func TestParseCmd_SyntaxErrorReturnsError(t *testing.T) {
	cmd := parseCmd()
	cmd.SetArgs([]string{`insert $x isa ;`})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}
