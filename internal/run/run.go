// Package run wires the scanner, parser, and interpreter together into
// tern's two execution modes: a one-shot file run and a persistent REPL.
// It is split into its own package so cmd/tern's cobra wiring stays thin.
package run

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kristofer/tern/pkg/ast"
	"github.com/kristofer/tern/pkg/diagnostics"
	"github.com/kristofer/tern/pkg/interpreter"
	"github.com/kristofer/tern/pkg/lexer"
	"github.com/kristofer/tern/pkg/parser"
)

// File reads path, decodes it as source text, and runs it once against a
// fresh Interpreter. It returns the process exit code for file runs: 65
// if a compile error was reported (the interpreter is never invoked in
// that case), 70 if a runtime error was reported, 0 otherwise. The only
// error it returns is a failure to read the file itself, which the
// caller reports separately.
func File(path string, stdout, stderr io.Writer) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	reporter := diagnostics.New(stdout, stderr)
	statements := parseSource(string(data), reporter)
	if reporter.HadCompileError() {
		return 65, nil
	}

	interp := interpreter.New(reporter)
	interp.Interpret(statements)
	if reporter.HadRuntimeError() {
		return 70, nil
	}
	return 0, nil
}

// REPL runs an interactive prompt: each line is scanned, parsed, and
// evaluated independently, but the Interpreter (and so its global
// environment) persists across lines. had_compile_error is cleared after
// every line so one bad line can't poison the rest of the session; a
// runtime error is reported but never terminates the loop. End-of-input
// on stdin exits normally.
func REPL(stdin io.Reader, stdout, stderr io.Writer) {
	reporter := diagnostics.New(stdout, stderr)
	interp := interpreter.New(reporter)
	scanner := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return
		}

		reporter.ResetCompileError()
		reporter.ResetRuntimeError()

		statements := parseSource(scanner.Text(), reporter)
		if reporter.HadCompileError() {
			continue
		}
		interp.Interpret(statements)
	}
}

// Tokens scans path and prints its token stream, one token per line. It
// is debug tooling over the scanner, not a language feature.
func Tokens(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	reporter := diagnostics.New(out, os.Stderr)
	l := lexer.New(string(data), reporter)
	for _, tok := range l.ScanTokens() {
		fmt.Fprintf(out, "%-4d %-14s %q\n", tok.Line, tok.Type, tok.Lexeme)
	}
	return nil
}

// parseSource runs the scanner then the parser over source, reporting any
// scan or parse errors through reporter. The caller decides what to do
// with reporter.HadCompileError() — a file run aborts, a REPL line is
// skipped.
func parseSource(source string, reporter *diagnostics.Reporter) []ast.Stmt {
	l := lexer.New(source, reporter)
	tokens := l.ScanTokens()
	p := parser.New(tokens, reporter)
	return p.Parse()
}
