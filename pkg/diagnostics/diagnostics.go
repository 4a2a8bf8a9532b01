// Package diagnostics is the process-wide sink for compile and runtime
// error reporting.
//
// tern's pipeline never panics its way out to the caller: the scanner,
// parser, and interpreter all funnel problems through a Reporter instead.
// A Reporter tracks two sticky flags so the driver can decide, after the
// fact, whether a run compiled and whether it blew up at runtime — exactly
// the signal `cmd/tern` needs to pick an exit code.
//
// Errors are reported through a shared sink rather than returned as Go
// errors, because the scanner and parser must keep going after a
// problem: one bad character or token shouldn't stop the rest of the
// source from being scanned or parsed.
package diagnostics

import (
	"fmt"
	"io"
)

// Reporter accumulates compile/runtime error state for one interpreter
// run. A REPL reuses a single Reporter across lines and clears both
// flags before each line, so one line's errors do not carry over to the
// next.
type Reporter struct {
	Out io.Writer // destination for `print` output
	Err io.Writer // destination for diagnostics

	hadCompileError bool
	hadRuntimeError bool
}

// New returns a Reporter writing to the given streams.
func New(out, err io.Writer) *Reporter {
	return &Reporter{Out: out, Err: err}
}

// HadCompileError reports whether any scan or parse error has been
// reported since the Reporter was created or ResetCompileError was last
// called.
func (r *Reporter) HadCompileError() bool { return r.hadCompileError }

// HadRuntimeError reports whether a runtime error has been reported.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// ResetCompileError clears the sticky compile-error flag. The REPL calls
// this between lines so that one bad line doesn't poison the rest of the
// session.
func (r *Reporter) ResetCompileError() { r.hadCompileError = false }

// ResetRuntimeError clears the sticky runtime-error flag.
func (r *Reporter) ResetRuntimeError() { r.hadRuntimeError = false }

// ScanError reports a lexical error at the given line. `<where>` is always
// empty for scanner errors.
func (r *Reporter) ScanError(line int, message string) {
	r.report(line, "", message)
	r.hadCompileError = true
}

// ParseError reports a syntax error located at a token. `atEOF` selects
// the " at end" form; otherwise the error is located " at '<lexeme>'".
func (r *Reporter) ParseError(line int, atEOF bool, lexeme, message string) {
	where := fmt.Sprintf(" at '%s'", lexeme)
	if atEOF {
		where = " at end"
	}
	r.report(line, where, message)
	r.hadCompileError = true
}

// RuntimeError reports an error raised while evaluating the program.
// Format: "<message>\n[line <n>]\n", distinct from the compile-error
// format because it carries no "<where>" clause.
func (r *Reporter) RuntimeError(line int, message string) {
	fmt.Fprintf(r.Err, "%s\n[line %d]\n", message, line)
	r.hadRuntimeError = true
}

// report writes a compile diagnostic in the exact form:
// "[line <n>] Error<where>: <message>"
func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Err, "[line %d] Error%s: %s\n", line, where, message)
}
