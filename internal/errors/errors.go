// Package errors holds the fatal diagnostic types shared across the
// evaluator and the CLI: runtime errors and the internal-panic boundary.
// Lex and parse diagnostics live next to the phase that produces them
// (internal/lexer.LexError, internal/parser.ParseError) since neither
// needs to be constructed outside its own package; RuntimeError is
// exported here because the evaluator, the CLI exit-code mapper, and
// tests in other packages all need to construct and inspect it.
package errors

import (
	"fmt"

	"github.com/gophlox/glox/pkg/token"
)

// RuntimeError is a fatal error raised while evaluating a program: an
// undefined variable, a type mismatch in an operator, a non-callable call
// target, or an arity mismatch (SPEC_FULL.md §7). It always maps to exit
// code 70 at the CLI boundary.
type RuntimeError struct {
	Message string
	Pos     token.Position
}

func NewRuntimeError(pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Error renders `<message>\n[line L]`, the exact two-line form the `run`
// and `evaluate` subcommands write to stderr.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Pos.Line)
}

// InternalError wraps a recovered panic: a structural invariant the parser
// should have guaranteed (e.g. an AST node the evaluator doesn't know how
// to evaluate) was violated. It is reported with a prefix distinguishing
// it from an ordinary RuntimeError but still maps to exit code 70.
type InternalError struct {
	Cause any
	Pos   token.Position
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v\n[line %d]", e.Cause, e.Pos.Line)
}

// Recover turns a panic captured by the caller's deferred recover() into an
// *InternalError, leaving pos as the best-known current position. Callers
// use it as:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        err = errors.Recover(r, pos)
//	    }
//	}()
func Recover(recovered any, pos token.Position) *InternalError {
	return &InternalError{Cause: recovered, Pos: pos}
}

// ExitCode maps a diagnostic returned by the lex/parse/eval pipeline to the
// process exit code the CLI should use, per SPEC_FULL.md §6: 0 success, 65
// lex/parse error, 70 runtime or internal error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *RuntimeError, *InternalError:
		return 70
	default:
		return 65
	}
}
