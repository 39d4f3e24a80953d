// Package evaluator walks the AST produced by internal/parser and
// executes it against an internal/interp/runtime.Environment chain.
package evaluator

import (
	"io"
	"os"

	"github.com/gophlox/glox/internal/ast"
	stderrors "github.com/gophlox/glox/internal/errors"
	"github.com/gophlox/glox/internal/interp/runtime"
	"github.com/gophlox/glox/pkg/token"
)

// Interpreter holds the state threaded through one evaluation run: the
// global scope, the currently active scope, where `print` writes, and the
// active call stack used for --trace diagnostics.
type Interpreter struct {
	Globals *runtime.Environment
	env     *runtime.Environment
	out     io.Writer
	stack   stderrors.StackTrace

	// Trace, when non-nil, is called before each top-level statement with
	// that statement's position and the active call stack; it backs
	// the `run --trace` CLI flag (§6/§9).
	Trace func(pos token.Position, stack stderrors.StackTrace)
}

// New creates an Interpreter with a fresh global scope, `clock` predefined,
// and `print` output directed at out (os.Stdout if nil).
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	globals := runtime.NewEnvironment()
	interp := &Interpreter{Globals: globals, env: globals, out: out}
	globals.Define("clock", newClockNative())
	return interp
}

// Env returns the interpreter's currently active scope. The CLI's
// `--dump-env` flag reads Globals directly rather than calling Env.
func (i *Interpreter) Env() *runtime.Environment {
	return i.env
}

// Interpret runs prog's statements in order against the global scope,
// returning the first error encountered (fatal; evaluation stops there).
// A panic escaping statement execution — a structural invariant the parser
// should have guaranteed — is recovered and reported as *errors.InternalError.
func (i *Interpreter) Interpret(prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pos := token.Position{}
			if len(prog.Statements) > 0 {
				pos = prog.Pos()
			}
			err = stderrors.Recover(r, pos)
		}
	}()

	for _, stmt := range prog.Statements {
		if i.Trace != nil {
			i.Trace(stmt.Pos(), i.stack)
		}
		signal, execErr := i.execute(stmt)
		if execErr != nil {
			return execErr
		}
		if signal.kind == signalReturn {
			// A bare top-level `return` is accepted by the grammar (it is
			// just a statement); it simply ends the program early.
			return nil
		}
	}
	return nil
}

// EvalExpression evaluates a single standalone expression against the
// interpreter's current scope, used by the `evaluate` CLI subcommand. A
// panic escaping evaluation is recovered and reported as
// *errors.InternalError, as in Interpret.
func (i *Interpreter) EvalExpression(expr ast.Expression) (value runtime.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, err = nil, stderrors.Recover(r, expr.Pos())
		}
	}()
	return i.eval(expr)
}
