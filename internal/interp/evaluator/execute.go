package evaluator

import (
	"fmt"

	"github.com/gophlox/glox/internal/ast"
	"github.com/gophlox/glox/internal/interp/runtime"
)

// execute runs a single statement in the interpreter's current scope,
// returning a controlSignal that callers (block/if/while/Interpret) must
// check before continuing to the next statement.
func (i *Interpreter) execute(stmt ast.Statement) (controlSignal, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.eval(s.Expr)
		return noSignal, err

	case *ast.Print:
		v, err := i.eval(s.Expr)
		if err != nil {
			return noSignal, err
		}
		fmt.Fprintln(i.out, v.String())
		return noSignal, nil

	case *ast.Var:
		var value runtime.Value = runtime.Nil{}
		if s.Initializer != nil {
			v, err := i.eval(s.Initializer)
			if err != nil {
				return noSignal, err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return noSignal, nil

	case *ast.Block:
		return i.executeBlock(s.Statements, runtime.NewEnclosedEnvironment(i.env))

	case *ast.If:
		cond, err := i.eval(s.Condition)
		if err != nil {
			return noSignal, err
		}
		if runtime.IsTruthy(cond) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return noSignal, nil

	case *ast.While:
		for {
			cond, err := i.eval(s.Condition)
			if err != nil {
				return noSignal, err
			}
			if !runtime.IsTruthy(cond) {
				return noSignal, nil
			}
			signal, err := i.execute(s.Body)
			if err != nil || signal.kind != signalNone {
				return signal, err
			}
		}

	case *ast.Function:
		fn := &Function{Declaration: s, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return noSignal, nil

	case *ast.Return:
		var value runtime.Value = runtime.Nil{}
		if s.Value != nil {
			v, err := i.eval(s.Value)
			if err != nil {
				return noSignal, err
			}
			value = v
		}
		return returnSignal(value), nil

	default:
		panic(fmt.Sprintf("evaluator: unhandled statement type %T", stmt))
	}
}

// executeBlock runs stmts against scope, restoring the interpreter's
// previous scope on every exit path (normal completion, a surfacing
// Return, or an error) so a caller further up the stack keeps evaluating
// in its own scope.
func (i *Interpreter) executeBlock(stmts []ast.Statement, scope *runtime.Environment) (controlSignal, error) {
	previous := i.env
	i.env = scope
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		signal, err := i.execute(stmt)
		if err != nil || signal.kind != signalNone {
			return signal, err
		}
	}
	return noSignal, nil
}
