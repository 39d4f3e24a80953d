package evaluator

import (
	"fmt"

	"github.com/gophlox/glox/internal/ast"
	stderrors "github.com/gophlox/glox/internal/errors"
	"github.com/gophlox/glox/internal/interp/runtime"
)

// eval evaluates expr in the interpreter's current scope.
func (i *Interpreter) eval(expr ast.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Grouping:
		return i.eval(e.Expression)

	case *ast.Variable:
		v, err := i.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, stderrors.NewRuntimeError(e.Name.Pos, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Assign:
		value, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(e.Name.Lexeme, value); err != nil {
			return nil, stderrors.NewRuntimeError(e.Name.Pos, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Call:
		return i.evalCall(e)

	default:
		panic(fmt.Sprintf("evaluator: unhandled expression type %T", expr))
	}
}

func literalValue(lit *ast.Literal) runtime.Value {
	switch v := lit.Value.(type) {
	case nil:
		return runtime.Nil{}
	case bool:
		return runtime.Bool(v)
	case float64:
		return runtime.Number(v)
	case string:
		return runtime.String(v)
	default:
		panic(fmt.Sprintf("evaluator: unhandled literal payload type %T", lit.Value))
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (runtime.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Lexeme == "or" {
		if runtime.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	}
	return i.eval(e.Right)
}
