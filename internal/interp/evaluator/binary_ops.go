package evaluator

import (
	"github.com/gophlox/glox/internal/ast"
	stderrors "github.com/gophlox/glox/internal/errors"
	"github.com/gophlox/glox/internal/interp/runtime"
	"github.com/gophlox/glox/pkg/token"
)

func (i *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(runtime.Number)
		if !ok {
			return nil, stderrors.NewRuntimeError(e.Operator.Pos, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return runtime.Bool(!runtime.IsTruthy(right)), nil
	default:
		panic("evaluator: unknown unary operator '" + e.Operator.Lexeme + "'")
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.EQUAL_EQUAL:
		return runtime.Bool(runtime.IsEqual(left, right)), nil
	case token.BANG_EQUAL:
		return runtime.Bool(!runtime.IsEqual(left, right)), nil

	case token.PLUS:
		return addValues(left, right, e.Operator.Pos)

	case token.MINUS:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case token.STAR:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return l * r, nil

	case token.SLASH:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return l / r, nil

	case token.GREATER:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(l > r), nil

	case token.GREATER_EQUAL:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(l >= r), nil

	case token.LESS:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(l < r), nil

	case token.LESS_EQUAL:
		l, r, err := numberOperands(left, right, e.Operator.Pos)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(l <= r), nil

	default:
		panic("evaluator: unknown binary operator '" + e.Operator.Lexeme + "'")
	}
}

// addValues implements `+`'s dual role: numeric addition or string
// concatenation, per SPEC_FULL.md §4.5. Any other operand combination is a
// runtime error.
func addValues(left, right runtime.Value, pos token.Position) (runtime.Value, error) {
	if ln, ok := left.(runtime.Number); ok {
		if rn, ok := right.(runtime.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(runtime.String); ok {
		if rs, ok := right.(runtime.String); ok {
			return ls + rs, nil
		}
	}
	return nil, stderrors.NewRuntimeError(pos, "Operands must be two numbers or two strings.")
}

func numberOperands(left, right runtime.Value, pos token.Position) (runtime.Number, runtime.Number, error) {
	l, ok := left.(runtime.Number)
	if !ok {
		return 0, 0, stderrors.NewRuntimeError(pos, "Operands must be numbers.")
	}
	r, ok := right.(runtime.Number)
	if !ok {
		return 0, 0, stderrors.NewRuntimeError(pos, "Operands must be numbers.")
	}
	return l, r, nil
}
