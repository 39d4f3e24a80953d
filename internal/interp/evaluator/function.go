package evaluator

import (
	"fmt"
	"time"

	"github.com/gophlox/glox/internal/ast"
	stderrors "github.com/gophlox/glox/internal/errors"
	"github.com/gophlox/glox/internal/interp/runtime"
	"github.com/gophlox/glox/pkg/token"
)

// Function is a user-defined function: its declaration plus the
// environment in effect when it was declared, giving it a lexical closure
// over whatever scope it was defined in (§4.5).
type Function struct {
	Declaration *ast.Function
	Closure     *runtime.Environment
}

func (*Function) Type() string     { return "function" }
func (f *Function) Arity() int     { return len(f.Declaration.Params) }
func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme) }

// NativeFunction wraps a Go function as a callable value, used for `clock`.
type NativeFunction struct {
	Name    string
	ArgSize int
	Fn      func(args []runtime.Value) (runtime.Value, error)
}

func (*NativeFunction) Type() string     { return "native function" }
func (n *NativeFunction) Arity() int     { return n.ArgSize }
func (n *NativeFunction) String() string { return fmt.Sprintf("<native fn %s>", n.Name) }

var (
	_ runtime.Callable = (*Function)(nil)
	_ runtime.Callable = (*NativeFunction)(nil)
)

func newClockNative() *NativeFunction {
	return &NativeFunction{
		Name:    "clock",
		ArgSize: 0,
		Fn: func([]runtime.Value) (runtime.Value, error) {
			return runtime.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}

// evalCall evaluates a Call expression: the callee, then each argument
// left-to-right, then dispatches to the matching Callable implementation.
func (i *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(e.Args))
	for idx, argExpr := range e.Args {
		v, err := i.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	switch callee := callee.(type) {
	case *Function:
		if len(args) != callee.Arity() {
			return nil, stderrors.NewRuntimeError(e.Paren.Pos, "Expected %d arguments but got %d.", callee.Arity(), len(args))
		}
		return i.callUserFunction(callee, args, e.Paren.Pos)

	case *NativeFunction:
		if len(args) != callee.Arity() {
			return nil, stderrors.NewRuntimeError(e.Paren.Pos, "Expected %d arguments but got %d.", callee.Arity(), len(args))
		}
		return callee.Fn(args)

	default:
		return nil, stderrors.NewRuntimeError(e.Paren.Pos, "Can only call functions and classes.")
	}
}

// callUserFunction builds a fresh child scope under the function's
// captured closure, binds the function's own name to itself so the body
// can recurse, binds parameters to arguments, and executes the body as a
// block.
func (i *Interpreter) callUserFunction(fn *Function, args []runtime.Value, callPos token.Position) (runtime.Value, error) {
	callScope := runtime.NewEnclosedEnvironment(fn.Closure)
	callScope.Define(fn.Declaration.Name.Lexeme, fn)
	for idx, param := range fn.Declaration.Params {
		callScope.Define(param.Lexeme, args[idx])
	}

	previousStack := i.stack
	i.stack = i.stack.Push(stderrors.StackFrame{FunctionName: fn.Declaration.Name.Lexeme, Pos: callPos})
	defer func() { i.stack = previousStack }()

	signal, err := i.executeBlock(fn.Declaration.Body, callScope)
	if err != nil {
		return nil, err
	}
	if signal.kind == signalReturn {
		return signal.value, nil
	}
	return runtime.Nil{}, nil
}
