package evaluator

import "github.com/gophlox/glox/internal/interp/runtime"

type signalKind int

const (
	// signalNone means the statement ran to completion with no unwind in
	// progress; execution continues normally with the next statement.
	signalNone signalKind = iota
	// signalReturn means a `return` is unwinding toward the nearest
	// enclosing function call (or, at the top level, ending the program).
	signalReturn
)

// controlSignal is the first-class result every statement evaluator
// returns alongside an error, per SPEC_FULL.md §4.5/§9: `return` is
// surfaced as data threaded through ordinary return values rather than a
// panic/recover or a sentinel error, so every composing statement (block,
// if, while) need only check Kind and propagate.
type controlSignal struct {
	kind  signalKind
	value runtime.Value
}

var noSignal = controlSignal{kind: signalNone}

func returnSignal(v runtime.Value) controlSignal {
	return controlSignal{kind: signalReturn, value: v}
}
