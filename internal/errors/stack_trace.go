package errors

import (
	"fmt"
	"strings"

	"github.com/gophlox/glox/pkg/token"
)

// StackFrame is one active call, tracked by the evaluator and handed to
// the --trace hook, which logs the stack's depth.
type StackFrame struct {
	FunctionName string
	Pos          token.Position
}

// String renders "name [line: N, column: M]".
func (sf StackFrame) String() string {
	return fmt.Sprintf("%s [line: %d, column: %d]", sf.FunctionName, sf.Pos.Line, sf.Pos.Column)
}

// StackTrace is the evaluator's active call stack, oldest call first.
type StackTrace []StackFrame

// Push returns a new StackTrace with frame appended, leaving st unmodified
// so a caller can "pop" back to its own stack simply by discarding the
// value Push returned (mirrors the evaluator threading the stack through
// recursive calls by value rather than mutating a shared slice).
func (st StackTrace) Push(frame StackFrame) StackTrace {
	next := make(StackTrace, len(st)+1)
	copy(next, st)
	next[len(st)] = frame
	return next
}

// Top returns the most recent frame, or nil if the stack is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Depth returns the number of active calls.
func (st StackTrace) Depth() int {
	return len(st)
}

// String renders the stack most-recent-first, one frame per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
