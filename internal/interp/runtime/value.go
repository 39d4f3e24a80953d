// Package runtime holds the evaluator's value representation and the
// lexically-scoped environment chain used to resolve bindings.
package runtime

import (
	"strconv"
	"strings"
)

// Value is anything that can live in a variable, be printed, or be passed
// as a function argument.
type Value interface {
	// Type names the value's kind for diagnostics ("number", "string", ...).
	Type() string
	// String renders the value the way `print` and `evaluate` output it.
	String() string
}

// Nil is the single value bound to the `nil` literal.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Bool wraps a boolean value.
type Bool bool

func (Bool) Type() string     { return "boolean" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number is the language's single numeric type, a float64 per SPEC_FULL.md
// §3. Values that are mathematically integral print without a fractional
// part, matching the reference printer; everything else uses the shortest
// round-tripping decimal form.
type Number float64

func (Number) Type() string { return "number" }

func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is the language's text type.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Callable is implemented by every value that can appear as the callee of
// a Call expression: user-defined functions and natives alike.
type Callable interface {
	Value
	Arity() int
}

// IsTruthy implements the language's truthiness rule: everything is truthy
// except `nil` and `false` (§4.5).
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case nil:
		return false
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// IsEqual implements `==`/`!=` value equality (§4.5): nil equals only nil,
// numbers/strings/booleans compare by value, everything else by identity.
func IsEqual(a, b Value) bool {
	if a == nil {
		a = Nil{}
	}
	if b == nil {
		b = Nil{}
	}
	if _, aNil := a.(Nil); aNil {
		_, bNil := b.(Nil)
		return bNil
	}
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// FormatArgs renders a value slice for trace logging, comma-separated.
func FormatArgs(args []Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
