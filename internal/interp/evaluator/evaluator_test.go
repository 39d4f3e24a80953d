package evaluator_test

import (
	"bytes"
	"strings"
	"testing"

	stderrors "github.com/gophlox/glox/internal/errors"
	"github.com/gophlox/glox/internal/interp/evaluator"
	"github.com/gophlox/glox/internal/lexer"
	"github.com/gophlox/glox/internal/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if p.HadError() {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	var buf bytes.Buffer
	interp := evaluator.New(&buf)
	err := interp.Interpret(prog)
	return buf.String(), err
}

func evalExpr(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	expr := p.ParseExpression()
	if p.HadError() {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	interp := evaluator.New(nil)
	v, err := interp.EvalExpression(expr)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func TestArithmetic(t *testing.T) {
	tests := map[string]string{
		"1 + 2":      "3",
		"2 * 3 + 1":  "7",
		"10 / 4":     "2.5",
		"7 - 2 - 1":  "4",
		"-5 + 10":    "5",
		`"a" + "b"`:  "ab",
	}
	for src, want := range tests {
		got, err := evalExpr(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if got != want {
			t.Errorf("%q = %q, want %q", src, got, want)
		}
	}
}

func TestComparisonsAndEquality(t *testing.T) {
	tests := map[string]string{
		"1 < 2":        "true",
		"2 <= 2":       "true",
		"3 > 2":        "true",
		"1 == 1":       "true",
		`"a" == "a"`:   "true",
		"1 == \"1\"":   "false",
		"nil == nil":   "true",
		"1 != 2":       "true",
	}
	for src, want := range tests {
		got, err := evalExpr(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if got != want {
			t.Errorf("%q = %q, want %q", src, got, want)
		}
	}
}

func TestTruthiness(t *testing.T) {
	tests := map[string]string{
		"!nil":   "true",
		"!false": "true",
		"!0":     "false",
		`!""`:    "false",
	}
	for src, want := range tests {
		got, err := evalExpr(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if got != want {
			t.Errorf("%q = %q, want %q", src, got, want)
		}
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	// The right operand of `or`/`and` should not be evaluated when the left
	// already determines the result; the right operand (1 + nil) is a
	// runtime error that would surface if it were evaluated.
	got, err := evalExpr(t, `true or (1 + nil)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "true" {
		t.Errorf("got %q, want true", got)
	}

	got, err = evalExpr(t, `false and (1 + nil)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "false" {
		t.Errorf("got %q, want false", got)
	}
}

func TestLogicalReturnsOperandNotBool(t *testing.T) {
	got, err := evalExpr(t, `nil or "fallback"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestTypeMismatchIsRuntimeError(t *testing.T) {
	_, err := evalExpr(t, `1 + "a"`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if _, ok := err.(*stderrors.RuntimeError); !ok {
		t.Fatalf("err = %T, want *errors.RuntimeError", err)
	}
}

func TestPrintStatement(t *testing.T) {
	out, err := run(t, `print 1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("output = %q, want 3", out)
	}
}

func TestVariableDeclarationAndAssignment(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		a = a + 1;
		print a;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("output = %q, want 2", out)
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print x;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	want := "Undefined variable 'x'.\n[line 1]"
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}

func TestBlockScoping(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "inner" || lines[1] != "outer" {
		t.Errorf("output = %q, want [inner outer]", lines)
	}
}

func TestIfElse(t *testing.T) {
	out, err := run(t, `
		if (1 < 2) print "yes"; else print "no";
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "yes" {
		t.Errorf("output = %q, want yes", out)
	}
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0\n1\n2"
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestForLoop(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0\n1\n2"
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) {
			return a + b;
		}
		print add(1, 2);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("output = %q, want 3", out)
	}
}

func TestRecursiveFunction(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "55" {
		t.Errorf("output = %q, want 55", out)
	}
}

func TestClosureCapturesEnvironment(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1\n2\n3"
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFunctionWithoutReturnYieldsNil(t *testing.T) {
	out, err := run(t, `
		fun f() { var x = 1; }
		print f();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "nil" {
		t.Errorf("output = %q, want nil", out)
	}
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Expected 2 arguments but got 1.") {
		t.Errorf("err = %q", err.Error())
	}
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Can only call functions and classes.") {
		t.Errorf("err = %q", err.Error())
	}
}

func TestClockNativeIsCallableWithNoArgs(t *testing.T) {
	got, err := evalExpr(t, `clock()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Error("expected a non-empty clock reading")
	}
}

func TestIntegralNumberPrintsWithoutFraction(t *testing.T) {
	got, err := evalExpr(t, `6 / 2`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3" {
		t.Errorf("got %q, want 3", got)
	}
}
