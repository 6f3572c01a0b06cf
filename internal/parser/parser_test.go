package parser

import (
	"testing"

	"github.com/cwbudde/leibniz/internal/expr"
)

func mustParseExpr(t *testing.T, input string) expr.Expression {
	t.Helper()
	p := New(input)
	res := p.ParseLine()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", input, errs)
	}
	if res == nil || res.Expr == nil {
		t.Fatalf("expected an expression result for %q", input)
	}
	return res.Expr
}

func TestParseSimpleArithmetic(t *testing.T) {
	got := mustParseExpr(t, "2 + 3")
	v, err := got.Evaluate(expr.Environment{})
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Fatalf("got %v, want 5", v)
	}
}

func TestParseImplicitMultiplication(t *testing.T) {
	got := mustParseExpr(t, "2 x")
	v, err := got.Evaluate(expr.Environment{"x": 3})
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Fatalf("got %v, want 6", v)
	}
}

func TestParseImplicitMultiplicationWithParen(t *testing.T) {
	got := mustParseExpr(t, "x(y + 1)")
	v, err := got.Evaluate(expr.Environment{"x": 2, "y": 3})
	if err != nil {
		t.Fatal(err)
	}
	if v != 8 {
		t.Fatalf("got %v, want 8", v)
	}
}

func TestParsePowerRightAssociative(t *testing.T) {
	got := mustParseExpr(t, "2^3^2")
	v, err := got.Evaluate(expr.Environment{})
	if err != nil {
		t.Fatal(err)
	}
	if v != 512 { // 2^(3^2) = 2^9
		t.Fatalf("got %v, want 512", v)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	got := mustParseExpr(t, "-x^2")
	v, err := got.Evaluate(expr.Environment{"x": 3})
	if err != nil {
		t.Fatal(err)
	}
	if v != -9 {
		t.Fatalf("got %v, want -9", v)
	}
}

func TestParseFunctionCall(t *testing.T) {
	got := mustParseExpr(t, "Sin(x)")
	v, err := got.Evaluate(expr.Environment{"x": 0})
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("got %v, want 0", v)
	}
}

func TestParseFunctionPrimeDerivative(t *testing.T) {
	p := New("Sin'(x)")
	res := p.ParseLine()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	v, err := res.Expr.Evaluate(expr.Environment{"x": 0})
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 { // Sin'(0) = Cos(0) = 1
		t.Fatalf("got %v, want 1", v)
	}
}

func TestParseAssignment(t *testing.T) {
	p := New("x := 2 + 3")
	res := p.ParseLine()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	a, ok := res.Expr.(expr.Assertion)
	if !ok {
		t.Fatalf("expected Assertion, got %#v", res.Expr)
	}
	if a.Variable != "x" {
		t.Fatalf("got variable %q, want x", a.Variable)
	}
}

func TestParseEquation(t *testing.T) {
	p := New("x + 1 = 2")
	res := p.ParseLine()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if _, ok := res.Expr.(expr.Equation); !ok {
		t.Fatalf("expected Equation, got %#v", res.Expr)
	}
}

func TestParseCommand(t *testing.T) {
	for _, name := range []string{"debug", "session", "vars", "python"} {
		p := New("$" + name)
		res := p.ParseLine()
		if errs := p.Errors(); len(errs) > 0 {
			t.Fatalf("unexpected parse errors for $%s: %v", name, errs)
		}
		if res.Command == nil || res.Command.Name != name {
			t.Fatalf("expected command %q, got %#v", name, res)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	p := New("$bogus")
	res := p.ParseLine()
	if res != nil {
		t.Fatalf("expected nil result, got %#v", res)
	}
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for unknown command")
	}
}

func TestParseFunctionWithoutArgsIsError(t *testing.T) {
	p := New("Sin + 1")
	res := p.ParseLine()
	if res != nil {
		t.Fatalf("expected nil result, got %#v", res)
	}
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for bare function name")
	}
}

func TestParseDivision(t *testing.T) {
	got := mustParseExpr(t, "(a/b)/(c/d)")
	env := expr.Environment{"a": 2, "b": 3, "c": 5, "d": 7}
	v, err := got.Evaluate(env)
	if err != nil {
		t.Fatal(err)
	}
	a, b, c, d := 2.0, 3.0, 5.0, 7.0
	want := (a / b) / (c / d)
	if v != want {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	p := New("2 + 3)")
	res := p.ParseLine()
	if res != nil {
		t.Fatalf("expected nil result, got %#v", res)
	}
	if len(p.Errors()) == 0 {
		t.Fatal("expected a syntax error for trailing ')'")
	}
}
