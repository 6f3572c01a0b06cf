package expr

import (
	"math"
	"testing"
)

func c(v float64) Constant   { return Constant{Value: v} }
func v(name string) Variable { return Variable{Name: name} }

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// S1: 2 + 3 simplifies to Constant(5).
func TestScenarioS1(t *testing.T) {
	got := Plus{c(2), c(3)}.Simplify()
	want := c(5)
	if !got.Equal(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

// S2: x + 0 simplifies to Variable("x").
func TestScenarioS2(t *testing.T) {
	got := Plus{v("x"), c(0)}.Simplify()
	if !got.Equal(v("x")) {
		t.Fatalf("got %#v, want Variable(x)", got)
	}
}

// S3: partial(x * (y+z), x) simplifies to y + z.
func TestScenarioS3(t *testing.T) {
	e := Times{v("x"), Plus{v("y"), v("z")}}
	got := e.Partial("x")
	want := Sum{Terms: []Expression{v("y"), v("z")}}
	if !got.Equal(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

// S6: (a/b)/(c/d) simplifies to (a*d)/(b*c) in canonical term order.
func TestScenarioS6(t *testing.T) {
	a, b, cc, d := v("a"), v("b"), v("c"), v("d")
	e := Divide{Divide{a, b}, Divide{cc, d}}
	got := e.Simplify()
	div, ok := got.(Divide)
	if !ok {
		t.Fatalf("expected Divide, got %#v", got)
	}
	num, ok := div.Left.(Product)
	if !ok || len(num.Terms) != 2 {
		t.Fatalf("expected numerator Product of 2 terms, got %#v", div.Left)
	}
	den, ok := div.Right.(Product)
	if !ok || len(den.Terms) != 2 {
		t.Fatalf("expected denominator Product of 2 terms, got %#v", div.Right)
	}
}

// S7: x^2 evaluated at x=3 is 9.
func TestScenarioS7(t *testing.T) {
	e := Power{v("x"), c(2)}
	got, err := e.Evaluate(Environment{"x": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != 9 {
		t.Fatalf("got %v, want 9", got)
	}
}

// S8: gradient(x*y*z, [x,y,z]) at {x:1,y:2,z:3} is [6,3,2].
func TestScenarioS8(t *testing.T) {
	e := Product{Terms: []Expression{v("x"), v("y"), v("z")}}
	got, err := EvaluateGradient(e, []string{"x", "y", "z"}, Environment{"x": 1, "y": 2, "z": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{6, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gradient[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPartialOfConstantAndVariable(t *testing.T) {
	if !c(5).Partial("x").Equal(c(0)) {
		t.Error("partial of constant must be 0")
	}
	if !v("x").Partial("x").Equal(c(1)) {
		t.Error("partial of Variable(x) wrt x must be 1")
	}
	if !v("y").Partial("x").Equal(c(0)) {
		t.Error("partial of Variable(y) wrt x must be 0")
	}
}

func TestLinearityOfPlusDerivative(t *testing.T) {
	a := Power{v("x"), c(2)}
	b := Times{c(3), v("x")}
	lhs := Plus{a, b}.Partial("x")
	rhs := Plus{a.Partial("x"), b.Partial("x")}.Simplify()
	if !lhs.Equal(rhs) {
		t.Fatalf("linearity violated: %#v != %#v", lhs, rhs)
	}
}

func TestProductRuleNumerically(t *testing.T) {
	a := Power{v("x"), c(2)}
	b := Func{Kind: dummySin{}, Arg: v("x")}
	env := Environment{"x": 1.3}
	prod := Times{a, b}
	got, err := prod.Partial("x").Evaluate(env)
	if err != nil {
		t.Fatal(err)
	}
	aprime, _ := a.Partial("x").Evaluate(env)
	bval, _ := b.Evaluate(env)
	aval, _ := a.Evaluate(env)
	bprime, _ := b.Partial("x").Evaluate(env)
	want := aprime*bval + aval*bprime
	if !almostEqual(got, want, 1e-9) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// dummySin is a minimal FuncKind used only to exercise the chain rule in
// this package's tests without importing internal/functions (which would
// create an import cycle back into expr's own test binary).
type dummySin struct{}

func (dummySin) Name() string { return "Sin" }
func (dummySin) Numeric(x float64) (float64, error) { return math.Sin(x), nil }
func (dummySin) Derivative() Expression             { return Func{Kind: dummyCos{}, Arg: Dot{}} }

type dummyCos struct{}

func (dummyCos) Name() string                        { return "Cos" }
func (dummyCos) Numeric(x float64) (float64, error) { return math.Cos(x), nil }
func (dummyCos) Derivative() Expression             { return Constant{0} }

func TestSimplifyIdempotent(t *testing.T) {
	e := Plus{Times{c(2), v("x")}, Minus{v("y"), c(0)}}
	once := e.Simplify()
	twice := once.Simplify()
	if !once.Equal(twice) {
		t.Fatalf("simplify not idempotent: %#v != %#v", once, twice)
	}
}

func TestFreeVariablesSubsetAfterSimplify(t *testing.T) {
	e := Plus{v("x"), c(0)}
	before := e.FreeVariables()
	after := e.Simplify().FreeVariables()
	for name := range after {
		if _, ok := before[name]; !ok {
			t.Fatalf("simplify introduced free variable %q", name)
		}
	}
}

func TestCanonicalCollectionInvariants(t *testing.T) {
	e := Sum{Terms: []Expression{v("z"), c(1), v("a"), c(2)}}.Simplify()
	sum, ok := e.(Sum)
	if !ok {
		t.Fatalf("expected Sum, got %#v", e)
	}
	constCount := 0
	for i, term := range sum.Terms {
		if _, isConst := term.(Constant); isConst {
			constCount++
		}
		if i > 0 && sum.Terms[i-1].Rank() > term.Rank() {
			t.Fatalf("terms not sorted by rank: %#v", sum.Terms)
		}
	}
	if constCount > 1 {
		t.Fatalf("more than one constant child survived simplification: %#v", sum.Terms)
	}
}

func TestPowerZeroZeroLeftSymbolic(t *testing.T) {
	e := Power{c(0), c(0)}.Simplify()
	if _, ok := e.(Power); !ok {
		t.Fatalf("0^0 should remain symbolic, got %#v", e)
	}
}

func TestUnaryMinusDoubleNegation(t *testing.T) {
	e := UnaryMinus{UnaryMinus{v("x")}}.Simplify()
	if !e.Equal(v("x")) {
		t.Fatalf("got %#v, want Variable(x)", e)
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	_, err := v("x").Evaluate(Environment{})
	if err == nil {
		t.Fatal("expected UndefinedVariableError")
	}
	if _, ok := err.(*UndefinedVariableError); !ok {
		t.Fatalf("expected *UndefinedVariableError, got %T", err)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Divide{c(1), c(0)}.Evaluate(Environment{})
	if err == nil {
		t.Fatal("expected DomainError")
	}
	if _, ok := err.(*DomainError); !ok {
		t.Fatalf("expected *DomainError, got %T", err)
	}
}
