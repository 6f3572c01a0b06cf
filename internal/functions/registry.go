// Package functions registers the standard unary scalar functions
// (spec.md §4.5): a numeric double -> double implementation and a symbolic
// derivative template expressed in internal/expr, for each of log, exp,
// sin, cos, tan, sinh, cosh, tanh, sqrt, atan, atanh, asin, acos, plus their
// display-name aliases (Ln, Arctan, Arctanh, Arccos, Arcsin).
package functions

import (
	"math"
	"sort"

	"github.com/cwbudde/leibniz/internal/expr"
)

// kind is the concrete expr.FuncKind backing every standard function.
type kind struct {
	name       string
	numeric    func(float64) (float64, error)
	derivative func() expr.Expression
}

func (k *kind) Name() string                     { return k.name }
func (k *kind) Numeric(x float64) (float64, error) { return k.numeric(x) }
func (k *kind) Derivative() expr.Expression       { return k.derivative() }

// aliasKind gives an existing kind a different display name, matching
// spec.md §4.5's "aliases reuse an existing kind with a different display
// name" (Ln ≡ Log, Arctan ≡ Atan, Arctanh ≡ Atanh, Arccos ≡ Acos,
// Arcsin ≡ Asin). Numeric and Derivative are promoted from the embedded
// *kind; only Name is overridden.
type aliasKind struct {
	*kind
	displayName string
}

func (a aliasKind) Name() string { return a.displayName }

var (
	logKind   *kind
	expKind   *kind
	sinKind   *kind
	cosKind   *kind
	tanKind   *kind
	sinhKind  *kind
	coshKind  *kind
	tanhKind  *kind
	sqrtKind  *kind
	atanKind  *kind
	atanhKind *kind
	asinKind  *kind
	acosKind  *kind

	registry map[string]expr.FuncKind
)

func dotExpr() expr.Expression { return expr.Dot{} }

func init() {
	logKind = &kind{name: "Log", numeric: domainLog}
	expKind = &kind{name: "Exp", numeric: domainExp}
	sinKind = &kind{name: "Sin", numeric: wrap(math.Sin)}
	cosKind = &kind{name: "Cos", numeric: wrap(math.Cos)}
	tanKind = &kind{name: "Tan", numeric: wrap(math.Tan)}
	sinhKind = &kind{name: "Sinh", numeric: wrap(math.Sinh)}
	coshKind = &kind{name: "Cosh", numeric: wrap(math.Cosh)}
	tanhKind = &kind{name: "Tanh", numeric: wrap(math.Tanh)}
	sqrtKind = &kind{name: "Sqrt", numeric: domainSqrt}
	atanKind = &kind{name: "Atan", numeric: wrap(math.Atan)}
	atanhKind = &kind{name: "Atanh", numeric: domainAtanh}
	asinKind = &kind{name: "Asin", numeric: domainAsin}
	acosKind = &kind{name: "Acos", numeric: domainAcos}

	// log' = 1/Dot
	logKind.derivative = func() expr.Expression {
		return expr.Divide{Left: expr.Constant{Value: 1}, Right: dotExpr()}
	}
	// exp' = exp(Dot)
	expKind.derivative = func() expr.Expression {
		return expr.Func{Kind: expKind, Arg: dotExpr()}
	}
	// sin' = cos(Dot)
	sinKind.derivative = func() expr.Expression {
		return expr.Func{Kind: cosKind, Arg: dotExpr()}
	}
	// cos' = -sin(Dot)
	cosKind.derivative = func() expr.Expression {
		return expr.Times{Left: expr.Constant{Value: -1}, Right: expr.Func{Kind: sinKind, Arg: dotExpr()}}
	}
	// tan' = 1 + tan(Dot)^2
	tanKind.derivative = func() expr.Expression {
		return expr.Plus{
			Left:  expr.Constant{Value: 1},
			Right: expr.Power{Left: expr.Func{Kind: tanKind, Arg: dotExpr()}, Right: expr.Constant{Value: 2}},
		}
	}
	// sinh' = cosh(Dot)
	sinhKind.derivative = func() expr.Expression {
		return expr.Func{Kind: coshKind, Arg: dotExpr()}
	}
	// cosh' = sinh(Dot)
	coshKind.derivative = func() expr.Expression {
		return expr.Func{Kind: sinhKind, Arg: dotExpr()}
	}
	// tanh' = 1 - tanh(Dot)^2
	tanhKind.derivative = func() expr.Expression {
		return expr.Minus{
			Left:  expr.Constant{Value: 1},
			Right: expr.Power{Left: expr.Func{Kind: tanhKind, Arg: dotExpr()}, Right: expr.Constant{Value: 2}},
		}
	}
	// sqrt' = 1/(2*sqrt(Dot))
	sqrtKind.derivative = func() expr.Expression {
		return expr.Divide{
			Left:  expr.Constant{Value: 1},
			Right: expr.Times{Left: expr.Constant{Value: 2}, Right: expr.Func{Kind: sqrtKind, Arg: dotExpr()}},
		}
	}
	// atan' = 1/(1+Dot^2)
	atanKind.derivative = func() expr.Expression {
		return expr.Divide{
			Left:  expr.Constant{Value: 1},
			Right: expr.Plus{Left: expr.Constant{Value: 1}, Right: expr.Power{Left: dotExpr(), Right: expr.Constant{Value: 2}}},
		}
	}
	// atanh' = 1/(1-Dot^2)
	atanhKind.derivative = func() expr.Expression {
		return expr.Divide{
			Left:  expr.Constant{Value: 1},
			Right: expr.Minus{Left: expr.Constant{Value: 1}, Right: expr.Power{Left: dotExpr(), Right: expr.Constant{Value: 2}}},
		}
	}
	// asin' = 1/sqrt(1-Dot^2)
	asinKind.derivative = func() expr.Expression {
		return expr.Divide{
			Left:  expr.Constant{Value: 1},
			Right: expr.Func{Kind: sqrtKind, Arg: expr.Minus{Left: expr.Constant{Value: 1}, Right: expr.Power{Left: dotExpr(), Right: expr.Constant{Value: 2}}}},
		}
	}
	// acos' = -1/sqrt(1-Dot^2)
	acosKind.derivative = func() expr.Expression {
		return expr.Times{
			Left: expr.Constant{Value: -1},
			Right: expr.Divide{
				Left:  expr.Constant{Value: 1},
				Right: expr.Func{Kind: sqrtKind, Arg: expr.Minus{Left: expr.Constant{Value: 1}, Right: expr.Power{Left: dotExpr(), Right: expr.Constant{Value: 2}}}},
			},
		}
	}

	registry = map[string]expr.FuncKind{
		"Log":     logKind,
		"Ln":      aliasKind{kind: logKind, displayName: "Ln"},
		"Exp":     expKind,
		"Sin":     sinKind,
		"Cos":     cosKind,
		"Tan":     tanKind,
		"Sinh":    sinhKind,
		"Cosh":    coshKind,
		"Tanh":    tanhKind,
		"Sqrt":    sqrtKind,
		"Atan":    atanKind,
		"Arctan":  aliasKind{kind: atanKind, displayName: "Arctan"},
		"Atanh":   atanhKind,
		"Arctanh": aliasKind{kind: atanhKind, displayName: "Arctanh"},
		"Asin":    asinKind,
		"Arcsin":  aliasKind{kind: asinKind, displayName: "Arcsin"},
		"Acos":    acosKind,
		"Arccos":  aliasKind{kind: acosKind, displayName: "Arccos"},
	}

	expr.SetLnKind(logKind)
}

// Lookup resolves a function name (as matched by the parser, case-sensitive
// per spec.md §6) to its FuncKind.
func Lookup(name string) (expr.FuncKind, bool) {
	k, ok := registry[name]
	return k, ok
}

// Names returns every registered function name, including aliases, sorted
// alphabetically. The parser does not call it; it matches function names
// with Lookup before treating an identifier as a variable.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func wrap(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) { return f(x), nil }
}
