package expr

import "sort"

// Vector is an ordered sequence of expressions used for gradient/Jacobian
// return shapes (spec.md §3).
type Vector struct{ Components []Expression }

func (v Vector) FreeVariables() map[string]struct{} { return unionVars(v.Components...) }

func (v Vector) Substitute(name string, repl Expression) Expression {
	out := make([]Expression, len(v.Components))
	for i, c := range v.Components {
		out[i] = c.Substitute(name, repl)
	}
	return Vector{out}
}

// Evaluate is not meaningful for a Vector as a scalar; hosts should use
// EvaluateComponents instead. It returns an ArityError to fail closed.
func (v Vector) Evaluate(Environment) (float64, error) {
	return 0, &ArityError{Expected: 1, Actual: len(v.Components)}
}

// EvaluateComponents evaluates every component under env, propagating the
// first error encountered (spec.md §4.1 evaluate, applied componentwise).
func (v Vector) EvaluateComponents(env Environment) ([]float64, error) {
	out := make([]float64, len(v.Components))
	for i, c := range v.Components {
		val, err := c.Evaluate(env)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (v Vector) EvaluateAt(arg Expression) Expression {
	out := make([]Expression, len(v.Components))
	for i, c := range v.Components {
		out[i] = c.EvaluateAt(arg)
	}
	return Vector{out}
}

func (v Vector) Partial(name string) Expression {
	out := make([]Expression, len(v.Components))
	for i, c := range v.Components {
		out[i] = c.Partial(name)
	}
	return Vector{out}
}

func (v Vector) Simplify() Expression {
	out := make([]Expression, len(v.Components))
	for i, c := range v.Components {
		out[i] = c.Simplify()
	}
	return Vector{out}
}

func (v Vector) Sort() Expression {
	out := make([]Expression, len(v.Components))
	for i, c := range v.Components {
		out[i] = c.Sort()
	}
	return Vector{out}
}

func (v Vector) Equal(other Expression) bool {
	o, ok := other.(Vector)
	if !ok || len(o.Components) != len(v.Components) {
		return false
	}
	for i := range v.Components {
		if !v.Components[i].Equal(o.Components[i]) {
			return false
		}
	}
	return true
}

// Rank is unused for Vector (it never participates in canonical-collection
// sorting) but is required by the Expression interface; it sorts after Func
// so a Vector never mixes into a Sum/Product by accident.
func (v Vector) Rank() Rank { return RankFunc + 1 }

// Gradient returns the symbolic partial derivative of e with respect to
// each name in vars, in the order given (spec.md §8 scenario S8,
// SPEC_FULL.md supplemented feature 1).
func Gradient(e Expression, vars []string) []Expression {
	out := make([]Expression, len(vars))
	for i, v := range vars {
		out[i] = e.Partial(v)
	}
	return out
}

// Jacobian returns the Gradient of every expression in fns with respect to
// vars, row-major (one row per expression).
func Jacobian(fns []Expression, vars []string) [][]Expression {
	out := make([][]Expression, len(fns))
	for i, f := range fns {
		out[i] = Gradient(f, vars)
	}
	return out
}

// EvaluateGradient evaluates Gradient(e, vars) numerically under env.
func EvaluateGradient(e Expression, vars []string, env Environment) ([]float64, error) {
	grad := Gradient(e, vars)
	out := make([]float64, len(grad))
	for i, g := range grad {
		v, err := g.Simplify().Evaluate(env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Closure compiles e into a host-callable function over its free variables,
// sorted alphabetically, mirroring the original Leibniz pyfunction()
// (SPEC_FULL.md supplemented feature 2).
func Closure(e Expression) (vars []string, fn func(args ...float64) (float64, error)) {
	freeSet := e.FreeVariables()
	vars = make([]string, 0, len(freeSet))
	for name := range freeSet {
		vars = append(vars, name)
	}
	sort.Strings(vars)

	fn = func(args ...float64) (float64, error) {
		if len(args) != len(vars) {
			return 0, &ArityError{Expected: len(vars), Actual: len(args)}
		}
		env := make(Environment, len(vars))
		for i, name := range vars {
			env[name] = args[i]
		}
		return e.Evaluate(env)
	}
	return vars, fn
}
