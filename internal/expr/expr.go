// Package expr is the expression algebra core described in spec.md §3-§4:
// the tagged expression data type, its universal operations (free
// variables, substitution, evaluation, differentiation, simplification,
// canonical sorting) and the binary operator / commutative collection
// simplification rules. The package is purely functional — every operation
// returns a new tree and never mutates a receiver, per the immutability
// invariant in spec.md §3 and the Open Question in spec.md §9.
package expr

// Expression is the universal interface every node variant implements
// (spec.md §4.1).
type Expression interface {
	// FreeVariables returns the set of variable names appearing free in
	// the expression.
	FreeVariables() map[string]struct{}

	// Substitute replaces every Variable(name) with repl, recursing through
	// every other node.
	Substitute(name string, repl Expression) Expression

	// Evaluate reduces the expression to a float64 under env, or returns an
	// *UndefinedVariableError, *DomainError or *ArityError.
	Evaluate(env Environment) (float64, error)

	// EvaluateAt replaces every Dot in the receiver with arg. Used to
	// instantiate function-derivative templates.
	EvaluateAt(arg Expression) Expression

	// Partial returns the symbolic derivative with respect to name,
	// already simplified.
	Partial(name string) Expression

	// Simplify canonicalizes the expression (spec.md §4.4).
	Simplify() Expression

	// Sort orders commutative collections into canonical form without
	// otherwise rewriting the tree.
	Sort() Expression

	// Equal reports structural equality.
	Equal(other Expression) bool

	// Rank returns the canonical-ordering class rank (spec.md §4.2).
	Rank() Rank
}

// Environment maps variable names to numeric values for Evaluate.
type Environment map[string]float64

// FreeOf reports whether name does not occur free in e.
func FreeOf(e Expression, name string) bool {
	_, ok := e.FreeVariables()[name]
	return !ok
}

// unionVars merges the free-variable sets of a list of subexpressions.
func unionVars(subs ...Expression) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range subs {
		for v := range s.FreeVariables() {
			out[v] = struct{}{}
		}
	}
	return out
}
