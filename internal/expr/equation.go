package expr

// Equation asserts that Expr (stored as left - right, spec.md §3 and §4.6)
// equals zero. The two sides are never stored separately.
type Equation struct{ Expr Expression }

// NewEquation builds an Equation from its two sides, storing left - right.
func NewEquation(left, right Expression) Equation {
	return Equation{Expr: Minus{left, right}}
}

func (e Equation) FreeVariables() map[string]struct{} { return e.Expr.FreeVariables() }

func (e Equation) Substitute(name string, repl Expression) Expression {
	return Equation{e.Expr.Substitute(name, repl)}
}

// Evaluate reduces the equation's left-right expression to a number; zero
// means the equation holds at the given environment.
func (e Equation) Evaluate(env Environment) (float64, error) { return e.Expr.Evaluate(env) }

func (e Equation) EvaluateAt(arg Expression) Expression { return Equation{e.Expr.EvaluateAt(arg)} }

// Partial differentiates both sides structurally, equivalent to
// differentiating left - right (spec.md §4.6).
func (e Equation) Partial(name string) Expression { return Equation{e.Expr.Partial(name)} }

func (e Equation) Simplify() Expression { return Equation{e.Expr.Simplify()} }

func (e Equation) Sort() Expression { return Equation{e.Expr.Sort()} }

func (e Equation) Equal(other Expression) bool {
	o, ok := other.(Equation)
	return ok && e.Expr.Equal(o.Expr)
}

func (e Equation) Rank() Rank { return RankFunc + 2 }

// Assertion binds a variable name to an expression in the session
// environment (spec.md §3, §4.6). The binding itself is a side effect
// performed by internal/session at parse time; the node is retained so it
// can be formatted back as "V := E".
type Assertion struct {
	Variable string
	Value    Expression
}

func (a Assertion) FreeVariables() map[string]struct{} { return a.Value.FreeVariables() }

func (a Assertion) Substitute(name string, repl Expression) Expression {
	return Assertion{Variable: a.Variable, Value: a.Value.Substitute(name, repl)}
}

func (a Assertion) Evaluate(env Environment) (float64, error) { return a.Value.Evaluate(env) }

func (a Assertion) EvaluateAt(arg Expression) Expression {
	return Assertion{Variable: a.Variable, Value: a.Value.EvaluateAt(arg)}
}

func (a Assertion) Partial(name string) Expression {
	return Assertion{Variable: a.Variable, Value: a.Value.Partial(name)}
}

func (a Assertion) Simplify() Expression {
	return Assertion{Variable: a.Variable, Value: a.Value.Simplify()}
}

func (a Assertion) Sort() Expression { return Assertion{Variable: a.Variable, Value: a.Value.Sort()} }

func (a Assertion) Equal(other Expression) bool {
	o, ok := other.(Assertion)
	return ok && a.Variable == o.Variable && a.Value.Equal(o.Value)
}

func (a Assertion) Rank() Rank { return RankFunc + 3 }
