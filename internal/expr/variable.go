package expr

// Variable is a named scalar (spec.md §3). The name must be non-empty; the
// parser is responsible for enforcing that, per spec.md §3's invariants.
type Variable struct {
	Name string
}

func NewVariable(name string) Variable { return Variable{Name: name} }

func (v Variable) FreeVariables() map[string]struct{} {
	return map[string]struct{}{v.Name: {}}
}

func (v Variable) Substitute(name string, repl Expression) Expression {
	if v.Name == name {
		return repl
	}
	return v
}

func (v Variable) Evaluate(env Environment) (float64, error) {
	val, ok := env[v.Name]
	if !ok {
		return 0, &UndefinedVariableError{Name: v.Name}
	}
	return val, nil
}

func (v Variable) EvaluateAt(Expression) Expression { return v }

func (v Variable) Partial(name string) Expression {
	if v.Name == name {
		return Constant{1}
	}
	return Constant{0}
}

func (v Variable) Simplify() Expression { return v }

func (v Variable) Sort() Expression { return v }

func (v Variable) Equal(other Expression) bool {
	o, ok := other.(Variable)
	return ok && o.Name == v.Name
}

func (v Variable) Rank() Rank { return RankAtom }

// Dot is the placeholder for "the argument" used inside function derivative
// templates (spec.md §3). It must never appear in a user-constructed
// expression produced by parsing or by partial-differentiation output.
type Dot struct{}

func (Dot) FreeVariables() map[string]struct{} { return map[string]struct{}{} }

func (d Dot) Substitute(string, Expression) Expression { return d }

func (Dot) Evaluate(Environment) (float64, error) {
	return 0, &UndefinedVariableError{Name: "·"}
}

func (d Dot) EvaluateAt(arg Expression) Expression { return arg }

func (d Dot) Partial(name string) Expression {
	if name == "" {
		return Constant{1}
	}
	return Constant{0}
}

func (d Dot) Simplify() Expression { return d }

func (d Dot) Sort() Expression { return d }

func (d Dot) Equal(other Expression) bool {
	_, ok := other.(Dot)
	return ok
}

func (Dot) Rank() Rank { return RankAtom }
