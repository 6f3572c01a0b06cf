package expr

// Constant is a numeric literal (spec.md §3).
type Constant struct {
	Value float64
}

func NewConstant(v float64) Constant { return Constant{Value: v} }

func (c Constant) FreeVariables() map[string]struct{} { return map[string]struct{}{} }

func (c Constant) Substitute(string, Expression) Expression { return c }

func (c Constant) Evaluate(Environment) (float64, error) { return c.Value, nil }

func (c Constant) EvaluateAt(Expression) Expression { return c }

func (c Constant) Partial(string) Expression { return Constant{0} }

func (c Constant) Simplify() Expression { return c }

func (c Constant) Sort() Expression { return c }

func (c Constant) Equal(other Expression) bool {
	o, ok := other.(Constant)
	return ok && o.Value == c.Value
}

func (c Constant) Rank() Rank { return RankConstant }
