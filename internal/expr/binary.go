package expr

import "math"

func isConst(e Expression, v float64) bool {
	c, ok := e.(Constant)
	return ok && c.Value == v
}

// Plus is the binary addition operator (spec.md §3).
type Plus struct{ Left, Right Expression }

func (p Plus) FreeVariables() map[string]struct{} { return unionVars(p.Left, p.Right) }
func (p Plus) Substitute(n string, r Expression) Expression {
	return Plus{p.Left.Substitute(n, r), p.Right.Substitute(n, r)}
}
func (p Plus) Evaluate(env Environment) (float64, error) {
	l, err := p.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	r, err := p.Right.Evaluate(env)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}
func (p Plus) EvaluateAt(arg Expression) Expression {
	return Plus{p.Left.EvaluateAt(arg), p.Right.EvaluateAt(arg)}
}
func (p Plus) Partial(name string) Expression {
	return Plus{p.Left.Partial(name), p.Right.Partial(name)}.Simplify()
}
func (p Plus) Simplify() Expression {
	l := p.Left.Simplify()
	r := p.Right.Simplify()
	if lc, ok := l.(Constant); ok {
		if rc, ok := r.(Constant); ok {
			return Constant{lc.Value + rc.Value}
		}
	}
	if isConst(l, 0) {
		return r
	}
	if isConst(r, 0) {
		return l
	}
	return Sum{Terms: collectSumTerms(l, r)}.Simplify()
}
func (p Plus) Sort() Expression { return Plus{p.Left.Sort(), p.Right.Sort()} }
func (p Plus) Equal(other Expression) bool {
	o, ok := other.(Plus)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}
func (p Plus) Rank() Rank { return RankPlus }

// Minus is the binary subtraction operator.
type Minus struct{ Left, Right Expression }

func (m Minus) FreeVariables() map[string]struct{} { return unionVars(m.Left, m.Right) }
func (m Minus) Substitute(n string, r Expression) Expression {
	return Minus{m.Left.Substitute(n, r), m.Right.Substitute(n, r)}
}
func (m Minus) Evaluate(env Environment) (float64, error) {
	l, err := m.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	r, err := m.Right.Evaluate(env)
	if err != nil {
		return 0, err
	}
	return l - r, nil
}
func (m Minus) EvaluateAt(arg Expression) Expression {
	return Minus{m.Left.EvaluateAt(arg), m.Right.EvaluateAt(arg)}
}
func (m Minus) Partial(name string) Expression {
	return Minus{m.Left.Partial(name), m.Right.Partial(name)}.Simplify()
}
func (m Minus) Simplify() Expression {
	l := m.Left.Simplify()
	r := m.Right.Simplify()
	if lc, ok := l.(Constant); ok {
		if rc, ok := r.(Constant); ok {
			return Constant{lc.Value - rc.Value}
		}
	}
	if isConst(r, 0) {
		return l
	}
	if isConst(l, 0) {
		return Times{Constant{-1}, r}.Simplify()
	}
	return Minus{l, r}
}
func (m Minus) Sort() Expression { return Minus{m.Left.Sort(), m.Right.Sort()} }
func (m Minus) Equal(other Expression) bool {
	o, ok := other.(Minus)
	return ok && m.Left.Equal(o.Left) && m.Right.Equal(o.Right)
}
func (m Minus) Rank() Rank { return RankSubtract }

// UnaryMinus is the additive inverse of a single expression.
type UnaryMinus struct{ Expr Expression }

func (u UnaryMinus) FreeVariables() map[string]struct{} { return u.Expr.FreeVariables() }
func (u UnaryMinus) Substitute(n string, r Expression) Expression {
	return UnaryMinus{u.Expr.Substitute(n, r)}
}
func (u UnaryMinus) Evaluate(env Environment) (float64, error) {
	v, err := u.Expr.Evaluate(env)
	if err != nil {
		return 0, err
	}
	return -v, nil
}
func (u UnaryMinus) EvaluateAt(arg Expression) Expression { return UnaryMinus{u.Expr.EvaluateAt(arg)} }
func (u UnaryMinus) Partial(name string) Expression {
	return UnaryMinus{u.Expr.Partial(name)}.Simplify()
}
func (u UnaryMinus) Simplify() Expression {
	e := u.Expr.Simplify()
	if inner, ok := e.(UnaryMinus); ok {
		return inner.Expr
	}
	return Times{Constant{-1}, e}.Simplify()
}
func (u UnaryMinus) Sort() Expression { return UnaryMinus{u.Expr.Sort()} }
func (u UnaryMinus) Equal(other Expression) bool {
	o, ok := other.(UnaryMinus)
	return ok && u.Expr.Equal(o.Expr)
}
func (u UnaryMinus) Rank() Rank { return RankSubtract }

// Times is the binary multiplication operator.
type Times struct{ Left, Right Expression }

func (t Times) FreeVariables() map[string]struct{} { return unionVars(t.Left, t.Right) }
func (t Times) Substitute(n string, r Expression) Expression {
	return Times{t.Left.Substitute(n, r), t.Right.Substitute(n, r)}
}
func (t Times) Evaluate(env Environment) (float64, error) {
	l, err := t.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	r, err := t.Right.Evaluate(env)
	if err != nil {
		return 0, err
	}
	return l * r, nil
}
func (t Times) EvaluateAt(arg Expression) Expression {
	return Times{t.Left.EvaluateAt(arg), t.Right.EvaluateAt(arg)}
}
func (t Times) Partial(name string) Expression {
	uprime := t.Left.Partial(name)
	vprime := t.Right.Partial(name)
	return Plus{Times{uprime, t.Right}, Times{t.Left, vprime}}.Simplify()
}
func (t Times) Simplify() Expression {
	l := t.Left.Simplify()
	r := t.Right.Simplify()
	if lc, ok := l.(Constant); ok {
		if rc, ok := r.(Constant); ok {
			return Constant{lc.Value * rc.Value}
		}
	}
	if isConst(l, 1) {
		return r
	}
	if isConst(r, 1) {
		return l
	}
	if isConst(l, 0) || isConst(r, 0) {
		return Constant{0}
	}
	return Product{Terms: collectProductTerms(l, r)}.Simplify()
}
func (t Times) Sort() Expression { return Times{t.Left.Sort(), t.Right.Sort()} }
func (t Times) Equal(other Expression) bool {
	o, ok := other.(Times)
	return ok && t.Left.Equal(o.Left) && t.Right.Equal(o.Right)
}
func (t Times) Rank() Rank { return RankTimes }

// Divide is the binary division operator.
type Divide struct{ Left, Right Expression }

func (d Divide) FreeVariables() map[string]struct{} { return unionVars(d.Left, d.Right) }
func (d Divide) Substitute(n string, r Expression) Expression {
	return Divide{d.Left.Substitute(n, r), d.Right.Substitute(n, r)}
}
func (d Divide) Evaluate(env Environment) (float64, error) {
	l, err := d.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	r, err := d.Right.Evaluate(env)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, &DomainError{Function: "/", Value: r}
	}
	return l / r, nil
}
func (d Divide) EvaluateAt(arg Expression) Expression {
	return Divide{d.Left.EvaluateAt(arg), d.Right.EvaluateAt(arg)}
}
func (d Divide) Partial(name string) Expression {
	uprime := d.Left.Partial(name)
	vprime := d.Right.Partial(name)
	return Divide{
		Minus{Times{uprime, d.Right}, Times{d.Left, vprime}},
		Power{d.Right, Constant{2}},
	}.Simplify()
}
func (d Divide) Simplify() Expression {
	l := d.Left.Simplify()
	r := d.Right.Simplify()
	if lc, ok := l.(Constant); ok {
		if rc, ok := r.(Constant); ok && rc.Value != 0 {
			return Constant{lc.Value / rc.Value}
		}
	}
	if isConst(r, 1) {
		return l
	}
	if isConst(l, 0) {
		return Constant{0}
	}

	var numerators, denominators []Expression
	folded := false
	if dl, ok := l.(Divide); ok {
		numerators = append(numerators, dl.Left)
		denominators = append(denominators, dl.Right)
		folded = true
	} else {
		numerators = append(numerators, l)
	}
	if dr, ok := r.(Divide); ok {
		numerators = append(numerators, dr.Right)
		denominators = append(denominators, dr.Left)
		folded = true
	} else {
		denominators = append(denominators, r)
	}
	if !folded {
		return Divide{l, r}
	}
	num := Product{Terms: numerators}.Simplify()
	den := Product{Terms: denominators}.Simplify()
	return Divide{num, den}
}
func (d Divide) Sort() Expression { return Divide{d.Left.Sort(), d.Right.Sort()} }
func (d Divide) Equal(other Expression) bool {
	o, ok := other.(Divide)
	return ok && d.Left.Equal(o.Left) && d.Right.Equal(o.Right)
}
func (d Divide) Rank() Rank { return RankDivide }

// Power is the binary exponentiation operator.
type Power struct{ Left, Right Expression }

func (p Power) FreeVariables() map[string]struct{} { return unionVars(p.Left, p.Right) }
func (p Power) Substitute(n string, r Expression) Expression {
	return Power{p.Left.Substitute(n, r), p.Right.Substitute(n, r)}
}
func (p Power) Evaluate(env Environment) (float64, error) {
	l, err := p.Left.Evaluate(env)
	if err != nil {
		return 0, err
	}
	r, err := p.Right.Evaluate(env)
	if err != nil {
		return 0, err
	}
	v := math.Pow(l, r)
	if math.IsNaN(v) {
		return 0, &DomainError{Function: "^", Value: l}
	}
	return v, nil
}
func (p Power) EvaluateAt(arg Expression) Expression {
	return Power{p.Left.EvaluateAt(arg), p.Right.EvaluateAt(arg)}
}

// Partial applies the power-rule case split of spec.md §4.3.
func (p Power) Partial(name string) Expression {
	l := p.Left.Simplify()
	r := p.Right.Simplify()
	uprime := l.Partial(name)
	wprime := r.Partial(name)

	switch {
	case FreeOf(r, name):
		return Times{r, Power{l, Minus{r, Constant{1}}}}.partialChain(uprime)
	case FreeOf(l, name):
		lnL := Func{Kind: lnKind, Arg: l}
		return Times{Times{lnL, wprime}, Power{l, r}}.Simplify()
	default:
		lnL := Func{Kind: lnKind, Arg: l}
		term := Plus{Divide{Times{r, uprime}, l}, Times{lnL, wprime}}
		return Times{term, Power{l, r}}.Simplify()
	}
}

// partialChain multiplies a power-rule factor by u' and simplifies; kept as
// a small helper so Partial's case split reads close to spec.md's table.
func (t Times) partialChain(uprime Expression) Expression {
	return Times{t, uprime}.Simplify()
}

func (p Power) Simplify() Expression {
	l := p.Left.Simplify()
	r := p.Right.Simplify()
	if lc, ok := l.(Constant); ok {
		if rc, ok := r.(Constant); ok {
			if lc.Value == 0 && rc.Value == 0 {
				return Power{l, r}
			}
			v := math.Pow(lc.Value, rc.Value)
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return Constant{v}
			}
			return Power{l, r}
		}
	}
	if isConst(r, 1) {
		return l
	}
	if isConst(r, 0) {
		return Constant{1}
	}
	if isConst(l, 1) {
		return Constant{1}
	}
	if isConst(l, 0) {
		return Constant{0}
	}
	return Power{l, r}
}
func (p Power) Sort() Expression { return Power{p.Left.Sort(), p.Right.Sort()} }
func (p Power) Equal(other Expression) bool {
	o, ok := other.(Power)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}
func (p Power) Rank() Rank { return RankPower }
