package expr

// Sum is the canonical commutative collection for addition (spec.md §3).
// A simplified Sum always holds >= 2 terms; single terms collapse to that
// term and empty collections collapse to Constant{0} (spec.md §3).
type Sum struct{ Terms []Expression }

func flattenSum(e Expression) []Expression {
	switch v := e.(type) {
	case Plus:
		return append(flattenSum(v.Left), flattenSum(v.Right)...)
	case Sum:
		out := make([]Expression, len(v.Terms))
		copy(out, v.Terms)
		return out
	default:
		return []Expression{e}
	}
}

func collectSumTerms(l, r Expression) []Expression {
	return append(flattenSum(l), flattenSum(r)...)
}

func (s Sum) FreeVariables() map[string]struct{} { return unionVars(s.Terms...) }

func (s Sum) Substitute(name string, repl Expression) Expression {
	out := make([]Expression, len(s.Terms))
	for i, t := range s.Terms {
		out[i] = t.Substitute(name, repl)
	}
	return Sum{out}
}

func (s Sum) Evaluate(env Environment) (float64, error) {
	total := 0.0
	for _, t := range s.Terms {
		v, err := t.Evaluate(env)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func (s Sum) EvaluateAt(arg Expression) Expression {
	out := make([]Expression, len(s.Terms))
	for i, t := range s.Terms {
		out[i] = t.EvaluateAt(arg)
	}
	return Sum{out}
}

func (s Sum) Partial(name string) Expression {
	out := make([]Expression, len(s.Terms))
	for i, t := range s.Terms {
		out[i] = t.Partial(name)
	}
	return Sum{out}.Simplify()
}

func (s Sum) Simplify() Expression {
	terms := make([]Expression, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = t.Simplify()
	}
	terms = sortTerms(terms)

	var flat []Expression
	for _, t := range terms {
		if inner, ok := t.(Sum); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, t)
		}
	}

	var ordinary, subtrahends []Expression
	for _, t := range flat {
		if m, ok := t.(Minus); ok {
			ordinary = append(ordinary, m.Left)
			subtrahends = append(subtrahends, m.Right)
		} else {
			ordinary = append(ordinary, t)
		}
	}

	sum := 0.0
	hasConst := false
	var rest []Expression
	for _, t := range ordinary {
		if c, ok := t.(Constant); ok {
			sum += c.Value
			hasConst = true
		} else {
			rest = append(rest, t)
		}
	}

	finalTerms := rest
	if hasConst && sum != 0 {
		finalTerms = append([]Expression{Constant{sum}}, rest...)
	}

	var result Expression
	switch len(finalTerms) {
	case 0:
		result = Constant{0}
	case 1:
		result = finalTerms[0]
	default:
		result = Sum{Terms: finalTerms}
	}

	if len(subtrahends) > 0 {
		denom := Sum{Terms: subtrahends}.Simplify()
		result = Minus{result, denom}
	}
	return result
}

func (s Sum) Sort() Expression {
	out := make([]Expression, len(s.Terms))
	for i, t := range s.Terms {
		out[i] = t.Sort()
	}
	return Sum{Terms: sortTerms(out)}
}

func (s Sum) Equal(other Expression) bool {
	o, ok := other.(Sum)
	if !ok || len(o.Terms) != len(s.Terms) {
		return false
	}
	for i := range s.Terms {
		if !s.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

func (s Sum) Rank() Rank { return RankSum }

// Product is the canonical commutative collection for multiplication
// (spec.md §3).
type Product struct{ Terms []Expression }

func flattenProduct(e Expression) []Expression {
	switch v := e.(type) {
	case Times:
		return append(flattenProduct(v.Left), flattenProduct(v.Right)...)
	case Product:
		out := make([]Expression, len(v.Terms))
		copy(out, v.Terms)
		return out
	default:
		return []Expression{e}
	}
}

func collectProductTerms(l, r Expression) []Expression {
	return append(flattenProduct(l), flattenProduct(r)...)
}

func (p Product) FreeVariables() map[string]struct{} { return unionVars(p.Terms...) }

func (p Product) Substitute(name string, repl Expression) Expression {
	out := make([]Expression, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = t.Substitute(name, repl)
	}
	return Product{out}
}

func (p Product) Evaluate(env Environment) (float64, error) {
	total := 1.0
	for _, t := range p.Terms {
		v, err := t.Evaluate(env)
		if err != nil {
			return 0, err
		}
		total *= v
	}
	return total, nil
}

func (p Product) EvaluateAt(arg Expression) Expression {
	out := make([]Expression, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = t.EvaluateAt(arg)
	}
	return Product{out}
}

// Partial applies the generalized product rule: the derivative of a product
// of n factors is the sum, over each factor, of the product of all other
// factors times that factor's derivative (spec.md §4.3).
func (p Product) Partial(name string) Expression {
	summands := make([]Expression, len(p.Terms))
	for i := range p.Terms {
		factors := make([]Expression, 0, len(p.Terms))
		for j, t := range p.Terms {
			if j == i {
				factors = append(factors, t.Partial(name))
			} else {
				factors = append(factors, t)
			}
		}
		summands[i] = Product{Terms: factors}
	}
	return Sum{Terms: summands}.Simplify()
}

func (p Product) Simplify() Expression {
	terms := make([]Expression, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = t.Simplify()
	}
	terms = sortTerms(terms)

	var flat []Expression
	for _, t := range terms {
		if inner, ok := t.(Product); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, t)
		}
	}

	var ordinary, denomTerms []Expression
	for _, t := range flat {
		if d, ok := t.(Divide); ok {
			ordinary = append(ordinary, d.Left)
			denomTerms = append(denomTerms, d.Right)
		} else {
			ordinary = append(ordinary, t)
		}
	}

	product := 1.0
	hasConst := false
	var rest []Expression
	for _, t := range ordinary {
		if c, ok := t.(Constant); ok {
			product *= c.Value
			hasConst = true
		} else {
			rest = append(rest, t)
		}
	}

	if hasConst && product == 0 {
		return Constant{0}
	}

	finalTerms := rest
	if hasConst && product != 1 {
		finalTerms = append([]Expression{Constant{product}}, rest...)
	}

	var result Expression
	switch len(finalTerms) {
	case 0:
		result = Constant{1}
	case 1:
		result = finalTerms[0]
	default:
		result = Product{Terms: finalTerms}
	}

	if len(denomTerms) > 0 {
		denom := Product{Terms: denomTerms}.Simplify()
		result = Divide{result, denom}
	}
	return result
}

func (p Product) Sort() Expression {
	out := make([]Expression, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = t.Sort()
	}
	return Product{Terms: sortTerms(out)}
}

func (p Product) Equal(other Expression) bool {
	o, ok := other.(Product)
	if !ok || len(o.Terms) != len(p.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

func (p Product) Rank() Rank { return RankProduct }
