package expr

// FuncKind identifies a registered scalar function (spec.md §4.5): a name,
// a numeric implementation, and a symbolic derivative template containing
// Dot. Concrete kinds are supplied by internal/functions; expr only depends
// on this interface, never on the functions package, to avoid an import
// cycle (internal/functions imports internal/expr to build derivative
// templates out of Expression values).
type FuncKind interface {
	Name() string
	Numeric(x float64) (float64, error)
	Derivative() Expression
}

// lnKind is wired by internal/functions at registry-construction time so
// that Power.Partial can build ln(L) for the general power rule without
// importing the functions package (spec.md §4.3, design note on avoiding
// cyclic structure between the algebra core and the function registry).
var lnKind FuncKind

// SetLnKind registers the natural-logarithm FuncKind used internally by the
// power rule. Called once by internal/functions's registry constructor.
func SetLnKind(k FuncKind) { lnKind = k }

// Func is the application of a named scalar function to an argument
// (spec.md §3, §4.5).
type Func struct {
	Kind FuncKind
	Arg  Expression
}

func (f Func) FreeVariables() map[string]struct{} { return f.Arg.FreeVariables() }

func (f Func) Substitute(name string, repl Expression) Expression {
	return Func{Kind: f.Kind, Arg: f.Arg.Substitute(name, repl)}
}

func (f Func) Evaluate(env Environment) (float64, error) {
	x, err := f.Arg.Evaluate(env)
	if err != nil {
		return 0, err
	}
	v, err := f.Kind.Numeric(x)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// EvaluateAt instantiates the receiver as a derivative template: if the
// argument is exactly Dot, the template is complete and arg fills the slot;
// otherwise Dot is rewritten recursively inside the argument.
func (f Func) EvaluateAt(arg Expression) Expression {
	if _, ok := f.Arg.(Dot); ok {
		return Func{Kind: f.Kind, Arg: arg}
	}
	return Func{Kind: f.Kind, Arg: f.Arg.EvaluateAt(arg)}
}

// Partial applies the chain rule: derivTemplate(kind).evaluate_at(arg) *
// arg.partial(v) (spec.md §4.3).
func (f Func) Partial(name string) Expression {
	template := f.Kind.Derivative().EvaluateAt(f.Arg)
	return Times{template, f.Arg.Partial(name)}.Simplify()
}

func (f Func) Simplify() Expression {
	arg := f.Arg.Simplify()
	if c, ok := arg.(Constant); ok {
		if v, err := f.Kind.Numeric(c.Value); err == nil {
			return Constant{v}
		}
	}
	return Func{Kind: f.Kind, Arg: arg}
}

func (f Func) Sort() Expression { return Func{Kind: f.Kind, Arg: f.Arg.Sort()} }

func (f Func) Equal(other Expression) bool {
	o, ok := other.(Func)
	return ok && o.Kind.Name() == f.Kind.Name() && f.Arg.Equal(o.Arg)
}

func (f Func) Rank() Rank { return RankFunc }

// DerivativeTemplate returns the symbolic n-th derivative of k as a template
// expression over Dot (spec.md §6's funcname "'" suffix: "each prime applies
// the derivative template"). Dot responds to Partial("") as if it were the
// templated variable, so repeated Partial("") calls peel off one derivative
// at a time the same way a named variable's derivative chain would.
func DerivativeTemplate(k FuncKind, n int) Expression {
	template := Expression(Func{Kind: k, Arg: Dot{}})
	for i := 0; i < n; i++ {
		template = template.Partial("")
	}
	return template
}
