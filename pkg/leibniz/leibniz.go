// Package leibniz is the public facade over the CAS: parsing, simplifying,
// differentiating, evaluating and formatting expressions, plus a REPL
// Engine for hosts that want the session/command loop directly. The shape
// (a constructor taking functional options, e.g. New(WithFormat(...)))
// mirrors the teacher's pkg/dwscript.New(WithTypeCheck(false))-style public
// API, adapted to this package's own option set.
package leibniz

import (
	"fmt"
	"io"

	"github.com/cwbudde/leibniz/internal/expr"
	"github.com/cwbudde/leibniz/internal/format"
	"github.com/cwbudde/leibniz/internal/parser"
	"github.com/cwbudde/leibniz/internal/session"
)

// Style re-exports internal/format's output styles so callers never need to
// import internal packages directly.
type Style = format.Style

const (
	Plain  = format.Plain
	Tex    = format.Tex
	Python = format.Python
	Raw    = format.Raw
	Tree   = format.Tree
)

// Expression re-exports internal/expr's Expression interface, the single
// value type every operation below consumes or produces.
type Expression = expr.Expression

// Environment re-exports internal/expr's variable-binding map.
type Environment = expr.Environment

// Parse converts one line of CAS surface syntax into an Expression. A
// "$" command line returns a nil Expression and no error; callers that
// need command dispatch should use Engine instead.
func Parse(source string) (Expression, error) {
	p := parser.New(source)
	res := p.ParseLine()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("%s", errs[0].Format(false))
	}
	if res == nil || res.Expr == nil {
		return nil, nil
	}
	return res.Expr, nil
}

// Simplify canonicalizes e (spec.md §4.4).
func Simplify(e Expression) Expression { return e.Simplify() }

// Differentiate returns ∂e/∂name, already simplified (spec.md §4.3).
func Differentiate(e Expression, name string) Expression { return e.Partial(name) }

// Gradient returns the symbolic partial derivative of e with respect to
// each of vars, in order (SPEC_FULL.md supplemented feature 1).
func Gradient(e Expression, vars []string) []Expression { return expr.Gradient(e, vars) }

// Jacobian returns the Gradient of every expression in fns, row-major.
func Jacobian(fns []Expression, vars []string) [][]Expression {
	return expr.Jacobian(fns, vars)
}

// Evaluate reduces e to a float64 under env.
func Evaluate(e Expression, env Environment) (float64, error) { return e.Evaluate(env) }

// EvaluateGradient evaluates Gradient(e, vars) numerically under env.
func EvaluateGradient(e Expression, vars []string, env Environment) ([]float64, error) {
	return expr.EvaluateGradient(e, vars, env)
}

// Format renders e in the requested Style.
func Format(e Expression, style Style) string { return format.Render(e, style) }

// Closure compiles e into a host-callable function over its free
// variables, sorted alphabetically (SPEC_FULL.md supplemented feature 2,
// base.py's pyfunction()).
func Closure(e Expression) (vars []string, fn func(args ...float64) (float64, error)) {
	return expr.Closure(e)
}

// Engine is a configurable REPL driver: Options set the engine up, Eval
// drives one input line through parse/dispatch/format.
type Engine struct {
	sess *session.Session
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithFormat sets the engine's initial output style (default Plain).
func WithFormat(style Style) Option {
	return func(e *Engine) { e.sess.Config.Format = style }
}

// WithDebug enables stack-trace error reporting from the start.
func WithDebug(enabled bool) Option {
	return func(e *Engine) { e.sess.Config.Debug = enabled }
}

// New creates an Engine writing results to out and errors to errOut.
func New(out, errOut io.Writer, opts ...Option) *Engine {
	e := &Engine{sess: session.New(out, errOut)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval parses and evaluates one line, writing the formatted result (or
// error) to the Engine's configured writers.
func (e *Engine) Eval(line string) { e.sess.Eval(line) }

// Vars returns a snapshot of the engine's current variable bindings.
func (e *Engine) Vars() Environment {
	out := make(Environment, len(e.sess.Config.Vars))
	for k, v := range e.sess.Config.Vars {
		out[k] = v
	}
	return out
}
