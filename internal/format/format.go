// Package format renders expr.Expression trees in the five surface formats
// named by spec.md §6: plain, tex, python, raw and tree. Parenthesization
// follows the "needs parentheses" propagation of the Python original this
// CAS was distilled from (operators.py): every node class has a fixed
// default (Sum/Plus/Minus/Divide self-wrap, Times/Product/Power don't), and
// Divide/Power additionally force a compound child to wrap regardless of
// its own default. The Python original computes this once at construction
// time by mutating a field; here it is computed functionally at render time
// to keep expr.Expression values immutable.
package format

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/leibniz/internal/expr"
)

// Style selects one of the five output formats.
type Style int

const (
	Plain Style = iota
	Tex
	Python
	Raw
	Tree
)

// Render dispatches to the requested Style. Raw and Tree ignore the
// plain/tex/python distinction entirely, matching the Python original's
// separate rawformat/treeformat methods.
func Render(e expr.Expression, style Style) string {
	switch style {
	case Raw:
		return renderRaw(e)
	case Tree:
		return "\n" + renderTree(e, "")
	default:
		return wrap(e, style, false)
	}
}

// formatNumber renders a Constant's value the way the Python original's
// str(value) would for a value that is conceptually an int when whole and a
// float otherwise. No locale grouping: the lexer's readNumber never accepts
// a thousands separator, so formatted output must stay round-trippable
// through the parser (spec.md §8's parse(format(simplify(e))) invariant).
func formatNumber(v float64) string {
	if !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isPlusOrSum reports whether e is a Plus or a Sum, the only child kinds
// Divide's left side forces into parentheses (operators.py Divide.__init__).
func isPlusOrSum(e expr.Expression) bool {
	switch e.(type) {
	case expr.Plus, expr.Sum:
		return true
	default:
		return false
	}
}

// isCompound reports whether e is any binary operator or commutative
// collection, the class of child Divide's right side and both of Power's
// sides force into parentheses.
func isCompound(e expr.Expression) bool {
	switch e.(type) {
	case expr.Plus, expr.Minus, expr.Times, expr.Divide, expr.Power, expr.Sum, expr.Product:
		return true
	default:
		return false
	}
}

// selfNeedsParens is each node class's own default wrapping behavior,
// ported from operators.py's class-level needs_parentheses attributes.
func selfNeedsParens(e expr.Expression) bool {
	switch e.(type) {
	case expr.Plus, expr.Minus, expr.Sum, expr.Divide:
		return true
	default:
		return false
	}
}

// wrap renders e and parenthesizes it if its own default says so, or if the
// caller forces it (Divide/Power flagging a compound child). Divide's tex
// rendering is the one case where the node supplies its own complete
// wrapping (the \frac{}{} form) and must not be double-wrapped, mirroring
// DivisionFormatter.texformat bypassing the common parenthesise() call that
// the plain/python BinaryOperatorFormatter path still uses.
func wrap(e expr.Expression, style Style, forced bool) string {
	s := renderInner(e, style)
	if _, isDivide := e.(expr.Divide); isDivide && style == Tex {
		return s
	}
	if forced || selfNeedsParens(e) {
		return "(" + s + ")"
	}
	return s
}

func plusSymbol(style Style) string {
	if style == Tex {
		return "+"
	}
	return " + "
}

func minusSymbol(style Style) string {
	if style == Tex {
		return "-"
	}
	return " - "
}

func timesSymbol(style Style) string {
	if style == Tex {
		return "\\cdot "
	}
	return " * "
}

func divideSymbol(style Style) string {
	return " / "
}

func renderInner(e expr.Expression, style Style) string {
	switch v := e.(type) {
	case expr.Constant:
		return formatNumber(v.Value)
	case expr.Variable:
		return v.Name
	case expr.Dot:
		if style == Tex {
			return "\\cdot"
		}
		return "·"
	case expr.Plus:
		return wrap(v.Left, style, false) + plusSymbol(style) + wrap(v.Right, style, false)
	case expr.Minus:
		return wrap(v.Left, style, false) + minusSymbol(style) + wrap(v.Right, style, false)
	case expr.UnaryMinus:
		return "-" + wrap(v.Expr, style, false)
	case expr.Times:
		return wrap(v.Left, style, false) + timesSymbol(style) + wrap(v.Right, style, false)
	case expr.Divide:
		return renderDivide(v, style)
	case expr.Power:
		return renderPower(v, style)
	case expr.Sum:
		return renderCollection(termsOf(v), plusSymbol(style), style)
	case expr.Product:
		return renderCollection(termsOf(v), timesSymbol(style), style)
	case expr.Func:
		return renderFunc(v, style)
	case expr.Equation:
		return renderEquation(v, style)
	case expr.Assertion:
		return renderAssertion(v, style)
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func termsOf(e expr.Expression) []expr.Expression {
	switch v := e.(type) {
	case expr.Sum:
		return v.Terms
	case expr.Product:
		return v.Terms
	default:
		return nil
	}
}

func renderCollection(terms []expr.Expression, symbol string, style Style) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = wrap(t, style, false)
	}
	return strings.Join(parts, symbol)
}

func renderDivide(d expr.Divide, style Style) string {
	if style == Tex {
		return fmt.Sprintf("\\frac{%s}{%s}", wrap(d.Left, style, false), wrap(d.Right, style, false))
	}
	left := wrap(d.Left, style, isPlusOrSum(d.Left))
	right := wrap(d.Right, style, isCompound(d.Right))
	return left + divideSymbol(style) + right
}

func renderPower(p expr.Power, style Style) string {
	if style == Tex {
		forced := isCompound(p.Right)
		exponent := wrap(p.Right, style, forced)
		if forced {
			exponent = exponent[1 : len(exponent)-1]
		}
		return fmt.Sprintf("%s^{%s}", wrap(p.Left, style, isCompound(p.Left)), exponent)
	}
	symbol := "^"
	if style == Python {
		symbol = "**"
	}
	left := wrap(p.Left, style, isCompound(p.Left))
	right := wrap(p.Right, style, isCompound(p.Right))
	return left + symbol + right
}

func renderFunc(f expr.Func, style Style) string {
	name := f.Kind.Name()
	arg := wrap(f.Arg, style, false)
	switch style {
	case Tex:
		return "\\" + strings.ToLower(name) + "(" + arg + ")"
	case Python:
		return strings.ToLower(name) + "(" + arg + ")"
	default:
		return name + "(" + arg + ")"
	}
}

func renderEquation(eq expr.Equation, style Style) string {
	rhs := " = 0"
	if style == Python {
		rhs = " == 0"
	}
	return wrap(eq.Expr, style, false) + rhs
}

func renderAssertion(a expr.Assertion, style Style) string {
	symbol := " := "
	if style == Python {
		symbol = " = "
	}
	return a.Variable + symbol + wrap(a.Value, style, false)
}

// renderRaw produces a constructor-form dump, e.g. "Plus(Constant(1),
// Variable('x'))" (spec.md §6, invariant 10).
func renderRaw(e expr.Expression) string {
	switch v := e.(type) {
	case expr.Constant:
		return fmt.Sprintf("Constant(%s)", formatNumber(v.Value))
	case expr.Variable:
		return fmt.Sprintf("Variable('%s')", v.Name)
	case expr.Dot:
		return "Dot()"
	case expr.Plus:
		return fmt.Sprintf("Plus(%s, %s)", renderRaw(v.Left), renderRaw(v.Right))
	case expr.Minus:
		return fmt.Sprintf("Minus(%s, %s)", renderRaw(v.Left), renderRaw(v.Right))
	case expr.UnaryMinus:
		return fmt.Sprintf("UnaryMinus(%s)", renderRaw(v.Expr))
	case expr.Times:
		return fmt.Sprintf("Times(%s, %s)", renderRaw(v.Left), renderRaw(v.Right))
	case expr.Divide:
		return fmt.Sprintf("Divide(%s, %s)", renderRaw(v.Left), renderRaw(v.Right))
	case expr.Power:
		return fmt.Sprintf("Power(%s, %s)", renderRaw(v.Left), renderRaw(v.Right))
	case expr.Sum:
		return fmt.Sprintf("Sum(%s)", rawJoin(v.Terms))
	case expr.Product:
		return fmt.Sprintf("Product(%s)", rawJoin(v.Terms))
	case expr.Func:
		return fmt.Sprintf("%s(%s)", v.Kind.Name(), renderRaw(v.Arg))
	case expr.Equation:
		return fmt.Sprintf("Equation(%s)", renderRaw(v.Expr))
	case expr.Assertion:
		return fmt.Sprintf("Assertion(Variable('%s'), %s)", v.Variable, renderRaw(v.Value))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func rawJoin(terms []expr.Expression) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = renderRaw(t)
	}
	return strings.Join(parts, ",")
}

// nodeInfo is a node's own label in a tree render: its class name, except
// Constant/Variable/Dot which show their raw dump, mirroring
// ExpressionFormatter.nodeinfo.
func nodeInfo(e expr.Expression) string {
	switch v := e.(type) {
	case expr.Constant, expr.Variable, expr.Dot:
		return renderRaw(v)
	case expr.Func:
		return v.Kind.Name()
	case expr.Plus:
		return "Plus"
	case expr.Minus:
		return "Minus"
	case expr.UnaryMinus:
		return "UnaryMinus"
	case expr.Times:
		return "Times"
	case expr.Divide:
		return "Divide"
	case expr.Power:
		return "Power"
	case expr.Sum:
		return "Sum"
	case expr.Product:
		return "Product"
	case expr.Equation:
		return "Equation"
	case expr.Assertion:
		return "Assertion"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func children(e expr.Expression) []expr.Expression {
	switch v := e.(type) {
	case expr.Plus:
		return []expr.Expression{v.Left, v.Right}
	case expr.Minus:
		return []expr.Expression{v.Left, v.Right}
	case expr.Times:
		return []expr.Expression{v.Left, v.Right}
	case expr.Divide:
		return []expr.Expression{v.Left, v.Right}
	case expr.Power:
		return []expr.Expression{v.Left, v.Right}
	case expr.UnaryMinus:
		return []expr.Expression{v.Expr}
	case expr.Sum:
		return v.Terms
	case expr.Product:
		return v.Terms
	case expr.Func:
		return []expr.Expression{v.Arg}
	case expr.Equation:
		return []expr.Expression{v.Expr}
	case expr.Assertion:
		return []expr.Expression{expr.Variable{Name: v.Variable}, v.Value}
	default:
		return nil
	}
}

// renderTree builds an indented ASCII tree using the same glyph-replacement
// strategy as the Python original's treeformat: the previous line's
// connector is turned into plain indentation before descending.
func renderTree(e expr.Expression, indent string) string {
	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(nodeInfo(e))

	kids := children(e)
	replaced := strings.ReplaceAll(strings.ReplaceAll(indent, "└─", "  "), "├─", "│ ")
	for i, k := range kids {
		last := i == len(kids)-1
		connector := "  ├─ "
		if last {
			connector = "  └─ "
		}
		sb.WriteString("\n")
		sb.WriteString(renderTree(k, replaced+connector))
	}
	return sb.String()
}

// SortedVariableNames returns an expression's free variables in sorted
// order, the same order expr.Closure uses for its arguments. Neither $vars
// nor Closure calls it.
func SortedVariableNames(e expr.Expression) []string {
	set := e.FreeVariables()
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
