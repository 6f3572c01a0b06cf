// Package parser implements the CAS surface grammar (spec.md §6) as a
// recursive-descent / precedence-climbing parser, grounded on the teacher's
// Pratt parser (internal/parser/parser.go): a curToken/peekToken cursor
// advanced by nextToken, accumulated (not fail-fast) errors, and
// precedence-aware loops in place of a generated grammar.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/leibniz/internal/cerrors"
	"github.com/cwbudde/leibniz/internal/expr"
	"github.com/cwbudde/leibniz/internal/functions"
	"github.com/cwbudde/leibniz/internal/lexer"
	"github.com/cwbudde/leibniz/internal/token"
)

// Command is a REPL-level "$name" directive (spec.md §6).
type Command struct {
	Name string
}

// Result is the outcome of parsing a single input line: exactly one of Expr
// or Command is set. Expr covers the expr/assignment/equation start
// alternatives uniformly since expr.Assertion and expr.Equation are both
// expr.Expression values.
type Result struct {
	Expr    expr.Expression
	Command *Command
}

var commandNames = map[string]bool{
	"debug":   true,
	"session": true,
	"vars":    true,
	"python":  true,
}

// Parser turns one line of CAS surface syntax into a Result.
type Parser struct {
	l      *lexer.Lexer
	source string

	curTok  token.Token
	peekTok token.Token

	errors []*cerrors.SyntaxError
}

// New creates a Parser over source, priming the two-token lookahead buffer.
func New(source string) *Parser {
	p := &Parser{l: lexer.New(source), source: source}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*cerrors.SyntaxError { return p.errors }

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, cerrors.NewSyntaxError(pos, p.source, fmt.Sprintf(format, args...)))
}

// ParseLine parses one full line: start := expr | assignment | equation | command.
// On syntax error it returns a nil Result; callers inspect Errors().
func (p *Parser) ParseLine() *Result {
	if p.curTok.Type == token.DOLLAR {
		return p.parseCommand()
	}

	if p.curTok.Type == token.IDENT && p.peekTok.Type == token.ASSIGN && !isFunctionName(p.curTok.Literal) {
		return p.parseAssignment()
	}

	left := p.parseSum()
	if left == nil {
		return nil
	}

	if p.curTok.Type == token.EQUALS {
		p.nextToken()
		right := p.parseSum()
		if right == nil {
			return nil
		}
		left = expr.NewEquation(left, right)
	}

	if p.curTok.Type != token.EOF {
		p.errorf(p.curTok.Pos, "unexpected trailing token %q", p.curTok.Literal)
		return nil
	}

	return &Result{Expr: left}
}

func (p *Parser) parseCommand() *Result {
	pos := p.curTok.Pos
	p.nextToken() // consume '$'
	if p.curTok.Type != token.IDENT {
		p.errorf(pos, "expected a command name after '$'")
		return nil
	}
	name := p.curTok.Literal
	if !commandNames[name] {
		p.errorf(p.curTok.Pos, "unknown REPL command %q", name)
		return nil
	}
	p.nextToken()
	if p.curTok.Type != token.EOF {
		p.errorf(p.curTok.Pos, "unexpected trailing token %q after command", p.curTok.Literal)
		return nil
	}
	return &Result{Command: &Command{Name: name}}
}

func (p *Parser) parseAssignment() *Result {
	name := p.curTok.Literal
	p.nextToken() // consume IDENT
	p.nextToken() // consume ':='
	value := p.parseSum()
	if value == nil {
		return nil
	}
	if p.curTok.Type != token.EOF {
		p.errorf(p.curTok.Pos, "unexpected trailing token %q after assignment", p.curTok.Literal)
		return nil
	}
	return &Result{Expr: expr.Assertion{Variable: name, Value: value}}
}

// parseSum implements: sum := sum "+" product | sum "-" product | product.
func (p *Parser) parseSum() expr.Expression {
	left := p.parseProduct()
	if left == nil {
		return nil
	}
	for {
		switch p.curTok.Type {
		case token.PLUS:
			p.nextToken()
			right := p.parseProduct()
			if right == nil {
				return nil
			}
			left = expr.Plus{Left: left, Right: right}
		case token.MINUS:
			p.nextToken()
			right := p.parseProduct()
			if right == nil {
				return nil
			}
			left = expr.Minus{Left: left, Right: right}
		default:
			return left
		}
	}
}

// startsAtomNonum reports whether the current token can begin an
// atom_nonum, the trigger for implicit multiplication (spec.md §6:
// "product := neg_atom atom_nonum").
func (p *Parser) startsAtomNonum() bool {
	return p.curTok.Type == token.IDENT || p.curTok.Type == token.LPAREN
}

// parseProduct implements: product := neg_atom "*" product
//
//	| neg_atom atom_nonum (implicit multiplication)
//	| product "/" atom
//	| neg_atom
func (p *Parser) parseProduct() expr.Expression {
	left := p.parseNegAtom()
	if left == nil {
		return nil
	}
	for {
		switch {
		case p.curTok.Type == token.STAR:
			p.nextToken()
			right := p.parseNegAtom()
			if right == nil {
				return nil
			}
			left = expr.Times{Left: left, Right: right}
		case p.curTok.Type == token.SLASH:
			p.nextToken()
			right := p.parseAtom()
			if right == nil {
				return nil
			}
			left = expr.Divide{Left: left, Right: right}
		case p.startsAtomNonum():
			right := p.parseNegAtom()
			if right == nil {
				return nil
			}
			left = expr.Times{Left: left, Right: right}
		default:
			return left
		}
	}
}

// parseNegAtom implements: neg_atom := "-" atom | atom.
func (p *Parser) parseNegAtom() expr.Expression {
	if p.curTok.Type == token.MINUS {
		p.nextToken()
		a := p.parseAtom()
		if a == nil {
			return nil
		}
		return expr.UnaryMinus{Expr: a}
	}
	return p.parseAtom()
}

// parseAtom implements: atom := atom_nonum | NUMBER, plus the power
// alternative of atom_nonum (power := atom "^" atom, right-associative).
func (p *Parser) parseAtom() expr.Expression {
	base := p.parseAtomBase()
	if base == nil {
		return nil
	}
	if p.curTok.Type == token.CARET {
		p.nextToken()
		exponent := p.parseAtom()
		if exponent == nil {
			return nil
		}
		return expr.Power{Left: base, Right: exponent}
	}
	return base
}

func (p *Parser) parseAtomBase() expr.Expression {
	switch p.curTok.Type {
	case token.NUMBER:
		lit := p.curTok.Literal
		pos := p.curTok.Pos
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			p.errorf(pos, "invalid number literal %q", lit)
			return nil
		}
		p.nextToken()
		return expr.Constant{Value: v}
	case token.LPAREN:
		p.nextToken()
		inner := p.parseSum()
		if inner == nil {
			return nil
		}
		if p.curTok.Type != token.RPAREN {
			p.errorf(p.curTok.Pos, "expected ')'")
			return nil
		}
		p.nextToken()
		return inner
	case token.IDENT:
		return p.parseIdentOrFunc()
	default:
		p.errorf(p.curTok.Pos, "unexpected token %q", p.curTok.Literal)
		return nil
	}
}

func isFunctionName(name string) bool {
	_, ok := functions.Lookup(name)
	return ok
}

// parseIdentOrFunc implements funcname := FUNCNAME ("'")* and the trailing
// "(" expr ")" of funcappl, or falls back to a bare var.
func (p *Parser) parseIdentOrFunc() expr.Expression {
	name := p.curTok.Literal
	pos := p.curTok.Pos

	kind, isFunc := functions.Lookup(name)
	if !isFunc {
		if name == "" {
			p.errorf(pos, "empty identifier")
			return nil
		}
		p.nextToken()
		return expr.Variable{Name: name}
	}

	p.nextToken() // consume FUNCNAME
	primes := 0
	for p.curTok.Type == token.PRIME {
		primes++
		p.nextToken()
	}

	if p.curTok.Type != token.LPAREN {
		p.errorf(p.curTok.Pos, "function %q must be applied to an argument, e.g. %s(x)", name, name)
		return nil
	}
	p.nextToken() // consume '('
	arg := p.parseSum()
	if arg == nil {
		return nil
	}
	if p.curTok.Type != token.RPAREN {
		p.errorf(p.curTok.Pos, "expected ')' to close call to %q", name)
		return nil
	}
	p.nextToken()

	template := expr.DerivativeTemplate(kind, primes)
	return template.EvaluateAt(arg)
}
