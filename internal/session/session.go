// Package session holds the one piece of mutable state the CAS has: the
// REPL's variable environment and output-format preference (spec.md §7,
// §9 "global mutable state"). It drives the input/parse/simplify/print
// cycle and dispatches the "$" commands a parsed line may produce.
package session

import (
	"fmt"
	"io"
	"runtime/debug"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/leibniz/internal/cerrors"
	"github.com/cwbudde/leibniz/internal/expr"
	"github.com/cwbudde/leibniz/internal/format"
	"github.com/cwbudde/leibniz/internal/parser"
)

// Config is the session's process-wide mutable state: variable bindings,
// preferred output format and the debug flag, mirroring session.py's
// Session class and its module-level DEBUG flag.
type Config struct {
	Vars   expr.Environment
	Format format.Style
	Debug  bool
}

// Session wires a Config to an input/output pair and drives one REPL.
type Session struct {
	Config Config
	Out    io.Writer
	Err    io.Writer
}

// New creates a Session with an empty environment and plain-text output,
// the parser's default before any "$python" command toggles it.
func New(out, errOut io.Writer) *Session {
	return &Session{
		Config: Config{Vars: expr.Environment{}, Format: format.Plain},
		Out:    out,
		Err:    errOut,
	}
}

// commandHandlers dispatches REPL commands by name, the same shape as the
// teacher's Cobra command tree (a name-keyed table) but driving in-REPL
// behavior rather than OS subcommands (SPEC_FULL.md's domain-stack note on
// cobra-style dispatch inside internal/session).
var commandHandlers = map[string]func(*Session){
	"debug":   (*Session).toggleDebug,
	"python":  (*Session).togglePython,
	"vars":    (*Session).printVars,
	"session": (*Session).printSessionJSON,
}

func (s *Session) toggleDebug() {
	s.Config.Debug = !s.Config.Debug
	fmt.Fprintf(s.Out, "debug mode: %v\n", s.Config.Debug)
}

func (s *Session) togglePython() {
	if s.Config.Format == format.Python {
		s.Config.Format = format.Plain
	} else {
		s.Config.Format = format.Python
	}
	fmt.Fprintf(s.Out, "output format: %s\n", styleName(s.Config.Format))
}

func styleName(st format.Style) string {
	switch st {
	case format.Python:
		return "python"
	case format.Tex:
		return "tex"
	case format.Raw:
		return "raw"
	case format.Tree:
		return "tree"
	default:
		return "plain"
	}
}

// printVars lists current bindings sorted by name, the Go reading of
// spec.md §6's undefined "$vars" effect (SPEC_FULL.md supplemented
// feature 3).
func (s *Session) printVars() {
	names := make([]string, 0, len(s.Config.Vars))
	for name := range s.Config.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.Out, "%s = %s\n", name, format.Render(expr.Constant{Value: s.Config.Vars[name]}, format.Plain))
	}
}

// sessionJSON marshals the session's bindings and format preference with
// sjson.Set rather than encoding/json, per SPEC_FULL.md's domain-stack
// wiring for the $session command's structured dump.
func (s *Session) sessionJSON() (string, error) {
	var blob string
	var err error
	blob, err = sjson.Set("{}", "format", styleName(s.Config.Format))
	if err != nil {
		return "", err
	}
	blob, err = sjson.Set(blob, "debug", s.Config.Debug)
	if err != nil {
		return "", err
	}
	for name, value := range s.Config.Vars {
		blob, err = sjson.Set(blob, "vars."+name, value)
		if err != nil {
			return "", err
		}
	}
	return blob, nil
}

func (s *Session) printSessionJSON() {
	blob, err := s.sessionJSON()
	if err != nil {
		fmt.Fprintf(s.Err, "failed to serialize session: %v\n", err)
		return
	}
	fmt.Fprintln(s.Out, blob)
}

// VarValue reads a single binding back out of a serialized session blob
// with gjson.Get, exercising the read half of the sjson/gjson pairing
// (used by session_test.go and available to hosts inspecting a dump).
func VarValue(blob, name string) (float64, bool) {
	res := gjson.Get(blob, "vars."+name)
	if !res.Exists() {
		return 0, false
	}
	return res.Float(), true
}

// Eval parses one line of input, dispatches a "$" command or evaluates an
// expression/assignment/equation, and writes the formatted result. It
// never returns an error: parse and evaluation failures are reported to
// Err, matching session.py's repl() swallowing exceptions into a printed
// message (or, under Config.Debug, a stack trace in place of
// traceback.print_exc()).
func (s *Session) Eval(line string) {
	p := parser.New(line)
	res := p.ParseLine()
	if errs := p.Errors(); len(errs) > 0 {
		s.reportError(cerrors.FormatErrors(errs, false))
		return
	}
	if res == nil {
		return
	}

	if res.Command != nil {
		handler, ok := commandHandlers[res.Command.Name]
		if !ok {
			s.reportError(fmt.Sprintf("unknown command %q", res.Command.Name))
			return
		}
		handler(s)
		return
	}

	s.evalExpression(res.Expr)
}

func (s *Session) bindKnownVars(e expr.Expression) expr.Expression {
	bound := e
	for name, value := range s.Config.Vars {
		bound = bound.Substitute(name, expr.Constant{Value: value})
	}
	return bound
}

func (s *Session) evalExpression(e expr.Expression) {
	if a, ok := e.(expr.Assertion); ok {
		simplified := s.bindKnownVars(a.Value).Simplify()
		if v, err := simplified.Evaluate(expr.Environment{}); err == nil {
			s.Config.Vars[a.Variable] = v
		} else {
			delete(s.Config.Vars, a.Variable)
		}
		fmt.Fprintln(s.Out, format.Render(expr.Assertion{Variable: a.Variable, Value: simplified}, s.Config.Format))
		return
	}

	simplified := s.bindKnownVars(e).Simplify()
	fmt.Fprintln(s.Out, format.Render(simplified, s.Config.Format))
}

func (s *Session) reportError(message string) {
	if s.Config.Debug {
		fmt.Fprintf(s.Err, "%s\n%s\n", message, debug.Stack())
		return
	}
	fmt.Fprintln(s.Err, message)
}
