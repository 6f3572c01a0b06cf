package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/leibniz/internal/format"
)

func TestEvalSimpleExpression(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("2 + 3")
	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %s", errOut.String())
	}
	if got, want := strings.TrimSpace(out.String()), "5"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalAssignmentThenReference(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("x := 2 + 3")
	out.Reset()

	s.Eval("x * 2")
	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %s", errOut.String())
	}
	if got, want := strings.TrimSpace(out.String()), "10"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalParseErrorGoesToErr(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("2 +")
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if errOut.Len() == 0 {
		t.Fatal("expected a parse error on Err")
	}
}

func TestDebugCommandTogglesFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	if s.Config.Debug {
		t.Fatal("expected debug to start false")
	}
	s.Eval("$debug")
	if !s.Config.Debug {
		t.Fatal("expected debug to be toggled on")
	}
}

func TestPythonCommandTogglesFormat(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("$python")
	if s.Config.Format != format.Python {
		t.Fatalf("expected Python format, got %v", s.Config.Format)
	}
	s.Eval("$python")
	if s.Config.Format != format.Plain {
		t.Fatalf("expected toggle back to Plain, got %v", s.Config.Format)
	}
}

func TestVarsCommandListsBindingsSorted(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("b := 2")
	s.Eval("a := 1")
	out.Reset()

	s.Eval("$vars")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "a = ") || !strings.HasPrefix(lines[1], "b = ") {
		t.Fatalf("expected alphabetical order, got %v", lines)
	}
	_ = errOut
}

func TestSessionCommandProducesReadableJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("x := 5")
	out.Reset()

	s.Eval("$session")
	blob := strings.TrimSpace(out.String())
	v, ok := VarValue(blob, "x")
	if !ok {
		t.Fatalf("expected vars.x in %s", blob)
	}
	if v != 5 {
		t.Fatalf("got %v, want 5", v)
	}
	_ = errOut
}

func TestUnknownCommandIsReportedAsError(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut)
	s.Eval("$bogus")
	if errOut.Len() == 0 {
		t.Fatal("expected an error for an unknown command")
	}
}
