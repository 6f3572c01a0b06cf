package lexer

import (
	"testing"

	"github.com/cwbudde/leibniz/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `x + 2.5 * (y - sin(x)') := z`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.NUMBER, "2.5"},
		{token.STAR, "*"},
		{token.LPAREN, "("},
		{token.IDENT, "y"},
		{token.MINUS, "-"},
		{token.IDENT, "sin"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.RPAREN, ")"},
		{token.PRIME, "'"},
		{token.RPAREN, ")"},
		{token.ASSIGN, ":="},
		{token.IDENT, "z"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNumberForms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0"},
		{"3.14", "3.14"},
		{".14", ".14"},
		{"1.", "1."},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER || tok.Literal != tt.expected {
			t.Errorf("input %q: expected NUMBER %q, got %s %q", tt.input, tt.expected, tok.Type, tok.Literal)
		}
	}
}

func TestDollarCommand(t *testing.T) {
	l := New("$debug")
	tok := l.NextToken()
	if tok.Type != token.DOLLAR {
		t.Fatalf("expected DOLLAR, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "debug" {
		t.Fatalf("expected IDENT debug, got %s %q", tok.Type, tok.Literal)
	}
}

func TestIllegalColon(t *testing.T) {
	l := New(": x")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
}

func TestPositionTracking(t *testing.T) {
	l := New("x\n  y")
	first := l.NextToken()
	if first.Pos.Line != 1 {
		t.Fatalf("expected line 1, got %d", first.Pos.Line)
	}
	second := l.NextToken()
	if second.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", second.Pos.Line)
	}
}
