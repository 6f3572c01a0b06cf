// Package cerrors formats CAS errors with source context, line/column
// information and a caret, the way the teacher's internal/errors package
// formats DWScript compiler diagnostics.
package cerrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/leibniz/internal/token"
)

// SyntaxError is a single parse-time error (spec.md §7 ParseError) with
// enough context to render a caret under the offending token.
type SyntaxError struct {
	Message string
	Source  string
	Pos     token.Position
}

// NewSyntaxError creates a syntax error anchored at pos.
func NewSyntaxError(pos token.Position, source, message string) *SyntaxError {
	return &SyntaxError{Pos: pos, Message: message, Source: source}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Format(false)
}

// Format renders the error with the offending source line and a caret.
// If color is true, ANSI codes highlight the caret for terminal output.
func (e *SyntaxError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("parse error at line %d:%d\n", e.Pos.Line, e.Pos.Column))

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *SyntaxError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a list of syntax errors one after another.
func FormatErrors(errs []*SyntaxError, color bool) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.Format(color))
	}
	return sb.String()
}
