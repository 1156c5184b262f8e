// Package diag defines the diagnostics the parser and compiler report.
package diag

import (
	"fmt"

	"github.com/gravelql/gravel/internal/lex"
)

// Label attaches a message to a span of the offending source.
type Label struct {
	Span    lex.Span
	Message string
}

// Diagnostic is one reportable problem. Code is stable ("E0001"); Span is the
// primary location; Labels carry secondary locations.
type Diagnostic struct {
	Code    string
	Message string
	Span    lex.Span
	Labels  []Label
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

func unary(code, message string, span lex.Span, label string) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: message,
		Span:    span,
		Labels:  []Label{{Span: span, Message: label}},
	}
}

func binary(code, message string, first lex.Span, firstLabel string, second lex.Span, secondLabel string) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: message,
		Span:    second,
		Labels: []Label{
			{Span: first, Message: firstLabel},
			{Span: second, Message: secondLabel},
		},
	}
}
