package ast

import (
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

// CollectErrors gathers the diagnostic of every missing slot it visits, in
// traversal order.
type CollectErrors struct {
	BaseVisitor
	Diagnostics []diag.Diagnostic
}

func (c *CollectErrors) VisitMissing(m *MissingToken) {
	c.Diagnostics = append(c.Diagnostics, m.Diagnostic)
}

// Errors returns the diagnostics of every missing slot under n, followed by
// one unrecognized-tokens diagnostic per contiguous run of unparsed tokens.
func Errors(n Node, unparsed []lex.Token) []diag.Diagnostic {
	c := &CollectErrors{}
	n.Traverse(c)
	diags := c.Diagnostics
	for i := 0; i < len(unparsed); {
		span := unparsed[i].Span
		j := i + 1
		for j < len(unparsed) &&
			unparsed[j].Span.SourceID == span.SourceID &&
			unparsed[j].Span.Start >= span.End {
			span = span.Join(unparsed[j].Span)
			j++
		}
		diags = append(diags, diag.UnrecognizedTokens(span))
		i = j
	}
	return diags
}
