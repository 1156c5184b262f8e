// Package format renders syntax trees back to text. The output lexes to
// the same token sequence the tree holds (missing slots excepted), so
// formatting then reparsing yields an equivalent tree.
package format

import (
	"strings"

	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/lex"
)

// Format renders n with two-space indentation, one item per line inside
// braces and blank lines between top-level definitions. Missing slots are
// omitted; the result is what the author wrote minus the damage.
func Format(n ast.Node) string {
	p := &printer{}
	n.Traverse(p)
	out := p.buf.String()
	if out == "" {
		return out
	}
	return out + "\n"
}

var noSpaceBefore = map[string]bool{
	")": true, "]": true, ":": true, "!": true, "(": true,
}

var noSpaceAfter = map[string]bool{
	"(": true, "[": true, "@": true, "$": true,
}

type printer struct {
	ast.BaseVisitor
	buf     strings.Builder
	indent  int
	parens  int
	pending int
	last    string
}

func (p *printer) newline(n int) {
	if n > p.pending {
		p.pending = n
	}
}

func (p *printer) write(text string) {
	if p.pending > 0 {
		if p.buf.Len() > 0 {
			for i := 0; i < p.pending; i++ {
				p.buf.WriteByte('\n')
			}
			p.buf.WriteString(strings.Repeat("  ", p.indent))
		}
		p.pending = 0
	} else if p.buf.Len() > 0 && !noSpaceAfter[p.last] && !noSpaceBefore[text] {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(text)
	p.last = text
}

func (p *printer) VisitToken(t lex.Token) {
	switch t.Text {
	case "{":
		p.write("{")
		p.indent++
		p.newline(1)
	case "}":
		if p.indent > 0 {
			p.indent--
		}
		p.newline(1)
		p.write("}")
	case "(":
		p.parens++
		p.write("(")
	case ")":
		p.parens--
		p.write(")")
	default:
		p.write(t.Text)
	}
}

func (p *printer) VisitDefinition(ast.Definition) {
	if p.buf.Len() > 0 {
		p.newline(2)
	}
}

func (p *printer) VisitSelection(ast.Selection) {
	p.newline(1)
}

func (p *printer) VisitFieldDefinition(*ast.FieldDefinition) {
	p.newline(1)
}

func (p *printer) VisitInputValueDefinition(*ast.InputValueDefinition) {
	// Argument definitions stay inline; input object fields get a line each.
	if p.parens == 0 {
		p.newline(1)
	}
}

func (p *printer) VisitEnumValueDefinition(*ast.EnumValueDefinition) {
	p.newline(1)
}

func (p *printer) VisitRootOperationTypeDefinition(*ast.RootOperationTypeDefinition) {
	p.newline(1)
}

func (p *printer) VisitObjectField(*ast.ObjectField) {
	p.newline(1)
}

func (p *printer) PostVisitDescription(*ast.Description) {
	if p.parens == 0 {
		p.newline(1)
	}
}
