// Package ast defines the syntax tree for GraphQL documents, including the
// partially-missing shapes the fault-tolerant parser produces, and the
// visitor used to traverse it.
package ast

import "github.com/gravelql/gravel/internal/lex"

// Node is implemented by every syntax tree node. Nodes are immutable after
// parsing; their pointer identity is the key used by downstream caches.
type Node interface {
	Traverse(v Visitor)
}

// Definition is a top-level entry of a document.
type Definition interface {
	Node
	isDefinition()
}

// ExecutableDefinition is an operation or fragment definition.
type ExecutableDefinition interface {
	Definition
	isExecutableDefinition()
}

// TypeSystemDefinition is a schema, type or directive definition.
type TypeSystemDefinition interface {
	Definition
	isTypeSystemDefinition()
}

// TypeSystemExtension is a schema or type extension.
type TypeSystemExtension interface {
	Definition
	isTypeSystemExtension()
}

// TypeDefinition is one of the six kinds of type definition.
type TypeDefinition interface {
	TypeSystemDefinition
	isTypeDefinition()
	// NameToken returns the defined type's name token, if present.
	NameToken() (lex.Token, bool)
}

// TypeExtension is one of the six kinds of type extension.
type TypeExtension interface {
	TypeSystemExtension
	isTypeExtension()
	// NameToken returns the extended type's name token, if present.
	NameToken() (lex.Token, bool)
}

// Selection is a field, fragment spread or inline fragment.
type Selection interface {
	Node
	isSelection()
}

// Value is an input value literal, list, object or variable.
type Value interface {
	Node
	isValue()
}

// Type is a type reference.
type Type interface {
	Node
	isType()
	// NameToken returns the innermost named type's token, if present.
	NameToken() (lex.Token, bool)
}

// Span returns the minimal span covering every token under n.
func Span(n Node) lex.Span {
	c := &SpanCollector{}
	n.Traverse(c)
	return c.Span()
}

// SpanCollector accumulates the joined span of every token it visits.
type SpanCollector struct {
	BaseVisitor
	span lex.Span
	seen bool
}

func (c *SpanCollector) VisitSpan(span lex.Span) {
	if !c.seen {
		c.span = span
		c.seen = true
		return
	}
	c.span = c.span.Join(span)
}

// Span returns the accumulated span, zero if no token was visited.
func (c *SpanCollector) Span() lex.Span {
	return c.span
}

func visitToken(v Visitor, t lex.Token) {
	if !t.IsValid() {
		return
	}
	v.VisitToken(t)
	v.VisitSpan(t.Span)
}

func visitMissing(v Visitor, m *MissingToken) {
	if m == nil {
		return
	}
	v.VisitMissing(m)
	v.VisitSpan(m.Span)
}

func traverseRecoverableToken(v Visitor, r Recoverable[lex.Token]) {
	if t, ok := r.Ok(); ok {
		visitToken(v, t)
		return
	}
	visitMissing(v, r.MissingTok())
}

func traverseRecoverable[T Node](v Visitor, r Recoverable[T]) {
	if n, ok := r.Ok(); ok {
		n.Traverse(v)
		return
	}
	visitMissing(v, r.MissingTok())
}

func traverseValue(v Visitor, val Value) {
	if val == nil {
		return
	}
	v.VisitValue(val)
	val.Traverse(v)
}

func traverseRecoverableValue(v Visitor, r Recoverable[Value]) {
	if val, ok := r.Ok(); ok {
		traverseValue(v, val)
		return
	}
	visitMissing(v, r.MissingTok())
}

func traverseType(v Visitor, t Type) {
	if t == nil {
		return
	}
	v.VisitType(t)
	t.Traverse(v)
}

func traverseRecoverableType(v Visitor, r Recoverable[Type]) {
	if t, ok := r.Ok(); ok {
		traverseType(v, t)
		return
	}
	visitMissing(v, r.MissingTok())
}

func traverseSelection(v Visitor, s Selection) {
	if s == nil {
		return
	}
	v.VisitSelection(s)
	s.Traverse(v)
}

func traverseDefinition(v Visitor, d Definition) {
	if d == nil {
		return
	}
	v.VisitDefinition(d)
	switch t := d.(type) {
	case TypeDefinition:
		v.VisitTypeDefinition(t)
	case TypeExtension:
		v.VisitTypeExtension(t)
	}
	d.Traverse(v)
}
