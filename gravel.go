// Package gravel is a fault-tolerant GraphQL frontend: a parser that turns
// possibly-malformed text into a usable syntax tree, and a compiler that
// keeps a queryable semantic database up to date as documents are edited.
// The internal packages do the work; this package is the importable surface.
package gravel

import (
	"context"

	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/compiler"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/eventbus"
	"github.com/gravelql/gravel/internal/format"
	"github.com/gravelql/gravel/internal/lex"
	"github.com/gravelql/gravel/internal/otel"
	"github.com/gravelql/gravel/internal/syn"
	"github.com/gravelql/gravel/internal/types"
)

type (
	SourceID    = lex.SourceID
	SourceMap   = lex.SourceMap
	Span        = lex.Span
	Token       = lex.Token
	Diagnostic  = diag.Diagnostic
	Document    = ast.Document
	Node        = ast.Node
	Visitor     = ast.Visitor
	BaseVisitor = ast.BaseVisitor
	Database    = types.Database
	Compiler    = compiler.Compiler
	Checker     = compiler.Checker
	Option      = compiler.Option
)

// NewSourceMap returns an empty document-key interner.
func NewSourceMap() *SourceMap {
	return lex.NewSourceMap()
}

// ParseDocument parses text into a syntax tree. It never fails: malformed
// input yields a tree with Missing slots plus the tokens no production
// claimed. Errors turns both into diagnostics.
func ParseDocument(source SourceID, text string) (*Document, []Token) {
	return syn.ParseDocument(source, text)
}

// Errors returns the diagnostics of every Missing slot under n, followed by
// one diagnostic per contiguous run of unparsed tokens.
func Errors(n Node, unparsed []Token) []Diagnostic {
	return ast.Errors(n, unparsed)
}

// SpanOf returns the minimal span covering every token under n, Missing
// slots included.
func SpanOf(n Node) Span {
	return ast.Span(n)
}

// Build indexes and infers docs into a fresh database.
func Build(docs ...*Document) *Database {
	return types.Build(docs...)
}

// NewCompiler returns an empty incremental compiler.
func NewCompiler(opts ...Option) *Compiler {
	return compiler.New(opts...)
}

// WithChecker installs the per-definition checker run during Rebuild.
func WithChecker(c Checker) Option {
	return compiler.WithChecker(c)
}

// Format renders n canonically. The output lexes back to the tree's token
// sequence, so formatting then reparsing yields an equivalent tree.
func Format(n Node) string {
	return format.Format(n)
}

// SetupTracing exports compiler spans to an OTLP collector and installs the
// event bus the compiler publishes on. With an empty endpoint nothing is
// configured and the returned shutdown is a no-op.
func SetupTracing(endpoint, service string) (func(context.Context) error, error) {
	if endpoint != "" {
		eventbus.Use(eventbus.New())
	}
	return otel.Setup(endpoint, service)
}
