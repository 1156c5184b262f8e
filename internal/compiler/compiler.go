// Package compiler maintains a set of documents, the semantic database
// built from them, and a dependency graph that keeps recheck work
// proportional to what an edit could actually affect.
package compiler

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/eventbus"
	"github.com/gravelql/gravel/internal/events"
	"github.com/gravelql/gravel/internal/lex"
	"github.com/gravelql/gravel/internal/syn"
	"github.com/gravelql/gravel/internal/types"
)

// Checker validates one definition against the database and returns its
// diagnostics. It runs only for definitions the last round of edits could
// have affected.
type Checker func(def ast.Definition, db *types.Database) []diag.Diagnostic

type Option func(*Compiler)

// WithChecker installs the per-definition checker run during Rebuild.
func WithChecker(c Checker) Option {
	return func(cp *Compiler) { cp.checker = c }
}

// document is one registered source: its parse result and whether it came
// from a library. Library definitions participate in resolution but are
// never checked themselves.
type document struct {
	ast     *ast.Document
	library bool
	diags   []diag.Diagnostic
}

type Compiler struct {
	documents map[lex.SourceID]*document
	graph     *DepGraph[ast.Definition, Dependency]
	database  *types.Database
	checker   Checker
	sources   map[ast.Definition]lex.SourceID
	defDiags  map[ast.Definition][]diag.Diagnostic
	invalid   map[ast.Definition]struct{}
	tracer    trace.Tracer
}

func New(opts ...Option) *Compiler {
	c := &Compiler{
		documents: map[lex.SourceID]*document{},
		graph:     NewDepGraph[ast.Definition, Dependency](),
		database:  types.NewDatabase(),
		sources:   map[ast.Definition]lex.SourceID{},
		defDiags:  map[ast.Definition][]diag.Diagnostic{},
		invalid:   map[ast.Definition]struct{}{},
		tracer:    otel.Tracer("gravel/compiler"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddDocument parses text and registers it under source, replacing any
// previous document with that id. It returns the set of sources holding at
// least one definition that must be rechecked; the result becomes visible
// on the next Rebuild.
func (c *Compiler) AddDocument(ctx context.Context, source lex.SourceID, text string, library bool) map[lex.SourceID]struct{} {
	ctx, span := c.tracer.Start(ctx, "compiler.add_document")
	defer span.End()
	start := time.Now()

	affected := map[ast.Definition]struct{}{}
	if old, ok := c.documents[source]; ok {
		c.unregister(old, affected)
	}

	tree, unparsed := syn.ParseDocument(source, text)
	doc := &document{
		ast:     tree,
		library: library,
		diags:   ast.Errors(tree, unparsed),
	}
	c.documents[source] = doc
	c.register(source, doc, affected)

	for def := range affected {
		c.invalid[def] = struct{}{}
	}
	invalidated := c.sourcesOf(affected)

	eventbus.Publish(ctx, events.DocumentParsed{
		Source:      source,
		Library:     library,
		Definitions: len(tree.Definitions),
		Diagnostics: len(doc.diags),
		Invalidated: len(invalidated),
		Duration:    time.Since(start),
	})
	return invalidated
}

// RemoveDocument unregisters source and returns the sources invalidated by
// its disappearance.
func (c *Compiler) RemoveDocument(ctx context.Context, source lex.SourceID) map[lex.SourceID]struct{} {
	ctx, span := c.tracer.Start(ctx, "compiler.remove_document")
	defer span.End()

	doc, ok := c.documents[source]
	if !ok {
		return nil
	}
	affected := map[ast.Definition]struct{}{}
	c.unregister(doc, affected)
	delete(c.documents, source)

	for def := range affected {
		c.invalid[def] = struct{}{}
	}
	invalidated := c.sourcesOf(affected)

	eventbus.Publish(ctx, events.DocumentRemoved{
		Source:      source,
		Invalidated: len(invalidated),
	})
	return invalidated
}

// register wires the document's definitions into the graph and marks
// everything the new products could redirect.
func (c *Compiler) register(source lex.SourceID, doc *document, affected map[ast.Definition]struct{}) {
	for _, def := range doc.ast.Definitions {
		c.sources[def] = source
		if value, ok := product(def); ok {
			// Existing consumers of this value may now resolve to the new
			// definition (or hit a duplicate), so they are stale too.
			for consumer := range c.graph.Consumers(value) {
				for d := range c.graph.Invalidate(consumer) {
					affected[d] = struct{}{}
				}
			}
			c.graph.Produce(def, value)
		}
		for _, value := range consumed(def) {
			c.graph.Consume(def, value)
		}
		affected[def] = struct{}{}
	}
}

// unregister removes the document's definitions, collecting everything that
// depended on them first.
func (c *Compiler) unregister(doc *document, affected map[ast.Definition]struct{}) {
	for _, def := range doc.ast.Definitions {
		for d := range c.graph.Invalidate(def) {
			affected[d] = struct{}{}
		}
		c.graph.Remove(def)
		delete(c.sources, def)
		delete(c.defDiags, def)
		delete(c.invalid, def)
		delete(affected, def)
	}
}

func (c *Compiler) sourcesOf(defs map[ast.Definition]struct{}) map[lex.SourceID]struct{} {
	out := map[lex.SourceID]struct{}{}
	for def := range defs {
		if source, ok := c.sources[def]; ok {
			out[source] = struct{}{}
		}
	}
	return out
}

// Rebuild reconstructs the database from every registered document and
// rechecks the invalidated definitions. Documents are indexed in source-id
// order so duplicate resolution is deterministic.
func (c *Compiler) Rebuild(ctx context.Context) {
	ctx, span := c.tracer.Start(ctx, "compiler.rebuild")
	defer span.End()
	start := time.Now()

	ids := make([]lex.SourceID, 0, len(c.documents))
	for id := range c.documents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	docs := make([]*ast.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, c.documents[id].ast)
	}
	c.database = types.Build(docs...)

	rechecked := 0
	if c.checker != nil {
		for def := range c.invalid {
			source, ok := c.sources[def]
			if !ok || c.documents[source].library {
				continue
			}
			c.defDiags[def] = c.checker(def, c.database)
			rechecked++
		}
	}
	c.invalid = map[ast.Definition]struct{}{}

	eventbus.Publish(ctx, events.Rebuilt{
		Documents: len(docs),
		Rechecked: rechecked,
		Duration:  time.Since(start),
	})
}

// Database returns the semantic database from the last Rebuild.
func (c *Compiler) Database() *types.Database {
	return c.database
}

// Document returns the parse tree registered under source.
func (c *Compiler) Document(source lex.SourceID) (*ast.Document, bool) {
	doc, ok := c.documents[source]
	if !ok {
		return nil, false
	}
	return doc.ast, true
}

// Diagnostics returns the parse diagnostics of source followed by the
// checker diagnostics of its definitions, in definition order.
func (c *Compiler) Diagnostics(source lex.SourceID) []diag.Diagnostic {
	doc, ok := c.documents[source]
	if !ok {
		return nil
	}
	out := append([]diag.Diagnostic(nil), doc.diags...)
	for _, def := range doc.ast.Definitions {
		out = append(out, c.defDiags[def]...)
	}
	return out
}
