package compiler

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
	"github.com/gravelql/gravel/internal/types"
)

// label names a definition for assertions: operations and fragments by
// name, type definitions by type name.
func label(def ast.Definition) string {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		if d.Name.IsValid() {
			return d.Name.Text
		}
		return "<anonymous>"
	case *ast.FragmentDefinition:
		if name, ok := d.FragmentName.Ok(); ok {
			return name.Text
		}
	case *ast.SchemaDefinition:
		return "<schema>"
	case *ast.DirectiveDefinition:
		if name, ok := d.Name.Ok(); ok {
			return "@" + name.Text
		}
	case ast.TypeDefinition:
		if name, ok := d.NameToken(); ok {
			return name.Text
		}
	case ast.TypeExtension:
		if name, ok := d.NameToken(); ok {
			return "extend " + name.Text
		}
	}
	return "<unnamed>"
}

// recorder is a checker that remembers which definitions each Rebuild
// rechecked.
type recorder struct {
	checked []string
}

func (r *recorder) check(def ast.Definition, _ *types.Database) []diag.Diagnostic {
	r.checked = append(r.checked, label(def))
	return nil
}

func (r *recorder) take() []string {
	out := r.checked
	r.checked = nil
	sort.Strings(out)
	return out
}

func sources(set map[lex.SourceID]struct{}) []lex.SourceID {
	out := make([]lex.SourceID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestAddDocumentParsesAndIndexes(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.AddDocument(ctx, 1, `type Query { hero: Hero } type Hero { name: String }`, false)
	c.Rebuild(ctx)

	db := c.Database()
	require.True(t, db.HasType("Query"))
	require.True(t, db.HasType("Hero"))
	require.Empty(t, c.Diagnostics(1))

	doc, ok := c.Document(1)
	require.True(t, ok)
	require.Len(t, doc.Definitions, 2)

	_, ok = c.Document(2)
	require.False(t, ok)
}

func TestDiagnosticsSurfaceParseErrors(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.AddDocument(ctx, 1, `query { hero`, false)
	diags := c.Diagnostics(1)
	require.Len(t, diags, 1)
	require.Equal(t, "E0004", diags[0].Code)

	// Replacing the document with a fixed version clears them.
	c.AddDocument(ctx, 1, `query { hero }`, false)
	require.Empty(t, c.Diagnostics(1))
}

func TestInvalidationTracksTypeConsumers(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	c.AddDocument(ctx, 1, `type A { x: Int } type B { y: Int }`, false)
	c.AddDocument(ctx, 2, `query UsesA { a { x } } fragment OnA on A { x }`, false)
	c.AddDocument(ctx, 3, `query UsesB { b { y } }`, false)
	c.Rebuild(ctx)
	require.Equal(t, []string{"A", "B", "OnA", "UsesA", "UsesB"}, rec.take())

	// Editing the document that defines A touches A's consumers. The
	// operations reference types only through their selections, so neither
	// is rechecked; the fragment's type condition names A directly.
	invalidated := c.AddDocument(ctx, 1, `type A { x: String } type B { y: Int }`, false)
	require.Equal(t, []lex.SourceID{1, 2}, sources(invalidated))

	c.Rebuild(ctx)
	require.Equal(t, []string{"A", "B", "OnA"}, rec.take())
}

func TestInvalidationIsTransitiveThroughFragments(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	c.AddDocument(ctx, 1, `type A { x: Int }`, false)
	c.AddDocument(ctx, 2, `fragment OnA on A { x }`, false)
	c.AddDocument(ctx, 3, `query Q { a { ... OnA } }`, false)
	c.Rebuild(ctx)
	rec.take()

	// A change to A reaches Q through the fragment.
	invalidated := c.AddDocument(ctx, 1, `type A { x: String }`, false)
	require.Equal(t, []lex.SourceID{1, 2, 3}, sources(invalidated))

	c.Rebuild(ctx)
	require.Equal(t, []string{"A", "OnA", "Q"}, rec.take())
}

func TestOperationsConsumeTheSchema(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	c.AddDocument(ctx, 1, `schema { query: Root } type Root { x: Int }`, false)
	c.AddDocument(ctx, 2, `query Q { x }`, false)
	c.Rebuild(ctx)
	rec.take()

	// Rebinding the schema invalidates every operation.
	invalidated := c.AddDocument(ctx, 1, `schema { query: Other } type Root { x: Int } type Other { x: Int }`, false)
	require.Equal(t, []lex.SourceID{1, 2}, sources(invalidated))
	c.Rebuild(ctx)
	require.Contains(t, rec.take(), "Q")
}

func TestRemoveDocumentInvalidatesConsumers(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	c.AddDocument(ctx, 1, `type A { x: Int }`, false)
	c.AddDocument(ctx, 2, `fragment OnA on A { x }`, false)
	c.Rebuild(ctx)
	rec.take()

	invalidated := c.RemoveDocument(ctx, 1)
	require.Equal(t, []lex.SourceID{2}, sources(invalidated))
	require.Nil(t, c.Diagnostics(1))
	_, ok := c.Document(1)
	require.False(t, ok)

	c.Rebuild(ctx)
	require.Equal(t, []string{"OnA"}, rec.take())
	require.False(t, c.Database().HasType("A"))

	// Removing an unknown source is a no-op.
	require.Nil(t, c.RemoveDocument(ctx, 9))
}

func TestRebuildWithoutChangesRechecksNothing(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	c.AddDocument(ctx, 1, `type A { x: Int }`, false)
	c.Rebuild(ctx)
	rec.take()

	c.Rebuild(ctx)
	require.Empty(t, rec.take())
}

func TestLibraryDocumentsAreNotChecked(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	c.AddDocument(ctx, 1, `scalar DateTime`, true)
	c.AddDocument(ctx, 2, `type Query { now: DateTime }`, false)
	c.Rebuild(ctx)

	checked := rec.take()
	require.NotContains(t, checked, "DateTime")
	require.Contains(t, checked, "Query")

	// Library definitions still participate in resolution.
	require.True(t, c.Database().HasType("DateTime"))
}

func TestCheckerDiagnosticsAppearPerSource(t *testing.T) {
	ctx := context.Background()
	c := New(WithChecker(func(def ast.Definition, _ *types.Database) []diag.Diagnostic {
		if label(def) == "Bad" {
			return []diag.Diagnostic{{Code: "C0001", Message: "bad definition"}}
		}
		return nil
	}))

	c.AddDocument(ctx, 1, `query Bad { x } query Good { y }`, false)
	c.AddDocument(ctx, 2, `query AlsoGood { z }`, false)
	c.Rebuild(ctx)

	diags := c.Diagnostics(1)
	require.Len(t, diags, 1)
	require.Equal(t, "C0001", diags[0].Code)
	require.Empty(t, c.Diagnostics(2))
}

func TestAddBuiltins(t *testing.T) {
	ctx := context.Background()
	c := New()
	sm := lex.NewSourceMap()

	require.NoError(t, c.AddBuiltins(ctx, sm))
	c.Rebuild(ctx)

	db := c.Database()
	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		require.True(t, db.HasType(name), "missing built-in scalar %s", name)
	}
	for _, name := range []string{"skip", "include", "deprecated", "specifiedBy"} {
		_, ok := db.DirectiveDefinition(name)
		require.True(t, ok, "missing built-in directive %s", name)
	}

	_, ok := sm.ID("std:scalars.graphql")
	require.True(t, ok)
}

func TestDependencyProducts(t *testing.T) {
	docOf := func(src string) ast.Definition {
		c := New()
		c.AddDocument(context.Background(), 1, src, false)
		doc, _ := c.Document(1)
		return doc.Definitions[0]
	}

	cases := []struct {
		src  string
		want Dependency
	}{
		{`query Named { x }`, Dependency{Kind: DependencyFragment, Name: "Named"}},
		{`{ x }`, Dependency{Kind: DependencyQuery}},
		{`mutation { x }`, Dependency{Kind: DependencyMutation}},
		{`subscription { x }`, Dependency{Kind: DependencySubscription}},
		{`fragment F on T { x }`, Dependency{Kind: DependencyFragment, Name: "F"}},
		{`schema { query: Q }`, Dependency{Kind: DependencySchema}},
		{`extend schema { query: Q }`, Dependency{Kind: DependencySchema}},
		{`type T { x: Int }`, Dependency{Kind: DependencyType, Name: "T"}},
		{`extend type T { x: Int }`, Dependency{Kind: DependencyType, Name: "T"}},
		{`directive @d on FIELD`, Dependency{Kind: DependencyDirective, Name: "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, ok := product(docOf(tc.src))
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNamedOperationsShareTheFragmentNamespace(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	c := New(WithChecker(rec.check))

	// An operation and a fragment with the same name collide; editing one
	// invalidates the other's consumers too.
	c.AddDocument(ctx, 1, `query Shared { x }`, false)
	c.AddDocument(ctx, 2, `query Q { ... Shared }`, false)
	c.Rebuild(ctx)
	rec.take()

	invalidated := c.AddDocument(ctx, 1, `query Shared { y }`, false)
	require.Equal(t, []lex.SourceID{1, 2}, sources(invalidated))
}

func TestDepGraph(t *testing.T) {
	g := NewDepGraph[string, string]()
	g.Produce("schema.graphql", "Type:A")
	g.Consume("opA", "Type:A")
	g.Produce("opA", "Fragment:F")
	g.Consume("opB", "Fragment:F")
	g.Consume("opC", "Type:B")

	got := g.Invalidate("schema.graphql")
	require.Equal(t, map[string]struct{}{
		"schema.graphql": {},
		"opA":            {},
		"opB":            {},
	}, got)

	// Cycles terminate.
	g.Produce("opB", "Type:A")
	got = g.Invalidate("opA")
	require.Len(t, got, 3)

	g.Remove("opA")
	require.Empty(t, g.Producers("Fragment:F"))
	require.NotContains(t, g.Consumers("Type:A"), "opA")
}
