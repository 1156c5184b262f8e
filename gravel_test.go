package gravel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravelql/gravel"
)

func TestParseDamagedDocument(t *testing.T) {
	doc, unparsed := gravel.ParseDocument(1, "query { hero")
	require.Len(t, doc.Definitions, 1)

	diags := gravel.Errors(doc, unparsed)
	require.Len(t, diags, 1)
	require.Equal(t, "E0004", diags[0].Code)
}

func TestSpanOfCoversTheDocument(t *testing.T) {
	input := "query Q { hero }"
	doc, unparsed := gravel.ParseDocument(1, input)
	require.Empty(t, unparsed)
	require.Equal(t, gravel.Span{SourceID: 1, Start: 0, End: len(input)}, gravel.SpanOf(doc))
}

func TestCompileAndQuery(t *testing.T) {
	ctx := context.Background()
	sources := gravel.NewSourceMap()
	c := gravel.NewCompiler()
	require.NoError(t, c.AddBuiltins(ctx, sources))

	schema := sources.Intern("schema.graphql")
	c.AddDocument(ctx, schema, `type Query { hero: Hero } type Hero { name: String }`, false)
	c.Rebuild(ctx)

	db := c.Database()
	require.True(t, db.HasType("Hero"))
	require.True(t, db.HasType("String"))

	field, ok := db.FieldDefinition("Query", "hero")
	require.True(t, ok)
	require.Equal(t, "hero", field.Name.Text)
	require.Empty(t, c.Diagnostics(schema))
}

func TestBuildStandalone(t *testing.T) {
	doc, unparsed := gravel.ParseDocument(1, `type Query { x: Int }`)
	require.Empty(t, unparsed)

	db := gravel.Build(doc)
	require.True(t, db.HasType("Query"))
}

func TestFormatRoundTrip(t *testing.T) {
	doc, unparsed := gravel.ParseDocument(1, "{ hero { name } }")
	require.Empty(t, unparsed)

	out := gravel.Format(doc)
	require.Equal(t, "{\n  hero {\n    name\n  }\n}\n", out)

	redoc, rest := gravel.ParseDocument(1, out)
	require.Empty(t, rest)
	require.Empty(t, gravel.Errors(redoc, nil))
}

func TestSetupTracingWithoutEndpoint(t *testing.T) {
	shutdown, err := gravel.SetupTracing("", "gravel")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
