package syn

import (
	"testing"

	"github.com/stretchr/testify/require"
	gqlast "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

func parse(t *testing.T, src string) (*ast.Document, []diag.Diagnostic) {
	t.Helper()
	doc, unparsed := ParseDocument(1, src)
	require.NotNil(t, doc)
	return doc, ast.Errors(doc, unparsed)
}

func codes(diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func TestParseOperation(t *testing.T) {
	doc, diags := parse(t, `
		query GetHero($id: ID!, $full: Boolean = false) @cached {
			hero(id: $id) {
				name
				big: name @include(if: $full)
				... HeroDetails
				... on Droid {
					primaryFunction
				}
			}
		}
	`)
	require.Empty(t, diags)
	require.Len(t, doc.Definitions, 1)

	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)
	require.Equal(t, ast.Query, op.Kind())
	require.Equal(t, "GetHero", op.Name.Text)
	require.Len(t, op.VariableDefinitions.Definitions, 2)
	require.Len(t, op.Directives.Items, 1)

	sel, ok := op.SelectionSet.Ok()
	require.True(t, ok)
	require.Len(t, sel.Selections, 1)

	hero := sel.Selections[0].(*ast.Field)
	inner := hero.SelectionSet
	require.NotNil(t, inner)
	require.Len(t, inner.Selections, 4)
	require.IsType(t, &ast.Field{}, inner.Selections[0])
	aliased := inner.Selections[1].(*ast.Field)
	require.NotNil(t, aliased.Alias)
	require.Equal(t, "big", aliased.Alias.Name.Text)
	require.IsType(t, &ast.FragmentSpread{}, inner.Selections[2])
	require.IsType(t, &ast.InlineFragment{}, inner.Selections[3])
}

func TestParseShorthandOperation(t *testing.T) {
	doc, diags := parse(t, "{ hero { name } }")
	require.Empty(t, diags)
	require.Len(t, doc.Definitions, 1)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Nil(t, op.OperationType)
	require.Equal(t, ast.Query, op.Kind())
	require.False(t, op.Name.IsValid())
}

func TestParseFragmentDefinition(t *testing.T) {
	doc, diags := parse(t, `
		fragment HeroDetails on Character {
			name
			friends { name }
		}
	`)
	require.Empty(t, diags)

	frag := doc.Definitions[0].(*ast.FragmentDefinition)
	name, ok := frag.FragmentName.Ok()
	require.True(t, ok)
	require.Equal(t, "HeroDetails", name.Text)

	cond, ok := frag.TypeCondition.Ok()
	require.True(t, ok)
	nt, ok := cond.NamedType.Ok()
	require.True(t, ok)
	require.Equal(t, "Character", nt.Name.Text)
}

func TestFragmentKeywordEndsSelectionSet(t *testing.T) {
	// "fragment" is not a plain name, so a missing closing brace does not
	// swallow the following fragment definition.
	doc, diags := parse(t, "{ hero fragment F on T { x }")
	require.Len(t, doc.Definitions, 2)
	require.IsType(t, &ast.OperationDefinition{}, doc.Definitions[0])
	require.IsType(t, &ast.FragmentDefinition{}, doc.Definitions[1])
	require.Equal(t, []string{"E0004"}, codes(diags))
}

func TestParseSchemaDocument(t *testing.T) {
	doc, diags := parse(t, `
		"The root schema."
		schema @preview {
			query: Query
			mutation: Mutation
		}

		"An RFC 3339 instant."
		scalar DateTime @specifiedBy(url: "https://example.com/rfc3339")

		type Query implements Node & Described {
			node(id: ID!): Node
			search(filter: Filter = {text: "x", limit: 10}): [Result!]!
		}

		interface Node {
			id: ID!
		}

		union Result = Query | Mutation

		enum Episode @deprecated {
			"The original trilogy opener."
			NEWHOPE
			EMPIRE @deprecated(reason: "renumbered")
		}

		input Filter {
			text: String
			limit: Int = 25
		}

		directive @preview(level: Int = 1) repeatable on SCHEMA | OBJECT
	`)
	require.Empty(t, diags)
	require.Len(t, doc.Definitions, 8)

	schema := doc.Definitions[0].(*ast.SchemaDefinition)
	require.NotNil(t, schema.Description)
	require.Equal(t, "The root schema.", schema.Description.Content())
	roots, ok := schema.RootOperationDefinitions.Ok()
	require.True(t, ok)
	require.Len(t, roots.Definitions, 2)

	scalar := doc.Definitions[1].(*ast.ScalarTypeDefinition)
	require.NotNil(t, scalar.Description)

	obj := doc.Definitions[2].(*ast.ObjectTypeDefinition)
	require.NotNil(t, obj.Implements)
	var implNames []string
	for _, tok := range obj.Implements.Names() {
		implNames = append(implNames, tok.Text)
	}
	require.Equal(t, []string{"Node", "Described"}, implNames)
	require.Len(t, obj.Fields.Definitions, 2)

	union := doc.Definitions[4].(*ast.UnionTypeDefinition)
	var memberNames []string
	for _, tok := range union.MemberTypes.Names() {
		memberNames = append(memberNames, tok.Text)
	}
	require.Equal(t, []string{"Query", "Mutation"}, memberNames)

	enum := doc.Definitions[5].(*ast.EnumTypeDefinition)
	require.Len(t, enum.Values.Definitions, 2)
	require.NotNil(t, enum.Values.Definitions[0].Description)

	dir := doc.Definitions[7].(*ast.DirectiveDefinition)
	require.True(t, dir.Repeatable.IsValid())
	locs, ok := dir.Locations.Ok()
	require.True(t, ok)
	require.Len(t, locs.Rest, 1)
}

func TestParseExtensions(t *testing.T) {
	doc, diags := parse(t, `
		extend schema @preview
		extend scalar DateTime @specifiedBy(url: "u")
		extend type Query implements Timestamped { createdAt: DateTime }
		extend interface Node { createdAt: DateTime }
		extend union Result = Subscription
		extend enum Episode { CLONES }
		extend input Filter { offset: Int }
	`)
	require.Empty(t, diags)
	require.Len(t, doc.Definitions, 7)
	require.IsType(t, &ast.SchemaExtension{}, doc.Definitions[0])
	require.IsType(t, &ast.ScalarTypeExtension{}, doc.Definitions[1])
	require.IsType(t, &ast.ObjectTypeExtension{}, doc.Definitions[2])
	require.IsType(t, &ast.InterfaceTypeExtension{}, doc.Definitions[3])
	require.IsType(t, &ast.UnionTypeExtension{}, doc.Definitions[4])
	require.IsType(t, &ast.EnumTypeExtension{}, doc.Definitions[5])
	require.IsType(t, &ast.InputObjectTypeExtension{}, doc.Definitions[6])
}

func TestDuplicateDefinitionsAreKeptInOrder(t *testing.T) {
	doc, diags := parse(t, `
		type Query { a: Int }
		type Query { b: Int }
	`)
	require.Empty(t, diags)
	require.Len(t, doc.Definitions, 2)

	first := doc.Definitions[0].(*ast.ObjectTypeDefinition)
	second := doc.Definitions[1].(*ast.ObjectTypeDefinition)
	require.Equal(t, "a", first.Fields.Definitions[0].Name.Text)
	require.Equal(t, "b", second.Fields.Definitions[0].Name.Text)
}

func TestRecovery(t *testing.T) {
	cases := []struct {
		name  string
		input string
		codes []string
	}{
		{"unclosed selection set", "query { hero", []string{"E0004"}},
		{"missing argument colon", "{ hero(id 1) }", []string{"E0007"}},
		{"missing selection set", "query Foo", []string{"E0003"}},
		{"missing type condition type", "fragment F on { x }", []string{"E0013"}},
		{"missing field definition type", "type T { f: }", []string{"E0037"}},
		{"missing field definition colon", "type T { f Int }", []string{"E0036"}},
		{"missing union first member", "union U = ", []string{"E0045"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, diags := parse(t, tc.input)
			require.NotEmpty(t, doc.Definitions)
			require.Equal(t, tc.codes, codes(diags))
		})
	}
}

func TestRecoveredDefinitionsKeepParsing(t *testing.T) {
	// The damage stays local: the unclosed argument list does not take the
	// following definition down with it.
	doc, diags := parse(t, `
		type Broken { f(x: Int : T }
		type Fine { g: Int }
	`)
	require.Len(t, doc.Definitions, 2)
	require.NotEmpty(t, diags)

	fine := doc.Definitions[1].(*ast.ObjectTypeDefinition)
	name, ok := fine.Name.Ok()
	require.True(t, ok)
	require.Equal(t, "Fine", name.Text)
}

func TestUnclaimedTokensBecomeDiagnostics(t *testing.T) {
	doc, diags := parse(t, "{ hero } ] ]")
	require.Len(t, doc.Definitions, 1)
	require.Equal(t, []string{"E0001"}, codes(diags))
	// One diagnostic covering the contiguous run, not one per token.
	require.Equal(t, lex.Span{SourceID: 1, Start: 9, End: 12}, diags[0].Span)
}

func TestParseNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"}}}}",
		"query query query",
		"((((",
		"type",
		"extend",
		"\x00\xff\"unterminated",
		"{ a(b: [1, {c: ) }",
		"directive @ on",
	}
	for _, input := range inputs {
		doc, unparsed := ParseDocument(1, input)
		require.NotNil(t, doc)
		// Diagnostics derive without panicking as well.
		_ = ast.Errors(doc, unparsed)
	}
}

func TestRootSpanCoversAllConsumedTokens(t *testing.T) {
	inputs := []string{
		"{ hero { name } }",
		"type Query { hero: Hero }",
		"query Q($x: Int = 3) { f(a: $x) }",
	}
	for _, input := range inputs {
		tokens := lex.Lex(1, input)
		doc, unparsed := ParseTokens(tokens)
		require.Empty(t, unparsed)

		want := tokens[0].Span.Join(tokens[len(tokens)-1].Span)
		require.Equal(t, want, ast.Span(doc), "input: %s", input)
	}
}

func TestQueryAgreesWithReferenceParser(t *testing.T) {
	src := `
		query GetHero($id: ID!) {
			hero(id: $id) {
				name
				... HeroDetails
				... on Droid { primaryFunction }
			}
		}

		mutation Save { save { ok } }

		fragment HeroDetails on Character { name }
	`
	doc, diags := parse(t, src)
	require.Empty(t, diags)

	ref, err := parser.ParseQuery(&gqlast.Source{Name: "oracle", Input: src})
	require.NoError(t, err)

	var ops, frags []string
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			ops = append(ops, d.Name.Text)
		case *ast.FragmentDefinition:
			name, ok := d.FragmentName.Ok()
			require.True(t, ok)
			frags = append(frags, name.Text)
		}
	}

	require.Len(t, ops, len(ref.Operations))
	for i, op := range ref.Operations {
		require.Equal(t, op.Name, ops[i])
	}
	require.Len(t, frags, len(ref.Fragments))
	for i, frag := range ref.Fragments {
		require.Equal(t, frag.Name, frags[i])
	}
}

func TestSchemaAgreesWithReferenceParser(t *testing.T) {
	src := `
		schema { query: Query }

		type Query implements Node { id: ID! search(text: String = "x"): [Result!] }
		interface Node { id: ID! }
		union Result = Query
		enum Episode { NEWHOPE EMPIRE }
		input Filter { text: String }
		scalar DateTime
		directive @preview on OBJECT

		extend type Query { extra: Int }
	`
	doc, diags := parse(t, src)
	require.Empty(t, diags)

	ref, err := parser.ParseSchema(&gqlast.Source{Name: "oracle", Input: src})
	require.NoError(t, err)

	var typeNames []string
	for _, def := range doc.Definitions {
		if td, ok := def.(ast.TypeDefinition); ok {
			name, ok := td.NameToken()
			require.True(t, ok)
			typeNames = append(typeNames, name.Text)
		}
	}

	var refTypeNames []string
	for _, def := range ref.Definitions {
		if def.Kind != gqlast.DefinitionKind("SCHEMA") {
			refTypeNames = append(refTypeNames, def.Name)
		}
	}
	require.Equal(t, refTypeNames, typeNames)
	require.Len(t, ref.Extensions, 1)
}
