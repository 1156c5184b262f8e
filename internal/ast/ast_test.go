package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

func nameTok(text string, start int) lex.Token {
	return lex.Token{
		Kind: lex.Name,
		Text: text,
		Span: lex.Span{SourceID: 1, Start: start, End: start + len(text)},
	}
}

func punctTok(text string, start int) lex.Token {
	return lex.Token{
		Kind: lex.Punctuator,
		Text: text,
		Span: lex.Span{SourceID: 1, Start: start, End: start + len(text)},
	}
}

func TestRecoverable(t *testing.T) {
	present := Present(nameTok("hero", 0))
	v, ok := present.Ok()
	require.True(t, ok)
	require.Equal(t, "hero", v.Text)
	require.True(t, present.IsPresent())
	require.Nil(t, present.MissingTok())

	gap := lex.Span{SourceID: 1, Start: 4, End: 4}
	m := &MissingToken{Span: gap, Diagnostic: diag.MissingFieldName(gap)}
	missing := Missing[lex.Token](m)
	_, ok = missing.Ok()
	require.False(t, ok)
	require.False(t, missing.IsPresent())
	require.Same(t, m, missing.MissingTok())

	var zero Recoverable[lex.Token]
	_, ok = zero.Ok()
	require.False(t, ok)
	require.Nil(t, zero.MissingTok())
}

func TestSpanCoversAllTokens(t *testing.T) {
	// {hero}
	set := &SelectionSet{
		Brace: punctTok("{", 0),
		Selections: []Selection{
			&Field{Name: Present(nameTok("hero", 1))},
		},
		ClosingBrace: Present(punctTok("}", 5)),
	}
	require.Equal(t, lex.Span{SourceID: 1, Start: 0, End: 6}, Span(set))
}

func TestSpanIncludesMissingSlots(t *testing.T) {
	gap := lex.Span{SourceID: 1, Start: 6, End: 6}
	set := &SelectionSet{
		Brace: punctTok("{", 0),
		Selections: []Selection{
			&Field{Name: Present(nameTok("hero", 1))},
		},
		ClosingBrace: Missing[lex.Token](&MissingToken{
			Span:       gap,
			Diagnostic: diag.MissingSelectionSetClosingBrace(lex.Span{SourceID: 1, Start: 0, End: 1}, gap),
		}),
	}
	require.Equal(t, lex.Span{SourceID: 1, Start: 0, End: 6}, Span(set))
}

func TestSpanOfEmptyNode(t *testing.T) {
	require.Equal(t, lex.Span{}, Span(&Document{}))
}

func TestErrorsCollectsMissingSlots(t *testing.T) {
	gap := lex.Span{SourceID: 1, Start: 5, End: 5}
	doc := &Document{Definitions: []Definition{
		&OperationDefinition{
			SelectionSet: Present(&SelectionSet{
				Brace: punctTok("{", 0),
				Selections: []Selection{
					&Field{Name: Missing[lex.Token](&MissingToken{
						Span:       gap,
						Diagnostic: diag.MissingFieldName(gap),
					})},
				},
				ClosingBrace: Present(punctTok("}", 6)),
			}),
		},
	}}
	diags := Errors(doc, nil)
	require.Len(t, diags, 1)
	require.Equal(t, "E0005", diags[0].Code)
	require.Equal(t, gap, diags[0].Span)
}

func TestErrorsGroupsUnparsedRuns(t *testing.T) {
	unparsed := []lex.Token{
		punctTok("]", 10),
		punctTok(")", 12),
		// A token starting before the previous run's end begins a new run.
		punctTok("]", 4),
		{Kind: lex.Punctuator, Text: ")", Span: lex.Span{SourceID: 2, Start: 20, End: 21}},
	}
	diags := Errors(&Document{}, unparsed)
	require.Len(t, diags, 3)
	for _, d := range diags {
		require.Equal(t, "E0001", d.Code)
	}
	require.Equal(t, lex.Span{SourceID: 1, Start: 10, End: 13}, diags[0].Span)
	require.Equal(t, lex.Span{SourceID: 1, Start: 4, End: 5}, diags[1].Span)
	require.Equal(t, lex.Span{SourceID: 2, Start: 20, End: 21}, diags[2].Span)
}

// tokenRecorder collects the texts of visited tokens in traversal order.
type tokenRecorder struct {
	BaseVisitor
	texts []string
}

func (r *tokenRecorder) VisitToken(t lex.Token) {
	r.texts = append(r.texts, t.Text)
}

func TestTraverseVisitsTokensInOrder(t *testing.T) {
	// hero(id: 1)
	field := &Field{
		Name: Present(nameTok("hero", 0)),
		Arguments: &Arguments{
			Paren: punctTok("(", 4),
			Items: []*Argument{{
				Name:  nameTok("id", 5),
				Colon: Present(punctTok(":", 7)),
				Value: Present[Value](&IntValue{Token: lex.Token{Kind: lex.IntValue, Text: "1", Span: lex.Span{SourceID: 1, Start: 9, End: 10}}}),
			}},
			ClosingParen: Present(punctTok(")", 10)),
		},
	}
	r := &tokenRecorder{}
	field.Traverse(r)
	require.Equal(t, []string{"hero", "(", "id", ":", "1", ")"}, r.texts)
}

// unionRecorder checks that union hooks fire alongside concrete ones.
type unionRecorder struct {
	BaseVisitor
	kinds []string
}

func (r *unionRecorder) VisitDefinition(Definition) { r.kinds = append(r.kinds, "definition") }

func (r *unionRecorder) VisitTypeDefinition(TypeDefinition) {
	r.kinds = append(r.kinds, "type definition")
}

func (r *unionRecorder) VisitTypeExtension(TypeExtension) {
	r.kinds = append(r.kinds, "type extension")
}

func TestTraverseFiresUnionHooks(t *testing.T) {
	doc := &Document{Definitions: []Definition{
		&ScalarTypeDefinition{Scalar: nameTok("scalar", 0), Name: Present(nameTok("Date", 7))},
		&ScalarTypeExtension{
			Extend:     nameTok("extend", 12),
			Scalar:     nameTok("scalar", 19),
			Name:       Present(nameTok("Date", 26)),
			Directives: Present(&Directives{}),
		},
	}}
	r := &unionRecorder{}
	doc.Traverse(r)
	require.Equal(t, []string{
		"definition", "type definition",
		"definition", "type extension",
	}, r.kinds)
}
