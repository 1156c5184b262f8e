package comb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

// word matches one Name token with the given text.
func word(text string) Parser[lex.Token] {
	return Terminal(func(s Stream) (Stream, lex.Token, error) {
		tok, ok := s.Peek()
		if !ok || tok.Kind != lex.Name || tok.Text != text {
			return s, lex.Token{}, &Expected{Want: text, Got: tok}
		}
		out, tok, _ := s.Next()
		return out, tok, nil
	})
}

func missingB(gap lex.Span) diag.Diagnostic {
	return diag.Diagnostic{Code: "T0001", Message: "missing b", Span: gap}
}

func stream(t *testing.T, input string) Stream {
	t.Helper()
	return NewStream(lex.Lex(1, input))
}

func texts(tokens []lex.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

type triple struct {
	a lex.Token
	b ast.Recoverable[lex.Token]
	c lex.Token
}

func seqABC() Parser[triple] {
	return Seq3(word("a"), Recover(word("b"), missingB), word("c"),
		func(a lex.Token, b ast.Recoverable[lex.Token], c lex.Token) triple {
			return triple{a, b, c}
		})
}

func TestSeqParsesCleanInput(t *testing.T) {
	out, v, err := seqABC().Parse(stream(t, "a b c"), EOF)
	require.NoError(t, err)
	require.True(t, v.b.IsPresent())
	require.Empty(t, out.Drain())
}

func TestSkipLoopBuffersUnexpectedTokens(t *testing.T) {
	// The element after "a" is absent; the skip loop buffers everything up
	// to the first token an enclosing element recognizes, then synthesizes
	// the missing slot there. Tokens the sequence could never consume do
	// not loop forever.
	out, v, err := seqABC().Parse(stream(t, "a y x a a c"), EOF)
	require.NoError(t, err)
	require.Equal(t, "a", v.a.Text)
	require.Equal(t, "c", v.c.Text)

	m := v.b.MissingTok()
	require.NotNil(t, m)
	require.Equal(t, "T0001", m.Diagnostic.Code)
	// The gap sits between the last skipped token and "c".
	require.Equal(t, lex.Span{SourceID: 1, Start: 9, End: 10}, m.Span)

	require.Equal(t, []string{"y", "x", "a", "a"}, texts(out.Drain()))
}

func TestSkipLoopStopsAtAmbientRecoveryPoint(t *testing.T) {
	// "z" is recognized by the ambient recovery point, so the inner slot
	// must not consume past it: the sequence hard-fails instead.
	seq := Seq2(word("a"), word("b"), func(a, b lex.Token) [2]lex.Token {
		return [2]lex.Token{a, b}
	})
	_, _, err := seq.Parse(stream(t, "a x z"), word("z"))
	require.ErrorIs(t, err, ErrResynchronized)
}

func TestSeqFailsWhenFirstElementFails(t *testing.T) {
	_, _, err := seqABC().Parse(stream(t, "x b c"), EOF)
	require.Error(t, err)
}

func TestSeqRunsOutOfInput(t *testing.T) {
	// With no ambient recovery point the truncated sequence is incomplete;
	// with EOF ambient it resynchronizes there instead.
	_, _, err := seqABC().Parse(stream(t, "a b"), Never)
	require.ErrorIs(t, err, ErrIncomplete)

	_, _, err = seqABC().Parse(stream(t, "a b"), EOF)
	require.ErrorIs(t, err, ErrResynchronized)
}

func TestOptRewindsWhenAbsent(t *testing.T) {
	seq := Seq3(word("a"), Opt(word("b")), word("c"),
		func(a, b, c lex.Token) []lex.Token { return []lex.Token{a, b, c} })

	out, v, err := seq.Parse(stream(t, "a c"), EOF)
	require.NoError(t, err)
	require.False(t, v[1].IsValid())
	require.Equal(t, "c", v[2].Text)
	require.Empty(t, out.Drain())
}

func TestOptDiscardsSkippedTokensOnRewind(t *testing.T) {
	seq := Seq3(word("a"), Opt(word("b")), word("c"),
		func(a, b, c lex.Token) []lex.Token { return []lex.Token{a, b, c} })

	// Opt skips "x" looking for "b", sees "c" at its recovery point, and
	// rewinds; the following element's skip loop claims "x" instead.
	out, v, err := seq.Parse(stream(t, "a x c"), EOF)
	require.NoError(t, err)
	require.False(t, v[1].IsValid())
	require.Equal(t, "c", v[2].Text)
	require.Equal(t, []string{"x"}, texts(out.Drain()))
}

func TestOptParsesAfterSkips(t *testing.T) {
	out, v, err := Opt(word("b")).Parse(stream(t, "x b"), EOF)
	require.NoError(t, err)
	require.Equal(t, "b", v.Text)
	require.Equal(t, []string{"x"}, texts(out.Drain()))
}

func TestMany0(t *testing.T) {
	out, items, err := Many0(word("b")).Parse(stream(t, "b b b"), EOF)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Empty(t, out.Drain())
}

func TestMany0StopsWithoutConsumingTrailingJunk(t *testing.T) {
	out, items, err := Many0(word("b")).Parse(stream(t, "b b x"), EOF)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, []string{"x"}, texts(out.Drain()))
}

func TestMany0RecoversSkipsBetweenItems(t *testing.T) {
	out, items, err := Many0(word("b")).Parse(stream(t, "b x b"), EOF)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, []string{"x"}, texts(out.Drain()))
}

func TestMany0OnEmptyInput(t *testing.T) {
	_, items, err := Many0(word("b")).Parse(stream(t, ""), EOF)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMany1RequiresOneItem(t *testing.T) {
	_, _, err := Many1(word("b")).Parse(stream(t, "x y"), EOF)
	require.ErrorIs(t, err, ErrNoItems)

	_, items, err := Many1(word("b")).Parse(stream(t, "b"), EOF)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestAltTriesInDeclarationOrder(t *testing.T) {
	both := Alt(
		Map(word("a"), func(lex.Token) string { return "first" }),
		Map(word("a"), func(lex.Token) string { return "second" }),
	)
	_, v, err := both.Parse(stream(t, "a"), EOF)
	require.NoError(t, err)
	require.Equal(t, "first", v)

	_, _, err = both.Parse(stream(t, "z"), EOF)
	require.ErrorIs(t, err, ErrNoAlternative)
}

func TestDelimitedMissingCloserPointsAtOpener(t *testing.T) {
	type group struct {
		open    lex.Token
		items   []lex.Token
		closing ast.Recoverable[lex.Token]
	}
	brace := func(text string) Parser[lex.Token] {
		return Terminal(func(s Stream) (Stream, lex.Token, error) {
			tok, ok := s.Peek()
			if !ok || tok.Text != text {
				return s, lex.Token{}, &Expected{Want: text, Got: tok}
			}
			out, tok, _ := s.Next()
			return out, tok, nil
		})
	}
	p := Delimited(brace("{"), Many0(word("b")), brace("}"),
		func(open, gap lex.Span) diag.Diagnostic {
			return diag.Diagnostic{
				Code:   "T0002",
				Span:   gap,
				Labels: []diag.Label{{Span: open}, {Span: gap}},
			}
		},
		func(open lex.Token, items []lex.Token, closing ast.Recoverable[lex.Token]) group {
			return group{open, items, closing}
		})

	// Closed: no missing slot.
	_, g, err := p.Parse(stream(t, "{ b b }"), EOF)
	require.NoError(t, err)
	require.True(t, g.closing.IsPresent())
	require.Len(t, g.items, 2)

	// Unclosed at end of input: the closer is missing and its diagnostic
	// carries the opener's span.
	_, g, err = p.Parse(stream(t, "{ b b"), EOF)
	require.NoError(t, err)
	m := g.closing.MissingTok()
	require.NotNil(t, m)
	require.Equal(t, "T0002", m.Diagnostic.Code)
	require.Equal(t, lex.Span{SourceID: 1, Start: 0, End: 1}, m.Diagnostic.Labels[0].Span)
	require.Equal(t, lex.Span{SourceID: 1, Start: 5, End: 5}, m.Span)
}

func TestStreamGapSpan(t *testing.T) {
	s := stream(t, "a b")
	require.Equal(t, lex.Span{SourceID: 1, Start: 0, End: 0}, s.GapSpan())

	s, _, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, lex.Span{SourceID: 1, Start: 1, End: 2}, s.GapSpan())

	s, _, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, lex.Span{SourceID: 1, Start: 3, End: 3}, s.GapSpan())

	require.Equal(t, lex.Span{}, NewStream(nil).GapSpan())
}

func TestStreamClonesDoNotShareSkipBuffers(t *testing.T) {
	base := stream(t, "x y").withUnexpected(lex.Lex(1, "q"))
	a := base.withUnexpected(lex.Lex(1, "r"))
	b := base.withUnexpected(lex.Lex(1, "s"))
	require.Equal(t, []string{"q", "r"}, texts(a.Unexpected()))
	require.Equal(t, []string{"q", "s"}, texts(b.Unexpected()))
}
