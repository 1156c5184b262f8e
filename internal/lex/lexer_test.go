package lex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func texts(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestLexBasicTokens(t *testing.T) {
	tokens := Lex(1, `query Foo($x: Int = -1) { field(a: 1.5, b: "hi") ... on Bar }`)
	want := []string{
		"query", "Foo", "(", "$", "x", ":", "Int", "=", "-1", ")",
		"{", "field", "(", "a", ":", "1.5", "b", ":", `"hi"`, ")",
		"...", "on", "Bar", "}",
	}
	if diff := cmp.Diff(want, texts(tokens)); diff != "" {
		t.Errorf("token texts mismatch (-want +got):\n%s", diff)
	}
}

func TestLexSkipsIgnored(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"commas", "a,,b", []string{"a", "b"}},
		{"comment", "a # rest of line\nb", []string{"a", "b"}},
		{"comment at eof", "a # no newline", []string{"a"}},
		{"bom", "\ufeffa", []string{"a"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"empty", "", nil},
		{"only ignored", " ,\t# c\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, texts(Lex(1, tc.input))); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexNumbers(t *testing.T) {
	cases := []struct {
		input string
		kind  TokenKind
	}{
		{"0", IntValue},
		{"-0", IntValue},
		{"42", IntValue},
		{"-42", IntValue},
		{"1.5", FloatValue},
		{"-1.5", FloatValue},
		{"1e10", FloatValue},
		{"1E10", FloatValue},
		{"1.5e-3", FloatValue},
		{"0.0", FloatValue},
		{"01", Error},
		{"1.", Error},
		{"1e", Error},
		{"1.2.3", Error},
		{"10x", Error},
		{"-", Error},
		{"-.", Error},
		{"1.e5", Error},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tokens := Lex(1, tc.input)
			require.Len(t, tokens, 1)
			require.Equal(t, tc.kind, tokens[0].Kind)
			require.Equal(t, tc.input, tokens[0].Text)
		})
	}
}

func TestLexMalformedNumberIsOneToken(t *testing.T) {
	// The whole run lexes as a single error, not an int followed by a name.
	tokens := Lex(1, "123abc rest")
	require.Equal(t, []TokenKind{Error, Name}, kinds(tokens))
	require.Equal(t, "123abc", tokens[0].Text)
}

func TestLexStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  TokenKind
	}{
		{"plain", `"hello"`, StringValue},
		{"escaped quote", `"a\"b"`, StringValue},
		{"empty", `""`, StringValue},
		{"block", `"""multi
line"""`, StringValue},
		{"block with quote", `"""has " inside"""`, StringValue},
		{"unterminated", `"abc`, Error},
		{"unterminated at newline", "\"abc\ndef", Error},
		{"unterminated block", `"""abc`, Error},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Lex(1, tc.input)
			require.NotEmpty(t, tokens)
			require.Equal(t, tc.kind, tokens[0].Kind)
		})
	}
}

func TestLexStringStopsAtLineTerminator(t *testing.T) {
	tokens := Lex(1, "\"abc\ndef")
	require.Equal(t, []TokenKind{Error, Name}, kinds(tokens))
	require.Equal(t, `"abc`, tokens[0].Text)
	require.Equal(t, "def", tokens[1].Text)
}

func TestLexDots(t *testing.T) {
	cases := []struct {
		input string
		want  []TokenKind
	}{
		{"...", []TokenKind{Punctuator}},
		{".", []TokenKind{Error}},
		{"..", []TokenKind{Error}},
		{"....", []TokenKind{Error}},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.want, kinds(Lex(1, tc.input)))
		})
	}
}

func TestLexUnknownRunes(t *testing.T) {
	tokens := Lex(1, "a ~ b é c")
	require.Equal(t, []TokenKind{Name, Error, Name, Error, Name}, kinds(tokens))
	require.Equal(t, "~", tokens[1].Text)
	require.Equal(t, "é", tokens[3].Text)
}

func TestLexIsTotal(t *testing.T) {
	// Arbitrary byte soup still lexes; nothing panics and every token carries
	// a well-formed span.
	inputs := []string{
		"\x00\x01\x02",
		"\xff\xfe",
		"query { \x00 }",
		"\"\\",
		"-\"",
		"....5abc",
		"\ufeff\ufeff",
	}
	for _, input := range inputs {
		tokens := Lex(7, input)
		for _, tok := range tokens {
			require.True(t, tok.IsValid())
			require.Equal(t, SourceID(7), tok.Span.SourceID)
			require.LessOrEqual(t, tok.Span.Start, tok.Span.End)
			require.Equal(t, input[tok.Span.Start:tok.Span.End], tok.Text)
		}
	}
}

func TestLexSpansAreOrderedAndExact(t *testing.T) {
	input := "type Query {\n  hero(id: ID!): Hero\n}"
	tokens := Lex(3, input)
	prev := 0
	for _, tok := range tokens {
		require.GreaterOrEqual(t, tok.Span.Start, prev)
		require.Equal(t, input[tok.Span.Start:tok.Span.End], tok.Text)
		prev = tok.Span.End
	}
}

func TestStringContent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `"hello"`, "hello"},
		{"escapes", `"a\nb\tc\"d\\e"`, "a\nb\tc\"d\\e"},
		{"unicode escape", `"\u0041\u00e9"`, "Aé"},
		{"bad unicode escape", `"\uZZZZ"`, "uZZZZ"},
		{"block dedent", "\"\"\"\n    first\n      second\n    \"\"\"", "first\n  second"},
		{"block escaped terminator", `"""a\"""b"""`, `a"""b`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Lex(1, tc.input)
			require.Len(t, tokens, 1)
			require.Equal(t, StringValue, tokens[0].Kind)
			require.Equal(t, tc.want, tokens[0].StringContent())
		})
	}
}

func TestSourceMap(t *testing.T) {
	m := NewSourceMap()
	a := m.Intern("file:///a.graphql")
	b := m.Intern("file:///b.graphql")
	require.NotEqual(t, a, b)
	require.NotZero(t, a)

	again := m.Intern("file:///a.graphql")
	require.Equal(t, a, again)
	require.Equal(t, 2, m.Len())

	key, ok := m.Key(a)
	require.True(t, ok)
	require.Equal(t, "file:///a.graphql", key)

	_, ok = m.ID("file:///missing.graphql")
	require.False(t, ok)
}

func TestSpanOps(t *testing.T) {
	a := Span{SourceID: 1, Start: 2, End: 5}
	b := Span{SourceID: 1, Start: 8, End: 10}

	require.Equal(t, Span{SourceID: 1, Start: 2, End: 10}, a.Join(b))
	require.Equal(t, Span{SourceID: 1, Start: 5, End: 8}, Between(a, b))
	require.Equal(t, Span{SourceID: 1, Start: 2, End: 2}, a.CollapseToStart())
	require.Equal(t, Span{SourceID: 1, Start: 5, End: 5}, a.CollapseToEnd())
	require.True(t, a.Contains(3))
	require.True(t, a.Contains(5))
	require.False(t, a.Contains(6))
	require.True(t, a.Before(8))
	require.False(t, a.Before(5))
}
