// Package syn wires the GraphQL October 2021 grammar through the
// recoverable combinators. ParseDocument never fails: malformed input
// yields a tree with Missing slots plus the tokens no production claimed.
package syn

import (
	"github.com/gravelql/gravel/internal/comb"
	"github.com/gravelql/gravel/internal/lex"
)

func tok(want string, pred func(lex.Token) bool) comb.Parser[lex.Token] {
	return comb.Terminal(func(s comb.Stream) (comb.Stream, lex.Token, error) {
		t, ok := s.Peek()
		if !ok {
			return s, lex.Token{}, comb.ErrIncomplete
		}
		if !pred(t) {
			return s, lex.Token{}, &comb.Expected{Want: want, Got: t}
		}
		out, t, _ := s.Next()
		return out, t, nil
	})
}

// name matches any Name token except the `fragment` keyword, which always
// starts a new definition. Without the exclusion a selection set missing its
// closing brace would swallow the following fragment definition.
func name() comb.Parser[lex.Token] {
	return tok("a name", func(t lex.Token) bool {
		return t.Kind == lex.Name && t.Text != "fragment"
	})
}

// nameUnless is name with additional excluded spellings.
func nameUnless(excluded ...string) comb.Parser[lex.Token] {
	return tok("a name", func(t lex.Token) bool {
		if t.Kind != lex.Name || t.Text == "fragment" {
			return false
		}
		for _, x := range excluded {
			if t.Text == x {
				return false
			}
		}
		return true
	})
}

func keyword(kw string) comb.Parser[lex.Token] {
	return tok("`"+kw+"`", func(t lex.Token) bool {
		return t.Kind == lex.Name && t.Text == kw
	})
}

func punctuator(p string) comb.Parser[lex.Token] {
	return tok("`"+p+"`", func(t lex.Token) bool {
		return t.Kind == lex.Punctuator && t.Text == p
	})
}

func intToken() comb.Parser[lex.Token] {
	return tok("an integer", func(t lex.Token) bool {
		return t.Kind == lex.IntValue
	})
}

func floatToken() comb.Parser[lex.Token] {
	return tok("a float", func(t lex.Token) bool {
		return t.Kind == lex.FloatValue
	})
}

func stringToken() comb.Parser[lex.Token] {
	return tok("a string", func(t lex.Token) bool {
		return t.Kind == lex.StringValue
	})
}
