package comb

import (
	"errors"
	"fmt"

	"github.com/gravelql/gravel/internal/lex"
)

var (
	// ErrIncomplete is returned when input runs out mid-construct.
	ErrIncomplete = errors.New("unexpected end of input")
	// ErrNoAlternative is returned by Alt when no alternative parses.
	ErrNoAlternative = errors.New("no alternative matched")
	// ErrNoItems is returned by Many1 when not even one item parses.
	ErrNoItems = errors.New("expected at least one item")
	// ErrResynchronized is returned when a required sequence element is
	// absent and the skip loop reached a recovery point instead.
	ErrResynchronized = errors.New("resynchronized at recovery point")
)

// Expected is returned by terminals that do not match the next token.
type Expected struct {
	Want string
	Got  lex.Token // zero at end of input
}

func (e *Expected) Error() string {
	if !e.Got.IsValid() {
		return fmt.Sprintf("expected %s, found end of input", e.Want)
	}
	return fmt.Sprintf("expected %s, found %q", e.Want, e.Got.Text)
}

// Parser parses a value of type O off a stream. Parse receives the ambient
// recovery point: the union of everything the surrounding context would
// accept next. A Parser is also a Recognizer for its own first set.
type Parser[O any] struct {
	rec   func(Stream) bool
	parse func(Stream, Recognizer) (Stream, O, error)
}

func (p Parser[O]) Recognize(s Stream) bool {
	return p.rec(s)
}

func (p Parser[O]) Parse(s Stream, rp Recognizer) (Stream, O, error) {
	return p.parse(s, rp)
}

// Terminal wraps a plain token-matching function. Terminals ignore the
// recovery point; recovery happens in the combinators around them.
func Terminal[O any](f func(Stream) (Stream, O, error)) Parser[O] {
	return Parser[O]{
		rec: func(s Stream) bool {
			_, _, err := f(s)
			return err == nil
		},
		parse: func(s Stream, _ Recognizer) (Stream, O, error) {
			return f(s)
		},
	}
}

// Map transforms a parser's output.
func Map[A, O any](p Parser[A], f func(A) O) Parser[O] {
	return Parser[O]{
		rec: p.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			out, a, err := p.parse(s, rp)
			if err != nil {
				var zero O
				return s, zero, err
			}
			return out, f(a), nil
		},
	}
}

// Lazy defers construction, breaking grammar cycles.
func Lazy[O any](f func() Parser[O]) Parser[O] {
	return Parser[O]{
		rec: func(s Stream) bool {
			return f().Recognize(s)
		},
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			return f().Parse(s, rp)
		},
	}
}

// WithRecognizer overrides a parser's recognizer. Productions whose leading
// element is optional use it so their real anchor still recognizes.
func WithRecognizer[O any](p Parser[O], r Recognizer) Parser[O] {
	p.rec = r.Recognize
	return p
}

// Alt tries alternatives in declaration order on clones of the stream and
// commits to the first that parses. Place specific alternatives before
// general ones.
func Alt[O any](ps ...Parser[O]) Parser[O] {
	return Parser[O]{
		rec: func(s Stream) bool {
			for _, p := range ps {
				if p.Recognize(s) {
					return true
				}
			}
			return false
		},
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			for _, p := range ps {
				if out, v, err := p.parse(s, rp); err == nil {
					return out, v, nil
				}
			}
			var zero O
			return s, zero, ErrNoAlternative
		},
	}
}

// Opt makes a parser optional. It runs the usual skip loop, but a
// recovery-point match with nothing parsed rewinds the stream entirely,
// discarding any skipped tokens. As a recognizer it recognizes only what the
// inner parser does.
func Opt[O any](p Parser[O]) Parser[O] {
	return Parser[O]{
		rec: p.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			cur := s
			var skipped []lex.Token
			for {
				if out, v, err := p.parse(cur, rp); err == nil {
					return out.withUnexpected(skipped), v, nil
				}
				if rp.Recognize(cur) {
					break
				}
				next, tok, ok := cur.Next()
				if !ok {
					break
				}
				skipped = append(skipped, tok)
				cur = next
			}
			var zero O
			return s, zero, nil
		},
	}
}
