package comb

import (
	"github.com/gravelql/gravel/internal/ast"
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

// step parses one non-first sequence element: skip and buffer tokens until
// the element parses (with rp as its recovery point) or rp itself matches.
// Reaching rp without the element is a hard failure; the caller decides
// whether that aborts the sequence or synthesizes a Missing slot.
func step[O any](s Stream, p Parser[O], rp Recognizer) (Stream, O, error) {
	cur := s
	var skipped []lex.Token
	for {
		if out, v, err := p.parse(cur, rp); err == nil {
			return out.withUnexpected(skipped), v, nil
		}
		if rp.Recognize(cur) {
			var zero O
			return s, zero, ErrResynchronized
		}
		next, tok, ok := cur.Next()
		if !ok {
			var zero O
			return s, zero, ErrIncomplete
		}
		skipped = append(skipped, tok)
		cur = next
	}
}

// Seq2 sequences two parsers. The first element parses directly, so its
// failure fails the whole sequence; later elements run the step skip loop.
// Element i's recovery point is the ambient one extended with the
// recognizers of the elements after i.
func Seq2[A, B, O any](pa Parser[A], pb Parser[B], build func(A, B) O) Parser[O] {
	return Parser[O]{
		rec: pa.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			var zero O
			s1, a, err := pa.parse(s, Or(rp, pb))
			if err != nil {
				return s, zero, err
			}
			s2, b, err := step(s1, pb, rp)
			if err != nil {
				return s, zero, err
			}
			return s2, build(a, b), nil
		},
	}
}

func Seq3[A, B, C, O any](pa Parser[A], pb Parser[B], pc Parser[C], build func(A, B, C) O) Parser[O] {
	return Parser[O]{
		rec: pa.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			var zero O
			s1, a, err := pa.parse(s, Or(rp, pb, pc))
			if err != nil {
				return s, zero, err
			}
			s2, b, err := step(s1, pb, Or(rp, pc))
			if err != nil {
				return s, zero, err
			}
			s3, c, err := step(s2, pc, rp)
			if err != nil {
				return s, zero, err
			}
			return s3, build(a, b, c), nil
		},
	}
}

func Seq4[A, B, C, D, O any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], build func(A, B, C, D) O) Parser[O] {
	return Parser[O]{
		rec: pa.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			var zero O
			s1, a, err := pa.parse(s, Or(rp, pb, pc, pd))
			if err != nil {
				return s, zero, err
			}
			s2, b, err := step(s1, pb, Or(rp, pc, pd))
			if err != nil {
				return s, zero, err
			}
			s3, c, err := step(s2, pc, Or(rp, pd))
			if err != nil {
				return s, zero, err
			}
			s4, d, err := step(s3, pd, rp)
			if err != nil {
				return s, zero, err
			}
			return s4, build(a, b, c, d), nil
		},
	}
}

func Seq5[A, B, C, D, E, O any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], build func(A, B, C, D, E) O) Parser[O] {
	return Parser[O]{
		rec: pa.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			var zero O
			s1, a, err := pa.parse(s, Or(rp, pb, pc, pd, pe))
			if err != nil {
				return s, zero, err
			}
			s2, b, err := step(s1, pb, Or(rp, pc, pd, pe))
			if err != nil {
				return s, zero, err
			}
			s3, c, err := step(s2, pc, Or(rp, pd, pe))
			if err != nil {
				return s, zero, err
			}
			s4, d, err := step(s3, pd, Or(rp, pe))
			if err != nil {
				return s, zero, err
			}
			s5, e, err := step(s4, pe, rp)
			if err != nil {
				return s, zero, err
			}
			return s5, build(a, b, c, d, e), nil
		},
	}
}

func Seq6[A, B, C, D, E, F, O any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E], pf Parser[F], build func(A, B, C, D, E, F) O) Parser[O] {
	return Parser[O]{
		rec: pa.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			var zero O
			s1, a, err := pa.parse(s, Or(rp, pb, pc, pd, pe, pf))
			if err != nil {
				return s, zero, err
			}
			s2, b, err := step(s1, pb, Or(rp, pc, pd, pe, pf))
			if err != nil {
				return s, zero, err
			}
			s3, c, err := step(s2, pc, Or(rp, pd, pe, pf))
			if err != nil {
				return s, zero, err
			}
			s4, d, err := step(s3, pd, Or(rp, pe, pf))
			if err != nil {
				return s, zero, err
			}
			s5, e, err := step(s4, pe, Or(rp, pf))
			if err != nil {
				return s, zero, err
			}
			s6, f, err := step(s5, pf, rp)
			if err != nil {
				return s, zero, err
			}
			return s6, build(a, b, c, d, e, f), nil
		},
	}
}

// Recover turns a required slot into a recoverable one: when the skip loop
// reaches the recovery point without the slot's construct, it yields a
// Missing placeholder at the gap instead of failing.
func Recover[O any](p Parser[O], missing func(gap lex.Span) diag.Diagnostic) Parser[ast.Recoverable[O]] {
	return Parser[ast.Recoverable[O]]{
		rec: p.rec,
		parse: func(s Stream, rp Recognizer) (Stream, ast.Recoverable[O], error) {
			cur := s
			var skipped []lex.Token
			for {
				if out, v, err := p.parse(cur, rp); err == nil {
					return out.withUnexpected(skipped), ast.Present(v), nil
				}
				if rp.Recognize(cur) {
					out := cur.withUnexpected(skipped)
					gap := out.GapSpan()
					m := &ast.MissingToken{Span: gap, Diagnostic: missing(gap)}
					return out, ast.Missing[O](m), nil
				}
				next, tok, ok := cur.Next()
				if !ok {
					return s, ast.Recoverable[O]{}, ErrIncomplete
				}
				skipped = append(skipped, tok)
				cur = next
			}
		},
	}
}

// Delimited parses open, body, close. A missing closer becomes a Missing
// slot whose diagnostic points back at the opener.
func Delimited[B, O any](
	open Parser[lex.Token],
	body Parser[B],
	closing Parser[lex.Token],
	missingClose func(open, gap lex.Span) diag.Diagnostic,
	build func(open lex.Token, body B, closing ast.Recoverable[lex.Token]) O,
) Parser[O] {
	return Parser[O]{
		rec: open.rec,
		parse: func(s Stream, rp Recognizer) (Stream, O, error) {
			var zero O
			s1, openTok, err := open.parse(s, Or(rp, body, closing))
			if err != nil {
				return s, zero, err
			}
			s2, b, err := step(s1, body, Or(rp, closing))
			if err != nil {
				return s, zero, err
			}
			cur := s2
			var skipped []lex.Token
			for {
				if out, closeTok, err := closing.parse(cur, rp); err == nil {
					return out.withUnexpected(skipped), build(openTok, b, ast.Present(closeTok)), nil
				}
				if rp.Recognize(cur) {
					out := cur.withUnexpected(skipped)
					gap := out.GapSpan()
					m := &ast.MissingToken{Span: gap, Diagnostic: missingClose(openTok.Span, gap)}
					return out, build(openTok, b, ast.Missing[lex.Token](m)), nil
				}
				next, tok, ok := cur.Next()
				if !ok {
					return s, zero, ErrIncomplete
				}
				skipped = append(skipped, tok)
				cur = next
			}
		},
	}
}
