package comb

import "github.com/gravelql/gravel/internal/lex"

// Many0 parses zero or more items. Between items it skips and buffers
// tokens until another item or the ambient recovery point appears; a
// recovery-point match (or end of input) stops the loop, rewinding any
// tokens skipped while looking for the item that never came.
func Many0[O any](p Parser[O]) Parser[[]O] {
	return Parser[[]O]{
		rec: p.rec,
		parse: func(s Stream, rp Recognizer) (Stream, []O, error) {
			out, items := many(s, p, rp)
			return out, items, nil
		},
	}
}

// Many1 is Many0 that fails outright when not even one item parses.
func Many1[O any](p Parser[O]) Parser[[]O] {
	return Parser[[]O]{
		rec: p.rec,
		parse: func(s Stream, rp Recognizer) (Stream, []O, error) {
			out, items := many(s, p, rp)
			if len(items) == 0 {
				return s, nil, ErrNoItems
			}
			return out, items, nil
		},
	}
}

func many[O any](s Stream, p Parser[O], rp Recognizer) (Stream, []O) {
	var items []O
	// Tokens skipped while looking for an item recover into the stream only
	// when the item is found; each item parses with the next item as an
	// extra recovery point.
	itemRP := Or(rp, p)
	for {
		cur := s
		var skipped []lex.Token
		for {
			if out, v, err := p.parse(cur, itemRP); err == nil {
				s = out.withUnexpected(skipped)
				items = append(items, v)
				break
			}
			if rp.Recognize(cur) {
				return s, items
			}
			next, tok, ok := cur.Next()
			if !ok {
				return s, items
			}
			skipped = append(skipped, tok)
			cur = next
		}
	}
}
