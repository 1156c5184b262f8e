// Package comb implements the recoverable-parsing protocol: parsers that
// can always report what they expect at the current position (Recognizer)
// and that resynchronize on malformed input by skipping tokens until either
// the expected construct or an enclosing recovery point appears.
package comb

import "github.com/gravelql/gravel/internal/lex"

// Stream is a cursor over the exact token buffer plus a side buffer of
// tokens skipped during recovery. It is copied by value: a clone advances
// independently, and flushing skipped tokens never aliases another clone's
// buffer.
type Stream struct {
	tokens     []lex.Token
	pos        int
	last       lex.Token // most recently consumed, zero at the start
	unexpected []lex.Token
}

// NewStream returns a stream positioned at the first token.
func NewStream(tokens []lex.Token) Stream {
	return Stream{tokens: tokens}
}

// Peek returns the next token without consuming it.
func (s Stream) Peek() (lex.Token, bool) {
	if s.pos >= len(s.tokens) {
		return lex.Token{}, false
	}
	return s.tokens[s.pos], true
}

// Next consumes one token, returning the advanced stream.
func (s Stream) Next() (Stream, lex.Token, bool) {
	tok, ok := s.Peek()
	if !ok {
		return s, lex.Token{}, false
	}
	s.pos++
	s.last = tok
	return s, tok, true
}

// Exhausted reports whether all tokens have been consumed.
func (s Stream) Exhausted() bool {
	return s.pos >= len(s.tokens)
}

// GapSpan returns the zero-width-ish span of the gap at the current
// position: between the last consumed token and the next one.
func (s Stream) GapSpan() lex.Span {
	next, hasNext := s.Peek()
	switch {
	case s.last.IsValid() && hasNext:
		return lex.Between(s.last.Span, next.Span)
	case s.last.IsValid():
		return s.last.Span.CollapseToEnd()
	case hasNext:
		return next.Span.CollapseToStart()
	default:
		return lex.Span{}
	}
}

// withUnexpected returns s with toks appended to the skip buffer. The buffer
// is reallocated so clones sharing the previous backing array are unaffected.
func (s Stream) withUnexpected(toks []lex.Token) Stream {
	if len(toks) == 0 {
		return s
	}
	merged := make([]lex.Token, 0, len(s.unexpected)+len(toks))
	merged = append(merged, s.unexpected...)
	merged = append(merged, toks...)
	s.unexpected = merged
	return s
}

// Unexpected returns the tokens skipped during recovery so far.
func (s Stream) Unexpected() []lex.Token {
	return s.unexpected
}

// Drain returns every token the parse did not account for: the skip buffer
// followed by the unconsumed remainder.
func (s Stream) Drain() []lex.Token {
	rest := s.tokens[min(s.pos, len(s.tokens)):]
	if len(s.unexpected) == 0 {
		return rest
	}
	out := make([]lex.Token, 0, len(s.unexpected)+len(rest))
	out = append(out, s.unexpected...)
	out = append(out, rest...)
	return out
}
