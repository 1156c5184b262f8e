package lex

// SourceID identifies one interned document. The zero value refers to no
// document and is only used by zero-width default spans.
type SourceID int

// Span is a half-open byte range [Start, End) inside one source document.
type Span struct {
	SourceID SourceID
	Start    int
	End      int
}

// Join returns the minimal span covering both s and other.
func (s Span) Join(other Span) Span {
	return Span{
		SourceID: s.SourceID,
		Start:    min(s.Start, other.Start),
		End:      max(s.End, other.End),
	}
}

// Between returns the gap between left and right.
func Between(left, right Span) Span {
	return Span{
		SourceID: left.SourceID,
		Start:    left.End,
		End:      right.Start,
	}
}

// CollapseToStart returns the zero-width span at the start of s.
func (s Span) CollapseToStart() Span {
	return Span{SourceID: s.SourceID, Start: s.Start, End: s.Start}
}

// CollapseToEnd returns the zero-width span at the end of s.
func (s Span) CollapseToEnd() Span {
	return Span{SourceID: s.SourceID, Start: s.End, End: s.End}
}

// Contains reports whether the byte offset index falls within s. The end
// offset counts as inside: a cursor at the end of a token is on that token.
func (s Span) Contains(index int) bool {
	return s.Start <= index && index <= s.End
}

// Before reports whether s ends before the byte offset index.
func (s Span) Before(index int) bool {
	return s.End < index
}
