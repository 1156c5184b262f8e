package ast

import (
	"github.com/gravelql/gravel/internal/diag"
	"github.com/gravelql/gravel/internal/lex"
)

// MissingToken marks a grammar slot the parser could not fill. Its span is
// the zero-width gap where the slot should have been and its diagnostic is
// ready to report.
type MissingToken struct {
	Span       lex.Span
	Diagnostic diag.Diagnostic
}

// Recoverable is a grammar slot that is either present or missing. The zero
// value is missing with no MissingToken, which traversal treats as absent.
type Recoverable[T any] struct {
	value   T
	present bool
	missing *MissingToken
}

// Present wraps a parsed value.
func Present[T any](value T) Recoverable[T] {
	return Recoverable[T]{value: value, present: true}
}

// Missing wraps the placeholder for an absent value.
func Missing[T any](missing *MissingToken) Recoverable[T] {
	return Recoverable[T]{missing: missing}
}

// Ok returns the value and whether it is present.
func (r Recoverable[T]) Ok() (T, bool) {
	return r.value, r.present
}

// Get returns the value, zero if missing.
func (r Recoverable[T]) Get() T {
	return r.value
}

// IsPresent reports whether the slot was filled.
func (r Recoverable[T]) IsPresent() bool {
	return r.present
}

// MissingTok returns the placeholder, nil if the slot was filled.
func (r Recoverable[T]) MissingTok() *MissingToken {
	return r.missing
}
