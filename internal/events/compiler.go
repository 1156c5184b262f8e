// Package events defines the compiler lifecycle events published on the
// eventbus. Subscribers (tracing, logging) are wired separately; with no
// bus installed publishing is a no-op.
package events

import (
	"time"

	"github.com/gravelql/gravel/internal/lex"
)

// DocumentParsed is emitted after a document is parsed and registered.
type DocumentParsed struct {
	Source      lex.SourceID
	Library     bool
	Definitions int
	Diagnostics int
	Invalidated int
	Duration    time.Duration
}

// DocumentRemoved is emitted after a document is unregistered.
type DocumentRemoved struct {
	Source      lex.SourceID
	Invalidated int
}

// Rebuilt is emitted after the semantic database is rebuilt.
type Rebuilt struct {
	Documents int
	Rechecked int
	Duration  time.Duration
}
