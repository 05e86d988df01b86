// Package subtitle parses ASS and SRT subtitle text into timed lines,
// aligns two independently timed tracks by midpoint proximity, and
// regenerates a valid ASS document around the original prologue.
//
// Every operation degrades instead of failing: parsing always yields a
// slice of lines (possibly empty), matching always yields a full-length
// slice, and rendering always yields non-empty text. Partial subtitle
// data is more useful downstream than a hard error.
package subtitle

import "subfuse/internal/logging"

// matching window used when the caller does not supply one
const DefaultToleranceMS int64 = 1000

// Processor bundles the parse/match/render operations with an injected
// logger; no other state, safe for concurrent use
type Processor struct {
	log *logging.Logger
}

func NewProcessor(log *logging.Logger) *Processor {
	if log == nil {
		log = logging.NewNop()
	}
	return &Processor{log: log}
}
