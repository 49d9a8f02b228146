package meta

import (
	"errors"
	"fmt"

	"github.com/coregx/hashchain/filter"
)

var (
	// ErrPatternTooShort indicates a pattern shorter than the q-gram size.
	// It is the only structural error a search can report.
	ErrPatternTooShort = filter.ErrPatternTooShort

	// ErrNoSentinelRoom indicates a sentinel search buffer without spare
	// capacity for a copy of the pattern.
	ErrNoSentinelRoom = errors.New("buffer capacity too small for sentinel")
)

// LengthError reports a pattern too short for the configured q-gram size.
type LengthError struct {
	Len int
	Q   int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("hashchain: pattern length %d is shorter than q-gram length %d", e.Len, e.Q)
}

// Unwrap returns ErrPatternTooShort.
func (e *LengthError) Unwrap() error {
	return ErrPatternTooShort
}
