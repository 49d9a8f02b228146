// Package verify confirms candidate windows surfaced by the chain filter.
//
// Four strategies share one contract: given a candidate window and the
// per-search State, report every confirmed occurrence and return the end
// position at which the filter must resume scanning.
//
//   - Naive: cumulative-hash pre-check, then a byte comparison of the window.
//   - QVerify: byte comparison of the Q alignments ending at the window end
//     and the Q-1 positions after it, allowing a shift of Q afterwards.
//   - Weak: byte comparison only, used after a weak-recognition descent whose
//     final hash does not cover the whole window.
//   - Linear: forward KMP verification driven by a Cursor that persists
//     across windows, so no text byte is compared twice.
//
// Verifiers are immutable and safe for concurrent use; all mutable scan
// state lives in State, which each search owns exclusively.
package verify

import "fmt"

// Window is a candidate occurrence that passed the chain filter.
type Window struct {
	// Start is the text offset at which the pattern would begin.
	Start int

	// End is the text offset of the window's last byte (Start + m - 1).
	End int

	// Hash is the final hash of the chain descent.
	Hash uint32

	// Full reports whether the descent reached the first q-gram of the
	// window, so Hash is comparable with the cumulative pattern hash.
	Full bool
}

// Emit receives the offset of each confirmed occurrence. Returning false
// stops the search.
type Emit func(offset int) bool

// Verifier confirms candidate windows.
type Verifier interface {
	// Verify confirms w against text, calling emit for each occurrence it
	// finds, and returns the next window end the filter must consider.
	// ok is false if emit asked to stop.
	Verify(text []byte, w Window, st *State, emit Emit) (next int, ok bool)

	// Kind returns the strategy this verifier implements.
	Kind() Kind
}

// Kind enumerates the verification strategies.
type Kind uint8

const (
	// KindNaive checks the cumulative hash, then compares bytes.
	KindNaive Kind = iota

	// KindQVerify compares the Q alignments at the window end.
	KindQVerify

	// KindWeak compares bytes after a weak-recognition descent.
	KindWeak

	// KindLinear verifies forward with a KMP automaton.
	KindLinear
)

// String returns a human-readable strategy name.
func (k Kind) String() string {
	switch k {
	case KindNaive:
		return "naive"
	case KindQVerify:
		return "qverify"
	case KindWeak:
		return "weak"
	case KindLinear:
		return "linear"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// UsesWeakFloor reports whether the filter should stop chain descents at
// the weak-recognition floor for this strategy.
func (k Kind) UsesWeakFloor() bool {
	return k == KindWeak || k == KindLinear
}

// State is the scan-local memory of one search.
type State struct {
	Weak   WeakTracker
	Cursor Cursor
	Stats  Stats
}

// Reset clears the state for a new search.
func (s *State) Reset() {
	*s = State{}
}

// WeakTracker remembers the rightmost text position already read by a chain
// descent. It never moves left during a search.
type WeakTracker struct {
	rightmost int
}

// Rightmost returns the rightmost position read so far.
func (w *WeakTracker) Rightmost() int {
	return w.rightmost
}

// Advance records that a descent starts at pos.
func (w *WeakTracker) Advance(pos int) {
	if pos > w.rightmost {
		w.rightmost = pos
	}
}

// Cursor tracks forward KMP verification: Next is the next text byte to
// compare and Pos the number of pattern bytes already matched before it.
// The alignment Next-Pos never decreases during a search.
type Cursor struct {
	Next int
	Pos  int
}

// Alignment returns the text offset of the alignment being verified.
func (c Cursor) Alignment() int {
	return c.Next - c.Pos
}
