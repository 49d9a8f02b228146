package verify

import (
	"bytes"

	"github.com/coregx/hashchain/kmp"
)

// Naive verifies a fully descended window: the final chain hash must equal
// the cumulative pattern hash before any byte is compared.
type Naive struct {
	pattern []byte
	hm      uint32
}

// NewNaive returns a Naive verifier for pattern with cumulative hash hm.
func NewNaive(pattern []byte, hm uint32) *Naive {
	return &Naive{pattern: pattern, hm: hm}
}

// Kind implements Verifier.
func (v *Naive) Kind() Kind { return KindNaive }

// Verify implements Verifier.
func (v *Naive) Verify(text []byte, w Window, st *State, emit Emit) (int, bool) {
	st.Stats.Candidates++
	if w.Full && w.Hash != v.hm {
		st.Stats.HashRejects++
		return w.End + 1, true
	}
	m := len(v.pattern)
	st.Stats.Compares += uint64(m)
	if bytes.Equal(text[w.Start:w.Start+m], v.pattern) {
		st.Stats.Matches++
		if !emit(w.Start) {
			return w.End + 1, false
		}
	}
	return w.End + 1, true
}

// QVerify compares the Q alignments starting at w.Start through
// w.Start+Q-1. A full chain proves nothing about the later alignments, but
// comparing them lets the scan shift by Q instead of one.
type QVerify struct {
	pattern []byte
	q       int
}

// NewQVerify returns a QVerify verifier for pattern and q-gram length q.
func NewQVerify(pattern []byte, q int) *QVerify {
	return &QVerify{pattern: pattern, q: q}
}

// Kind implements Verifier.
func (v *QVerify) Kind() Kind { return KindQVerify }

// Verify implements Verifier.
func (v *QVerify) Verify(text []byte, w Window, st *State, emit Emit) (int, bool) {
	st.Stats.Candidates++
	m := len(v.pattern)
	for start := w.Start; start < w.Start+v.q && start+m <= len(text); start++ {
		st.Stats.Compares += uint64(m)
		if bytes.Equal(text[start:start+m], v.pattern) {
			st.Stats.Matches++
			if !emit(start) {
				return w.End + v.q, false
			}
		}
	}
	return w.End + v.q, true
}

// Weak compares the window bytes directly. It follows weak-recognition
// descents, whose final hash covers only part of the window.
type Weak struct {
	pattern []byte
}

// NewWeak returns a Weak verifier for pattern.
func NewWeak(pattern []byte) *Weak {
	return &Weak{pattern: pattern}
}

// Kind implements Verifier.
func (v *Weak) Kind() Kind { return KindWeak }

// Verify implements Verifier.
func (v *Weak) Verify(text []byte, w Window, st *State, emit Emit) (int, bool) {
	st.Stats.Candidates++
	m := len(v.pattern)
	st.Stats.Compares += uint64(m)
	if bytes.Equal(text[w.Start:w.Start+m], v.pattern) {
		st.Stats.Matches++
		if !emit(w.Start) {
			return w.End + 1, false
		}
	}
	return w.End + 1, true
}

// Linear verifies forward with a KMP automaton. Its cursor lives in State
// and carries over between windows: when a new window starts at or before
// the byte verification has reached, matching resumes from the saved
// automaton state instead of re-reading the overlap.
type Linear struct {
	pattern   []byte
	automaton kmp.Automaton
}

// NewLinear returns a Linear verifier for pattern. If a is nil the
// automaton is built from pattern.
func NewLinear(pattern []byte, a kmp.Automaton) *Linear {
	if a == nil {
		a = kmp.Build(pattern)
	}
	return &Linear{pattern: pattern, automaton: a}
}

// Kind implements Verifier.
func (v *Linear) Kind() Kind { return KindLinear }

// Automaton returns the failure automaton.
func (v *Linear) Automaton() kmp.Automaton {
	return v.automaton
}

// Verify implements Verifier.
//
// Every alignment up to and including w.Start is settled before returning:
// KMP only skips alignments that cannot match, and the filter has already
// excluded every occurrence ending before w.End. The cursor stops at the
// first alignment past w.Start, which becomes the next window to consider,
// so the returned end position is that alignment's last byte.
func (v *Linear) Verify(text []byte, w Window, st *State, emit Emit) (int, bool) {
	st.Stats.Candidates++
	x, m := v.pattern, len(v.pattern)
	c := &st.Cursor
	if w.Start > c.Next {
		// Gap since the last verified byte: no automaton state survives.
		c.Next = w.Start
		c.Pos = 0
	}
	for c.Next-c.Pos <= w.Start {
		// Alignment <= w.Start keeps c.Next <= w.End while c.Pos < m.
		for c.Pos < m {
			st.Stats.Compares++
			if x[c.Pos] != text[c.Next] {
				break
			}
			c.Pos++
			c.Next++
		}
		if c.Pos == m {
			st.Stats.Matches++
			if !emit(c.Next - m) {
				return c.Next + m - 1 - c.Pos, false
			}
		}
		c.Pos = v.automaton[c.Pos]
		if c.Pos < 0 {
			c.Pos = 0
			c.Next++
		}
	}
	return c.Next + m - 1 - c.Pos, true
}
