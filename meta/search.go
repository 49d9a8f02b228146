package meta

import (
	"bytes"

	"github.com/coregx/hashchain/filter"
	"github.com/coregx/hashchain/simd"
	"github.com/coregx/hashchain/verify"
)

// Count returns the number of (possibly overlapping) occurrences of the
// pattern in text.
func (e *Engine) Count(text []byte) int {
	n, _ := e.CountWithStats(text)
	return n
}

// CountWithStats returns the number of occurrences together with the
// statistics of the scan.
func (e *Engine) CountWithStats(text []byte) (int, verify.Stats) {
	if e.memchr {
		n := simd.Count(text, e.pattern[0])
		return n, verify.Stats{Compares: uint64(len(text)), Matches: uint64(n)}
	}
	st := e.states.get()
	defer e.states.put(st)
	count := 0
	e.scan(text, st, func(int) bool {
		count++
		return true
	})
	return count, st.Stats
}

// FindAll returns the offsets of all occurrences in increasing order, or
// nil if there are none.
func (e *Engine) FindAll(text []byte) []int {
	var out []int
	e.Each(text, func(pos int) bool {
		out = append(out, pos)
		return true
	})
	return out
}

// Find returns the offset of the first occurrence, or -1.
func (e *Engine) Find(text []byte) int {
	first := -1
	e.Each(text, func(pos int) bool {
		first = pos
		return false
	})
	return first
}

// IsMatch reports whether the pattern occurs in text.
func (e *Engine) IsMatch(text []byte) bool {
	return e.Find(text) >= 0
}

// Each calls fn with the offset of every occurrence in increasing order
// until fn returns false. Offsets are produced lazily as the scan advances.
func (e *Engine) Each(text []byte, fn func(int) bool) {
	if e.memchr {
		simd.Each(text, e.pattern[0], fn)
		return
	}
	st := e.states.get()
	defer e.states.put(st)
	e.scan(text, st, fn)
}

// scan runs the chain filter over text and hands each window whose chain
// holds to the verifier.
//
// The scan position is always the end of the next window to consider;
// every occurrence ending before it has already been reported. A zero
// entry or a broken chain proves no occurrence spans the bytes read, which
// allows the shift of m-Q+1 past the last q-gram examined.
func (e *Engine) scan(text []byte, st *verify.State, emit verify.Emit) {
	f := e.filter
	m := len(e.pattern)
	n := len(text)
	shift := f.Shift()
	weak := e.verifier.Kind().UsesWeakFloor()

	pos := m - 1
	for pos < n {
		h, v := f.Probe(text, pos)
		st.Stats.Anchors++
		if v == 0 {
			st.Stats.Skips++
			pos += shift
			continue
		}

		floor := f.FullFloor(pos)
		full := true
		if weak {
			// Bytes already read by an earlier descent are not re-read.
			if wf := f.WeakFloor(pos, st.Weak.Rightmost()); wf > floor {
				floor = wf
				full = false
			}
			st.Weak.Advance(pos)
		}

		d := f.Descend(text, pos, floor, h, v)
		st.Stats.ChainSteps += uint64(d.Steps)
		if d.Outcome == filter.Broken {
			st.Stats.Broken++
			pos = d.Pos + shift
			continue
		}

		w := verify.Window{Start: pos - m + 1, End: pos, Hash: d.Hash, Full: full}
		next, ok := e.verifier.Verify(text, w, st, emit)
		if !ok {
			return
		}
		pos = next
	}
}

// CountSentinel counts occurrences in buf using the sentinel technique: a
// copy of the pattern is written into buf's spare capacity, directly after
// len(buf), so the loop skipping empty table entries needs no end-of-text
// test. It always verifies with the cumulative hash and a byte comparison.
//
// The caller must own cap(buf)-len(buf) >= len(pattern) bytes after the
// text; they are overwritten. Returns ErrNoSentinelRoom otherwise.
//
// This mode writes to caller memory past the text and is never used by
// the other search methods.
func (e *Engine) CountSentinel(buf []byte) (int, error) {
	m, n := len(e.pattern), len(buf)
	if cap(buf)-n < m {
		return 0, ErrNoSentinelRoom
	}
	if e.memchr {
		return simd.Count(buf, e.pattern[0]), nil
	}

	text := buf[:n+m]
	copy(text[n:], e.pattern)
	f := e.filter
	hm := f.Hm()
	shift := f.Shift()
	count := 0
	pos := m - 1
	for {
		// Every end position in [n+Q-1, n+m-1] lies inside the sentinel
		// and has a non-zero entry, and that span is shift wide.
		h, v := f.Probe(text, pos)
		for v == 0 {
			pos += shift
			h, v = f.Probe(text, pos)
		}
		if pos >= n {
			return count, nil
		}
		d := f.Descend(text, pos, f.FullFloor(pos), h, v)
		if d.Outcome == filter.Broken {
			pos = d.Pos + shift
			continue
		}
		if d.Hash == hm && bytes.Equal(text[pos-m+1:pos+1], e.pattern) {
			count++
		}
		pos++
	}
}
