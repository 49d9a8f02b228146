package filter

import "github.com/coregx/hashchain/qgram"

// Outcome tags the result of a chain descent.
type Outcome uint8

const (
	// Broken means a link was missing: no occurrence covers the walked span.
	Broken Outcome = iota

	// Matched means every link down to the floor was present.
	Matched
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	if o == Matched {
		return "matched"
	}
	return "broken"
}

// Descent is the result of walking a chain back from an anchor.
type Descent struct {
	Outcome Outcome

	// Pos is the end position of the last q-gram hashed. For a Broken
	// descent it is the q-gram whose fingerprint was missing.
	Pos int

	// Hash is the hash of the last q-gram hashed (rolled, for rolling
	// layouts).
	Hash uint32

	// Steps is the number of q-grams hashed during the walk.
	Steps int
}

// Probe hashes the q-gram ending at pos and returns its anchor hash and
// table entry. A zero entry means no occurrence can end at pos, nor at any
// of the next Shift()-1 positions.
//
//go:inline
func (f *Filter) Probe(text []byte, pos int) (h, v uint32) {
	h = f.anchor.Hash(text, pos)
	return h, f.table.At(h)
}

// Descend walks the chain back from the anchor at pos, whose hash h and
// entry v come from Probe, one q-gram at a time while pos >= floor.
//
// The caller must pass a floor of at least 2Q-1, which every floor
// returned by FullFloor and WeakFloor satisfies for pos >= m-1; this keeps
// every read inside text.
func (f *Filter) Descend(text []byte, pos, floor int, h, v uint32) Descent {
	steps := 0
	for pos >= floor {
		pos -= f.q
		h = f.step(h, text, pos)
		steps++
		if v&qgram.Fingerprint(h) == 0 {
			return Descent{Outcome: Broken, Pos: pos, Hash: h, Steps: steps}
		}
		v = f.table.At(h)
	}
	return Descent{Outcome: Matched, Pos: pos, Hash: h, Steps: steps}
}

// FullFloor returns the floor that walks the chain all the way back to the
// first q-gram of the window ending at pos.
func (f *Filter) FullFloor(pos int) int {
	return pos - f.m + 2*f.q
}

// WeakFloor returns the floor for weak recognition: the walk stops at the
// window start, or at rightmost if an earlier walk already read that far.
func (f *Filter) WeakFloor(pos, rightmost int) int {
	return max(pos-f.m+f.q, rightmost) + f.q
}

func (f *Filter) step(h uint32, x []byte, pos int) uint32 {
	c := f.chain.Hash(x, pos)
	if f.roll == 0 {
		return c
	}
	return qgram.Roll(h, c, f.roll)
}
