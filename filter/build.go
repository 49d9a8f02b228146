package filter

import "github.com/coregx/hashchain/qgram"

// Filter is the preprocessed form of one pattern: its table, the hashers
// used to probe it, and the cumulative pattern hash Hm.
//
// A Filter is immutable after Build and safe for concurrent use.
type Filter struct {
	table  Table
	anchor qgram.Hasher
	chain  qgram.Hasher
	roll   uint
	hm     uint32
	m      int
	q      int
}

// Build preprocesses pattern into a Filter.
//
// Returns ErrPatternTooShort if len(pattern) < p.Q, or an error wrapping
// ErrInvalidParams if p is out of range.
func Build(pattern []byte, p Params) (*Filter, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	m := len(pattern)
	if m < p.Q {
		return nil, ErrPatternTooShort
	}

	f := &Filter{
		table: newTable(p.TableBits),
		chain: qgram.New(p.Q, p.ChainShift),
		roll:  p.RollShift,
		m:     m,
		q:     p.Q,
	}
	if p.Layout() == Rolling {
		f.anchor = qgram.New(p.Q, p.AnchorShift)
		f.buildRolling(pattern, p.MaxDepth())
	} else {
		f.anchor = f.chain
		f.buildFlat(pattern)
	}
	f.fillChainStarts(pattern)
	f.hm = f.cumulative(pattern)
	return f, nil
}

// buildFlat lays Q chains from the last Q end positions back to the first
// q-gram. Every end position in [Q-1, m-1] belongs to exactly one chain.
func (f *Filter) buildFlat(x []byte) {
	q, m := f.q, f.m
	chains := q
	if m < 2*q {
		chains = m - q + 1
	}
	for c := chains; c >= 1; c-- {
		pos := m - c
		h := f.chain.Hash(x, pos)
		for pos -= q; pos >= q-1; pos -= q {
			prev := h
			h = f.chain.Hash(x, pos)
			f.table.link(prev, h)
		}
	}
}

// buildRolling anchors a rolling chain at every position with a q-gram
// before it, stopping each chain after depth steps.
func (f *Filter) buildRolling(x []byte, depth int) {
	q, m := f.q, f.m
	for a := 2*q - 1; a < m; a++ {
		h := f.anchor.Hash(x, a)
		steps := 0
		for pos := a - q; pos >= q-1 && steps < depth; pos -= q {
			prev := h
			h = qgram.Roll(h, f.chain.Hash(x, pos), f.roll)
			f.table.link(prev, h)
			steps++
		}
	}
}

// fillChainStarts gives the q-grams at the start of the pattern, which have
// no predecessor to link, a non-zero entry if theirs is still empty. The
// complemented hash is used so the entry never points back at itself.
func (f *Filter) fillChainStarts(x []byte) {
	q := f.q
	stop := min(f.m, 2*q-1)
	for pos := q - 1; pos < stop; pos++ {
		h := f.anchor.Hash(x, pos)
		if f.table.At(h) == 0 {
			f.table.entries[h&f.table.mask] = qgram.Fingerprint(^h)
		}
	}
}

// cumulative returns the hash a full chain descent produces on the pattern
// itself, from its last q-gram back to its first.
func (f *Filter) cumulative(x []byte) uint32 {
	pos := f.m - 1
	h := f.anchor.Hash(x, pos)
	for pos -= f.q; pos >= f.q-1; pos -= f.q {
		h = f.step(h, x, pos)
	}
	return h
}

// Table returns the filter table.
func (f *Filter) Table() Table {
	return f.table
}

// Hm returns the cumulative pattern hash.
func (f *Filter) Hm() uint32 {
	return f.hm
}

// Q returns the q-gram length.
func (f *Filter) Q() int {
	return f.q
}

// PatternLen returns the length of the pattern the filter was built for.
func (f *Filter) PatternLen() int {
	return f.m
}

// Shift returns the distance the scan may safely advance when the q-gram
// ending at the current position is rejected.
func (f *Filter) Shift() int {
	return f.m - f.q + 1
}

// HeapBytes returns the memory held by the filter.
func (f *Filter) HeapBytes() int {
	return f.table.HeapBytes()
}
