// Package filter builds and scans the HashChain filter table.
//
// The table is a power-of-two array of 32-bit entries indexed by a masked
// q-gram hash. Each entry holds the OR of the fingerprints of every q-gram
// hash that legitimately precedes it in the pattern. Scanning the text
// backwards from an anchor, a single table load per step both tests the
// current link (is the fingerprint of the preceding q-gram in this entry?)
// and fetches the entry for the next link, so no second probe is needed.
//
// The table is a sound over-approximation: a q-gram chain that occurs in the
// pattern is always accepted, chains that do not occur are usually rejected.
// A zero entry means no chain of the pattern can end at that q-gram, which
// allows the scanner to skip m-Q+1 positions at once.
//
// Two table layouts are supported:
//
//   - Flat: Q independent chains are laid from the last Q positions of the
//     pattern back to its start. The step hash is the chain hash of each
//     q-gram alone. Cheap to build, best on large alphabets.
//   - Rolling: every position is an anchor, and the chain hash is rolled
//     into the previous value, widening the context each slot captures.
//     Better on small alphabets, more expensive to build.
package filter

import (
	"errors"
	"fmt"

	"github.com/coregx/hashchain/internal/conv"
	"github.com/coregx/hashchain/qgram"
)

// Table size limits, in bits.
const (
	MinTableBits = 5
	MaxTableBits = 12
)

var (
	// ErrPatternTooShort indicates a pattern shorter than the q-gram size.
	// No table can be built for it and no search can be attempted.
	ErrPatternTooShort = errors.New("pattern shorter than q-gram length")

	// ErrInvalidParams indicates filter parameters out of range.
	ErrInvalidParams = errors.New("invalid filter parameters")
)

// Layout selects how chains are laid into the table.
type Layout uint8

const (
	// Flat lays Q non-rolling chains back from the end of the pattern.
	Flat Layout = iota

	// Rolling anchors a rolling chain at every pattern position.
	Rolling
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case Flat:
		return "flat"
	case Rolling:
		return "rolling"
	default:
		return fmt.Sprintf("Layout(%d)", l)
	}
}

// Params configures table construction and the matching scan hashes.
type Params struct {
	// Q is the q-gram length (1..6).
	Q int

	// TableBits is log2 of the table size (5..12).
	TableBits uint

	// AnchorShift is the per-byte shift of the anchor hash. Only used by the
	// rolling layout; the flat layout anchors with the chain hash.
	AnchorShift uint

	// ChainShift is the per-byte shift of the chain hash.
	ChainShift uint

	// RollShift is the shift applied to the previous hash before the next
	// chain hash is added. Zero selects the flat layout.
	RollShift uint
}

// Layout returns the table layout these parameters select.
func (p Params) Layout() Layout {
	if p.RollShift == 0 {
		return Flat
	}
	return Rolling
}

// MaxDepth returns the number of rolling steps after which masked hashes no
// longer depend on the anchor. Links deeper than this repeat links laid by
// a later anchor, so construction stops there. Returns 0 for flat layouts.
func (p Params) MaxDepth() int {
	if p.RollShift == 0 {
		return 0
	}
	return int((p.TableBits+p.RollShift-1)/p.RollShift) + 2
}

func (p Params) validate() error {
	if p.Q < 1 || p.Q > qgram.MaxQ {
		return fmt.Errorf("%w: q-gram length %d not in [1, %d]", ErrInvalidParams, p.Q, qgram.MaxQ)
	}
	if p.TableBits < MinTableBits || p.TableBits > MaxTableBits {
		return fmt.Errorf("%w: table bits %d not in [%d, %d]", ErrInvalidParams, p.TableBits, MinTableBits, MaxTableBits)
	}
	if p.AnchorShift > 8 || p.ChainShift > 12 || p.RollShift > 8 {
		return fmt.Errorf("%w: shift out of range", ErrInvalidParams)
	}
	return nil
}

// Table is a fixed-size array of fingerprint bitmasks.
type Table struct {
	entries []uint32
	mask    uint32
}

func newTable(bits uint) Table {
	size := 1 << bits
	return Table{
		entries: make([]uint32, size),
		mask:    conv.IntToUint32(size - 1),
	}
}

// At returns the entry addressed by hash h.
//
//go:inline
func (t Table) At(h uint32) uint32 {
	return t.entries[h&t.mask]
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the raw entries.
func (t Table) Entries() []uint32 {
	out := make([]uint32, len(t.entries))
	copy(out, t.entries)
	return out
}

// Occupied returns the number of non-zero entries.
func (t Table) Occupied() int {
	n := 0
	for _, v := range t.entries {
		if v != 0 {
			n++
		}
	}
	return n
}

// HeapBytes returns the memory held by the table.
func (t Table) HeapBytes() int {
	return len(t.entries) * 4
}

func (t Table) link(from, to uint32) {
	t.entries[from&t.mask] |= qgram.Fingerprint(to)
}
