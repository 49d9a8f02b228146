// Package qgram provides the shift-and-add hash functions used by the
// HashChain filter.
//
// A q-gram is a run of Q consecutive bytes. Hashes are always computed for the
// q-gram ending at a position p, reading backwards from p to p-Q+1:
//
//	h = x[p]
//	h = h<<s + x[p-1]
//	...
//	h = h<<s + x[p-Q+1]
//
// Two roles use this function with different shifts: the anchor hash, which
// indexes the filter table and wants a wide spread, and the chain hash, which
// links consecutive q-grams. A rolling hash combines them across several
// q-grams (see Roll), widening the context captured by each table slot.
package qgram

// MaxQ is the largest supported q-gram length.
const MaxQ = 6

// Hasher hashes q-grams of a fixed length with a fixed per-byte shift.
type Hasher struct {
	// Q is the number of bytes in a q-gram (1..MaxQ).
	Q int

	// Shift is the left shift applied to the accumulated value before each
	// further byte is added.
	Shift uint
}

// New returns a Hasher for q-grams of length q using the given shift.
func New(q int, shift uint) Hasher {
	return Hasher{Q: q, Shift: shift}
}

// Hash returns the hash of the q-gram ending at position p of x.
//
// The caller guarantees p-Q+1 >= 0 and p < len(x).
func (h Hasher) Hash(x []byte, p int) uint32 {
	// Unrolled for the common sizes, the loop below covers the rest.
	s := h.Shift
	switch h.Q {
	case 1:
		return uint32(x[p])
	case 2:
		return uint32(x[p])<<s + uint32(x[p-1])
	case 3:
		return (uint32(x[p])<<s+uint32(x[p-1]))<<s + uint32(x[p-2])
	case 4:
		return ((uint32(x[p])<<s+uint32(x[p-1]))<<s+uint32(x[p-2]))<<s + uint32(x[p-3])
	}
	v := uint32(x[p])
	for i := 1; i < h.Q; i++ {
		v = v<<s + uint32(x[p-i])
	}
	return v
}

// Fingerprint maps a hash to one of 32 bits using its low five bits.
//
// It is a cheap, lossy membership probe: a table entry holding the OR of
// fingerprints answers "was a hash with these low bits linked here?".
//
//go:inline
func Fingerprint(h uint32) uint32 {
	return 1 << (h & 0x1F)
}

// Roll extends a rolling hash by one more q-gram hash.
//
//go:inline
func Roll(h, next uint32, shift uint) uint32 {
	return h<<shift + next
}
