// Package simd provides word-parallel byte primitives used where the
// HashChain filter has nothing to offer: a single-byte pattern has no
// q-gram chain to walk, so it is searched directly.
//
// The implementations use SWAR (SIMD Within A Register): eight bytes are
// loaded into a uint64 and tested in parallel with bitwise arithmetic.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
	lo7 = 0x7F7F7F7F7F7F7F7F
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8
	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		// Bytes above the first zero may be flagged by borrows, but the
		// lowest flag is always exact.
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Count returns the number of instances of needle in haystack.
//
// Equivalent to bytes.Count with a one-byte separator.
func Count(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8
	count := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		// Exact zero-byte flags: no borrow crosses byte boundaries.
		z := ^(((x & lo7) + lo7) | x | lo7)
		count += bits.OnesCount64(z)
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			count++
		}
	}
	return count
}

// Each calls fn with the index of every instance of needle in haystack, in
// increasing order, until fn returns false.
func Each(haystack []byte, needle byte, fn func(int) bool) {
	at := 0
	for at < len(haystack) {
		pos := Memchr(haystack[at:], needle)
		if pos < 0 {
			return
		}
		if !fn(at + pos) {
			return
		}
		at += pos + 1
	}
}
