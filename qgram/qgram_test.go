package qgram

import "testing"

// hashLoop is the reference fold used to check the unrolled cases.
func hashLoop(x []byte, p, q int, s uint) uint32 {
	v := uint32(x[p])
	for i := 1; i < q; i++ {
		v = v<<s + uint32(x[p-i])
	}
	return v
}

func TestHashMatchesFold(t *testing.T) {
	x := []byte("the quick brown fox jumps over the lazy dog \xff\x00\x80")
	for q := 1; q <= MaxQ; q++ {
		for s := uint(0); s <= 12; s++ {
			h := New(q, s)
			for p := q - 1; p < len(x); p++ {
				got := h.Hash(x, p)
				want := hashLoop(x, p, q, s)
				if got != want {
					t.Fatalf("Q=%d shift=%d p=%d: Hash = %#x, want %#x", q, s, p, got, want)
				}
			}
		}
	}
}

func TestHashReadsBackwards(t *testing.T) {
	h := New(3, 1)
	// ((x[2]<<1 + x[1])<<1) + x[0]
	got := h.Hash([]byte{1, 2, 3}, 2)
	want := uint32((3<<1+2)<<1 + 1)
	if got != want {
		t.Errorf("Hash = %d, want %d", got, want)
	}

	// Only the Q bytes ending at p contribute.
	a := h.Hash([]byte("xxabc"), 4)
	b := h.Hash([]byte("yyabc"), 4)
	if a != b {
		t.Errorf("Hash depends on bytes before the q-gram: %#x != %#x", a, b)
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		h    uint32
		want uint32
	}{
		{0, 1},
		{1, 2},
		{31, 1 << 31},
		{32, 1},
		{0xFFFFFFE5, 1 << 5},
	}
	for _, tt := range tests {
		if got := Fingerprint(tt.h); got != tt.want {
			t.Errorf("Fingerprint(%#x) = %#x, want %#x", tt.h, got, tt.want)
		}
	}
}

func TestFingerprintSingleBit(t *testing.T) {
	for h := uint32(0); h < 4096; h++ {
		fp := Fingerprint(h)
		if fp == 0 || fp&(fp-1) != 0 {
			t.Fatalf("Fingerprint(%d) = %#x, want exactly one bit", h, fp)
		}
	}
}

func TestRoll(t *testing.T) {
	if got := Roll(0x0F, 3, 4); got != 0xF3 {
		t.Errorf("Roll = %#x, want 0xf3", got)
	}
	// Wraps in 32 bits.
	if got := Roll(0xF0000001, 1, 4); got != 0x11 {
		t.Errorf("Roll = %#x, want 0x11", got)
	}
}
