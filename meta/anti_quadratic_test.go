package meta

import (
	"bytes"
	"testing"
)

// TestAntiQuadratic_SingleCharacter verifies that the linear strategy stays
// within a constant factor of the text length on a text of one repeated
// byte, where every window is an occurrence.
//
// Without weak recognition every anchor would walk its chain back to the
// window start, and without the persistent KMP cursor every window would
// compare m bytes: O(n*m) total.
func TestAntiQuadratic_SingleCharacter(t *testing.T) {
	for _, m := range []int{4, 8, 32, 100} {
		for _, n := range []int{100_000, 200_000} {
			text := bytes.Repeat([]byte("a"), n)
			pattern := bytes.Repeat([]byte("a"), m)
			e := mustCompile(pattern, DefaultConfig())

			count, stats := e.CountWithStats(text)
			if count != n-m+1 {
				t.Fatalf("m=%d n=%d: Count = %d, want %d", m, n, count, n-m+1)
			}
			if limit := uint64(3 * n); stats.Compares > limit {
				t.Errorf("m=%d n=%d: %d byte comparisons, want at most %d", m, n, stats.Compares, limit)
			}
			if limit := uint64(3 * n); stats.Anchors+stats.ChainSteps > limit {
				t.Errorf("m=%d n=%d: %d q-grams hashed, want at most %d",
					m, n, stats.Anchors+stats.ChainSteps, limit)
			}
		}
	}
}

// TestAntiQuadratic_Doubling verifies that doubling the text roughly doubles
// the work on adversarial inputs.
func TestAntiQuadratic_Doubling(t *testing.T) {
	tests := []struct {
		name    string
		pattern []byte
		unit    []byte
	}{
		{"run", bytes.Repeat([]byte("a"), 32), []byte("a")},
		{"run then mismatch", append(bytes.Repeat([]byte("a"), 31), 'b'), []byte("a")},
		{"mismatch then run", append([]byte("b"), bytes.Repeat([]byte("a"), 31)...), []byte("a")},
		{"periodic", bytes.Repeat([]byte("ab"), 16), []byte("ab")},
		{"periodic tail", append(bytes.Repeat([]byte("ab"), 15), 'a', 'a'), []byte("ab")},
		{"period three", bytes.Repeat([]byte("aab"), 8), []byte("aab")},
	}

	work := func(e *Engine, text []byte) uint64 {
		_, s := e.CountWithStats(text)
		return s.Compares + s.Anchors + s.ChainSteps
	}

	for _, tt := range tests {
		for _, preset := range []string{"lhc4", "hc3", "hc6", "fhc1"} {
			t.Run(tt.name+"/"+preset, func(t *testing.T) {
				c, err := Preset(preset)
				if err != nil {
					t.Fatal(err)
				}
				c.Strategy = StrategyLinear
				e := mustCompile(tt.pattern, c)

				small := bytes.Repeat(tt.unit, 50_000/len(tt.unit))
				large := bytes.Repeat(tt.unit, 100_000/len(tt.unit))
				ws, wl := work(e, small), work(e, large)
				if wl > 5*uint64(len(large)) {
					t.Errorf("work %d on %d bytes, want at most %d", wl, len(large), 5*len(large))
				}
				if ratio := float64(wl) / float64(ws); ratio > 2.2 {
					t.Errorf("doubling the text multiplied work by %.2f", ratio)
				}
			})
		}
	}
}

// TestQuadraticNaive documents the behaviour the linear strategy avoids:
// the naive strategy compares every window in full.
func TestQuadraticNaive(t *testing.T) {
	const n, m = 20_000, 32
	text := bytes.Repeat([]byte("a"), n)
	pattern := bytes.Repeat([]byte("a"), m)

	c := DefaultConfig()
	c.Strategy = StrategyNaive
	_, stats := mustCompile(pattern, c).CountWithStats(text)
	if want := uint64((n - m + 1) * m); stats.Compares != want {
		t.Errorf("naive Compares = %d, want %d", stats.Compares, want)
	}

	_, linear := mustCompile(pattern, DefaultConfig()).CountWithStats(text)
	if linear.Compares*uint64(m)/4 > stats.Compares {
		t.Errorf("linear Compares = %d, naive %d: want linear far below naive", linear.Compares, stats.Compares)
	}
}
