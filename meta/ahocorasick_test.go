package meta

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/coregx/ahocorasick"
)

// ahoCorasickAll returns every (overlapping) occurrence of pattern reported
// by a single-pattern Aho-Corasick automaton, restarting one byte after
// each match start.
func ahoCorasickAll(t *testing.T, pattern, text []byte) []int {
	t.Helper()
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		t.Fatalf("ahocorasick Build(%q): %v", pattern, err)
	}

	var out []int
	for at := 0; at < len(text); {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}

// TestAgainstAhoCorasick cross-checks the presets against an independent
// automaton-based matcher on texts long enough to exercise many skips.
func TestAgainstAhoCorasick(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, name := range PresetNames() {
		c, err := Preset(name)
		if err != nil {
			t.Fatal(err)
		}
		t.Run(name, func(t *testing.T) {
			for _, alphabet := range []string{"ACGT", "abcdefghijklmnopqrstuvwxyz "} {
				text := randomBytes(rng, 20_000, alphabet)
				for _, m := range []int{c.Q, 8, 16, 33} {
					if m < c.Q {
						continue
					}
					start := rng.Intn(len(text) - m)
					pattern := text[start : start+m]

					e := mustCompile(pattern, c)
					want := ahoCorasickAll(t, pattern, text)
					if got := e.FindAll(text); !reflect.DeepEqual(got, want) {
						t.Fatalf("m=%d: FindAll = %v, want %v", m, got, want)
					}
					if !e.IsMatch(text) {
						t.Fatalf("m=%d: IsMatch = false for a pattern taken from the text", m)
					}
				}
			}
		})
	}
}

func TestAhoCorasickIsMatchAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		pattern := randomBytes(rng, 4+rng.Intn(4), "ab")
		text := randomBytes(rng, rng.Intn(64), "ab")

		builder := ahocorasick.NewBuilder()
		builder.AddPattern(pattern)
		auto, err := builder.Build()
		if err != nil {
			t.Fatal(err)
		}
		e := mustCompile(pattern, DefaultConfig())
		if got, want := e.IsMatch(text), auto.IsMatch(text); got != want {
			t.Fatalf("IsMatch(%q in %q) = %v, want %v", pattern, text, got, want)
		}
	}
}
