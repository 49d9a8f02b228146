// Package hashchain provides sub-linear exact substring search using the
// HashChain family of hash-chain filters.
//
// A filter table is built from the pattern alone. Each table entry, indexed
// by the hash of a q-gram, holds fingerprints of the q-grams that precede it
// in the pattern. Scanning the text, most positions are rejected by a single
// empty entry and skipped m-Q+1 bytes at a time; surviving positions walk a
// chain of q-grams backwards, one table load per step, before any byte is
// compared.
//
// The default configuration (LinearHashChain) adds two mechanisms that bound
// the total work to O(n) even on adversarial input such as a text made of a
// single repeated byte:
//   - Weak recognition: a chain walk never re-reads text an earlier walk
//     already read.
//   - KMP verification: candidates are confirmed by a forward KMP scan whose
//     cursor persists across candidates, so no text byte is compared twice.
//
// Basic usage:
//
//	n, err := hashchain.Search([]byte("GCAT"), []byte("GCATGCATGCAT"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n) // 3
//
// Compile once, search many times:
//
//	s := hashchain.MustCompile([]byte("needle"))
//	for _, doc := range docs {
//	    offsets := s.FindAll(doc)
//	    ...
//	}
//
// Other variants of the family are available as presets:
//
//	config, _ := hashchain.Preset("hc3") // rolling hash chains
//	s, err := hashchain.CompileWithConfig(pattern, config)
//
// Limitations:
//   - Patterns must be at least Q bytes long (Q is the q-gram size, 4 by
//     default); shorter patterns are rejected with ErrPatternTooShort.
//   - Byte semantics only: no case folding or Unicode awareness.
package hashchain

import (
	"github.com/coregx/hashchain/filter"
	"github.com/coregx/hashchain/internal/conv"
	"github.com/coregx/hashchain/kmp"
	"github.com/coregx/hashchain/meta"
	"github.com/coregx/hashchain/verify"
)

// ErrPatternTooShort is returned (wrapped in a *meta.LengthError) when the
// pattern is shorter than the q-gram size.
var ErrPatternTooShort = meta.ErrPatternTooShort

// Config is the searcher configuration.
type Config = meta.Config

// Stats holds the counters of a single scan.
type Stats = verify.Stats

// Searcher is a compiled pattern.
//
// A Searcher is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	s := hashchain.MustCompile([]byte("aa"))
//	s.Count([]byte("aaaa"))   // 3
//	s.FindAll([]byte("aaaa")) // [0 1 2]
type Searcher struct {
	engine *meta.Engine
}

// Compile compiles pattern with the default configuration.
//
// Returns an error if the pattern is shorter than the default q-gram size.
func Compile(pattern []byte) (*Searcher, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern []byte) *Searcher {
	s, err := Compile(pattern)
	if err != nil {
		panic("hashchain: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return s
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Example:
//
//	config := hashchain.DefaultConfig()
//	config.Q = 2
//	config.ChainShift = 6
//	s, err := hashchain.CompileWithConfig([]byte("ab"), config)
func CompileWithConfig(pattern []byte, config Config) (*Searcher, error) {
	engine, err := meta.Compile(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Searcher{engine: engine}, nil
}

// DefaultConfig returns the default (LinearHashChain) configuration.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Preset returns the configuration of a named variant. See meta.Preset.
func Preset(name string) (Config, error) {
	return meta.Preset(name)
}

// Search returns the number of occurrences of pattern in text using the
// default configuration.
//
// If the pattern is shorter than the q-gram size it returns -1 and an
// error matching ErrPatternTooShort; no search is attempted.
func Search(pattern, text []byte) (int, error) {
	s, err := Compile(pattern)
	if err != nil {
		return -1, err
	}
	return s.Count(text), nil
}

// Count returns the number of (possibly overlapping) occurrences in text.
func (s *Searcher) Count(text []byte) int {
	return s.engine.Count(text)
}

// CountWithStats returns the number of occurrences and the scan counters.
func (s *Searcher) CountWithStats(text []byte) (int, Stats) {
	return s.engine.CountWithStats(text)
}

// CountSentinel counts occurrences in buf, writing a copy of the pattern
// into the spare capacity after len(buf). See meta.Engine.CountSentinel.
func (s *Searcher) CountSentinel(buf []byte) (int, error) {
	return s.engine.CountSentinel(buf)
}

// FindAll returns the offsets of all occurrences in increasing order.
func (s *Searcher) FindAll(text []byte) []int {
	return s.engine.FindAll(text)
}

// Find returns the offset of the first occurrence, or -1.
func (s *Searcher) Find(text []byte) int {
	return s.engine.Find(text)
}

// Match reports whether the pattern occurs in text.
func (s *Searcher) Match(text []byte) bool {
	return s.engine.IsMatch(text)
}

// Each calls fn with each occurrence offset until fn returns false.
func (s *Searcher) Each(text []byte, fn func(offset int) bool) {
	s.engine.Each(text, fn)
}

// Pattern returns a copy of the compiled pattern.
func (s *Searcher) Pattern() []byte {
	return s.engine.Pattern()
}

// Config returns the configuration used to compile the searcher.
func (s *Searcher) Config() Config {
	return s.engine.Config()
}

// String returns the pattern as a string.
func (s *Searcher) String() string {
	return string(s.engine.Pattern())
}

// BuildFilter builds the filter table of pattern for q-gram length q and a
// table of 1<<tableBits entries, using flat chains with a chain shift of
// tableBits/q. It returns the table entries and the cumulative hash.
func BuildFilter(pattern []byte, q int, tableBits uint) ([]uint32, uint32, error) {
	p := filter.Params{Q: q, TableBits: tableBits}
	if q > 0 {
		p.ChainShift = tableBits / conv.IntToUint(q)
	}
	f, err := filter.Build(pattern, p)
	if err != nil {
		return nil, 0, err
	}
	return f.Table().Entries(), f.Hm(), nil
}

// BuildAutomaton returns the KMP failure automaton of pattern, with
// len(pattern)+1 entries.
func BuildAutomaton(pattern []byte) []int {
	return kmp.Build(pattern)
}

func quote(p []byte) string {
	const maxLen = 32
	if len(p) > maxLen {
		return "\"" + string(p[:maxLen]) + "...\""
	}
	return "\"" + string(p) + "\""
}
