package verify

// Stats counts the work done by one search.
//
// The counters measure filter effectiveness (how many anchors were rejected
// by an empty entry, how many chains broke, how many windows reached
// verification and how many of those were real occurrences) and total work
// (q-grams hashed, bytes compared). The latter two are what bound the
// running time: for the Linear strategy both stay within a small constant
// times the text length, whatever the input.
type Stats struct {
	// Anchors counts anchor q-grams probed in the table.
	Anchors uint64

	// Skips counts anchors whose table entry was zero.
	Skips uint64

	// ChainSteps counts q-grams hashed while descending chains.
	ChainSteps uint64

	// Broken counts descents abandoned on a missing fingerprint.
	Broken uint64

	// Candidates counts windows handed to the verifier.
	Candidates uint64

	// HashRejects counts candidates rejected by the cumulative hash.
	HashRejects uint64

	// Compares counts text bytes compared against the pattern.
	Compares uint64

	// Matches counts confirmed occurrences.
	Matches uint64
}

// HashedBytes returns the number of text bytes read by the filter.
func (s Stats) HashedBytes(q int) uint64 {
	return (s.Anchors + s.ChainSteps) * uint64(q)
}

// Efficiency returns the fraction of candidates that were real matches.
// Returns 1 when there were no candidates.
func (s Stats) Efficiency() float64 {
	if s.Candidates == 0 {
		return 1
	}
	return float64(s.Matches) / float64(s.Candidates)
}

// SkipRate returns the fraction of anchors rejected by an empty entry.
func (s Stats) SkipRate() float64 {
	if s.Anchors == 0 {
		return 0
	}
	return float64(s.Skips) / float64(s.Anchors)
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Anchors += o.Anchors
	s.Skips += o.Skips
	s.ChainSteps += o.ChainSteps
	s.Broken += o.Broken
	s.Candidates += o.Candidates
	s.HashRejects += o.HashRejects
	s.Compares += o.Compares
	s.Matches += o.Matches
}
