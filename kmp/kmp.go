// Package kmp builds Knuth-Morris-Pratt failure automata for linear-time
// forward verification.
package kmp

// Automaton holds the failure links of a pattern of length m.
//
// It has m+1 entries. Entry j, for j < m, is the pattern position to resume
// at after a mismatch of pattern[j]: the length of the longest proper border
// of pattern[:j] whose next byte differs from pattern[j], or -1 if the
// alignment must move past the mismatching text byte. Entry m is the border
// of the whole pattern, so scanning can continue after a full match and
// overlapping occurrences are found.
type Automaton []int

// Build returns the failure automaton of pattern.
func Build(pattern []byte) Automaton {
	m := len(pattern)
	a := make(Automaton, m+1)
	a[0] = -1
	t := -1
	for j := 0; j < m; {
		for t > -1 && pattern[j] != pattern[t] {
			t = a[t]
		}
		j++
		t++
		if j < m && pattern[j] == pattern[t] {
			a[j] = a[t]
		} else {
			a[j] = t
		}
	}
	return a
}

// Len returns the length of the pattern the automaton was built for.
func (a Automaton) Len() int {
	return len(a) - 1
}
