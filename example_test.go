package hashchain_test

import (
	"fmt"

	"github.com/coregx/hashchain"
)

// ExampleSearch demonstrates a one-shot count.
func ExampleSearch() {
	n, err := hashchain.Search([]byte("GCAT"), []byte("GCATGCATGCAT"))
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 3
}

// ExampleMustCompile demonstrates overlapping occurrences.
func ExampleMustCompile() {
	s := hashchain.MustCompile([]byte("AAAA"))
	fmt.Println(s.Count([]byte("AAAAAAAA")))
	// Output: 5
}

// ExampleSearcher_FindAll demonstrates finding every offset.
func ExampleSearcher_FindAll() {
	config := hashchain.DefaultConfig()
	config.Q = 1
	s, err := hashchain.CompileWithConfig([]byte("aa"), config)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.FindAll([]byte("aaaa")))
	// Output: [0 1 2]
}

// ExampleSearcher_Find demonstrates finding the first occurrence.
func ExampleSearcher_Find() {
	s := hashchain.MustCompile([]byte("fox!"))
	fmt.Println(s.Find([]byte("the quick brown fox! jumps")))
	// Output: 16
}

// ExamplePreset demonstrates compiling a named variant.
func ExamplePreset() {
	config, err := hashchain.Preset("hc3")
	if err != nil {
		panic(err)
	}
	s, err := hashchain.CompileWithConfig([]byte("needle"), config)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Match([]byte("haystack with a needle in it")))
	// Output: true
}

// ExampleSearcher_CountSentinel demonstrates the sentinel mode, which needs
// spare capacity after the text.
func ExampleSearcher_CountSentinel() {
	s := hashchain.MustCompile([]byte("abcd"))
	text := "xxabcdxxabcd"
	buf := make([]byte, len(text), len(text)+4)
	copy(buf, text)

	n, err := s.CountSentinel(buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 2
}
