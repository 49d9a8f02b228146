package meta

import (
	"bytes"
	"fmt"
	"math/rand"
)

// bruteForce returns every offset at which pattern occurs in text.
func bruteForce(pattern, text []byte) []int {
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			out = append(out, i)
		}
	}
	return out
}

func randomBytes(rng *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return b
}

var allStrategies = []Strategy{StrategyNaive, StrategyQVerify, StrategyWeak, StrategyLinear}

// testConfig returns a configuration with flat chains (rolling=false) or
// rolling chains, the memchr path disabled.
func testConfig(q int, bits uint, rolling bool, s Strategy) Config {
	c := Config{Q: q, TableBits: bits, Strategy: s}
	if rolling {
		c.AnchorShift = 2
		c.ChainShift = 1
		c.RollShift = 4
	} else {
		c.ChainShift = bits / uint(q)
	}
	return c
}

func configName(c Config) string {
	layout := "flat"
	if c.RollShift > 0 {
		layout = "rolling"
	}
	return fmt.Sprintf("q%d/bits%d/%s/%s", c.Q, c.TableBits, layout, c.Strategy)
}

// everyConfig enumerates q-gram lengths, table sizes, layouts and
// strategies.
func everyConfig() []Config {
	var out []Config
	for q := 1; q <= 6; q++ {
		for _, bits := range []uint{5, 8, 12} {
			for _, rolling := range []bool{false, true} {
				for _, s := range allStrategies {
					out = append(out, testConfig(q, bits, rolling, s))
				}
			}
		}
	}
	return out
}

func mustCompile(pattern []byte, c Config) *Engine {
	e, err := Compile(pattern, c)
	if err != nil {
		panic(fmt.Sprintf("Compile(%q, %s): %v", pattern, configName(c), err))
	}
	return e
}
