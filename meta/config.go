// Package meta implements the search driver that ties the HashChain
// components together.
//
// An Engine is compiled once per pattern: it validates the configuration,
// rejects patterns shorter than the q-gram size, builds the filter table and,
// for the linear strategy, the KMP automaton. Searches then run the chain
// filter over the text, hand candidate windows to the selected verifier and
// report occurrences.
//
// Strategy selection:
//   - Linear (default): weak recognition plus KMP verification. Worst case
//     linear in the text length, even on single-character input.
//   - Weak: weak recognition plus byte comparison.
//   - QVerify: full chain descent, then Q alignments compared per candidate.
//   - Naive: full chain descent, cumulative hash check, byte comparison.
//   - Memchr: single-byte patterns bypass the table entirely.
package meta

import (
	"github.com/coregx/hashchain/filter"
	"github.com/coregx/hashchain/qgram"
)

// Config controls table construction and verification.
//
// All fields are construction-time parameters: an Engine never changes its
// configuration after Compile.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Q = 3
//	config.ChainShift = 3
//	engine, err := meta.Compile([]byte("needle"), config)
type Config struct {
	// Q is the number of bytes in a q-gram.
	// Default: 4
	Q int

	// TableBits is log2 of the filter table size. Shorter patterns rely
	// more on empty entries and prefer larger tables; longer patterns
	// benefit from the better cache behaviour of smaller ones.
	// Default: 12 (4096 entries)
	TableBits uint

	// AnchorShift is the per-byte shift of the anchor hash. Only used
	// when RollShift > 0.
	// Default: 0
	AnchorShift uint

	// ChainShift is the per-byte shift of the chain hash.
	// Default: 3 (TableBits / Q)
	ChainShift uint

	// RollShift is the rolling hash shift. Zero lays Q flat chains; a
	// positive value anchors a rolling chain at every pattern position.
	// Lower values give longer chains.
	// Default: 0
	RollShift uint

	// Strategy selects the verification strategy.
	// Default: StrategyLinear
	Strategy Strategy

	// EnableMemchr routes single-byte patterns to a memchr count instead of
	// the filter table.
	// Default: true
	EnableMemchr bool
}

// DefaultConfig returns the LinearHashChain configuration: four-byte
// q-grams, a 4096-entry table, flat chains and KMP verification.
//
// It is linear in the worst case and performs like the fastest variants on
// typical input.
func DefaultConfig() Config {
	return Config{
		Q:            4,
		TableBits:    12,
		ChainShift:   3,
		Strategy:     StrategyLinear,
		EnableMemchr: true,
	}
}

// Params returns the filter parameters of the configuration.
func (c Config) Params() filter.Params {
	return filter.Params{
		Q:           c.Q,
		TableBits:   c.TableBits,
		AnchorShift: c.AnchorShift,
		ChainShift:  c.ChainShift,
		RollShift:   c.RollShift,
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError naming the first field out of range.
//
// Valid ranges:
//   - Q: 1 to 6
//   - TableBits: 5 to 12
//   - AnchorShift: 0 to 8
//   - ChainShift: 0 to 12
//   - RollShift: 0 to 8
//   - Strategy: one of the declared strategies
func (c Config) Validate() error {
	if c.Q < 1 || c.Q > qgram.MaxQ {
		return &ConfigError{
			Field:   "Q",
			Message: "must be between 1 and 6",
		}
	}
	if c.TableBits < filter.MinTableBits || c.TableBits > filter.MaxTableBits {
		return &ConfigError{
			Field:   "TableBits",
			Message: "must be between 5 and 12",
		}
	}
	if c.AnchorShift > 8 {
		return &ConfigError{
			Field:   "AnchorShift",
			Message: "must be between 0 and 8",
		}
	}
	if c.ChainShift > 12 {
		return &ConfigError{
			Field:   "ChainShift",
			Message: "must be between 0 and 12",
		}
	}
	if c.RollShift > 8 {
		return &ConfigError{
			Field:   "RollShift",
			Message: "must be between 0 and 8",
		}
	}
	if c.Strategy > StrategyLinear {
		return &ConfigError{
			Field:   "Strategy",
			Message: "unknown strategy " + c.Strategy.String(),
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "hashchain: invalid config: " + e.Field + ": " + e.Message
}
