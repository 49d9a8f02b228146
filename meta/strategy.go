package meta

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/hashchain/verify"
)

// Strategy selects how candidate windows are verified.
type Strategy uint8

const (
	// StrategyAuto picks Linear, the strategy with a worst-case bound.
	StrategyAuto Strategy = iota

	// StrategyNaive descends every chain to the window start and checks the
	// cumulative hash before comparing bytes (HashChain).
	StrategyNaive

	// StrategyQVerify descends to the window start and compares Q
	// alignments per candidate, then shifts by Q (HashChain q-verify).
	StrategyQVerify

	// StrategyWeak stops descents at text already read by an earlier
	// descent and compares bytes (WeakerHashChain).
	StrategyWeak

	// StrategyLinear combines weak recognition with KMP verification
	// (LinearHashChain).
	StrategyLinear
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyNaive:
		return "naive"
	case StrategyQVerify:
		return "qverify"
	case StrategyWeak:
		return "weak"
	case StrategyLinear:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return StrategyAuto, nil
	case "naive":
		return StrategyNaive, nil
	case "qverify", "q-verify":
		return StrategyQVerify, nil
	case "weak":
		return StrategyWeak, nil
	case "linear", "kmp":
		return StrategyLinear, nil
	}
	return StrategyAuto, &ConfigError{Field: "Strategy", Message: "unknown strategy " + name}
}

// kind maps a strategy to its verifier kind.
func (s Strategy) kind() verify.Kind {
	switch s {
	case StrategyNaive:
		return verify.KindNaive
	case StrategyQVerify:
		return verify.KindQVerify
	case StrategyWeak:
		return verify.KindWeak
	default:
		return verify.KindLinear
	}
}

// presets holds the tuned parameters of each published variant.
var presets = map[string]Config{
	// HashChain: rolling anchors at every position.
	"hc3": {Q: 3, TableBits: 11, AnchorShift: 3, ChainShift: 1, RollShift: 4, Strategy: StrategyNaive},
	"hc6": {Q: 6, TableBits: 12, AnchorShift: 2, ChainShift: 1, RollShift: 4, Strategy: StrategyNaive},

	// HashChain with Q flat chains and q-alignment verification.
	"hc4-qverify": {Q: 4, TableBits: 12, ChainShift: 3, Strategy: StrategyQVerify},

	// Simple HashChain: Q flat chains, fast preprocessing, large alphabets.
	"shc6": {Q: 6, TableBits: 12, ChainShift: 2, Strategy: StrategyNaive},

	// FastHashChain: single-byte q-grams index a 256-entry table directly.
	"fhc1": {Q: 1, TableBits: 8, ChainShift: 8, Strategy: StrategyNaive},

	// WeakerHashChain.
	"whc3": {Q: 3, TableBits: 11, ChainShift: 3, Strategy: StrategyWeak},

	// LinearHashChain.
	"lhc4": {Q: 4, TableBits: 12, ChainShift: 3, Strategy: StrategyLinear},
}

// Preset returns the configuration of a named variant: hc3, hc4-qverify,
// hc6, shc6, fhc1, whc3 or lhc4.
func Preset(name string) (Config, error) {
	c, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, &ConfigError{Field: "Preset", Message: "unknown preset " + name}
	}
	c.EnableMemchr = true
	return c, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
