package meta

import (
	"bytes"

	"github.com/coregx/hashchain/filter"
	"github.com/coregx/hashchain/kmp"
	"github.com/coregx/hashchain/verify"
)

// Engine is a compiled single-pattern searcher.
//
// The Engine:
//  1. Validates the configuration and the pattern length
//  2. Builds the filter table (and the KMP automaton for Linear)
//  3. Scans texts with the chain filter and the selected verifier
//
// Thread safety: an Engine is immutable after Compile. Every search takes
// its own scan state (weak tracker, verification cursor, statistics) from a
// pool, so
// multiple goroutines may search with the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile([]byte("GCAT"), meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	n := engine.Count([]byte("GCATGCATGCAT")) // 3
type Engine struct {
	config   Config
	strategy Strategy
	pattern  []byte

	// filter and verifier are nil when the memchr path is used.
	filter   *filter.Filter
	verifier verify.Verifier
	memchr   bool

	// states pools scan state between searches.
	states *searchStatePool
}

// Compile builds an Engine for pattern.
//
// Returns a *ConfigError if config is invalid, or a *LengthError (which
// matches ErrPatternTooShort under errors.Is) if the pattern is shorter
// than config.Q. The pattern is copied.
func Compile(pattern []byte, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) < config.Q {
		return nil, &LengthError{Len: len(pattern), Q: config.Q}
	}

	p := bytes.Clone(pattern)
	strategy := config.Strategy
	if strategy == StrategyAuto {
		strategy = StrategyLinear
	}
	e := &Engine{
		config:   config,
		strategy: strategy,
		pattern:  p,
		states:   newSearchStatePool(),
	}
	if config.EnableMemchr && len(p) == 1 {
		e.memchr = true
		return e, nil
	}

	f, err := filter.Build(p, config.Params())
	if err != nil {
		return nil, err
	}
	e.filter = f
	e.verifier = newVerifier(strategy, p, f)
	return e, nil
}

func newVerifier(s Strategy, p []byte, f *filter.Filter) verify.Verifier {
	switch s.kind() {
	case verify.KindNaive:
		return verify.NewNaive(p, f.Hm())
	case verify.KindQVerify:
		return verify.NewQVerify(p, f.Q())
	case verify.KindWeak:
		return verify.NewWeak(p)
	default:
		return verify.NewLinear(p, kmp.Build(p))
	}
}

// Pattern returns a copy of the compiled pattern.
func (e *Engine) Pattern() []byte {
	return bytes.Clone(e.pattern)
}

// Config returns the configuration the engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// Strategy returns the verification strategy in use. StrategyAuto is
// resolved at compile time and never returned.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// UsesMemchr reports whether searches bypass the filter table.
func (e *Engine) UsesMemchr() bool {
	return e.memchr
}

// Filter returns the compiled filter, or nil on the memchr path.
func (e *Engine) Filter() *filter.Filter {
	return e.filter
}

// HeapBytes returns the memory held by the compiled structures.
func (e *Engine) HeapBytes() int {
	n := len(e.pattern)
	if e.filter != nil {
		n += e.filter.HeapBytes()
	}
	if l, ok := e.verifier.(*verify.Linear); ok {
		n += len(l.Automaton()) * 8
	}
	return n
}
