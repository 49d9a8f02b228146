package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/coregx/hashchain"
	"github.com/coregx/hashchain/meta"
	"github.com/spf13/cobra"
)

// app holds the global flags and the state resolved from them before any
// subcommand runs.
type app struct {
	profilePath string
	preset      string
	q           int
	tableBits   uint
	strategy    string
	verbose     bool

	logger *slog.Logger
	config meta.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hashchain",
		Short: "Exact substring search with hash-chain filters",
		Long: `hashchain searches files for a byte pattern using hash-chain filters:
most text positions are rejected by a single table lookup and skipped
several bytes at a time, and the default linear strategy never compares
a text byte twice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.profilePath, "profile", "", "YAML tuning profile")
	pf.StringVar(&a.preset, "preset", "", "named variant: "+strings.Join(meta.PresetNames(), ", "))
	pf.IntVarP(&a.q, "qgram", "q", 0, "q-gram length (1-6)")
	pf.UintVar(&a.tableBits, "table-bits", 0, "log2 of the filter table size (5-12)")
	pf.StringVar(&a.strategy, "strategy", "", "verification strategy: naive, qverify, weak, linear")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log configuration and scan statistics")

	root.AddCommand(newCountCmd(a), newFindCmd(a), newBenchCmd(a))
	return root
}

// setup configures logging and resolves the search configuration from the
// profile and the flags that were set explicitly.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var p Profile
	if a.profilePath != "" {
		var err error
		if p, err = LoadProfile(a.profilePath); err != nil {
			return err
		}
		a.logger.Debug("profile loaded", slog.String("path", a.profilePath))
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		p.Preset = a.preset
	}
	if flags.Changed("qgram") {
		p.Q = &a.q
	}
	if flags.Changed("table-bits") {
		p.TableBits = &a.tableBits
	}
	if flags.Changed("strategy") {
		p.Strategy = a.strategy
	}

	config, err := p.Config()
	if err != nil {
		return err
	}
	a.config = config
	a.logger.Debug("configuration",
		slog.Int("q", config.Q),
		slog.Uint64("table_bits", uint64(config.TableBits)),
		slog.Uint64("roll_shift", uint64(config.RollShift)),
		slog.String("strategy", config.Strategy.String()))
	return nil
}

func (a *app) compile(pattern string) (*hashchain.Searcher, error) {
	s, err := hashchain.CompileWithConfig([]byte(pattern), a.config)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return s, nil
}

func (a *app) logStats(pattern string, n int, stats hashchain.Stats) {
	a.logger.Debug("scan",
		slog.String("pattern", pattern),
		slog.Int("matches", n),
		slog.Uint64("anchors", stats.Anchors),
		slog.Uint64("skips", stats.Skips),
		slog.Uint64("chain_steps", stats.ChainSteps),
		slog.Uint64("broken", stats.Broken),
		slog.Uint64("candidates", stats.Candidates),
		slog.Uint64("compares", stats.Compares))
}

// readInput returns the contents of the file named by args[1], or stdin
// when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) < 2 || args[1] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
