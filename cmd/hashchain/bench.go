package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/coregx/hashchain"
	"github.com/coregx/hashchain/meta"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// benchResult is the outcome of timing one configuration.
type benchResult struct {
	name    string
	count   int
	elapsed time.Duration
	stats   hashchain.Stats
	err     error
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		iterations int
		parallel   bool
	)
	cmd := &cobra.Command{
		Use:   "bench PATTERN FILE",
		Short: "Time the configured searcher and every preset on FILE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			pattern := []byte(args[0])
			iterations = max(iterations, 1)

			names := append([]string{"configured"}, meta.PresetNames()...)
			configs := make([]meta.Config, len(names))
			configs[0] = a.config
			for i, name := range names[1:] {
				if configs[i+1], err = meta.Preset(name); err != nil {
					return err
				}
			}

			results := make([]benchResult, len(names))
			run := func(i int) {
				results[i] = runBench(names[i], configs[i], pattern, text, iterations)
			}
			if parallel {
				// Timings are skewed when configurations share cores.
				var wg sync.WaitGroup
				for i := range names {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						run(i)
					}(i)
				}
				wg.Wait()
			} else {
				for i := range names {
					run(i)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cpu: %s\n", cpuFeatures())
			fmt.Fprintf(out, "text: %d bytes, pattern: %d bytes, iterations: %d\n\n", len(text), len(pattern), iterations)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOUNT\tTIME/OP\tMB/s\tSKIP\tEFFICIENCY\tCOMPARES")
			for _, r := range results {
				if r.err != nil {
					a.logger.Warn("configuration skipped", slog.String("name", r.name), slog.String("error", r.err.Error()))
					continue
				}
				perOp := r.elapsed / time.Duration(iterations)
				fmt.Fprintf(tw, "%s\t%d\t%v\t%.1f\t%.1f%%\t%.3f\t%d\n",
					r.name, r.count, perOp, throughput(len(text), perOp),
					100*r.stats.SkipRate(), r.stats.Efficiency(), r.stats.Compares)
				a.logStats(r.name, r.count, r.stats)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10, "searches per configuration")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "time configurations concurrently")
	return cmd
}

func runBench(name string, config meta.Config, pattern, text []byte, iterations int) benchResult {
	s, err := hashchain.CompileWithConfig(pattern, config)
	if err != nil {
		return benchResult{name: name, err: err}
	}
	r := benchResult{name: name}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		r.count, r.stats = s.CountWithStats(text)
	}
	r.elapsed = time.Since(start)
	return r
}

// throughput returns megabytes per second, or 0 for an unmeasurable time.
func throughput(n int, perOp time.Duration) float64 {
	if perOp <= 0 {
		return 0
	}
	return float64(n) / perOp.Seconds() / 1e6
}

// cpuFeatures describes the vector extensions of the host.
func cpuFeatures() string {
	switch runtime.GOARCH {
	case "amd64", "386":
		return fmt.Sprintf("%s avx2=%t sse4.2=%t popcnt=%t",
			runtime.GOARCH, cpu.X86.HasAVX2, cpu.X86.HasSSE42, cpu.X86.HasPOPCNT)
	case "arm64":
		return fmt.Sprintf("%s asimd=%t", runtime.GOARCH, cpu.ARM64.HasASIMD)
	default:
		return runtime.GOARCH
	}
}
