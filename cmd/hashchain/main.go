// Command hashchain counts and locates a byte pattern in files with the
// HashChain family of sub-linear search filters.
//
// Usage:
//
//	hashchain count GCAT genome.txt
//	hashchain find --limit 10 needle haystack.log
//	cat input | hashchain count needle
//	hashchain bench --iterations 20 agggtaaa genome.txt
//
// Tuning:
//
//	hashchain count --preset hc3 needle file
//	hashchain count -q 2 --table-bits 10 --strategy weak needle file
//	hashchain count --profile dna.yaml GCAT genome.txt
//
// A profile is a YAML file naming a preset and/or individual parameters:
//
//	preset: hc3
//	table_bits: 10
//	strategy: linear
//
// Flags override the profile, which overrides the preset.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("hashchain failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
