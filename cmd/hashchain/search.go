package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count PATTERN [FILE]",
		Short: "Print the number of occurrences of PATTERN (reads stdin without FILE)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.compile(args[0])
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			n, stats := s.CountWithStats(text)
			a.logStats(args[0], n, stats)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "find PATTERN [FILE]",
		Short: "Print the offset of each occurrence of PATTERN, one per line",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.compile(args[0])
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			found := 0
			s.Each(text, func(offset int) bool {
				fmt.Fprintln(w, offset)
				found++
				return limit <= 0 || found < limit
			})
			a.logger.Debug("find", "pattern", args[0], "printed", found)
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many offsets (0 prints all)")
	return cmd
}
