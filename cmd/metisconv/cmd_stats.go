// SPDX-License-Identifier: MIT
// Package: metisconv/cmd/metisconv

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metisconv/converters"
	"github.com/katalvlaran/metisconv/metis"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <metis-file>",
		Short: "Print degree and connectivity statistics of a METIS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := root.load(cmd)
			if err != nil {
				return err
			}

			g, err := metis.ReadFile(args[0])
			if err != nil {
				return err
			}
			cc, err := converters.Components(g)
			if err != nil {
				return err
			}
			largest := 0
			for _, c := range cc {
				largest = max(largest, len(c))
			}
			if len(cc) > 1 {
				logger.Warn("graph is disconnected", "components", len(cc))
			}

			s := metis.Summarize(g)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:       %d\n", s.Nodes)
			fmt.Fprintf(out, "edges:       %d\n", s.Edges)
			fmt.Fprintf(out, "degree:      min %d, max %d, avg %.2f\n", s.MinDegree, s.MaxDegree, s.AvgDegree)
			fmt.Fprintf(out, "isolated:    %d\n", s.Isolated)
			fmt.Fprintf(out, "components:  %d (largest %d)\n", len(cc), largest)

			return nil
		},
	}
}
