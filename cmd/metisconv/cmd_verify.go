// SPDX-License-Identifier: MIT
// Package: metisconv/cmd/metisconv

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metisconv/metis"
)

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var partition string
	cmd := &cobra.Command{
		Use:   "verify <metis-file>",
		Short: "Check a METIS file (and optionally a partition of it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := root.load(cmd); err != nil {
				return err
			}

			g, err := metis.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := metis.Verify(g); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok (%d nodes, %d edges)\n", args[0], g.Nodes, g.Edges)

			if partition == "" {
				return nil
			}
			parts, err := metis.ReadPartitionFile(partition, g.Nodes)
			if err != nil {
				return err
			}
			rep, err := metis.EvaluatePartition(g, parts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d parts, edge cut %d\n", partition, rep.Parts, rep.EdgeCut)
			for p, size := range rep.Sizes {
				fmt.Fprintf(out, "  part %d: %d nodes\n", p, size)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&partition, "partition", "", "partition file (one part id per line)")

	return cmd
}
