// SPDX-License-Identifier: MIT
// Package: metisconv/cmd/metisconv

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metisconv/convert"
	"github.com/katalvlaran/metisconv/edgelist"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var (
		mode          string
		commentPrefix string
		noVerify      bool
	)
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an edge list to a METIS graph file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				if _, err := edgelist.ParseMode(mode); err != nil {
					return err
				}
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("comment-prefix") {
				cfg.CommentPrefix = commentPrefix
			}
			if noVerify {
				cfg.Verify = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := convert.Convert(args[0], args[1], cfg.ConvertOptions(logger)...)
			if err != nil {
				return err
			}
			if res.Input.Malformed > 0 {
				logger.Warn("skipped malformed lines", "count", res.Input.Malformed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted and saved to %s\n", res.Output)

			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "pairs", "input layout: pairs (u v per line) or rows (u v1 v2 ...)")
	cmd.Flags().StringVar(&commentPrefix, "comment-prefix", "#", "prefix marking comment lines")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip the structural check before writing")

	return cmd
}
