// SPDX-License-Identifier: MIT
// Package: metisconv/cmd/metisconv

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metisconv/cmd/metisconv/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// load resolves the config file and applies flag overrides on top of it.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, cfg.Logger(cmd.ErrOrStderr()), nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "metisconv",
		Short: "Convert edge lists to METIS graph files",
		Long: `metisconv turns whitespace-separated edge lists into the unweighted
METIS adjacency format used by graph partitioners, and checks METIS
files and partitions produced from them.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newConvertCmd(opts),
		newVerifyCmd(opts),
		newStatsCmd(opts),
	)

	return root
}
