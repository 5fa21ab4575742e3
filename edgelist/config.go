// SPDX-License-Identifier: MIT
// Package: metisconv/edgelist
//
// config.go — internal reader configuration and deterministic defaults.
//
// Defaults:
//   • mode          = ModePairs
//   • commentPrefix = "#"
//   • maxLineBytes  = 64 MiB
//   • logger        = discard

package edgelist

import (
	"io"
	"log/slog"
)

const (
	defaultCommentPrefix = "#"
	defaultMaxLineBytes  = 64 << 20
	initialLineBuffer    = 64 * 1024
)

type readerConfig struct {
	mode          Mode
	commentPrefix string
	maxLineBytes  int
	logger        *slog.Logger
}

// newReaderConfig applies opts in order over the defaults; last wins.
func newReaderConfig(opts ...Option) readerConfig {
	cfg := readerConfig{
		mode:          ModePairs,
		commentPrefix: defaultCommentPrefix,
		maxLineBytes:  defaultMaxLineBytes,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
