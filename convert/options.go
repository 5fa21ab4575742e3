// SPDX-License-Identifier: MIT
// Package: metisconv/convert
//
// options.go — functional options and deterministic defaults.
//
// Defaults:
//   • mode          = edgelist.ModePairs
//   • commentPrefix = "#"
//   • verify        = true
//   • logger        = discard

package convert

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/metisconv/edgelist"
)

// Option customizes a Convert/Transform call.
type Option func(*config)

type config struct {
	mode          edgelist.Mode
	commentPrefix string
	verify        bool
	logger        *slog.Logger
}

const defaultCommentPrefix = "#"

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		mode:          edgelist.ModePairs,
		commentPrefix: defaultCommentPrefix,
		verify:        true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// readerOptions forwards the ingestion-related settings to edgelist.
func (c config) readerOptions() []edgelist.Option {
	return []edgelist.Option{
		edgelist.WithMode(c.mode),
		edgelist.WithCommentPrefix(c.commentPrefix),
		edgelist.WithLogger(c.logger),
	}
}

// WithMode selects how input lines are interpreted.
func WithMode(m edgelist.Mode) Option {
	edgelist.WithMode(m) // panics on undefined modes
	return func(c *config) {
		c.mode = m
	}
}

// WithCommentPrefix sets the comment-line prefix. Panics on "".
func WithCommentPrefix(prefix string) Option {
	if prefix == "" {
		panic("convert: WithCommentPrefix(\"\")")
	}
	return func(c *config) {
		c.commentPrefix = prefix
	}
}

// WithVerify toggles the structural self-check run before writing.
func WithVerify(on bool) Option {
	return func(c *config) {
		c.verify = on
	}
}

// WithLogger sets the logger for progress and diagnostics. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("convert: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
