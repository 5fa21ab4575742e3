// SPDX-License-Identifier: MIT
// Package: metisconv/edgelist
//
// options.go — functional options for the edgelist package.
//
// Contract:
//   • Options are functional (type Option func(*readerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Read itself never panics.

package edgelist

import (
	"fmt"
	"log/slog"
)

// Option customizes a Read/ReadFile call.
type Option func(*readerConfig)

// WithMode selects the line interpretation (ModePairs or ModeRows).
// Panics on an undefined Mode value.
func WithMode(m Mode) Option {
	if m != ModePairs && m != ModeRows {
		panic(fmt.Sprintf("edgelist: WithMode(%d)", int(m)))
	}
	return func(c *readerConfig) {
		c.mode = m
	}
}

// WithCommentPrefix sets the prefix that marks a whole line as a comment.
// The prefix is matched against the raw line, before any trimming.
// Panics on the empty string, which would make every line a comment.
func WithCommentPrefix(prefix string) Option {
	if prefix == "" {
		panic("edgelist: WithCommentPrefix(\"\")")
	}
	return func(c *readerConfig) {
		c.commentPrefix = prefix
	}
}

// WithMaxLineBytes caps the length of a single input line.
// Panics when n < 1.
func WithMaxLineBytes(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("edgelist: WithMaxLineBytes(%d)", n))
	}
	return func(c *readerConfig) {
		c.maxLineBytes = n
	}
}

// WithLogger routes per-line diagnostics (skipped lines, dropped loops) to l
// at debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("edgelist: WithLogger(nil)")
	}
	return func(c *readerConfig) {
		c.logger = l
	}
}
