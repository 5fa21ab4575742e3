// SPDX-License-Identifier: MIT
// Package: metisconv/edgelist
//
// errors.go — sentinel errors for the edgelist package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (line number, token, path) is attached with %w at the failure site.

package edgelist

import (
	"errors"
	"fmt"
)

// ErrParse indicates a token that must be an integer node identifier is not.
// It is fatal: the read stops and no relation is returned.
var ErrParse = errors.New("edgelist: invalid node identifier")

// ErrLineTooLong indicates a single line exceeded the configured maximum
// (see WithMaxLineBytes).
var ErrLineTooLong = errors.New("edgelist: line too long")

// ErrUnknownMode indicates an unrecognised input mode name (see ParseMode).
var ErrUnknownMode = errors.New("edgelist: unknown input mode")

// Method names used as error prefixes.
const (
	methodRead     = "Read"
	methodReadFile = "ReadFile"
)

// lineErrorf wraps err with the method name and the 1-based line number.
func lineErrorf(method string, line int, format string, args ...interface{}) error {
	return fmt.Errorf("%s: line %d: %w", method, line, fmt.Errorf(format, args...))
}
