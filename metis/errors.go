// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// errors.go — sentinel errors for the metis package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, node, line) is attached with %w at the failure site.

package metis

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates a nil *Graph was passed.
	ErrNilGraph = errors.New("metis: graph is nil")

	// ErrMalformed indicates text that is not a METIS file: bad header,
	// non-integer token, wrong number of adjacency lines or trailing data.
	ErrMalformed = errors.New("metis: malformed file")

	// ErrUnsupportedFormat indicates a weighted or multi-constraint header.
	ErrUnsupportedFormat = errors.New("metis: unsupported format")

	// ErrNodeCount indicates the header node count disagrees with the rows.
	ErrNodeCount = errors.New("metis: node count mismatch")

	// ErrOutOfRange indicates a neighbour id outside [1, N].
	ErrOutOfRange = errors.New("metis: neighbour id out of range")

	// ErrSelfLoop indicates a node listed as its own neighbour.
	ErrSelfLoop = errors.New("metis: self-loop")

	// ErrUnsorted indicates a neighbour list that is not strictly ascending.
	ErrUnsorted = errors.New("metis: neighbour list not strictly ascending")

	// ErrAsymmetric indicates j ∈ N(i) without i ∈ N(j).
	ErrAsymmetric = errors.New("metis: adjacency is not symmetric")

	// ErrEdgeCount indicates the header edge count disagrees with the rows.
	ErrEdgeCount = errors.New("metis: edge count mismatch")

	// ErrPartitionSize indicates a partition vector whose length is not N.
	ErrPartitionSize = errors.New("metis: partition size mismatch")

	// ErrBadPart indicates a negative or non-integer part id.
	ErrBadPart = errors.New("metis: invalid part id")
)

// Method names used as error prefixes.
const (
	methodBuild         = "Build"
	methodEncode        = "Encode"
	methodWriteFile     = "WriteFile"
	methodDecode        = "Decode"
	methodReadFile      = "ReadFile"
	methodVerify        = "Verify"
	methodReadPartition = "ReadPartition"
	methodEvaluate      = "EvaluatePartition"
)

// metisErrorf prefixes a formatted message with the method name.
// The format may carry a %w verb to keep a sentinel reachable.
func metisErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
