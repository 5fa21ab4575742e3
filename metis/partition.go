// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// partition.go — partitioner output: one part id per line, line k for node k.

package metis

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// PartitionReport summarizes a partition vector against its graph.
type PartitionReport struct {
	Parts   int   // highest part id + 1
	Sizes   []int // Sizes[p] = nodes assigned to part p
	EdgeCut int   // edges whose endpoints sit in different parts
}

// ReadPartition reads a partition vector for a graph of n nodes. Blank lines
// are skipped; every other line must hold one integer in [0, n), since a
// partition never has more parts than nodes.
// Returns ErrBadPart for other values and ErrPartitionSize if the vector
// length is not n.
func ReadPartition(r io.Reader, n int) ([]int, error) {
	sc := bufio.NewScanner(r)
	parts := make([]int, 0, n)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		tok := strings.TrimSpace(sc.Text())
		if tok == "" {
			continue
		}
		p, err := strconv.Atoi(tok)
		if err != nil || p < 0 || p >= n {
			return nil, metisErrorf(methodReadPartition, "line %d: %q: %w", lineNo, tok, ErrBadPart)
		}
		parts = append(parts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, metisErrorf(methodReadPartition, "%w", err)
	}
	if len(parts) != n {
		return nil, metisErrorf(methodReadPartition, "want %d entries, got %d: %w", n, len(parts), ErrPartitionSize)
	}

	return parts, nil
}

// ReadPartitionFile opens path and reads it with ReadPartition.
func ReadPartitionFile(path string, n int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, metisErrorf(methodReadPartition, "%w", err)
	}
	defer f.Close()

	parts, err := ReadPartition(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return parts, nil
}

// EvaluatePartition computes part sizes and the edge cut of parts over g.
// parts[k] is the part of node k+1 and must lie in [0, g.Nodes).
//
// Complexity: O(N + E).
func EvaluatePartition(g *Graph, parts []int) (PartitionReport, error) {
	if g == nil {
		return PartitionReport{}, metisErrorf(methodEvaluate, "%w", ErrNilGraph)
	}
	if len(parts) != g.Nodes || len(g.Adj) != g.Nodes {
		return PartitionReport{}, metisErrorf(methodEvaluate, "%d parts for %d nodes: %w", len(parts), g.Nodes, ErrPartitionSize)
	}

	rep := PartitionReport{}
	for k, p := range parts {
		if p < 0 || p >= g.Nodes {
			return PartitionReport{}, metisErrorf(methodEvaluate, "node %d: part %d outside [0,%d): %w", k+1, p, g.Nodes, ErrBadPart)
		}
		if p+1 > rep.Parts {
			rep.Parts = p + 1
		}
	}
	rep.Sizes = make([]int, rep.Parts)
	for _, p := range parts {
		rep.Sizes[p]++
	}

	for i, row := range g.Adj {
		id := i + 1
		for _, n := range row {
			if n < 1 || n > g.Nodes {
				return PartitionReport{}, metisErrorf(methodEvaluate, "node %d: neighbour %d: %w", id, n, ErrOutOfRange)
			}
			if id < n && parts[id-1] != parts[n-1] {
				rep.EdgeCut++
			}
		}
	}

	return rep, nil
}
