// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// verify.go — structural checks a partitioner relies on.

package metis

import "sort"

// Verify checks that g is a well-formed undirected METIS graph:
//
//   - one row per node                        (ErrNodeCount)
//   - every id in [1, Nodes]                  (ErrOutOfRange)
//   - no node lists itself                    (ErrSelfLoop)
//   - rows strictly ascending                 (ErrUnsorted)
//   - j ∈ N(i) ⇔ i ∈ N(j)                     (ErrAsymmetric)
//   - Edges = number of distinct pairs {i,j}  (ErrEdgeCount)
//
// The first violation found, scanning nodes in ascending order, is returned.
//
// Complexity: O(E log Δ).
func Verify(g *Graph) error {
	if g == nil {
		return metisErrorf(methodVerify, "%w", ErrNilGraph)
	}
	if len(g.Adj) != g.Nodes {
		return metisErrorf(methodVerify, "header says %d nodes, have %d rows: %w", g.Nodes, len(g.Adj), ErrNodeCount)
	}

	for i, row := range g.Adj {
		id := i + 1
		for k, n := range row {
			if n < 1 || n > g.Nodes {
				return metisErrorf(methodVerify, "node %d: neighbour %d: %w", id, n, ErrOutOfRange)
			}
			if n == id {
				return metisErrorf(methodVerify, "node %d: %w", id, ErrSelfLoop)
			}
			if k > 0 && row[k-1] >= n {
				return metisErrorf(methodVerify, "node %d: %d after %d: %w", id, n, row[k-1], ErrUnsorted)
			}
		}
	}

	pairs := 0
	for i, row := range g.Adj {
		id := i + 1
		for _, n := range row {
			if !containsSorted(g.Adj[n-1], id) {
				return metisErrorf(methodVerify, "node %d lists %d but not vice versa: %w", id, n, ErrAsymmetric)
			}
			if id < n {
				pairs++
			}
		}
	}
	if pairs != g.Edges {
		return metisErrorf(methodVerify, "header says %d edges, rows hold %d: %w", g.Edges, pairs, ErrEdgeCount)
	}

	return nil
}

// containsSorted reports whether x is in the ascending slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}
