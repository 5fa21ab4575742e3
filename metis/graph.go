// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// graph.go — the in-memory METIS graph and its construction from a relabeled
// adjacency relation.

package metis

import (
	"sort"

	"github.com/katalvlaran/metisconv/core"
	"github.com/katalvlaran/metisconv/relabel"
)

// Graph is an unweighted METIS graph.
//
// Adj[i-1] lists the neighbours of node i in 1-based ids. Graphs produced by
// Build are always valid; graphs produced by Decode are only as valid as the
// file they came from (see Verify).
type Graph struct {
	Nodes int     // N, header field 1
	Edges int     // M, header field 2
	Adj   [][]int // len(Adj) == Nodes
}

// Neighbors returns the neighbour list of node id (1-based), or nil when id is
// outside [1, Nodes]. The slice aliases the graph.
func (g *Graph) Neighbors(id int) []int {
	if id < 1 || id > len(g.Adj) {
		return nil
	}

	return g.Adj[id-1]
}

// Build translates adj into dense ids through m and counts its edges.
//
// Steps:
//  1. M = adj.EdgeCount(); an odd degree sum surfaces as core.ErrAsymmetric.
//  2. For id = 1..N: map the raw neighbours of ToRaw(id) through ToDense.
//  3. Sort each row ascending.
//
// Returns ErrNodeCount when m does not cover exactly the vertices of adj and
// ErrOutOfRange when a neighbour has no dense id.
//
// Complexity: O(V + E log Δ).
func Build(adj *core.Adjacency, m *relabel.Mapping) (*Graph, error) {
	if m.Len() != adj.VertexCount() {
		return nil, metisErrorf(methodBuild, "mapping covers %d of %d vertices: %w", m.Len(), adj.VertexCount(), ErrNodeCount)
	}
	edges, err := adj.EdgeCount()
	if err != nil {
		return nil, metisErrorf(methodBuild, "%w", err)
	}

	g := &Graph{Nodes: m.Len(), Edges: edges, Adj: make([][]int, m.Len())}
	for id := 1; id <= g.Nodes; id++ {
		raw, _ := m.ToRaw(id)
		nbrs, err := adj.Neighbors(raw)
		if err != nil {
			return nil, metisErrorf(methodBuild, "node %d: %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, n := range nbrs {
			dense, ok := m.ToDense(n)
			if !ok {
				return nil, metisErrorf(methodBuild, "node %d: raw neighbour %d unmapped: %w", id, n, ErrOutOfRange)
			}
			row = append(row, dense)
		}
		sort.Ints(row)
		g.Adj[id-1] = row
	}

	return g, nil
}
