// SPDX-License-Identifier: MIT
// Package: metisconv/converters

package converters

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/metisconv/core"
	"github.com/katalvlaran/metisconv/metis"
	"github.com/katalvlaran/metisconv/relabel"
)

// ToGonum copies g into a gonum undirected graph whose node IDs are the
// METIS ids 1..N. Every node is added, isolated ones included.
//
// Returns metis.ErrOutOfRange or metis.ErrSelfLoop for rows a verified graph
// could not contain; simple.UndirectedGraph would panic on them.
//
// Complexity: O(N + E).
func ToGonum(g *metis.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("ToGonum: %w", metis.ErrNilGraph)
	}
	ug := simple.NewUndirectedGraph()
	for id := 1; id <= len(g.Adj); id++ {
		ug.AddNode(simple.Node(id))
	}
	for i, row := range g.Adj {
		id := i + 1
		for _, n := range row {
			switch {
			case n < 1 || n > len(g.Adj):
				return nil, fmt.Errorf("ToGonum: node %d: neighbour %d: %w", id, n, metis.ErrOutOfRange)
			case n == id:
				return nil, fmt.Errorf("ToGonum: node %d: %w", id, metis.ErrSelfLoop)
			case id < n:
				ug.SetEdge(simple.Edge{F: simple.Node(id), T: simple.Node(n)})
			}
		}
	}

	return ug, nil
}

// FromGonum converts any gonum undirected graph to a METIS graph. Node IDs
// are relabeled to 1..N in ascending ID order; self-loops are dropped.
//
// Complexity: O(N log N + E log Δ).
func FromGonum(u graph.Undirected) (*metis.Graph, error) {
	adj := core.NewAdjacency()
	nodes := u.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		adj.AddVertex(id)
		to := u.From(id)
		for to.Next() {
			v := to.Node().ID()
			if v == id {
				continue
			}
			if err := adj.AddEdge(id, v); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return metis.Build(adj, relabel.New(adj))
}

// Components returns the connected components of g as sorted METIS id lists,
// ordered by their smallest member.
func Components(g *metis.Graph) ([][]int, error) {
	ug, err := ToGonum(g)
	if err != nil {
		return nil, err
	}

	cc := topo.ConnectedComponents(ug)
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}
