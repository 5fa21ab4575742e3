// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Neighbors/DegreeSum/EdgeCount.
// Determinism:
//   - Neighbors() returns raw IDs sorted ascending.
//   - EdgeCount() never rounds: an odd degree sum is ErrAsymmetric.

package core

import (
	"fmt"
	"sort"
)

// AddEdge records the undirected edge {u,v} as u→v and v→u.
//
// Steps:
//  1. Reject u == v with ErrLoopNotAllowed (relation untouched).
//  2. Ensure both endpoints exist.
//  3. Insert both directions; duplicates collapse by set semantics.
//
// Complexity: O(1) amortized.
func (a *Adjacency) AddEdge(u, v int64) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	a.AddVertex(u)
	a.AddVertex(v)
	a.adj[u][v] = struct{}{}
	a.adj[v][u] = struct{}{}

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (a *Adjacency) HasEdge(u, v int64) bool {
	_, ok := a.adj[u][v]

	return ok
}

// Neighbors returns the neighbours of v sorted ascending.
// Returns ErrVertexNotFound if v is not a vertex of the relation; an isolated
// vertex yields an empty, non-nil slice.
// Complexity: O(d log d), d = Degree(v).
func (a *Adjacency) Neighbors(v int64) ([]int64, error) {
	set, ok := a.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int64, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// DegreeSum returns Σ Degree(v) over all vertices. Every undirected edge is
// counted twice, once from each endpoint.
// Complexity: O(V).
func (a *Adjacency) DegreeSum() int {
	sum := 0
	for _, set := range a.adj {
		sum += len(set)
	}

	return sum
}

// EdgeCount returns the number of undirected edges, DegreeSum()/2.
// An odd degree sum means some edge was recorded in one direction only and
// is reported as ErrAsymmetric.
// Complexity: O(V).
func (a *Adjacency) EdgeCount() (int, error) {
	sum := a.DegreeSum()
	if sum%2 != 0 {
		return 0, fmt.Errorf("EdgeCount: degree sum %d is odd: %w", sum, ErrAsymmetric)
	}

	return sum / 2, nil
}
