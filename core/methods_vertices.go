// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/VertexCount/Vertices/Degree.
// Determinism:
//   - Vertices() returns raw IDs sorted ascending.

package core

import "sort"

// AddVertex registers v as a vertex of the relation. Registering an existing
// vertex is a no-op and keeps its neighbours.
// Complexity: O(1).
func (a *Adjacency) AddVertex(v int64) {
	if _, ok := a.adj[v]; !ok {
		a.adj[v] = make(map[int64]struct{})
	}
}

// HasVertex reports whether v is a vertex of the relation.
// Complexity: O(1).
func (a *Adjacency) HasVertex(v int64) bool {
	_, ok := a.adj[v]

	return ok
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1).
func (a *Adjacency) VertexCount() int {
	return len(a.adj)
}

// Vertices returns every vertex, sorted ascending by raw value.
// The returned slice is owned by the caller.
// Complexity: O(V log V).
func (a *Adjacency) Vertices() []int64 {
	out := make([]int64, 0, len(a.adj))
	for v := range a.adj {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Degree returns the number of distinct neighbours of v, or 0 if v is absent.
// Complexity: O(1).
func (a *Adjacency) Degree(v int64) int {
	return len(a.adj[v])
}
