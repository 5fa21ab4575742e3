// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Adjacency type, sentinel errors and the NewAdjacency constructor.

package core

import "errors"

// Sentinel errors for adjacency operations.
var (
	// ErrLoopNotAllowed indicates a self-loop (u == v) was offered to AddEdge.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrAsymmetric indicates the relation lost its symmetry: the degree sum is odd,
	// so it cannot be halved into an undirected edge count.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")
)

// Adjacency is an undirected, loop-free adjacency relation keyed by raw
// vertex identifiers.
//
// adj[u] holds the neighbour set of u. Every key of adj is a vertex of the
// relation, including vertices registered through AddVertex that never got
// an edge.
type Adjacency struct {
	adj map[int64]map[int64]struct{}
}

// NewAdjacency returns an empty relation.
// Complexity: O(1).
func NewAdjacency() *Adjacency {
	return &Adjacency{adj: make(map[int64]map[int64]struct{})}
}
