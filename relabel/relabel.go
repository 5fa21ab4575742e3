// SPDX-License-Identifier: MIT
// Package: metisconv/relabel

// Package relabel maps sparse raw vertex identifiers onto the dense 1-based
// range that the METIS format requires.
//
// The mapping is a bijection between the vertices of a core.Adjacency and
// [1, N]: raw identifiers sorted ascending receive 1, 2, …, N in that order.
// Identical input always yields the identical mapping.
package relabel

import "github.com/katalvlaran/metisconv/core"

// Mapping is an immutable raw ⇄ dense identifier bijection.
type Mapping struct {
	forward map[int64]int // raw -> dense (1-based)
	inverse []int64       // inverse[id-1] = raw
}

// New builds the mapping over every vertex of adj, isolated ones included.
// An empty relation yields an empty mapping (Len() == 0).
// Complexity: O(V log V).
func New(adj *core.Adjacency) *Mapping {
	raw := adj.Vertices()
	m := &Mapping{
		forward: make(map[int64]int, len(raw)),
		inverse: raw,
	}
	for i, v := range raw {
		m.forward[v] = i + 1
	}

	return m
}

// Len returns N, the number of mapped vertices.
func (m *Mapping) Len() int {
	return len(m.inverse)
}

// ToDense returns the 1-based identifier of raw, or false if raw is unmapped.
func (m *Mapping) ToDense(raw int64) (int, bool) {
	id, ok := m.forward[raw]

	return id, ok
}

// ToRaw returns the raw identifier behind dense id, or false if id is
// outside [1, Len()].
func (m *Mapping) ToRaw(id int) (int64, bool) {
	if id < 1 || id > len(m.inverse) {
		return 0, false
	}

	return m.inverse[id-1], true
}

// Raw returns the raw identifiers in dense order; Raw()[i] maps to i+1.
// The returned slice is a copy.
func (m *Mapping) Raw() []int64 {
	out := make([]int64, len(m.inverse))
	copy(out, m.inverse)

	return out
}
