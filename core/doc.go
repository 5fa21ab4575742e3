// Package core provides the undirected, loop-free adjacency relation that the
// converter builds while ingesting an edge list.
//
// The relation R over raw vertex identifiers (int64, exactly as they appear in
// the input file) is kept as nested sets:
//
//	adjacency[u][v] = struct{}{}  ⇔  adjacency[v][u] = struct{}{}
//
// Guarantees:
//
//   - Symmetric: AddEdge(u,v) records both u→v and v→u in one call.
//   - Loop-free: AddEdge(v,v) returns ErrLoopNotAllowed and changes nothing.
//   - Set semantics: repeated AddEdge(u,v) / AddEdge(v,u) is a no-op.
//   - Deterministic reads: Vertices() and Neighbors() return ascending slices;
//     map iteration order never leaks to callers.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v int64)                    // O(1)
//	HasVertex(v int64) bool               // O(1)
//	VertexCount() int                     // O(1)
//	Vertices() []int64                    // O(V log V)
//
//	// Edge lifecycle
//	AddEdge(u, v int64) error             // O(1) amortized
//	HasEdge(u, v int64) bool              // O(1)
//	Neighbors(v int64) ([]int64, error)   // O(d log d)
//	Degree(v int64) int                   // O(1)
//	DegreeSum() int                       // O(V)
//	EdgeCount() (int, error)              // O(V)
//
// Concurrency:
//
//	Adjacency is built once by a single reader and is read-only afterwards.
//	It carries no locks; callers sharing one instance across goroutines
//	must not mutate it.
//
// Errors:
//
//	ErrLoopNotAllowed - AddEdge with u == v.
//	ErrVertexNotFound - Neighbors on an absent vertex.
//	ErrAsymmetric     - EdgeCount found an odd degree sum.
package core
