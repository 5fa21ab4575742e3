// Package metis models, writes, reads and checks unweighted METIS graph files.
//
// File layout:
//
//	<num_nodes> <num_edges>
//	<neighbours of node 1, ascending, space-separated>
//	<neighbours of node 2, ascending, space-separated>
//	...
//	<neighbours of node N, ascending, space-separated>
//
// Line k+1 belongs to node k, so a node without neighbours still owns an
// (empty) line. Identifiers are 1-based. Every undirected edge appears on
// both endpoint lines and is counted once in the header.
//
// Entry points:
//
//	Build(adj, mapping)       core.Adjacency + relabel.Mapping → *Graph
//	Encode(w, g) / WriteFile  *Graph → text (WriteFile is atomic)
//	Decode(r) / ReadFile      text → *Graph
//	Verify(g)                 structural checks on a *Graph
//	ReadPartition / EvaluatePartition
//	                          partitioner output (one part per line) → sizes, edge cut
//
// Weighted variants (fmt ≠ 0) and multi-constraint files are out of scope;
// Decode rejects them with ErrUnsupportedFormat.
package metis
