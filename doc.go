// Package metisconv converts edge-list graph files into the unweighted METIS
// adjacency format consumed by graph partitioners.
//
// The conversion is one linear pass:
//
//	parse → symmetrize (drop self-loops, deduplicate) → relabel to 1..N → serialize
//
// Subpackages:
//
//	core/       — undirected, loop-free adjacency relation over raw int64 ids
//	edgelist/   — line scanner building core.Adjacency (pairs or rows layout)
//	relabel/    — raw id ⇄ dense 1-based id bijection in ascending raw order
//	metis/      — METIS graph model: Build, Encode, atomic WriteFile, Decode,
//	              Verify, partition evaluation
//	convert/    — the end-to-end pipeline (Convert, Transform)
//	converters/ — gonum/graph adapters and connected components
//	cmd/metisconv — CLI: convert, verify, stats
//
// Quick example:
//
//	edges.txt          edges.metis
//	# toy graph        3 2
//	1 2          ⇒     2
//	2 3                1 3
//	                   2
//
//	res, err := convert.Convert("edges.txt", "edges.metis")
package metisconv
