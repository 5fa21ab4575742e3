// Package edgelist ingests whitespace-separated edge lists into a
// core.Adjacency.
//
// Input conventions:
//
//	# comment lines start with the comment prefix ("#" by default)
//	<blank or whitespace-only lines are ignored>
//	u v [ignored...]      ModePairs (default): one edge per line
//	u v1 v2 v3 ...        ModeRows: one adjacency row per line
//
// Line policy (ModePairs):
//
//   - Fewer than two tokens: skipped silently and counted in Stats.Malformed.
//   - The first two tokens must be base-10 integers; anything else aborts the
//     read with ErrParse, because it almost always means corrupt input.
//   - Trailing tokens are ignored and never parsed.
//   - u == v is dropped and counted in Stats.SelfLoops.
//   - Otherwise the edge is recorded in both directions.
//
// ModeRows parses every token of a row. The row head is registered as a
// vertex even when the row carries no neighbours, so isolated vertices survive
// into the output as empty adjacency lines.
//
// Nothing is written anywhere while reading: the caller receives a complete
// relation or an error.
package edgelist
