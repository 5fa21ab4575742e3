// SPDX-License-Identifier: MIT
// Package: metisconv/metis

package metis

// Summary holds degree statistics of a graph.
type Summary struct {
	Nodes     int
	Edges     int
	MinDegree int
	MaxDegree int
	AvgDegree float64
	Isolated  int // nodes with an empty row
}

// Summarize computes degree statistics from the rows of g.
// An empty graph yields a zero Summary.
func Summarize(g *Graph) Summary {
	s := Summary{Nodes: g.Nodes, Edges: g.Edges}
	if len(g.Adj) == 0 {
		return s
	}

	total := 0
	s.MinDegree = len(g.Adj[0])
	for _, row := range g.Adj {
		d := len(row)
		total += d
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	s.AvgDegree = float64(total) / float64(len(g.Adj))

	return s
}
